// Package config resolves all environment configuration once at startup, so
// request handling never touches os.Getenv.
package config

import (
	"os"
	"time"
)

type Config struct {
	Port       string        // listen port
	SerpAPIKey string        // shopping-search credential; empty disables the primary source
	SerpURL    string        // SerpAPI base URL, overridable for tests
	GL         string        // provider region
	HL         string        // provider language
	CatalogURL string        // fallback catalog base URL
	CacheTTL   time.Duration // freshness window for cached results
	RedisURL   string        // optional shared cache; empty selects the in-memory store
	APIKey     string        // optional X-API-Key gate; empty leaves the API open
}

// serpKeyVars is the accepted spelling of the credential variable, in
// precedence order. First non-empty wins.
var serpKeyVars = []string{"SERPAPI_KEY", "SERPAPI_API_KEY", "SERP_API_KEY"}

const defaultCacheTTL = 5 * time.Minute

func Load() Config {
	cfg := Config{
		Port:       envOr("PORT", "8080"),
		SerpURL:    envOr("SERPAPI_URL", "https://serpapi.com"),
		GL:         envOr("SERPAPI_GL", "us"),
		HL:         envOr("SERPAPI_HL", "en"),
		CatalogURL: envOr("CATALOG_URL", "https://fakestoreapi.com"),
		CacheTTL:   defaultCacheTTL,
		RedisURL:   os.Getenv("REDIS_URL"),
		APIKey:     os.Getenv("API_KEY"),
	}

	for _, name := range serpKeyVars {
		if v := os.Getenv(name); v != "" {
			cfg.SerpAPIKey = v
			break
		}
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.CacheTTL = d
		}
	}

	return cfg
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
