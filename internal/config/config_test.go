package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "SERPAPI_KEY", "SERPAPI_API_KEY", "SERP_API_KEY",
		"SERPAPI_URL", "SERPAPI_GL", "SERPAPI_HL",
		"CATALOG_URL", "CACHE_TTL", "REDIS_URL", "API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.SerpAPIKey != "" {
		t.Errorf("credential = %q, want empty", cfg.SerpAPIKey)
	}
	if cfg.SerpURL != "https://serpapi.com" {
		t.Errorf("serp url = %q", cfg.SerpURL)
	}
	if cfg.GL != "us" || cfg.HL != "en" {
		t.Errorf("locale = %s/%s, want us/en", cfg.GL, cfg.HL)
	}
	if cfg.CatalogURL != "https://fakestoreapi.com" {
		t.Errorf("catalog url = %q", cfg.CatalogURL)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", cfg.CacheTTL)
	}
}

func TestCredentialPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERP_API_KEY", "third")
	t.Setenv("SERPAPI_API_KEY", "second")

	if got := Load().SerpAPIKey; got != "second" {
		t.Fatalf("credential = %q, want SERPAPI_API_KEY to win over SERP_API_KEY", got)
	}

	t.Setenv("SERPAPI_KEY", "first")
	if got := Load().SerpAPIKey; got != "first" {
		t.Fatalf("credential = %q, want SERPAPI_KEY to win", got)
	}
}

func TestCacheTTLOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "90s")
	if got := Load().CacheTTL; got != 90*time.Second {
		t.Errorf("ttl = %v, want 90s", got)
	}

	t.Setenv("CACHE_TTL", "not-a-duration")
	if got := Load().CacheTTL; got != 5*time.Minute {
		t.Errorf("ttl = %v, want default on unparseable value", got)
	}

	t.Setenv("CACHE_TTL", "-1m")
	if got := Load().CacheTTL; got != 5*time.Minute {
		t.Errorf("ttl = %v, want default on negative value", got)
	}
}
