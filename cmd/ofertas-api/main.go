package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"ofertas-api/internal/cache"
	"ofertas-api/internal/config"
	"ofertas-api/internal/server"
	"ofertas-api/internal/source"
)

func main() {
	// .env es opcional; en producción las variables llegan del entorno
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "ofertas-api").Logger()

	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	var store cache.Store = cache.NewMemory()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		store = cache.NewRedis(redis.NewClient(opts), cfg.CacheTTL, logger)
		logger.Info().Msg("using shared redis result cache")
	}

	if cfg.SerpAPIKey == "" {
		logger.Warn().Msg("no shopping-search credential configured, serving catalog results only")
	}

	primary := source.NewSerpClient(cfg.SerpURL, cfg.SerpAPIKey, cfg.GL, cfg.HL, logger)
	fallback := source.NewCatalogClient(cfg.CatalogURL)

	srv := server.New(cfg, store, primary, fallback, logger)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
