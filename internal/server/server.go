// Package server wires the HTTP surface: the aggregation endpoint, catalog
// suggestions and the health check.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ofertas-api/internal/cache"
	"ofertas-api/internal/config"
	"ofertas-api/internal/offer"
)

// Primary is the shopping-search provider. Its records are heterogeneous and
// go through offer.Normalize.
type Primary interface {
	Search(ctx context.Context, query string) ([]map[string]any, error)
}

// Fallback is the fixed catalog. It returns offers already normalized.
type Fallback interface {
	Search(ctx context.Context, query string) ([]offer.Offer, error)
	Titles(ctx context.Context) ([]string, error)
}

type Server struct {
	cfg      config.Config
	cache    cache.Store
	primary  Primary
	fallback Fallback
	logger   zerolog.Logger
}

func New(cfg config.Config, store cache.Store, primary Primary, fallback Fallback, logger zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		cache:    store,
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(s.handlePanic))
	router.Use(corsMiddleware())
	if s.cfg.APIKey != "" {
		router.Use(apiKeyAuth(s.cfg.APIKey))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "ofertas-api"})
	})

	router.GET("/search", s.handleSearch)
	router.POST("/search", s.handleSearch)
	router.GET("/suggestions", s.handleSuggestions)

	return router
}

// handlePanic keeps the contract of always answering JSON, even when a
// handler blows up.
func (s *Server) handlePanic(c *gin.Context, recovered any) {
	s.logger.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("handler panicked")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "Server error",
		"details": fmt.Sprint(recovered),
	})
}
