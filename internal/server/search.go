package server

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ofertas-api/internal/offer"
)

type searchRequest struct {
	Query string `json:"query"`
}

// handleSearch is the aggregation endpoint. Per request: validate, cache
// check, primary attempt, fallback when the primary path yields nothing
// usable, unconditional cache write, respond.
func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" && c.Request.Method == http.MethodPost {
		var body searchRequest
		// An absent body is just a missing query; broken JSON is a server error.
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			s.logger.Error().Err(err).Msg("unreadable request body")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "details": err.Error()})
			return
		}
		query = body.Query
	}

	query = strings.TrimSpace(query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter"})
		return
	}

	key := strings.ToLower(query)
	if entry, ok := s.cache.Get(key); ok && time.Since(entry.Timestamp) < s.cfg.CacheTTL {
		c.JSON(http.StatusOK, gin.H{"source": "cache", "results": entry.Data})
		return
	}

	ctx := c.Request.Context()
	results := make([]offer.Offer, 0)

	if s.cfg.SerpAPIKey != "" {
		raw, err := s.primary.Search(ctx, query)
		if err != nil {
			// Expected failure mode (rate limits, quota); the catalog covers it.
			s.logger.Warn().Err(err).Str("query", query).Msg("primary source failed, using fallback")
		}
		for _, item := range raw {
			o := offer.Normalize(item)
			if o.Price == nil || o.Link == nil {
				continue
			}
			results = append(results, o)
		}
		offer.SortByPrice(results)
	}

	if len(results) == 0 {
		fromCatalog, err := s.fallback.Search(ctx, query)
		if err != nil {
			s.logger.Error().Err(err).Str("query", query).Msg("fallback source failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "details": err.Error()})
			return
		}
		offer.SortByPrice(fromCatalog)
		results = fromCatalog
	}
	if results == nil {
		results = make([]offer.Offer, 0)
	}

	// Empty lists are cached too, so queries with no results don't hammer
	// the upstream on every reload.
	s.cache.Set(key, results)

	source := "fallback"
	if s.cfg.SerpAPIKey != "" {
		source = "serpapi"
	}
	c.JSON(http.StatusOK, gin.H{"source": source, "results": results})
}
