package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 10

// handleSuggestions matches the term fuzzily against the catalog titles and
// returns the closest ones, for autocomplete boxes.
func (s *Server) handleSuggestions(c *gin.Context) {
	term := strings.TrimSpace(c.Query("term"))
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing term parameter",
			"example": "/suggestions?term=shirt",
		})
		return
	}

	titles, err := s.fallback.Titles(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("catalog titles unavailable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "details": err.Error()})
		return
	}

	ranks := fuzzy.RankFindNormalizedFold(term, titles)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, r.Target)
	}

	c.JSON(http.StatusOK, gin.H{
		"term":        term,
		"count":       len(suggestions),
		"suggestions": suggestions,
	})
}
