package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// resultLimit caps how many shopping results we ask the provider for.
const resultLimit = "20"

// resultFields are the envelope keys the provider has been seen using for the
// shopping results block, tried in order.
var resultFields = []string{"shopping_results", "inline_shopping_results"}

// SerpClient llama al motor google_shopping de SerpAPI y devuelve los
// registros crudos; la normalización vive en el paquete offer.
type SerpClient struct {
	baseURL string
	apiKey  string
	gl      string
	hl      string
	logger  zerolog.Logger
}

func NewSerpClient(baseURL, apiKey, gl, hl string, logger zerolog.Logger) *SerpClient {
	return &SerpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		gl:      gl,
		hl:      hl,
		logger:  logger,
	}
}

// Search issues a single provider request for the query. No retries: a failed
// call is handled by the caller's fallback policy, not here.
func (s *SerpClient) Search(ctx context.Context, query string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("engine", "google_shopping")
	params.Set("q", query)
	params.Set("hl", s.hl)
	params.Set("gl", s.gl)
	params.Set("num", resultLimit)
	params.Set("api_key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	s.logger.Debug().Str("query", query).Msg("fetching shopping results")
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	for _, field := range resultFields {
		list, ok := envelope[field].([]any)
		if !ok {
			continue
		}
		results := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				results = append(results, m)
			}
		}
		s.logger.Debug().Int("count", len(results)).Str("field", field).Msg("shopping results received")
		return results, nil
	}

	return nil, nil
}
