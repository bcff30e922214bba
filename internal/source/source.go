// Package source contains the outbound adapters: the shopping-search
// provider (primary) and the fixed catalog used as fallback.
package source

import (
	"fmt"
	"net/http"
	"time"
)

// httpClient es un cliente HTTP compartido por ambos adaptadores.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:       10,
		IdleConnTimeout:    30 * time.Second,
		DisableCompression: false,
	},
}

// UpstreamError reports a non-success response from an upstream source,
// keeping the status and whatever body text came back.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.Status, e.Body)
}
