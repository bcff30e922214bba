package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ofertas-api/internal/cache"
)

func TestAPIKeyGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.APIKey = "s3cret"
	router := New(cfg, cache.NewMemory(), &stubPrimary{}, &stubFallback{}, zerolog.Nop()).Router()

	send := func(key string, path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("", "/search?query=x"); code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", code)
	}
	if code := send("wrong", "/search?query=x"); code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", code)
	}
	if code := send("s3cret", "/health"); code != http.StatusOK {
		t.Errorf("health with key: status = %d, want 200", code)
	}
	if code := send("", "/health"); code != http.StatusOK {
		t.Errorf("health stays open: status = %d, want 200", code)
	}
}

func TestAPIKeyGateDisabledByDefault(t *testing.T) {
	router := testRouter(t, testConfig(), &stubPrimary{}, &stubFallback{offers: nil})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 without any key", w.Code)
	}
}
