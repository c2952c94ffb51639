package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware(t *testing.T) {
	middleware := NewCORSMiddleware([]string{"http://localhost:3000"})

	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("Allowed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		middleware.ServeHTTP(rec, req, next)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Expected origin echoed, got %q", got)
		}
	})

	t.Run("Unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		middleware.ServeHTTP(rec, req, next)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no CORS header, got %q", got)
		}
	})

	t.Run("Preflight is answered without reaching the handler", func(t *testing.T) {
		handlerCalled := false
		req := httptest.NewRequest("OPTIONS", "/api/upload", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		middleware.ServeHTTP(rec, req, func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		if handlerCalled {
			t.Error("Expected preflight to short-circuit the chain")
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("Expected Allow-Methods header on preflight")
		}
	})
}
