package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        config.CORSConfig
		origin     string
		wantOrigin string
	}{
		{
			name:       "allowed origin",
			cfg:        config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}, MaxAge: 300},
			origin:     "http://localhost:3000",
			wantOrigin: "http://localhost:3000",
		},
		{
			name:   "other origin",
			cfg:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			origin: "http://evil.example",
		},
		{
			name:   "disabled",
			origin: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.CORS(tt.cfg, "X-User-ID")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody)
			req.Header.Set("Origin", tt.origin)
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	called := false
	handler := middleware.CORS(config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}, "X-User-ID")(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/boards/1", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "X-User-ID")
	handler.ServeHTTP(rec, req)

	if called {
		t.Error("preflight reached the handler")
	}
	if rec.Header().Get("Access-Control-Allow-Methods") != http.MethodPatch {
		t.Errorf("Access-Control-Allow-Methods = %q, want PATCH", rec.Header().Get("Access-Control-Allow-Methods"))
	}
}
