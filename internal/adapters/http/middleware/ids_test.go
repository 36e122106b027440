package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
)

type seenIDs struct {
	request     string
	correlation string
}

func serveIDs(t *testing.T, headers map[string]string) (seenIDs, *httptest.ResponseRecorder) {
	t.Helper()

	var seen seenIDs
	h := middleware.RequestID()(middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen.request = middleware.RequestIDFromContext(r.Context())
		seen.correlation = middleware.CorrelationIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestIDs_Generated(t *testing.T) {
	t.Parallel()

	seen, rec := serveIDs(t, nil)

	parsed, err := uuid.Parse(seen.request)
	if err != nil || parsed.Version() != 4 {
		t.Fatalf("request id %q is not a v4 UUID", seen.request)
	}
	if seen.correlation != seen.request {
		t.Errorf("correlation id = %q, want request id %q", seen.correlation, seen.request)
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen.request {
		t.Errorf("X-Request-ID = %q, want %q", got, seen.request)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != seen.request {
		t.Errorf("X-Correlation-ID = %q, want %q", got, seen.request)
	}
}

func TestIDs_FromHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		headers     map[string]string
		wantRequest string // "" means generated
		wantCorr    string // "" means same as request id
	}{
		{
			name:        "both supplied",
			headers:     map[string]string{"X-Request-ID": "req-1", "X-Correlation-ID": "corr-1"},
			wantRequest: "req-1",
			wantCorr:    "corr-1",
		},
		{
			name:        "request id only",
			headers:     map[string]string{"X-Request-ID": "req-2"},
			wantRequest: "req-2",
		},
		{
			name:    "overlong request id replaced",
			headers: map[string]string{"X-Request-ID": strings.Repeat("a", 129)},
		},
		{
			name:    "request id with spaces replaced",
			headers: map[string]string{"X-Request-ID": "has space"},
		},
		{
			name:        "control characters in correlation id",
			headers:     map[string]string{"X-Request-ID": "req-3", "X-Correlation-ID": "bad\x01id"},
			wantRequest: "req-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, _ := serveIDs(t, tt.headers)

			if tt.wantRequest != "" && seen.request != tt.wantRequest {
				t.Errorf("request id = %q, want %q", seen.request, tt.wantRequest)
			}
			if tt.wantRequest == "" {
				if _, err := uuid.Parse(seen.request); err != nil {
					t.Errorf("request id = %q, want a generated UUID", seen.request)
				}
			}

			wantCorr := tt.wantCorr
			if wantCorr == "" {
				wantCorr = seen.request
			}
			if seen.correlation != wantCorr {
				t.Errorf("correlation id = %q, want %q", seen.correlation, wantCorr)
			}
		})
	}
}

func TestIDs_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		ids, _ := serveIDs(t, nil)
		if seen[ids.request] {
			t.Fatalf("duplicate request id %q", ids.request)
		}
		seen[ids.request] = true
	}
}

func TestIDs_EmptyContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := middleware.RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "r"), "c")
	if middleware.RequestIDFromContext(ctx) != "r" || middleware.CorrelationIDFromContext(ctx) != "c" {
		t.Error("With*ID did not store the ids")
	}
}
