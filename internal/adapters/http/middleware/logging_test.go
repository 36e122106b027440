package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
)

// logLines decodes JSON log output into one map per line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		lines = append(lines, m)
	}
	return lines
}

func jsonLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogging_CompletionLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusCreated, wantLevel: "INFO"},
		{name: "client error", status: http.StatusForbidden, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			r := chi.NewRouter()
			r.Use(middleware.RequestID(), middleware.Logging(jsonLogger(&buf, slog.LevelInfo)))
			r.Post("/api/v1/boards/{boardId}/labels", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("{}"))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/5/labels", http.NoBody)
			req.Header.Set("X-Request-ID", "req-77")
			r.ServeHTTP(httptest.NewRecorder(), req)

			lines := logLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d log lines, want 1 at INFO", len(lines))
			}
			got := lines[0]
			checks := map[string]any{
				"msg":        "request completed",
				"level":      tt.wantLevel,
				"route":      "/api/v1/boards/{boardId}/labels",
				"path":       "/api/v1/boards/5/labels",
				"status":     float64(tt.status),
				"bytes":      float64(2),
				"request_id": "req-77",
			}
			for k, want := range checks {
				if got[k] != want {
					t.Errorf("%s = %v, want %v", k, got[k], want)
				}
			}
			if _, ok := got["duration"]; !ok {
				t.Error("missing duration")
			}
		})
	}
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(jsonLogger(&buf, slog.LevelDebug))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer top-secret")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "top-secret") {
		t.Fatalf("token leaked into logs: %s", buf.String())
	}
	lines := logLines(t, &buf)
	if len(lines) != 2 || lines[0]["msg"] != "request started" {
		t.Fatalf("lines = %v, want request started then completed", lines)
	}
	headers, _ := lines[0]["headers"].(map[string]any)
	if headers["Authorization"] != "[REDACTED]" {
		t.Errorf("headers = %v, want Authorization redacted", headers)
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "from handler")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody)
	req.Header.Set("X-Request-ID", "req-1")
	req.Header.Set("X-Correlation-ID", "corr-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["msg"] != "from handler" || lines[0]["request_id"] != "req-1" || lines[0]["correlation_id"] != "corr-1" {
		t.Errorf("handler line = %v, want ids attached", lines[0])
	}
}
