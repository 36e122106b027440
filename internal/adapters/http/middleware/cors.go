package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
)

// CORS returns middleware answering cross-origin requests from the configured
// origins. extraHeaders are allowed on top of the standard set, e.g. the
// principal header in header auth mode. With no origins configured it is a
// pass-through.
func CORS(cfg config.CORSConfig, extraHeaders ...string) func(http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: append([]string{
			"Accept", "Authorization", "Content-Type", headerRequestID, headerCorrelationID,
		}, extraHeaders...),
		ExposedHeaders:   []string{headerRequestID, headerCorrelationID},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	})
}
