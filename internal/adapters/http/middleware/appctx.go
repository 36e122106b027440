package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/sprintboard/internal/app/context"
)

// AppContext opens the memoization scope for one request. Services cache the
// caller's board membership there, so a request looks it up at most once per
// board and the next request sees any role change. An existing scope is
// kept, which makes the middleware safe to mount twice on one path.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if appctx.FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), appctx.New())))
		})
	}
}
