package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

type actorKey struct{}

// WithActor returns a new context carrying the authenticated local user.
func WithActor(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, actorKey{}, u)
}

// ActorFromContext returns the authenticated local user, if any.
func ActorFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(actorKey{}).(*user.User)
	return u, ok && u != nil
}

// Principal returns middleware that authenticates the caller. The resolver
// yields the external principal, which users maps to a local user created
// on first sight. Requests without a resolvable principal get a 401 and
// never reach a handler. The user id is added to the request logger.
func Principal(resolver ports.PrincipalResolver, users ports.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, err := resolver.Resolve(r)
			if err != nil {
				if errors.Is(err, ports.ErrUnauthenticated) {
					logging.FromContext(ctx).DebugContext(ctx, "unauthenticated request", slog.Any("error", err))
					dto.WriteUnauthorized(w, r)
					return
				}
				dto.WriteErrorResponse(w, r, err)
				return
			}

			u, err := users.Resolve(ctx, *p)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			logger := logging.FromContext(ctx).With(slog.Int64("user_id", u.ID))
			ctx = logging.WithLogger(WithActor(ctx, u), logger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
