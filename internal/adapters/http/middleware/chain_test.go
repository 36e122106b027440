package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/sprintboard/internal/app/context"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
	"github.com/jsamuelsen11/sprintboard/mocks"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var trace []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, ">"+name)
				next.ServeHTTP(w, r)
				trace = append(trace, "<"+name)
			})
		}
	}

	h := middleware.Chain(tag("a"), tag("b"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		trace = append(trace, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	want := []string{">a", ">b", "handler", "<b", "<a"}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	h := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

// apiGuard mirrors how the server guards /api/v1.
func apiGuard(resolver ports.PrincipalResolver, users ports.UserService) func(http.Handler) http.Handler {
	return middleware.Chain(middleware.AppContext(), middleware.Principal(resolver, users))
}

func TestChain_APIGuard(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockPrincipalResolver(t)
	users := mocks.NewMockUserService(t)
	resolver.EXPECT().Resolve(mock.Anything).Return(&user.Principal{Subject: "grace"}, nil).Once()
	users.EXPECT().Resolve(mock.Anything, user.Principal{Subject: "grace"}).
		Return(&user.User{ID: 3, ExternalID: "grace"}, nil).Once()

	var (
		rc    *appctx.RequestContext
		actor *user.User
	)
	h := apiGuard(resolver, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc = appctx.FromContext(r.Context())
		actor, _ = middleware.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rc == nil {
		t.Error("handler saw no RequestContext")
	}
	if actor == nil || actor.ID != 3 {
		t.Errorf("actor = %+v, want user 3", actor)
	}
}

func TestChain_APIGuardRejectsBeforeHandler(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockPrincipalResolver(t)
	users := mocks.NewMockUserService(t)
	resolver.EXPECT().Resolve(mock.Anything).Return(nil, ports.ErrUnauthenticated)

	h := apiGuard(resolver, users)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler reached without a principal")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
