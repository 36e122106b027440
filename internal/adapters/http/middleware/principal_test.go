package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
	"github.com/jsamuelsen11/sprintboard/mocks"
)

func TestPrincipal(t *testing.T) {
	t.Parallel()

	ada := &user.User{ID: 7, ExternalID: "ada", Name: "Ada"}

	tests := []struct {
		name       string
		setup      func(*mocks.MockPrincipalResolver, *mocks.MockUserService)
		wantStatus int
		wantActor  bool
	}{
		{
			name: "resolved principal reaches handler",
			setup: func(r *mocks.MockPrincipalResolver, u *mocks.MockUserService) {
				r.EXPECT().Resolve(mock.Anything).Return(&user.Principal{Subject: "ada"}, nil)
				u.EXPECT().Resolve(mock.Anything, user.Principal{Subject: "ada"}).Return(ada, nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  true,
		},
		{
			name: "unauthenticated is 401",
			setup: func(r *mocks.MockPrincipalResolver, _ *mocks.MockUserService) {
				r.EXPECT().Resolve(mock.Anything).Return(nil, ports.ErrUnauthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "resolver failure is 500",
			setup: func(r *mocks.MockPrincipalResolver, _ *mocks.MockUserService) {
				r.EXPECT().Resolve(mock.Anything).Return(nil, domain.Internal(errors.New("down"), "session service unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "invalid principal is 400",
			setup: func(r *mocks.MockPrincipalResolver, u *mocks.MockUserService) {
				r.EXPECT().Resolve(mock.Anything).Return(&user.Principal{Subject: "ada", Email: "nope"}, nil)
				u.EXPECT().Resolve(mock.Anything, mock.Anything).
					Return(nil, &domain.ValidationError{Fields: map[string]string{"email": "invalid address"}})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := mocks.NewMockPrincipalResolver(t)
			users := mocks.NewMockUserService(t)
			tt.setup(resolver, users)

			var gotActor *user.User
			handler := middleware.Principal(resolver, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, _ = middleware.ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantActor && (gotActor == nil || gotActor.ID != ada.ID) {
				t.Errorf("actor = %+v, want user 7", gotActor)
			}
			if !tt.wantActor && gotActor != nil {
				t.Errorf("handler ran with actor %+v", gotActor)
			}
		})
	}
}

func TestActorFromContext_Missing(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if _, ok := middleware.ActorFromContext(r.Context()); ok {
		t.Error("ActorFromContext() ok = true without middleware")
	}
}
