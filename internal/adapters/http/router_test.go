package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/sprintboard/internal/adapters/http"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
	"github.com/jsamuelsen11/sprintboard/mocks"
)

type testRouter struct {
	handler  http.Handler
	boards   *mocks.MockBoardService
	registry *mocks.MockHealthRegistry
	resolver *mocks.MockPrincipalResolver
	users    *mocks.MockUserService
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) *testRouter {
	t.Helper()

	tr := &testRouter{
		boards:   mocks.NewMockBoardService(t),
		registry: mocks.NewMockHealthRegistry(t),
		resolver: mocks.NewMockPrincipalResolver(t),
		users:    mocks.NewMockUserService(t),
	}
	h := adapthttp.Handlers{
		Health: handlers.NewHealthHandler(tr.registry),
		User:   handlers.NewUserHandler(),
		Board:  handlers.NewBoardHandler(tr.boards),
		Sprint: handlers.NewSprintHandler(mocks.NewMockSprintService(t)),
		Ticket: handlers.NewTicketHandler(mocks.NewMockTicketService(t)),
	}
	guard := middleware.Chain(middleware.AppContext(), middleware.Principal(tr.resolver, tr.users))
	tr.handler = adapthttp.NewRouter(h, guard, middlewares...)
	return tr
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/me"},
		{http.MethodGet, "/api/v1/boards"},
		{http.MethodPost, "/api/v1/boards"},
		{http.MethodGet, "/api/v1/boards/{boardId}"},
		{http.MethodPatch, "/api/v1/boards/{boardId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}"},
		{http.MethodGet, "/api/v1/boards/{boardId}/members"},
		{http.MethodPost, "/api/v1/boards/{boardId}/members"},
		{http.MethodPatch, "/api/v1/boards/{boardId}/members/{userId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/members/{userId}"},
		{http.MethodGet, "/api/v1/boards/{boardId}/labels"},
		{http.MethodPost, "/api/v1/boards/{boardId}/labels"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/labels/{labelId}"},
		{http.MethodGet, "/api/v1/boards/{boardId}/backlog"},
		{http.MethodGet, "/api/v1/boards/{boardId}/sprints"},
		{http.MethodPost, "/api/v1/boards/{boardId}/sprints"},
		{http.MethodPatch, "/api/v1/boards/{boardId}/sprints/{sprintId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/sprints/{sprintId}"},
		{http.MethodGet, "/api/v1/boards/{boardId}/sprints/{sprintId}/tickets"},
		{http.MethodPost, "/api/v1/boards/{boardId}/sprints/{sprintId}/tickets"},
		{http.MethodGet, "/api/v1/boards/{boardId}/tickets"},
		{http.MethodPost, "/api/v1/boards/{boardId}/tickets"},
		{http.MethodGet, "/api/v1/boards/{boardId}/tickets/{ticketId}"},
		{http.MethodPatch, "/api/v1/boards/{boardId}/tickets/{ticketId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/tickets/{ticketId}"},
		{http.MethodPut, "/api/v1/boards/{boardId}/tickets/{ticketId}/sprint"},
		{http.MethodPut, "/api/v1/boards/{boardId}/tickets/{ticketId}/parent"},
		{http.MethodPost, "/api/v1/boards/{boardId}/tickets/{ticketId}/assignees/{userId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/tickets/{ticketId}/assignees/{userId}"},
		{http.MethodPost, "/api/v1/boards/{boardId}/tickets/{ticketId}/reviewers/{userId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/tickets/{ticketId}/reviewers/{userId}"},
		{http.MethodPost, "/api/v1/boards/{boardId}/tickets/{ticketId}/labels/{labelId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/tickets/{ticketId}/labels/{labelId}"},
		{http.MethodGet, "/api/v1/boards/{boardId}/tickets/{ticketId}/comments"},
		{http.MethodPost, "/api/v1/boards/{boardId}/tickets/{ticketId}/comments"},
		{http.MethodPatch, "/api/v1/boards/{boardId}/tickets/{ticketId}/comments/{commentId}"},
		{http.MethodDelete, "/api/v1/boards/{boardId}/tickets/{ticketId}/comments/{commentId}"},
	}

	chiRouter, ok := tr.handler.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

// signIn makes the resolver accept the next request as user 7.
func (tr *testRouter) signIn() {
	p := &user.Principal{Subject: "ada"}
	tr.resolver.EXPECT().Resolve(mock.Anything).Return(p, nil).Once()
	tr.users.EXPECT().Resolve(mock.Anything, *p).Return(&user.User{ID: 7, ExternalID: "ada"}, nil).Once()
}

func TestRouter_GlobalMiddlewareWrapsEveryRoute(t *testing.T) {
	t.Parallel()

	var seen []string
	record := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	tr := newTestRouter(t, record)
	for _, path := range []string{"/health/live", "/nope"} {
		tr.handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	if len(seen) != 2 {
		t.Errorf("middleware saw %v, want both requests", seen)
	}
}

func TestRouter_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		path     string
		setup    func(tr *testRouter)
		wantCode int
		wantKind string
	}{
		{
			name:     "probe needs no principal",
			method:   http.MethodGet,
			path:     "/health/live",
			wantCode: http.StatusOK,
		},
		{
			name:   "api without principal",
			method: http.MethodGet,
			path:   "/api/v1/boards",
			setup: func(tr *testRouter) {
				tr.resolver.EXPECT().Resolve(mock.Anything).Return(nil, ports.ErrUnauthenticated)
			},
			wantCode: http.StatusUnauthorized,
			wantKind: "UNAUTHENTICATED",
		},
		{
			name:   "list boards",
			method: http.MethodGet,
			path:   "/api/v1/boards",
			setup: func(tr *testRouter) {
				tr.signIn()
				tr.boards.EXPECT().ListBoards(mock.Anything, int64(7)).Return([]board.Board{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "non-member is forbidden",
			method: http.MethodGet,
			path:   "/api/v1/boards/99",
			setup: func(tr *testRouter) {
				tr.signIn()
				tr.boards.EXPECT().GetBoard(mock.Anything, int64(7), int64(99)).
					Return(nil, domain.Forbidden("not a member of board 99"))
			},
			wantCode: http.StatusForbidden,
			wantKind: "FORBIDDEN",
		},
		{
			name:     "unknown path",
			method:   http.MethodGet,
			path:     "/nonexistent",
			wantCode: http.StatusNotFound,
			wantKind: "NOT_FOUND",
		},
		{
			name:     "wrong method",
			method:   http.MethodPut,
			path:     "/health/live",
			wantCode: http.StatusMethodNotAllowed,
			wantKind: "METHOD_NOT_ALLOWED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(tr)
			}

			rec := httptest.NewRecorder()
			tr.handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantKind == "" {
				return
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			var problem dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
				t.Fatalf("decoding problem: %v", err)
			}
			if problem.Code != tt.wantKind {
				t.Errorf("code = %q, want %q", problem.Code, tt.wantKind)
			}
		})
	}
}
