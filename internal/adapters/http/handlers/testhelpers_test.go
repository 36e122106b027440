package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
)

const testActorID int64 = 7

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds an authenticated request for testActorID. A string body
// is sent as is; any other non-nil body is JSON-encoded.
func newRequest(t *testing.T, method, target string, body any, params map[string]string) *http.Request {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		rd = jsonBody(t, b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(middleware.WithActor(req.Context(), &user.User{
		ID:         testActorID,
		ExternalID: "ada",
		Name:       "Ada",
		CreatedAt:  testTime,
	}))
	return withChiParams(req, params)
}

func validBoard() board.Board {
	return board.Board{ID: 1, Name: "Platform", OwnerID: testActorID, CreatedAt: testTime, UpdatedAt: testTime}
}

func validSprint() board.Sprint {
	return board.Sprint{ID: 3, BoardID: 1, Name: "Sprint 1", Status: board.SprintPlanned, CreatedAt: testTime, UpdatedAt: testTime}
}

func validTicket() ticket.Ticket {
	return ticket.Ticket{
		ID:        11,
		BoardID:   1,
		Type:      ticket.TypeIssue,
		Status:    ticket.StatusTodo,
		Title:     "Fix login",
		CreatorID: testActorID,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
