package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "forbidden", err: domain.Forbidden("no access to this board"), wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "not found", err: domain.NotFound("ticket 4 not found"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "conflict", err: domain.Conflict("already exists"), wantStatus: http.StatusConflict, wantCode: "CONFLICT"},
		{name: "bad request", err: domain.BadRequest("bad parent"), wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{
			name:       "validation error",
			err:        &domain.ValidationError{Fields: map[string]string{"title": "required"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{name: "wrapped sentinel", err: fmt.Errorf("loading: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "internal", err: domain.Internal(errors.New("disk"), "store failure"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
		{name: "unknown error", err: errors.New("oops"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/boards/1", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Instance != "/api/v1/boards/1" {
				t.Errorf("Instance = %q", got.Instance)
			}
		})
	}
}

func TestNewErrorResponse_InternalDetailIsGeneric(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/boards", http.NoBody)
	err := domain.Internal(errors.New("pq: password authentication failed"), "listing boards")

	got := dto.NewErrorResponse(r, err)
	if got.Detail != dto.MsgInternal {
		t.Errorf("Detail = %q, want %q", got.Detail, dto.MsgInternal)
	}
}

func TestNewErrorResponse_DisplayableDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/boards/1/tickets/2", http.NoBody)
	got := dto.NewErrorResponse(r, domain.Forbidden("this action requires the %s role", "ADMIN"))

	if got.Detail != "this action requires the ADMIN role" {
		t.Errorf("Detail = %q", got.Detail)
	}
}

func TestNewErrorResponse_ValidationFields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/boards", http.NoBody)
	err := &domain.ValidationError{Fields: map[string]string{"name": "required", "color": "invalid"}}

	got := dto.NewErrorResponse(r, err)
	if len(got.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(got.Errors))
	}
	if got.Errors[0].Location != "body.color" || got.Errors[1].Location != "body.name" {
		t.Errorf("Errors = %+v, want sorted by location", got.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/boards/9", http.NoBody)
	dto.WriteErrorResponse(rec, r, domain.Forbidden("no access to this board"))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Detail != "no access to this board" || body.Code != "FORBIDDEN" {
		t.Errorf("body = %+v", body)
	}
}

func TestWriteUnauthorized(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/me", http.NoBody)
	dto.WriteUnauthorized(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("missing WWW-Authenticate header")
	}
	if !strings.Contains(rec.Body.String(), "UNAUTHENTICATED") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestWriteTimeout(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/boards/1/sprints/2/tickets", http.NoBody)
	dto.WriteTimeout(rec, r)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != "TIMEOUT" || body.Instance != "/api/v1/boards/1/sprints/2/tickets" {
		t.Errorf("body = %+v", body)
	}
}

func TestNewErrorResponse_LocationPrefixes(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/boards/x/tickets?status=NOPE", http.NoBody)
	resp := dto.NewErrorResponse(r, &domain.ValidationError{Fields: map[string]string{
		"path.boardId": "must be a positive integer",
		"query.status": "unknown status",
		"title":        domain.MsgRequired,
	}})

	want := []string{"body.title", "path.boardId", "query.status"}
	if len(resp.Errors) != len(want) {
		t.Fatalf("errors = %+v, want %d entries", resp.Errors, len(want))
	}
	for i, loc := range want {
		if resp.Errors[i].Location != loc {
			t.Errorf("errors[%d].Location = %q, want %q", i, resp.Errors[i].Location, loc)
		}
	}
}
