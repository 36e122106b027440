package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/mocks"
)

func newTicketHandler(t *testing.T) (*handlers.TicketHandler, *mocks.MockTicketService) {
	t.Helper()
	svc := mocks.NewMockTicketService(t)
	return handlers.NewTicketHandler(svc), svc
}

var ticketParams = map[string]string{handlers.ParamBoardID: "1", handlers.ParamTicketID: "11"}

func ticketParamsWith(param, value string) map[string]string {
	p := map[string]string{param: value}
	for k, v := range ticketParams {
		p[k] = v
	}
	return p
}

// --- ListTickets ---

func TestListTickets_Filters(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().ListTickets(mock.Anything, testActorID, int64(1), mock.MatchedBy(func(f ticket.Filter) bool {
		return f.Status == ticket.StatusInReview &&
			f.Type == ticket.TypeHotfix &&
			f.AssigneeID != nil && *f.AssigneeID == 9 &&
			f.LabelID != nil && *f.LabelID == 2 &&
			f.SprintID == nil && !f.Backlog
	})).Return([]ticket.Ticket{validTicket()}, nil)

	rec := httptest.NewRecorder()
	h.ListTickets(rec, newRequest(t, http.MethodGet,
		"/api/v1/boards/1/tickets?status=IN_REVIEW&type=HOTFIX&assignee_id=9&label_id=2", nil, boardParams))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.TicketListResponse](t, rec); resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListTickets_InvalidFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{name: "status", query: "status=BLOCKED", wantField: "status"},
		{name: "type", query: "type=EPIC", wantField: "type"},
		{name: "sprint id", query: "sprint_id=-1", wantField: "sprint_id"},
		{name: "backlog", query: "backlog=maybe", wantField: "backlog"},
		{name: "parent id", query: "parent_id=x", wantField: "parent_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTicketHandler(t)

			rec := httptest.NewRecorder()
			h.ListTickets(rec, newRequest(t, http.MethodGet, "/api/v1/boards/1/tickets?"+tt.query, nil, boardParams))

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Location != "query."+tt.wantField {
				t.Errorf("Errors = %+v, want one error at query.%s", resp.Errors, tt.wantField)
			}
		})
	}
}

// --- CreateTicket / GetTicket / UpdateTicket / DeleteTicket ---

func TestCreateTicket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockTicketService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"title":"Fix login","type":"FIX"}`,
			setup: func(svc *mocks.MockTicketService) {
				created := validTicket()
				created.Type = ticket.TypeFix
				svc.EXPECT().CreateTicket(mock.Anything, testActorID, int64(1), mock.MatchedBy(func(tk *ticket.Ticket) bool {
					return tk.Title == "Fix login" && tk.Type == ticket.TypeFix
				})).Return(&created, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "viewer cannot create",
			body: `{"title":"Fix login"}`,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().CreateTicket(mock.Anything, testActorID, int64(1), mock.AnythingOfType("*ticket.Ticket")).
					Return(nil, domain.Forbidden("this action requires the MEMBER role"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing title",
			body:       `{"type":"ISSUE"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown type",
			body:       `{"title":"x","type":"EPIC"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTicketHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			h.CreateTicket(rec, newRequest(t, http.MethodPost, "/api/v1/boards/1/tickets", tt.body, boardParams))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestGetTicket_EmptyCollectionsEncodeAsArrays(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	tk := validTicket()
	svc.EXPECT().GetTicket(mock.Anything, testActorID, int64(1), int64(11)).Return(&tk, nil)

	rec := httptest.NewRecorder()
	h.GetTicket(rec, newRequest(t, http.MethodGet, "/api/v1/boards/1/tickets/11", nil, ticketParams))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	for _, key := range []string{"assignee_ids", "reviewer_ids", "labels"} {
		if _, ok := resp[key].([]any); !ok {
			t.Errorf("%s = %v, want a JSON array", key, resp[key])
		}
	}
}

func TestUpdateTicket_DisallowedTransition(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().UpdateTicket(mock.Anything, testActorID, int64(1), int64(11), mock.MatchedBy(func(p ticket.Patch) bool {
		return p.Status != nil && *p.Status == ticket.StatusInReview
	})).Return(nil, domain.BadRequest("cannot move a ticket from TODO to IN_REVIEW"))

	rec := httptest.NewRecorder()
	h.UpdateTicket(rec, newRequest(t, http.MethodPatch, "/api/v1/boards/1/tickets/11",
		`{"status":"IN_REVIEW"}`, ticketParams))

	requireStatus(t, rec, http.StatusBadRequest)
	if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Code != "BAD_REQUEST" {
		t.Errorf("Code = %q, want BAD_REQUEST", resp.Code)
	}
}

func TestDeleteTicket_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().DeleteTicket(mock.Anything, testActorID, int64(1), int64(11)).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteTicket(rec, newRequest(t, http.MethodDelete, "/api/v1/boards/1/tickets/11", nil, ticketParams))

	requireStatus(t, rec, http.StatusNoContent)
}

// --- MoveTicket / SetParent ---

func TestMoveTicket(t *testing.T) {
	t.Parallel()

	sprintID := int64(3)
	tests := []struct {
		name     string
		body     string
		sprintID *int64
	}{
		{name: "into sprint", body: `{"sprint_id":3}`, sprintID: &sprintID},
		{name: "to backlog", body: `{"sprint_id":null}`, sprintID: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTicketHandler(t)

			moved := validTicket()
			moved.SprintID = tt.sprintID
			svc.EXPECT().MoveTicket(mock.Anything, testActorID, int64(1), int64(11), tt.sprintID).Return(&moved, nil)

			rec := httptest.NewRecorder()
			h.MoveTicket(rec, newRequest(t, http.MethodPut, "/api/v1/boards/1/tickets/11/sprint", tt.body, ticketParams))

			requireStatus(t, rec, http.StatusOK)
		})
	}
}

func TestSetParent_Cycle(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	parentID := int64(12)
	svc.EXPECT().SetParent(mock.Anything, testActorID, int64(1), int64(11), &parentID).
		Return(nil, domain.BadRequest("ticket 12 is a descendant of ticket 11"))

	rec := httptest.NewRecorder()
	h.SetParent(rec, newRequest(t, http.MethodPut, "/api/v1/boards/1/tickets/11/parent",
		`{"parent_id":12}`, ticketParams))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Links ---

func TestLinkOperations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		param      string
		setup      func(*mocks.MockTicketService)
		call       func(*handlers.TicketHandler) http.HandlerFunc
		wantStatus int
	}{
		{
			name:  "add assignee",
			param: handlers.ParamUserID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().AddAssignee(mock.Anything, testActorID, int64(1), int64(11), int64(9)).Return(nil)
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.AddAssignee },
			wantStatus: http.StatusNoContent,
		},
		{
			name:  "duplicate assignee",
			param: handlers.ParamUserID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().AddAssignee(mock.Anything, testActorID, int64(1), int64(11), int64(9)).
					Return(domain.Conflict("user 9 is already assigned"))
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.AddAssignee },
			wantStatus: http.StatusConflict,
		},
		{
			name:  "remove assignee",
			param: handlers.ParamUserID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().RemoveAssignee(mock.Anything, testActorID, int64(1), int64(11), int64(9)).Return(nil)
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.RemoveAssignee },
			wantStatus: http.StatusNoContent,
		},
		{
			name:  "add reviewer who is not a member",
			param: handlers.ParamUserID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().AddReviewer(mock.Anything, testActorID, int64(1), int64(11), int64(9)).
					Return(domain.BadRequest("user 9 is not a member of this board"))
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.AddReviewer },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "remove reviewer",
			param: handlers.ParamUserID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().RemoveReviewer(mock.Anything, testActorID, int64(1), int64(11), int64(9)).Return(nil)
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.RemoveReviewer },
			wantStatus: http.StatusNoContent,
		},
		{
			name:  "attach label",
			param: handlers.ParamLabelID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().AttachLabel(mock.Anything, testActorID, int64(1), int64(11), int64(9)).Return(nil)
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.AttachLabel },
			wantStatus: http.StatusNoContent,
		},
		{
			name:  "detach missing label",
			param: handlers.ParamLabelID,
			setup: func(svc *mocks.MockTicketService) {
				svc.EXPECT().DetachLabel(mock.Anything, testActorID, int64(1), int64(11), int64(9)).
					Return(domain.NotFound("label 9 not found"))
			},
			call:       func(h *handlers.TicketHandler) http.HandlerFunc { return h.DetachLabel },
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTicketHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			tt.call(h)(rec, newRequest(t, http.MethodPost, "/", nil, ticketParamsWith(tt.param, "9")))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestLinkOperations_BadOtherID(t *testing.T) {
	t.Parallel()
	h, _ := newTicketHandler(t)

	rec := httptest.NewRecorder()
	h.AddAssignee(rec, newRequest(t, http.MethodPost, "/", nil, ticketParamsWith(handlers.ParamUserID, "me")))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Comments ---

func TestAddComment_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().AddComment(mock.Anything, testActorID, int64(1), int64(11), "looks good").
		Return(&ticket.Comment{ID: 4, TicketID: 11, AuthorID: testActorID, Body: "looks good", CreatedAt: testTime, UpdatedAt: testTime}, nil)

	rec := httptest.NewRecorder()
	h.AddComment(rec, newRequest(t, http.MethodPost, "/api/v1/boards/1/tickets/11/comments",
		dto.CommentRequest{Body: "looks good"}, ticketParams))

	requireStatus(t, rec, http.StatusCreated)
	if resp := decodeJSON[dto.CommentResponse](t, rec); resp.AuthorID != testActorID {
		t.Errorf("AuthorID = %d, want %d", resp.AuthorID, testActorID)
	}
}

func TestListComments_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().ListComments(mock.Anything, testActorID, int64(1), int64(11)).
		Return([]ticket.Comment{{ID: 4, TicketID: 11, AuthorID: 9, Body: "hi", CreatedAt: testTime, UpdatedAt: testTime}}, nil)

	rec := httptest.NewRecorder()
	h.ListComments(rec, newRequest(t, http.MethodGet, "/api/v1/boards/1/tickets/11/comments", nil, ticketParams))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.CommentListResponse](t, rec); resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestEditComment_NotAuthor(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().EditComment(mock.Anything, testActorID, int64(1), int64(11), int64(4), "edited").
		Return(nil, domain.Forbidden("only the author can edit a comment"))

	rec := httptest.NewRecorder()
	h.EditComment(rec, newRequest(t, http.MethodPatch, "/api/v1/boards/1/tickets/11/comments/4",
		dto.CommentRequest{Body: "edited"}, ticketParamsWith(handlers.ParamCommentID, "4")))

	requireStatus(t, rec, http.StatusForbidden)
}

func TestDeleteComment_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTicketHandler(t)

	svc.EXPECT().DeleteComment(mock.Anything, testActorID, int64(1), int64(11), int64(4)).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteComment(rec, newRequest(t, http.MethodDelete, "/api/v1/boards/1/tickets/11/comments/4",
		nil, ticketParamsWith(handlers.ParamCommentID, "4")))

	requireStatus(t, rec, http.StatusNoContent)
}
