package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// TicketHandler handles HTTP requests for tickets, their links and comments.
type TicketHandler struct {
	svc ports.TicketService
}

// NewTicketHandler creates a new TicketHandler with the given service port.
func NewTicketHandler(svc ports.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// ListTickets handles GET /api/v1/boards/{boardId}/tickets.
func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	filter, err := parseTicketFilter(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tickets, err := h.svc.ListTickets(r.Context(), q.actor, q.id(ParamBoardID), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketListResponse(tickets))
}

// CreateTicket handles POST /api/v1/boards/{boardId}/tickets.
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTicket(r.Context(), q.actor, q.id(ParamBoardID), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTicketResponse(t))
}

// GetTicket handles GET /api/v1/boards/{boardId}/tickets/{ticketId}.
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	t, err := h.svc.GetTicket(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketResponse(t))
}

// UpdateTicket handles PATCH /api/v1/boards/{boardId}/tickets/{ticketId}.
func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateTicket(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketResponse(t))
}

// DeleteTicket handles DELETE /api/v1/boards/{boardId}/tickets/{ticketId}.
func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	if err := h.svc.DeleteTicket(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveTicket handles PUT /api/v1/boards/{boardId}/tickets/{ticketId}/sprint.
func (h *TicketHandler) MoveTicket(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	var req dto.MoveTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.MoveTicket(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), req.SprintID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketResponse(t))
}

// SetParent handles PUT /api/v1/boards/{boardId}/tickets/{ticketId}/parent.
func (h *TicketHandler) SetParent(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	var req dto.SetParentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.SetParent(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), req.ParentID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketResponse(t))
}

// linkFunc is the shape shared by the ticket join-row operations.
type linkFunc func(ctx context.Context, actor, boardID, ticketID, otherID int64) error

// link adapts a join-row operation keyed by otherParam into a handler that
// answers 204 on success.
func link(fn linkFunc, otherParam string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, ok := scope(w, r, ParamBoardID, ParamTicketID, otherParam)
		if !ok {
			return
		}

		if err := fn(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), q.id(otherParam)); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddAssignee handles POST .../tickets/{ticketId}/assignees/{userId}.
func (h *TicketHandler) AddAssignee(w http.ResponseWriter, r *http.Request) {
	link(h.svc.AddAssignee, ParamUserID)(w, r)
}

// RemoveAssignee handles DELETE .../tickets/{ticketId}/assignees/{userId}.
func (h *TicketHandler) RemoveAssignee(w http.ResponseWriter, r *http.Request) {
	link(h.svc.RemoveAssignee, ParamUserID)(w, r)
}

// AddReviewer handles POST .../tickets/{ticketId}/reviewers/{userId}.
func (h *TicketHandler) AddReviewer(w http.ResponseWriter, r *http.Request) {
	link(h.svc.AddReviewer, ParamUserID)(w, r)
}

// RemoveReviewer handles DELETE .../tickets/{ticketId}/reviewers/{userId}.
func (h *TicketHandler) RemoveReviewer(w http.ResponseWriter, r *http.Request) {
	link(h.svc.RemoveReviewer, ParamUserID)(w, r)
}

// AttachLabel handles POST .../tickets/{ticketId}/labels/{labelId}.
func (h *TicketHandler) AttachLabel(w http.ResponseWriter, r *http.Request) {
	link(h.svc.AttachLabel, ParamLabelID)(w, r)
}

// DetachLabel handles DELETE .../tickets/{ticketId}/labels/{labelId}.
func (h *TicketHandler) DetachLabel(w http.ResponseWriter, r *http.Request) {
	link(h.svc.DetachLabel, ParamLabelID)(w, r)
}

// ListComments handles GET .../tickets/{ticketId}/comments.
func (h *TicketHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	comments, err := h.svc.ListComments(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCommentListResponse(comments))
}

// AddComment handles POST .../tickets/{ticketId}/comments.
func (h *TicketHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), req.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToCommentResponse(c))
}

// EditComment handles PATCH .../tickets/{ticketId}/comments/{commentId}.
func (h *TicketHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID, ParamCommentID)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.EditComment(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), q.id(ParamCommentID), req.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCommentResponse(c))
}

// DeleteComment handles DELETE .../tickets/{ticketId}/comments/{commentId}.
func (h *TicketHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamTicketID, ParamCommentID)
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamTicketID), q.id(ParamCommentID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
