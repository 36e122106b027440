package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// SprintHandler handles HTTP requests for sprints and the backlog.
type SprintHandler struct {
	svc ports.SprintService
}

// NewSprintHandler creates a new SprintHandler with the given service port.
func NewSprintHandler(svc ports.SprintService) *SprintHandler {
	return &SprintHandler{svc: svc}
}

// ListSprints handles GET /api/v1/boards/{boardId}/sprints.
func (h *SprintHandler) ListSprints(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	sprints, err := h.svc.ListSprints(r.Context(), q.actor, q.id(ParamBoardID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSprintListResponse(sprints))
}

// CreateSprint handles POST /api/v1/boards/{boardId}/sprints.
func (h *SprintHandler) CreateSprint(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	var req dto.CreateSprintRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.CreateSprint(r.Context(), q.actor, q.id(ParamBoardID), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToSprintResponse(s))
}

// UpdateSprint handles PATCH /api/v1/boards/{boardId}/sprints/{sprintId}.
func (h *SprintHandler) UpdateSprint(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamSprintID)
	if !ok {
		return
	}

	var req dto.UpdateSprintRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateSprint(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamSprintID), req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSprintResponse(s))
}

// DeleteSprint handles DELETE /api/v1/boards/{boardId}/sprints/{sprintId}.
func (h *SprintHandler) DeleteSprint(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamSprintID)
	if !ok {
		return
	}

	if err := h.svc.DeleteSprint(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamSprintID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSprintTickets handles GET /api/v1/boards/{boardId}/sprints/{sprintId}/tickets.
func (h *SprintHandler) ListSprintTickets(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamSprintID)
	if !ok {
		return
	}

	tickets, err := h.svc.ListSprintTickets(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamSprintID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketListResponse(tickets))
}

// BulkMoveTickets handles POST /api/v1/boards/{boardId}/sprints/{sprintId}/tickets.
// Per-ticket failures are reported in the body; the status is 200 as long
// as the request itself was acceptable.
func (h *SprintHandler) BulkMoveTickets(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamSprintID)
	if !ok {
		return
	}

	var req dto.BulkMoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.BulkMoveTickets(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamSprintID), req.TicketIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBulkMoveResponse(result))
}

// ListBacklog handles GET /api/v1/boards/{boardId}/backlog.
func (h *SprintHandler) ListBacklog(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	tickets, err := h.svc.ListBacklog(r.Context(), q.actor, q.id(ParamBoardID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTicketListResponse(tickets))
}
