package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// BoardHandler handles HTTP requests for boards, their members and labels.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListBoards handles GET /api/v1/boards.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r)
	if !ok {
		return
	}

	boards, err := h.svc.ListBoards(r.Context(), q.actor)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardListResponse(boards))
}

// CreateBoard handles POST /api/v1/boards.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r)
	if !ok {
		return
	}

	var req dto.BoardNameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.CreateBoard(r.Context(), q.actor, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBoardResponse(b))
}

// GetBoard handles GET /api/v1/boards/{boardId}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	d, err := h.svc.GetBoard(r.Context(), q.actor, q.id(ParamBoardID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardDetailResponse(d))
}

// RenameBoard handles PATCH /api/v1/boards/{boardId}.
func (h *BoardHandler) RenameBoard(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	var req dto.BoardNameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.RenameBoard(r.Context(), q.actor, q.id(ParamBoardID), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(b))
}

// DeleteBoard handles DELETE /api/v1/boards/{boardId}.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	if err := h.svc.DeleteBoard(r.Context(), q.actor, q.id(ParamBoardID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListMembers handles GET /api/v1/boards/{boardId}/members.
func (h *BoardHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	members, err := h.svc.ListMembers(r.Context(), q.actor, q.id(ParamBoardID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMemberListResponse(members))
}

// AddMember handles POST /api/v1/boards/{boardId}/members.
func (h *BoardHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.svc.AddMember(r.Context(), q.actor, q.id(ParamBoardID), req.UserID, req.ParsedRole())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToMemberResponse(m))
}

// ChangeRole handles PATCH /api/v1/boards/{boardId}/members/{userId}.
func (h *BoardHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamUserID)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.svc.ChangeRole(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamUserID), req.ParsedRole())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMemberResponse(m))
}

// RemoveMember handles DELETE /api/v1/boards/{boardId}/members/{userId}.
func (h *BoardHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamUserID)
	if !ok {
		return
	}

	if err := h.svc.RemoveMember(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamUserID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLabels handles GET /api/v1/boards/{boardId}/labels.
func (h *BoardHandler) ListLabels(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	labels, err := h.svc.ListLabels(r.Context(), q.actor, q.id(ParamBoardID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLabelListResponse(labels))
}

// CreateLabel handles POST /api/v1/boards/{boardId}/labels.
func (h *BoardHandler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID)
	if !ok {
		return
	}

	var req dto.CreateLabelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.CreateLabel(r.Context(), q.actor, q.id(ParamBoardID), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToLabelResponse(l))
}

// DeleteLabel handles DELETE /api/v1/boards/{boardId}/labels/{labelId}.
func (h *BoardHandler) DeleteLabel(w http.ResponseWriter, r *http.Request) {
	q, ok := scope(w, r, ParamBoardID, ParamLabelID)
	if !ok {
		return
	}

	if err := h.svc.DeleteLabel(r.Context(), q.actor, q.id(ParamBoardID), q.id(ParamLabelID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
