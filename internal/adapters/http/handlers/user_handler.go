package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct{}

// NewUserHandler creates a new UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles GET /api/v1/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		dto.WriteUnauthorized(w, r)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToUserResponse(u))
}
