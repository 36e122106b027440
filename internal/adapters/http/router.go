// Package http is the inbound HTTP adapter: the route table and the server
// lifecycle. Handlers, DTOs and middleware live in subpackages.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Health *handlers.HealthHandler
	User   *handlers.UserHandler
	Board  *handlers.BoardHandler
	Sprint *handlers.SprintHandler
	Ticket *handlers.TicketHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. guard wraps the /api/v1
// routes only, so health probes never need credentials.
func NewRouter(
	h Handlers,
	guard func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteRouteError(w, r, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteRouteError(w, r, http.StatusMethodNotAllowed)
	})

	// Probes stay outside the guard.
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(guard)

		r.Get("/me", h.User.Me)

		// Boards.
		r.Get("/boards", h.Board.ListBoards)
		r.Post("/boards", h.Board.CreateBoard)
		r.Get("/boards/{boardId}", h.Board.GetBoard)
		r.Patch("/boards/{boardId}", h.Board.RenameBoard)
		r.Delete("/boards/{boardId}", h.Board.DeleteBoard)

		// Members.
		r.Get("/boards/{boardId}/members", h.Board.ListMembers)
		r.Post("/boards/{boardId}/members", h.Board.AddMember)
		r.Patch("/boards/{boardId}/members/{userId}", h.Board.ChangeRole)
		r.Delete("/boards/{boardId}/members/{userId}", h.Board.RemoveMember)

		// Labels.
		r.Get("/boards/{boardId}/labels", h.Board.ListLabels)
		r.Post("/boards/{boardId}/labels", h.Board.CreateLabel)
		r.Delete("/boards/{boardId}/labels/{labelId}", h.Board.DeleteLabel)

		// Backlog and sprints.
		r.Get("/boards/{boardId}/backlog", h.Sprint.ListBacklog)
		r.Get("/boards/{boardId}/sprints", h.Sprint.ListSprints)
		r.Post("/boards/{boardId}/sprints", h.Sprint.CreateSprint)
		r.Patch("/boards/{boardId}/sprints/{sprintId}", h.Sprint.UpdateSprint)
		r.Delete("/boards/{boardId}/sprints/{sprintId}", h.Sprint.DeleteSprint)
		r.Get("/boards/{boardId}/sprints/{sprintId}/tickets", h.Sprint.ListSprintTickets)
		r.Post("/boards/{boardId}/sprints/{sprintId}/tickets", h.Sprint.BulkMoveTickets)

		// Tickets.
		r.Get("/boards/{boardId}/tickets", h.Ticket.ListTickets)
		r.Post("/boards/{boardId}/tickets", h.Ticket.CreateTicket)
		r.Get("/boards/{boardId}/tickets/{ticketId}", h.Ticket.GetTicket)
		r.Patch("/boards/{boardId}/tickets/{ticketId}", h.Ticket.UpdateTicket)
		r.Delete("/boards/{boardId}/tickets/{ticketId}", h.Ticket.DeleteTicket)
		r.Put("/boards/{boardId}/tickets/{ticketId}/sprint", h.Ticket.MoveTicket)
		r.Put("/boards/{boardId}/tickets/{ticketId}/parent", h.Ticket.SetParent)

		// Ticket links.
		r.Post("/boards/{boardId}/tickets/{ticketId}/assignees/{userId}", h.Ticket.AddAssignee)
		r.Delete("/boards/{boardId}/tickets/{ticketId}/assignees/{userId}", h.Ticket.RemoveAssignee)
		r.Post("/boards/{boardId}/tickets/{ticketId}/reviewers/{userId}", h.Ticket.AddReviewer)
		r.Delete("/boards/{boardId}/tickets/{ticketId}/reviewers/{userId}", h.Ticket.RemoveReviewer)
		r.Post("/boards/{boardId}/tickets/{ticketId}/labels/{labelId}", h.Ticket.AttachLabel)
		r.Delete("/boards/{boardId}/tickets/{ticketId}/labels/{labelId}", h.Ticket.DetachLabel)

		// Comments.
		r.Get("/boards/{boardId}/tickets/{ticketId}/comments", h.Ticket.ListComments)
		r.Post("/boards/{boardId}/tickets/{ticketId}/comments", h.Ticket.AddComment)
		r.Patch("/boards/{boardId}/tickets/{ticketId}/comments/{commentId}", h.Ticket.EditComment)
		r.Delete("/boards/{boardId}/tickets/{ticketId}/comments/{commentId}", h.Ticket.DeleteComment)
	})

	return r
}
