package ports

import (
	"context"

	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
)

// Every board-scoped service method takes the acting user's id and checks
// the actor's membership on the board before touching storage. A caller
// who is not a member gets domain.ErrForbidden whether or not the board
// exists.

// UserService maps authenticated principals to local users.
// Implemented by the application layer; called by the principal middleware
// and the /me handler.
type UserService interface {
	// Resolve returns the local user for p, creating it on first sight.
	// Returns domain.ErrBadRequest if p fails validation.
	Resolve(ctx context.Context, p user.Principal) (*user.User, error)

	// Get returns domain.ErrNotFound if the user does not exist.
	Get(ctx context.Context, id int64) (*user.User, error)
}

// BoardDetails is a board together with its backlog and the actor's role.
type BoardDetails struct {
	Board   board.Board
	Backlog board.Backlog
	Role    access.Role
}

// BoardService defines the service port for boards, members and labels.
type BoardService interface {
	// ListBoards returns the boards the actor is a member of.
	ListBoards(ctx context.Context, actor int64) ([]board.Board, error)

	// CreateBoard creates a board with its backlog and makes the actor its
	// OWNER. Returns domain.ErrBadRequest if the name fails validation.
	CreateBoard(ctx context.Context, actor int64, name string) (*board.Board, error)

	GetBoard(ctx context.Context, actor, boardID int64) (*BoardDetails, error)

	// RenameBoard requires ADMIN.
	RenameBoard(ctx context.Context, actor, boardID int64, name string) (*board.Board, error)

	// DeleteBoard requires OWNER. Sprints, tickets, labels and members go
	// with the board.
	DeleteBoard(ctx context.Context, actor, boardID int64) error

	ListMembers(ctx context.Context, actor, boardID int64) ([]board.Member, error)

	// AddMember requires ADMIN, or OWNER when granting OWNER.
	// Returns domain.ErrConflict if the user is already a member.
	AddMember(ctx context.Context, actor, boardID, userID int64, role access.Role) (*board.Member, error)

	// ChangeRole requires ADMIN, or OWNER when OWNER is granted or revoked.
	// Returns board.ErrLastOwner when demoting the only OWNER.
	ChangeRole(ctx context.Context, actor, boardID, userID int64, role access.Role) (*board.Member, error)

	// RemoveMember requires ADMIN (OWNER to remove an OWNER). Any member may
	// remove themselves. Returns board.ErrLastOwner for the only OWNER.
	RemoveMember(ctx context.Context, actor, boardID, userID int64) error

	ListLabels(ctx context.Context, actor, boardID int64) ([]board.Label, error)

	// CreateLabel requires ADMIN. Returns domain.ErrConflict on a duplicate
	// name within the board.
	CreateLabel(ctx context.Context, actor, boardID int64, l *board.Label) (*board.Label, error)

	// DeleteLabel requires ADMIN. The label is detached from every ticket.
	DeleteLabel(ctx context.Context, actor, boardID, labelID int64) error
}

// BulkMoveError records a single failed ticket move within a bulk operation.
type BulkMoveError struct {
	TicketID int64
	Err      error
}

// BulkMoveResult holds the outcomes of a bulk move.
// Moved contains the ids of moved tickets; Errors contains per-item failures.
type BulkMoveResult struct {
	Moved  []int64
	Errors []BulkMoveError
}

// SprintService defines the service port for sprints and the backlog.
type SprintService interface {
	ListSprints(ctx context.Context, actor, boardID int64) ([]board.Sprint, error)

	// CreateSprint requires ADMIN. Returns board.ErrActiveSprintExists when
	// the board already has an ACTIVE sprint and s is ACTIVE.
	CreateSprint(ctx context.Context, actor, boardID int64, s *board.Sprint) (*board.Sprint, error)

	// UpdateSprint requires ADMIN.
	UpdateSprint(ctx context.Context, actor, boardID, sprintID int64, patch board.SprintPatch) (*board.Sprint, error)

	// DeleteSprint requires ADMIN. The sprint's tickets return to the backlog.
	DeleteSprint(ctx context.Context, actor, boardID, sprintID int64) error

	ListSprintTickets(ctx context.Context, actor, boardID, sprintID int64) ([]ticket.Ticket, error)
	ListBacklog(ctx context.Context, actor, boardID int64) ([]ticket.Ticket, error)

	// BulkMoveTickets requires ADMIN. Uses partial success semantics: each
	// move succeeds or fails independently. Returns a hard error only for
	// request-level failures (access, sprint not found, validation).
	BulkMoveTickets(ctx context.Context, actor, boardID, sprintID int64, ticketIDs []int64) (*BulkMoveResult, error)
}

// TicketService defines the service port for tickets, their join rows and
// comments. Writes require MEMBER unless noted.
type TicketService interface {
	ListTickets(ctx context.Context, actor, boardID int64, filter ticket.Filter) ([]ticket.Ticket, error)
	CreateTicket(ctx context.Context, actor, boardID int64, t *ticket.Ticket) (*ticket.Ticket, error)
	GetTicket(ctx context.Context, actor, boardID, ticketID int64) (*ticket.Ticket, error)

	// UpdateTicket returns domain.ErrBadRequest for a disallowed status
	// transition.
	UpdateTicket(ctx context.Context, actor, boardID, ticketID int64, patch ticket.Patch) (*ticket.Ticket, error)

	// DeleteTicket requires ADMIN. Join rows go with the ticket; sub-tickets
	// are detached.
	DeleteTicket(ctx context.Context, actor, boardID, ticketID int64) error

	// MoveTicket moves the ticket into sprintID, or to the backlog when
	// sprintID is nil. The sprint must be on the ticket's board.
	MoveTicket(ctx context.Context, actor, boardID, ticketID int64, sprintID *int64) (*ticket.Ticket, error)

	// SetParent makes parentID the ticket's parent, or detaches it when nil.
	// Returns domain.ErrBadRequest if the change would create a cycle.
	SetParent(ctx context.Context, actor, boardID, ticketID int64, parentID *int64) (*ticket.Ticket, error)

	// AddAssignee and AddReviewer return domain.ErrConflict when the pair
	// already exists and domain.ErrBadRequest when userID is not a member.
	AddAssignee(ctx context.Context, actor, boardID, ticketID, userID int64) error
	RemoveAssignee(ctx context.Context, actor, boardID, ticketID, userID int64) error
	AddReviewer(ctx context.Context, actor, boardID, ticketID, userID int64) error
	RemoveReviewer(ctx context.Context, actor, boardID, ticketID, userID int64) error
	AttachLabel(ctx context.Context, actor, boardID, ticketID, labelID int64) error
	DetachLabel(ctx context.Context, actor, boardID, ticketID, labelID int64) error

	ListComments(ctx context.Context, actor, boardID, ticketID int64) ([]ticket.Comment, error)
	AddComment(ctx context.Context, actor, boardID, ticketID int64, body string) (*ticket.Comment, error)

	// EditComment is allowed only to the comment's author.
	EditComment(ctx context.Context, actor, boardID, ticketID, commentID int64, body string) (*ticket.Comment, error)

	// DeleteComment is allowed to the author or an ADMIN.
	DeleteComment(ctx context.Context, actor, boardID, ticketID, commentID int64) error
}
