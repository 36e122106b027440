package ports

import (
	"context"

	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
)

// Every repository method returns errors already passed through the
// persistence failure translator, so callers only ever see domain kinds.

// Transactor runs f in a transaction carried by the context. Nested calls
// join the outer transaction. Implemented by the database package.
type Transactor interface {
	AutoTx(ctx context.Context, f func(ctx context.Context) error) error
}

// UserRepository stores the local record of authenticated principals.
type UserRepository interface {
	// UpsertUser returns the user for p.Subject, creating it on first sight
	// and refreshing name and email otherwise.
	UpsertUser(ctx context.Context, p user.Principal) (*user.User, error)

	// GetUser returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id int64) (*user.User, error)
}

// BoardRepository stores boards, their backlog, members and labels.
type BoardRepository interface {
	// ListBoardsForUser returns the boards userID is a member of.
	ListBoardsForUser(ctx context.Context, userID int64) ([]board.Board, error)

	// CreateBoard inserts the board, its backlog and an OWNER membership for
	// b.OwnerID in one transaction.
	CreateBoard(ctx context.Context, b *board.Board) (*board.Board, error)

	GetBoard(ctx context.Context, id int64) (*board.Board, error)
	GetBacklog(ctx context.Context, boardID int64) (*board.Backlog, error)
	RenameBoard(ctx context.Context, id int64, name string) (*board.Board, error)
	DeleteBoard(ctx context.Context, id int64) error

	// GetMembership returns nil and no error when userID is not a member.
	GetMembership(ctx context.Context, boardID, userID int64) (*access.Membership, error)

	ListMembers(ctx context.Context, boardID int64) ([]board.Member, error)
	GetMember(ctx context.Context, boardID, userID int64) (*board.Member, error)
	AddMember(ctx context.Context, m *board.Member) (*board.Member, error)

	// UpdateMemberRole and RemoveMember return board.ErrLastOwner instead of
	// leaving the board without an OWNER.
	UpdateMemberRole(ctx context.Context, boardID, userID int64, role access.Role) error
	RemoveMember(ctx context.Context, boardID, userID int64) error

	ListLabels(ctx context.Context, boardID int64) ([]board.Label, error)
	CreateLabel(ctx context.Context, l *board.Label) (*board.Label, error)
	DeleteLabel(ctx context.Context, boardID, labelID int64) error
}

// SprintRepository stores sprints.
type SprintRepository interface {
	ListSprints(ctx context.Context, boardID int64) ([]board.Sprint, error)
	GetSprint(ctx context.Context, boardID, sprintID int64) (*board.Sprint, error)

	// CreateSprint and UpdateSprint return board.ErrActiveSprintExists when
	// a second sprint on the board would become ACTIVE.
	CreateSprint(ctx context.Context, s *board.Sprint) (*board.Sprint, error)
	UpdateSprint(ctx context.Context, s *board.Sprint) (*board.Sprint, error)

	// DeleteSprint returns the sprint's tickets to the backlog and deletes
	// the sprint in one transaction.
	DeleteSprint(ctx context.Context, boardID, sprintID int64) error
}

// TicketRepository stores tickets, their join rows and comments.
type TicketRepository interface {
	ListTickets(ctx context.Context, boardID int64, filter ticket.Filter) ([]ticket.Ticket, error)

	// GetTicket returns domain.ErrNotFound if the ticket is not on boardID.
	GetTicket(ctx context.Context, boardID, ticketID int64) (*ticket.Ticket, error)
	CreateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error)

	// UpdateTicket writes title, description, type, status and assignee.
	UpdateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error)
	DeleteTicket(ctx context.Context, boardID, ticketID int64) error

	// MoveTicket sets the ticket's sprint; nil moves it to the backlog.
	MoveTicket(ctx context.Context, boardID, ticketID int64, sprintID *int64) error

	// SetParent sets the ticket's parent; nil detaches it.
	SetParent(ctx context.Context, boardID, ticketID int64, parentID *int64) error

	// Ancestors returns the parent chain of ticketID, nearest first.
	Ancestors(ctx context.Context, ticketID int64) ([]int64, error)

	// SubtreeHeight returns how many levels of sub-tickets sit below
	// ticketID, 0 for a leaf. The walk stops at ticket.MaxDepth.
	SubtreeHeight(ctx context.Context, ticketID int64) (int, error)

	AddAssignee(ctx context.Context, ticketID, userID int64) error
	RemoveAssignee(ctx context.Context, ticketID, userID int64) error
	AddReviewer(ctx context.Context, ticketID, userID int64) error
	RemoveReviewer(ctx context.Context, ticketID, userID int64) error
	AttachLabel(ctx context.Context, ticketID, labelID int64) error
	DetachLabel(ctx context.Context, ticketID, labelID int64) error

	ListComments(ctx context.Context, ticketID int64) ([]ticket.Comment, error)
	GetComment(ctx context.Context, ticketID, commentID int64) (*ticket.Comment, error)
	CreateComment(ctx context.Context, c *ticket.Comment) (*ticket.Comment, error)
	UpdateComment(ctx context.Context, c *ticket.Comment) (*ticket.Comment, error)
	DeleteComment(ctx context.Context, ticketID, commentID int64) error
}
