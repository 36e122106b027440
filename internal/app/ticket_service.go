package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// Compile-time check that TicketService implements ports.TicketService.
var _ ports.TicketService = (*TicketService)(nil)

// TicketService implements ports.TicketService.
type TicketService struct {
	tickets ports.TicketRepository
	sprints ports.SprintRepository
	tx      ports.Transactor
	guard   guard
	logger  *slog.Logger
}

// NewTicketService creates a TicketService. A nil logger discards output.
func NewTicketService(
	boards ports.BoardRepository,
	sprints ports.SprintRepository,
	tickets ports.TicketRepository,
	tx ports.Transactor,
	logger *slog.Logger,
	opts ...Option,
) *TicketService {
	cfg := applyOptions(opts)
	return &TicketService{
		tickets: tickets,
		sprints: sprints,
		tx:      tx,
		guard:   guard{boards: boards, metrics: cfg.metrics},
		logger:  orDiscard(logger),
	}
}

// ListTickets returns the board's tickets matching filter.
func (s *TicketService) ListTickets(ctx context.Context, actor, boardID int64, filter ticket.Filter) ([]ticket.Ticket, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListTickets(ctx, boardID, filter)
	if err != nil {
		logFailure(ctx, s.logger, "ListTickets", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return tickets, nil
}

// CreateTicket creates a ticket authored by the actor. Type defaults to
// ISSUE and status to TODO.
func (s *TicketService) CreateTicket(ctx context.Context, actor, boardID int64, t *ticket.Ticket) (*ticket.Ticket, error) {
	s.logger.InfoContext(ctx, "creating ticket", slog.Int64("board_id", boardID))

	if _, err := s.guard.authorize(ctx, actor, boardID, OpWriteTicket); err != nil {
		return nil, err
	}

	t.ID = 0
	t.BoardID = boardID
	t.CreatorID = actor
	t.Title = strings.TrimSpace(t.Title)
	if t.Type == "" {
		t.Type = ticket.TypeIssue
	}
	if t.Status == "" {
		t.Status = ticket.StatusTodo
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	var created *ticket.Ticket
	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		if err := s.checkRefs(ctx, t); err != nil {
			return err
		}
		var err error
		created, err = s.tickets.CreateTicket(ctx, t)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "CreateTicket", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return created, nil
}

// checkRefs verifies the sprint, parent and assignee of a new ticket belong
// to its board.
func (s *TicketService) checkRefs(ctx context.Context, t *ticket.Ticket) error {
	if t.SprintID != nil {
		if err := s.checkSprint(ctx, t.BoardID, *t.SprintID); err != nil {
			return err
		}
	}
	if t.ParentID != nil {
		parent, err := s.parent(ctx, t.BoardID, *t.ParentID)
		if err != nil {
			return err
		}
		ancestors, err := s.tickets.Ancestors(ctx, parent.ID)
		if err != nil {
			return err
		}
		if err := ticket.CheckParent(t, parent, ancestors, 0); err != nil {
			return err
		}
	}
	if t.AssigneeID != nil {
		return s.guard.requireMember(ctx, t.BoardID, *t.AssigneeID)
	}
	return nil
}

// checkSprint reports a sprint id that is not on boardID as a bad request.
func (s *TicketService) checkSprint(ctx context.Context, boardID, sprintID int64) error {
	_, err := s.sprints.GetSprint(ctx, boardID, sprintID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.BadRequest("sprint %d is not on this board", sprintID)
	}
	return err
}

// parent loads a prospective parent, reporting one off the board as a bad
// request.
func (s *TicketService) parent(ctx context.Context, boardID, parentID int64) (*ticket.Ticket, error) {
	p, err := s.tickets.GetTicket(ctx, boardID, parentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.BadRequest("parent ticket %d is not on this board", parentID)
	}
	return p, err
}

// GetTicket returns a ticket with its labels, assignees, reviewers and
// counts.
func (s *TicketService) GetTicket(ctx context.Context, actor, boardID, ticketID int64) (*ticket.Ticket, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}

	t, err := s.tickets.GetTicket(ctx, boardID, ticketID)
	if err != nil {
		logFailure(ctx, s.logger, "GetTicket", err,
			slog.Int64("board_id", boardID),
			slog.Int64("ticket_id", ticketID),
		)
		return nil, err
	}
	return t, nil
}

// UpdateTicket applies patch. A status change must follow the ticket
// lifecycle.
func (s *TicketService) UpdateTicket(
	ctx context.Context, actor, boardID, ticketID int64, patch ticket.Patch,
) (*ticket.Ticket, error) {
	s.logger.InfoContext(ctx, "updating ticket",
		slog.Int64("board_id", boardID),
		slog.Int64("ticket_id", ticketID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpWriteTicket); err != nil {
		return nil, err
	}

	var updated *ticket.Ticket
	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		current, err := s.tickets.GetTicket(ctx, boardID, ticketID)
		if err != nil {
			return err
		}
		if patch.Title != nil {
			trimmed := strings.TrimSpace(*patch.Title)
			patch.Title = &trimmed
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		if !patch.ClearAssignee && patch.AssigneeID != nil {
			if err := s.guard.requireMember(ctx, boardID, *patch.AssigneeID); err != nil {
				return err
			}
		}
		updated, err = s.tickets.UpdateTicket(ctx, current)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "UpdateTicket", err,
			slog.Int64("board_id", boardID),
			slog.Int64("ticket_id", ticketID),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteTicket deletes a ticket. Requires ADMIN.
func (s *TicketService) DeleteTicket(ctx context.Context, actor, boardID, ticketID int64) error {
	s.logger.InfoContext(ctx, "deleting ticket",
		slog.Int64("board_id", boardID),
		slog.Int64("ticket_id", ticketID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpDeleteTicket); err != nil {
		return err
	}

	if err := s.tickets.DeleteTicket(ctx, boardID, ticketID); err != nil {
		logFailure(ctx, s.logger, "DeleteTicket", err,
			slog.Int64("board_id", boardID),
			slog.Int64("ticket_id", ticketID),
		)
		return err
	}
	return nil
}

// MoveTicket moves a ticket into a sprint of its board, or to the backlog
// when sprintID is nil.
func (s *TicketService) MoveTicket(
	ctx context.Context, actor, boardID, ticketID int64, sprintID *int64,
) (*ticket.Ticket, error) {
	s.logger.InfoContext(ctx, "moving ticket",
		slog.Int64("board_id", boardID),
		slog.Int64("ticket_id", ticketID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpWriteTicket); err != nil {
		return nil, err
	}

	var moved *ticket.Ticket
	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		if _, err := s.tickets.GetTicket(ctx, boardID, ticketID); err != nil {
			return err
		}
		if sprintID != nil {
			if err := s.checkSprint(ctx, boardID, *sprintID); err != nil {
				return err
			}
		}
		if err := s.tickets.MoveTicket(ctx, boardID, ticketID, sprintID); err != nil {
			return err
		}
		var err error
		moved, err = s.tickets.GetTicket(ctx, boardID, ticketID)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "MoveTicket", err,
			slog.Int64("board_id", boardID),
			slog.Int64("ticket_id", ticketID),
		)
		return nil, err
	}
	return moved, nil
}

// SetParent attaches a ticket under parentID, or detaches it when nil. The
// parent must be on the same board and the change must not close a cycle.
func (s *TicketService) SetParent(
	ctx context.Context, actor, boardID, ticketID int64, parentID *int64,
) (*ticket.Ticket, error) {
	s.logger.InfoContext(ctx, "setting ticket parent",
		slog.Int64("board_id", boardID),
		slog.Int64("ticket_id", ticketID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpWriteTicket); err != nil {
		return nil, err
	}

	var out *ticket.Ticket
	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		child, err := s.tickets.GetTicket(ctx, boardID, ticketID)
		if err != nil {
			return err
		}

		if parentID != nil {
			parent, err := s.parent(ctx, boardID, *parentID)
			if err != nil {
				return err
			}
			ancestors, err := s.tickets.Ancestors(ctx, parent.ID)
			if err != nil {
				return err
			}
			height, err := s.tickets.SubtreeHeight(ctx, child.ID)
			if err != nil {
				return err
			}
			if err := ticket.CheckParent(child, parent, ancestors, height); err != nil {
				return err
			}
		}

		if err := s.tickets.SetParent(ctx, boardID, ticketID, parentID); err != nil {
			return err
		}
		out, err = s.tickets.GetTicket(ctx, boardID, ticketID)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "SetParent", err,
			slog.Int64("board_id", boardID),
			slog.Int64("ticket_id", ticketID),
		)
		return nil, err
	}
	return out, nil
}

// link runs a join-row write after checking access and that the ticket is
// on the board.
func (s *TicketService) link(
	ctx context.Context, operation string, actor, boardID, ticketID int64, write func(ctx context.Context) error,
) error {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpWriteTicket); err != nil {
		return err
	}

	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		if _, err := s.tickets.GetTicket(ctx, boardID, ticketID); err != nil {
			return err
		}
		return write(ctx)
	})
	if err != nil {
		logFailure(ctx, s.logger, operation, err,
			slog.Int64("board_id", boardID),
			slog.Int64("ticket_id", ticketID),
		)
		return err
	}
	return nil
}

// AddAssignee assigns a board member to the ticket.
func (s *TicketService) AddAssignee(ctx context.Context, actor, boardID, ticketID, userID int64) error {
	return s.link(ctx, "AddAssignee", actor, boardID, ticketID, func(ctx context.Context) error {
		if err := s.guard.requireMember(ctx, boardID, userID); err != nil {
			return err
		}
		return s.tickets.AddAssignee(ctx, ticketID, userID)
	})
}

// RemoveAssignee unassigns a user from the ticket.
func (s *TicketService) RemoveAssignee(ctx context.Context, actor, boardID, ticketID, userID int64) error {
	return s.link(ctx, "RemoveAssignee", actor, boardID, ticketID, func(ctx context.Context) error {
		return s.tickets.RemoveAssignee(ctx, ticketID, userID)
	})
}

// AddReviewer asks a board member to review the ticket.
func (s *TicketService) AddReviewer(ctx context.Context, actor, boardID, ticketID, userID int64) error {
	return s.link(ctx, "AddReviewer", actor, boardID, ticketID, func(ctx context.Context) error {
		if err := s.guard.requireMember(ctx, boardID, userID); err != nil {
			return err
		}
		return s.tickets.AddReviewer(ctx, ticketID, userID)
	})
}

// RemoveReviewer removes a reviewer from the ticket.
func (s *TicketService) RemoveReviewer(ctx context.Context, actor, boardID, ticketID, userID int64) error {
	return s.link(ctx, "RemoveReviewer", actor, boardID, ticketID, func(ctx context.Context) error {
		return s.tickets.RemoveReviewer(ctx, ticketID, userID)
	})
}

// AttachLabel tags the ticket with a label of its board.
func (s *TicketService) AttachLabel(ctx context.Context, actor, boardID, ticketID, labelID int64) error {
	return s.link(ctx, "AttachLabel", actor, boardID, ticketID, func(ctx context.Context) error {
		return s.tickets.AttachLabel(ctx, ticketID, labelID)
	})
}

// DetachLabel removes a label from the ticket.
func (s *TicketService) DetachLabel(ctx context.Context, actor, boardID, ticketID, labelID int64) error {
	return s.link(ctx, "DetachLabel", actor, boardID, ticketID, func(ctx context.Context) error {
		return s.tickets.DetachLabel(ctx, ticketID, labelID)
	})
}

// ListComments returns the ticket's comments.
func (s *TicketService) ListComments(ctx context.Context, actor, boardID, ticketID int64) ([]ticket.Comment, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}
	if _, err := s.tickets.GetTicket(ctx, boardID, ticketID); err != nil {
		return nil, err
	}

	comments, err := s.tickets.ListComments(ctx, ticketID)
	if err != nil {
		logFailure(ctx, s.logger, "ListComments", err, slog.Int64("ticket_id", ticketID))
		return nil, err
	}
	return comments, nil
}

// AddComment adds a comment authored by the actor.
func (s *TicketService) AddComment(ctx context.Context, actor, boardID, ticketID int64, body string) (*ticket.Comment, error) {
	s.logger.InfoContext(ctx, "adding comment",
		slog.Int64("board_id", boardID),
		slog.Int64("ticket_id", ticketID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpComment); err != nil {
		return nil, err
	}

	c := &ticket.Comment{TicketID: ticketID, AuthorID: actor, Body: strings.TrimSpace(body)}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var created *ticket.Comment
	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		if _, err := s.tickets.GetTicket(ctx, boardID, ticketID); err != nil {
			return err
		}
		var err error
		created, err = s.tickets.CreateComment(ctx, c)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "AddComment", err, slog.Int64("ticket_id", ticketID))
		return nil, err
	}
	return created, nil
}

// EditComment rewrites a comment's body. Only the author may edit.
func (s *TicketService) EditComment(
	ctx context.Context, actor, boardID, ticketID, commentID int64, body string,
) (*ticket.Comment, error) {
	s.logger.InfoContext(ctx, "editing comment",
		slog.Int64("ticket_id", ticketID),
		slog.Int64("comment_id", commentID),
	)

	m, err := s.guard.authorize(ctx, actor, boardID, OpEditComment)
	if err != nil {
		return nil, err
	}

	var edited *ticket.Comment
	err = s.tx.AutoTx(ctx, func(ctx context.Context) error {
		c, err := s.comment(ctx, boardID, ticketID, commentID)
		if err != nil {
			return err
		}
		if err := s.guard.requireAuthor(ctx, m, OpEditComment, c.AuthorID); err != nil {
			return err
		}

		c.Body = strings.TrimSpace(body)
		if err := c.Validate(); err != nil {
			return err
		}
		edited, err = s.tickets.UpdateComment(ctx, c)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "EditComment", err, slog.Int64("comment_id", commentID))
		return nil, err
	}
	return edited, nil
}

// DeleteComment deletes a comment. The author may delete their own
// comment; anyone else needs ADMIN.
func (s *TicketService) DeleteComment(ctx context.Context, actor, boardID, ticketID, commentID int64) error {
	s.logger.InfoContext(ctx, "deleting comment",
		slog.Int64("ticket_id", ticketID),
		slog.Int64("comment_id", commentID),
	)

	m, err := s.guard.authorize(ctx, actor, boardID, OpComment)
	if err != nil {
		return err
	}

	err = s.tx.AutoTx(ctx, func(ctx context.Context) error {
		c, err := s.comment(ctx, boardID, ticketID, commentID)
		if err != nil {
			return err
		}
		if c.AuthorID != actor {
			if err := s.guard.check(ctx, m, OpModerateComment, RequiredRole(OpModerateComment)); err != nil {
				return err
			}
		}
		return s.tickets.DeleteComment(ctx, ticketID, commentID)
	})
	if err != nil {
		logFailure(ctx, s.logger, "DeleteComment", err, slog.Int64("comment_id", commentID))
		return err
	}
	return nil
}

// comment loads a comment after checking its ticket is on the board.
func (s *TicketService) comment(ctx context.Context, boardID, ticketID, commentID int64) (*ticket.Comment, error) {
	if _, err := s.tickets.GetTicket(ctx, boardID, ticketID); err != nil {
		return nil, err
	}
	return s.tickets.GetComment(ctx, ticketID, commentID)
}
