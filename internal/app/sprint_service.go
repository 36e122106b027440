package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/sprintboard/internal/app/fanout"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// Compile-time check that SprintService implements ports.SprintService.
var _ ports.SprintService = (*SprintService)(nil)

const (
	// maxBulkMoveWorkers bounds concurrent store writes during a bulk move.
	maxBulkMoveWorkers = 5

	// MaxBulkMoveItems bounds the ticket ids accepted by one bulk move.
	MaxBulkMoveItems = 100
)

// SprintService implements ports.SprintService.
type SprintService struct {
	sprints ports.SprintRepository
	tickets ports.TicketRepository
	tx      ports.Transactor
	guard   guard
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewSprintService creates a SprintService. A nil logger discards output.
func NewSprintService(
	boards ports.BoardRepository,
	sprints ports.SprintRepository,
	tickets ports.TicketRepository,
	tx ports.Transactor,
	logger *slog.Logger,
	opts ...Option,
) *SprintService {
	cfg := applyOptions(opts)
	return &SprintService{
		sprints: sprints,
		tickets: tickets,
		tx:      tx,
		guard:   guard{boards: boards, metrics: cfg.metrics},
		metrics: cfg.metrics,
		logger:  orDiscard(logger),
	}
}

// ListSprints returns the board's sprints.
func (s *SprintService) ListSprints(ctx context.Context, actor, boardID int64) ([]board.Sprint, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}

	sprints, err := s.sprints.ListSprints(ctx, boardID)
	if err != nil {
		logFailure(ctx, s.logger, "ListSprints", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return sprints, nil
}

// CreateSprint creates a sprint. New sprints default to PLANNED. Requires
// ADMIN.
func (s *SprintService) CreateSprint(ctx context.Context, actor, boardID int64, sp *board.Sprint) (*board.Sprint, error) {
	s.logger.InfoContext(ctx, "creating sprint", slog.Int64("board_id", boardID))

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageSprints); err != nil {
		return nil, err
	}

	sp.BoardID = boardID
	sp.Name = strings.TrimSpace(sp.Name)
	if sp.Status == "" {
		sp.Status = board.SprintPlanned
	}
	if err := sp.Validate(); err != nil {
		return nil, err
	}

	created, err := s.sprints.CreateSprint(ctx, sp)
	if err != nil {
		logFailure(ctx, s.logger, "CreateSprint", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return created, nil
}

// UpdateSprint applies patch to a sprint. Requires ADMIN.
func (s *SprintService) UpdateSprint(
	ctx context.Context, actor, boardID, sprintID int64, patch board.SprintPatch,
) (*board.Sprint, error) {
	s.logger.InfoContext(ctx, "updating sprint",
		slog.Int64("board_id", boardID),
		slog.Int64("sprint_id", sprintID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageSprints); err != nil {
		return nil, err
	}

	var updated *board.Sprint
	err := s.tx.AutoTx(ctx, func(ctx context.Context) error {
		current, err := s.sprints.GetSprint(ctx, boardID, sprintID)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			trimmed := strings.TrimSpace(*patch.Name)
			patch.Name = &trimmed
		}
		if err := patch.Apply(current); err != nil {
			return err
		}
		updated, err = s.sprints.UpdateSprint(ctx, current)
		return err
	})
	if err != nil {
		logFailure(ctx, s.logger, "UpdateSprint", err,
			slog.Int64("board_id", boardID),
			slog.Int64("sprint_id", sprintID),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteSprint deletes a sprint; its tickets return to the backlog.
// Requires ADMIN.
func (s *SprintService) DeleteSprint(ctx context.Context, actor, boardID, sprintID int64) error {
	s.logger.InfoContext(ctx, "deleting sprint",
		slog.Int64("board_id", boardID),
		slog.Int64("sprint_id", sprintID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageSprints); err != nil {
		return err
	}

	if err := s.sprints.DeleteSprint(ctx, boardID, sprintID); err != nil {
		logFailure(ctx, s.logger, "DeleteSprint", err,
			slog.Int64("board_id", boardID),
			slog.Int64("sprint_id", sprintID),
		)
		return err
	}
	return nil
}

// ListSprintTickets returns the tickets in a sprint.
func (s *SprintService) ListSprintTickets(ctx context.Context, actor, boardID, sprintID int64) ([]ticket.Ticket, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}
	if _, err := s.sprints.GetSprint(ctx, boardID, sprintID); err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListTickets(ctx, boardID, ticket.Filter{SprintID: &sprintID})
	if err != nil {
		logFailure(ctx, s.logger, "ListSprintTickets", err,
			slog.Int64("board_id", boardID),
			slog.Int64("sprint_id", sprintID),
		)
		return nil, err
	}
	return tickets, nil
}

// ListBacklog returns the tickets outside every sprint.
func (s *SprintService) ListBacklog(ctx context.Context, actor, boardID int64) ([]ticket.Ticket, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListTickets(ctx, boardID, ticket.Filter{Backlog: true})
	if err != nil {
		logFailure(ctx, s.logger, "ListBacklog", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return tickets, nil
}

// BulkMoveTickets moves ticketIDs into a sprint concurrently. Each move
// succeeds or fails on its own. Requires ADMIN.
func (s *SprintService) BulkMoveTickets(
	ctx context.Context, actor, boardID, sprintID int64, ticketIDs []int64,
) (*ports.BulkMoveResult, error) {
	s.logger.InfoContext(ctx, "bulk moving tickets",
		slog.Int64("board_id", boardID),
		slog.Int64("sprint_id", sprintID),
		slog.Int("count", len(ticketIDs)),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpBulkMove); err != nil {
		return nil, err
	}

	switch {
	case len(ticketIDs) == 0:
		return nil, &domain.ValidationError{Fields: map[string]string{"ticket_ids": domain.MsgRequired}}
	case len(ticketIDs) > MaxBulkMoveItems:
		return nil, &domain.ValidationError{Fields: map[string]string{
			"ticket_ids": fmt.Sprintf("must contain at most %d ids, got %d", MaxBulkMoveItems, len(ticketIDs)),
		}}
	}

	if _, err := s.sprints.GetSprint(ctx, boardID, sprintID); err != nil {
		return nil, err
	}

	ticketIDs = fanout.Unique(ticketIDs)
	results := fanout.Run(ctx, maxBulkMoveWorkers, ticketIDs, func(ctx context.Context, id int64) (int64, error) {
		return id, s.tickets.MoveTicket(ctx, boardID, id, &sprintID)
	})

	result := &ports.BulkMoveResult{
		Moved:  make([]int64, 0, len(ticketIDs)),
		Errors: make([]ports.BulkMoveError, 0),
	}
	for i, r := range results {
		if r.Err != nil {
			s.logger.ErrorContext(ctx, "bulk move item failed",
				slog.String("operation", "BulkMoveTickets"),
				slog.Int64("board_id", boardID),
				slog.Int64("ticket_id", ticketIDs[i]),
				slog.Any("error", r.Err),
			)
			result.Errors = append(result.Errors, ports.BulkMoveError{TicketID: ticketIDs[i], Err: r.Err})
			continue
		}
		result.Moved = append(result.Moved, r.Value)
	}
	s.metrics.RecordBulkMove(ctx, len(result.Moved), len(result.Errors))

	return result, nil
}
