package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService.
type BoardService struct {
	boards ports.BoardRepository
	guard  guard
	logger *slog.Logger
}

// NewBoardService creates a BoardService. A nil logger discards output.
func NewBoardService(boards ports.BoardRepository, logger *slog.Logger, opts ...Option) *BoardService {
	cfg := applyOptions(opts)
	return &BoardService{
		boards: boards,
		guard:  guard{boards: boards, metrics: cfg.metrics},
		logger: orDiscard(logger),
	}
}

// ListBoards returns the boards the actor belongs to.
func (s *BoardService) ListBoards(ctx context.Context, actor int64) ([]board.Board, error) {
	s.logger.InfoContext(ctx, "listing boards", slog.Int64("actor", actor))

	boards, err := s.boards.ListBoardsForUser(ctx, actor)
	if err != nil {
		logFailure(ctx, s.logger, "ListBoards", err, slog.Int64("actor", actor))
		return nil, err
	}
	return boards, nil
}

// CreateBoard creates a board owned by the actor, with its backlog.
func (s *BoardService) CreateBoard(ctx context.Context, actor int64, name string) (*board.Board, error) {
	s.logger.InfoContext(ctx, "creating board", slog.Int64("actor", actor))

	b := &board.Board{Name: strings.TrimSpace(name), OwnerID: actor}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	created, err := s.boards.CreateBoard(ctx, b)
	if err != nil {
		logFailure(ctx, s.logger, "CreateBoard", err, slog.Int64("actor", actor))
		return nil, err
	}
	return created, nil
}

// GetBoard returns the board, its backlog and the actor's role.
func (s *BoardService) GetBoard(ctx context.Context, actor, boardID int64) (*ports.BoardDetails, error) {
	m, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard)
	if err != nil {
		return nil, err
	}

	b, err := s.boards.GetBoard(ctx, boardID)
	if err != nil {
		logFailure(ctx, s.logger, "GetBoard", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	backlog, err := s.boards.GetBacklog(ctx, boardID)
	if err != nil {
		logFailure(ctx, s.logger, "GetBoard", err, slog.Int64("board_id", boardID))
		return nil, err
	}

	return &ports.BoardDetails{Board: *b, Backlog: *backlog, Role: m.Role}, nil
}

// RenameBoard renames the board. Requires ADMIN.
func (s *BoardService) RenameBoard(ctx context.Context, actor, boardID int64, name string) (*board.Board, error) {
	s.logger.InfoContext(ctx, "renaming board", slog.Int64("board_id", boardID))

	if _, err := s.guard.authorize(ctx, actor, boardID, OpRenameBoard); err != nil {
		return nil, err
	}

	b := &board.Board{ID: boardID, Name: strings.TrimSpace(name)}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	renamed, err := s.boards.RenameBoard(ctx, boardID, b.Name)
	if err != nil {
		logFailure(ctx, s.logger, "RenameBoard", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return renamed, nil
}

// DeleteBoard deletes the board and everything on it. Requires OWNER.
func (s *BoardService) DeleteBoard(ctx context.Context, actor, boardID int64) error {
	s.logger.InfoContext(ctx, "deleting board", slog.Int64("board_id", boardID))

	if _, err := s.guard.authorize(ctx, actor, boardID, OpDeleteBoard); err != nil {
		return err
	}

	if err := s.boards.DeleteBoard(ctx, boardID); err != nil {
		logFailure(ctx, s.logger, "DeleteBoard", err, slog.Int64("board_id", boardID))
		return err
	}
	s.guard.forget(ctx, boardID)
	return nil
}

// ListMembers returns the board's members.
func (s *BoardService) ListMembers(ctx context.Context, actor, boardID int64) ([]board.Member, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}

	members, err := s.boards.ListMembers(ctx, boardID)
	if err != nil {
		logFailure(ctx, s.logger, "ListMembers", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return members, nil
}

// AddMember adds userID with role. Requires ADMIN, or OWNER to add an
// OWNER.
func (s *BoardService) AddMember(ctx context.Context, actor, boardID, userID int64, role access.Role) (*board.Member, error) {
	s.logger.InfoContext(ctx, "adding board member",
		slog.Int64("board_id", boardID),
		slog.Int64("user_id", userID),
		slog.String("role", role.String()),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageMembers); err != nil {
		return nil, err
	}

	m := &board.Member{BoardID: boardID, UserID: userID, Role: role}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if role == access.RoleOwner {
		if _, err := s.guard.authorize(ctx, actor, boardID, OpManageOwners); err != nil {
			return nil, err
		}
	}

	added, err := s.boards.AddMember(ctx, m)
	if err != nil {
		logFailure(ctx, s.logger, "AddMember", err,
			slog.Int64("board_id", boardID),
			slog.Int64("user_id", userID),
		)
		return nil, err
	}
	s.guard.forget(ctx, boardID)
	return added, nil
}

// ChangeRole sets userID's role. Requires ADMIN, or OWNER when an OWNER
// role is granted or revoked. The last OWNER cannot be demoted.
func (s *BoardService) ChangeRole(ctx context.Context, actor, boardID, userID int64, role access.Role) (*board.Member, error) {
	s.logger.InfoContext(ctx, "changing member role",
		slog.Int64("board_id", boardID),
		slog.Int64("user_id", userID),
		slog.String("role", role.String()),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageMembers); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"role": "must be one of VIEWER, MEMBER, ADMIN, OWNER",
		}}
	}

	target, err := s.boards.GetMember(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.require(ctx, actor, boardID, OpManageMembers, board.RoleChangeRequirement(target.Role, role)); err != nil {
		return nil, err
	}

	if err := s.boards.UpdateMemberRole(ctx, boardID, userID, role); err != nil {
		logFailure(ctx, s.logger, "ChangeRole", err,
			slog.Int64("board_id", boardID),
			slog.Int64("user_id", userID),
		)
		return nil, err
	}
	s.guard.forget(ctx, boardID)

	return s.boards.GetMember(ctx, boardID, userID)
}

// RemoveMember removes userID from the board. Members may always remove
// themselves; removing someone else requires ADMIN, or OWNER for an OWNER.
func (s *BoardService) RemoveMember(ctx context.Context, actor, boardID, userID int64) error {
	s.logger.InfoContext(ctx, "removing board member",
		slog.Int64("board_id", boardID),
		slog.Int64("user_id", userID),
	)

	if actor == userID {
		if _, err := s.guard.authorize(ctx, actor, boardID, OpLeaveBoard); err != nil {
			return err
		}
	} else {
		if _, err := s.guard.authorize(ctx, actor, boardID, OpManageMembers); err != nil {
			return err
		}
		target, err := s.boards.GetMember(ctx, boardID, userID)
		if err != nil {
			return err
		}
		if target.Role == access.RoleOwner {
			if _, err := s.guard.authorize(ctx, actor, boardID, OpManageOwners); err != nil {
				return err
			}
		}
	}

	if err := s.boards.RemoveMember(ctx, boardID, userID); err != nil {
		logFailure(ctx, s.logger, "RemoveMember", err,
			slog.Int64("board_id", boardID),
			slog.Int64("user_id", userID),
		)
		return err
	}
	s.guard.forget(ctx, boardID)
	return nil
}

// ListLabels returns the board's labels.
func (s *BoardService) ListLabels(ctx context.Context, actor, boardID int64) ([]board.Label, error) {
	if _, err := s.guard.authorize(ctx, actor, boardID, OpViewBoard); err != nil {
		return nil, err
	}

	labels, err := s.boards.ListLabels(ctx, boardID)
	if err != nil {
		logFailure(ctx, s.logger, "ListLabels", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a label on the board. Requires ADMIN.
func (s *BoardService) CreateLabel(ctx context.Context, actor, boardID int64, l *board.Label) (*board.Label, error) {
	s.logger.InfoContext(ctx, "creating label", slog.Int64("board_id", boardID))

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageLabels); err != nil {
		return nil, err
	}

	l.BoardID = boardID
	l.Name = strings.TrimSpace(l.Name)
	if err := l.Validate(); err != nil {
		return nil, err
	}

	created, err := s.boards.CreateLabel(ctx, l)
	if err != nil {
		logFailure(ctx, s.logger, "CreateLabel", err, slog.Int64("board_id", boardID))
		return nil, err
	}
	return created, nil
}

// DeleteLabel deletes a label and detaches it from every ticket. Requires
// ADMIN.
func (s *BoardService) DeleteLabel(ctx context.Context, actor, boardID, labelID int64) error {
	s.logger.InfoContext(ctx, "deleting label",
		slog.Int64("board_id", boardID),
		slog.Int64("label_id", labelID),
	)

	if _, err := s.guard.authorize(ctx, actor, boardID, OpManageLabels); err != nil {
		return err
	}

	if err := s.boards.DeleteLabel(ctx, boardID, labelID); err != nil {
		logFailure(ctx, s.logger, "DeleteLabel", err,
			slog.Int64("board_id", boardID),
			slog.Int64("label_id", labelID),
		)
		return err
	}
	return nil
}
