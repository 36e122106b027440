package store

import (
	"context"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

var _ ports.BoardRepository = (*BoardRepository)(nil)

// BoardRepository implements ports.BoardRepository.
type BoardRepository struct {
	db *database.DB
}

// NewBoardRepository creates a BoardRepository.
func NewBoardRepository(db *database.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// ListBoardsForUser returns the boards userID is a member of, oldest first.
func (r *BoardRepository) ListBoardsForUser(ctx context.Context, userID int64) ([]board.Board, error) {
	var rows []boardRow
	err := r.db.GetEngine(ctx).
		Table("board").
		Select("board.*").
		Join("INNER", "board_member", "board_member.board_id = board.id").
		Where("board_member.user_id = ?", userID).
		Asc("board.id").
		Find(&rows)
	if err != nil {
		return nil, storeerr.Translate(err)
	}

	boards := make([]board.Board, 0, len(rows))
	for i := range rows {
		boards = append(boards, rows[i].toDomain())
	}
	return boards, nil
}

// CreateBoard inserts the board, its backlog and the creator's OWNER row.
func (r *BoardRepository) CreateBoard(ctx context.Context, b *board.Board) (*board.Board, error) {
	row := &boardRow{Name: b.Name, OwnerID: b.OwnerID}

	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		e := r.db.GetEngine(ctx)
		if _, err := e.Insert(row); err != nil {
			return err
		}
		if _, err := e.Insert(&backlogRow{BoardID: row.ID}); err != nil {
			return err
		}
		_, err := e.Insert(&memberRow{BoardID: row.ID, UserID: b.OwnerID, Role: access.RoleOwner.String()})
		return err
	})
	if err != nil {
		return nil, storeerr.Translate(err)
	}

	created := row.toDomain()
	return &created, nil
}

// GetBoard returns the board with id.
func (r *BoardRepository) GetBoard(ctx context.Context, id int64) (*board.Board, error) {
	row := new(boardRow)
	has, err := r.db.GetEngine(ctx).ID(id).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("board", id))
	}
	b := row.toDomain()
	return &b, nil
}

// GetBacklog returns the backlog of boardID.
func (r *BoardRepository) GetBacklog(ctx context.Context, boardID int64) (*board.Backlog, error) {
	row := new(backlogRow)
	has, err := r.db.GetEngine(ctx).Where("board_id = ?", boardID).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("backlog of board", boardID))
	}
	return &board.Backlog{ID: row.ID, BoardID: row.BoardID, CreatedAt: row.CreatedAt}, nil
}

// RenameBoard sets the board's name.
func (r *BoardRepository) RenameBoard(ctx context.Context, id int64, name string) (*board.Board, error) {
	var out *board.Board
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		n, err := r.db.GetEngine(ctx).ID(id).Cols("name").Update(&boardRow{Name: name})
		if err != nil {
			return err
		}
		if err := affected(n, "board", id); err != nil {
			return err
		}
		out, err = r.GetBoard(ctx, id)
		return err
	})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return out, nil
}

// DeleteBoard deletes the board. The schema cascades the delete to its
// backlog, members, sprints, labels and tickets.
func (r *BoardRepository) DeleteBoard(ctx context.Context, id int64) error {
	n, err := r.db.GetEngine(ctx).ID(id).Delete(new(boardRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "board", id))
}

// GetMembership returns the role of userID on boardID, or nil when the user
// is not a member. A missing board is indistinguishable from a missing
// membership here.
func (r *BoardRepository) GetMembership(ctx context.Context, boardID, userID int64) (*access.Membership, error) {
	row := new(memberRow)
	has, err := r.db.GetEngine(ctx).Where("board_id = ? AND user_id = ?", boardID, userID).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, nil
	}

	role, err := access.ParseRole(row.Role)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return &access.Membership{BoardID: row.BoardID, UserID: row.UserID, Role: role}, nil
}

const memberColumns = "board_member.board_id, board_member.user_id, board_member.role, board_member.created_at, " +
	"app_user.name AS user_name, app_user.email AS user_email"

// ListMembers returns the members of boardID in join order.
func (r *BoardRepository) ListMembers(ctx context.Context, boardID int64) ([]board.Member, error) {
	var views []memberView
	err := r.db.GetEngine(ctx).
		Table("board_member").
		Select(memberColumns).
		Join("INNER", "app_user", "app_user.id = board_member.user_id").
		Where("board_member.board_id = ?", boardID).
		Asc("board_member.id").
		Find(&views)
	if err != nil {
		return nil, storeerr.Translate(err)
	}

	members := make([]board.Member, 0, len(views))
	for i := range views {
		m, err := views[i].toDomain()
		if err != nil {
			return nil, storeerr.Translate(err)
		}
		members = append(members, m)
	}
	return members, nil
}

// GetMember returns the membership row of userID on boardID with the
// user's profile.
func (r *BoardRepository) GetMember(ctx context.Context, boardID, userID int64) (*board.Member, error) {
	view := new(memberView)
	has, err := r.db.GetEngine(ctx).
		Table("board_member").
		Select(memberColumns).
		Join("INNER", "app_user", "app_user.id = board_member.user_id").
		Where("board_member.board_id = ? AND board_member.user_id = ?", boardID, userID).
		Get(view)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("member", userID))
	}

	m, err := view.toDomain()
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return &m, nil
}

// AddMember inserts a membership row. A second row for the same user is a
// unique violation.
func (r *BoardRepository) AddMember(ctx context.Context, m *board.Member) (*board.Member, error) {
	var out *board.Member
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		row := &memberRow{BoardID: m.BoardID, UserID: m.UserID, Role: m.Role.String()}
		if _, err := r.db.GetEngine(ctx).Insert(row); err != nil {
			return err
		}
		var err error
		out, err = r.GetMember(ctx, m.BoardID, m.UserID)
		return err
	})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return out, nil
}

// UpdateMemberRole changes a member's role. Demoting an OWNER only matches
// while another OWNER exists, so the count and the write are one statement.
func (r *BoardRepository) UpdateMemberRole(ctx context.Context, boardID, userID int64, role access.Role) error {
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		if err := lockBoard(ctx, r.db, boardID); err != nil {
			return err
		}

		query := "UPDATE board_member SET role = ? WHERE board_id = ? AND user_id = ?"
		args := []any{role.String(), boardID, userID}
		if role != access.RoleOwner {
			query += " AND (role <> 'OWNER' OR (SELECT COUNT(*) FROM board_member WHERE board_id = ? AND role = 'OWNER') > 1)"
			args = append(args, boardID)
		}

		res, err := r.db.GetEngine(ctx).Exec(append([]any{query}, args...)...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return r.missingOrLastOwner(ctx, boardID, userID)
	})
	return storeerr.Translate(err)
}

// RemoveMember deletes a membership row under the same last-owner guard as
// UpdateMemberRole.
func (r *BoardRepository) RemoveMember(ctx context.Context, boardID, userID int64) error {
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		if err := lockBoard(ctx, r.db, boardID); err != nil {
			return err
		}

		res, err := r.db.GetEngine(ctx).Exec(
			"DELETE FROM board_member WHERE board_id = ? AND user_id = ?"+
				" AND (role <> 'OWNER' OR (SELECT COUNT(*) FROM board_member WHERE board_id = ? AND role = 'OWNER') > 1)",
			boardID, userID, boardID,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return r.missingOrLastOwner(ctx, boardID, userID)
	})
	return storeerr.Translate(err)
}

// missingOrLastOwner explains why a guarded member write matched no row.
func (r *BoardRepository) missingOrLastOwner(ctx context.Context, boardID, userID int64) error {
	exists, err := r.db.GetEngine(ctx).Where("board_id = ? AND user_id = ?", boardID, userID).Exist(new(memberRow))
	if err != nil {
		return err
	}
	if exists {
		return board.ErrLastOwner
	}
	return storeerr.MissingRow("member", userID)
}

// ListLabels returns the labels of boardID by name.
func (r *BoardRepository) ListLabels(ctx context.Context, boardID int64) ([]board.Label, error) {
	var rows []labelRow
	if err := r.db.GetEngine(ctx).Where("board_id = ?", boardID).Asc("name").Find(&rows); err != nil {
		return nil, storeerr.Translate(err)
	}

	labels := make([]board.Label, 0, len(rows))
	for i := range rows {
		labels = append(labels, rows[i].toDomain())
	}
	return labels, nil
}

// CreateLabel inserts a label. Names are unique per board.
func (r *BoardRepository) CreateLabel(ctx context.Context, l *board.Label) (*board.Label, error) {
	row := &labelRow{BoardID: l.BoardID, Name: l.Name, Color: l.Color}
	if _, err := r.db.GetEngine(ctx).Insert(row); err != nil {
		return nil, storeerr.Translate(err)
	}
	created := row.toDomain()
	return &created, nil
}

// DeleteLabel deletes a label of boardID and detaches it from every ticket.
func (r *BoardRepository) DeleteLabel(ctx context.Context, boardID, labelID int64) error {
	n, err := r.db.GetEngine(ctx).Where("id = ? AND board_id = ?", labelID, boardID).Delete(new(labelRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "label", labelID))
}
