package store

import (
	"context"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

var _ ports.SprintRepository = (*SprintRepository)(nil)

// SprintRepository implements ports.SprintRepository.
type SprintRepository struct {
	db *database.DB
}

// NewSprintRepository creates a SprintRepository.
func NewSprintRepository(db *database.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

// ListSprints returns the sprints of boardID, oldest first.
func (r *SprintRepository) ListSprints(ctx context.Context, boardID int64) ([]board.Sprint, error) {
	var rows []sprintRow
	if err := r.db.GetEngine(ctx).Where("board_id = ?", boardID).Asc("id").Find(&rows); err != nil {
		return nil, storeerr.Translate(err)
	}

	sprints := make([]board.Sprint, 0, len(rows))
	for i := range rows {
		sprints = append(sprints, rows[i].toDomain())
	}
	return sprints, nil
}

// GetSprint returns the sprint with sprintID on boardID.
func (r *SprintRepository) GetSprint(ctx context.Context, boardID, sprintID int64) (*board.Sprint, error) {
	row := new(sprintRow)
	has, err := r.db.GetEngine(ctx).Where("id = ? AND board_id = ?", sprintID, boardID).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("sprint", sprintID))
	}
	s := row.toDomain()
	return &s, nil
}

// CreateSprint inserts a sprint.
func (r *SprintRepository) CreateSprint(ctx context.Context, s *board.Sprint) (*board.Sprint, error) {
	row := &sprintRow{
		BoardID:  s.BoardID,
		Name:     s.Name,
		Goal:     s.Goal,
		Status:   s.Status.String(),
		StartsAt: s.StartsAt,
		EndsAt:   s.EndsAt,
	}
	if _, err := r.db.GetEngine(ctx).Insert(row); err != nil {
		return nil, translateSprintErr(err)
	}
	created := row.toDomain()
	return &created, nil
}

// UpdateSprint writes every mutable field of s. The dates are nullable so
// the statement is written out rather than left to xorm, which skips nil
// pointers.
func (r *SprintRepository) UpdateSprint(ctx context.Context, s *board.Sprint) (*board.Sprint, error) {
	var out *board.Sprint
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		res, err := r.db.GetEngine(ctx).Exec(
			"UPDATE sprint SET name = ?, goal = ?, status = ?, starts_at = ?, ends_at = ?, updated_at = ?"+
				" WHERE id = ? AND board_id = ?",
			s.Name, s.Goal, s.Status.String(), nullTime(s.StartsAt), nullTime(s.EndsAt), now(),
			s.ID, s.BoardID,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if err := affected(n, "sprint", s.ID); err != nil {
			return err
		}
		out, err = r.GetSprint(ctx, s.BoardID, s.ID)
		return err
	})
	if err != nil {
		return nil, translateSprintErr(err)
	}
	return out, nil
}

// DeleteSprint moves the sprint's tickets to the backlog and deletes it.
func (r *SprintRepository) DeleteSprint(ctx context.Context, boardID, sprintID int64) error {
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		e := r.db.GetEngine(ctx)
		if _, err := e.Exec(
			"UPDATE ticket SET sprint_id = NULL, updated_at = ? WHERE sprint_id = ? AND board_id = ?",
			now(), sprintID, boardID,
		); err != nil {
			return err
		}

		n, err := e.Where("id = ? AND board_id = ?", sprintID, boardID).Delete(new(sprintRow))
		if err != nil {
			return err
		}
		return affected(n, "sprint", sprintID)
	})
	return storeerr.Translate(err)
}

// translateSprintErr reports the partial unique index on ACTIVE sprints as
// board.ErrActiveSprintExists. It is the only unique constraint on sprint.
func translateSprintErr(err error) error {
	if storeerr.Classify(err).Signal == storeerr.SignalUniqueViolation {
		return board.ErrActiveSprintExists
	}
	return storeerr.Translate(err)
}
