package store

import (
	"context"
	"strings"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertUser returns the user for p.Subject, inserting it on first sight.
// Two requests racing on a new subject both end up with the same row: the
// loser's insert hits the unique index and it reads the winner's row.
func (r *UserRepository) UpsertUser(ctx context.Context, p user.Principal) (*user.User, error) {
	u, err := r.upsert(ctx, p)
	if err != nil && storeerr.Classify(err).Signal == storeerr.SignalUniqueViolation {
		u, err = r.upsert(ctx, p)
	}
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return u, nil
}

func (r *UserRepository) upsert(ctx context.Context, p user.Principal) (*user.User, error) {
	var out *user.User
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		e := r.db.GetEngine(ctx)

		row := new(userRow)
		has, err := e.Where("external_id = ?", p.Subject).Get(row)
		if err != nil {
			return err
		}

		// Profile hints only overwrite stored values when the principal
		// carries them.
		name := strings.TrimSpace(p.Name)
		switch {
		case !has:
			row = &userRow{ExternalID: p.Subject, Name: p.DisplayName(), Email: p.Email}
			if _, err := e.Insert(row); err != nil {
				return err
			}
		case (name != "" && row.Name != name) || (p.Email != "" && row.Email != p.Email):
			if name != "" {
				row.Name = name
			}
			if p.Email != "" {
				row.Email = p.Email
			}
			if _, err := e.ID(row.ID).Cols("name", "email").Update(row); err != nil {
				return err
			}
		}

		out = row.toDomain()
		return nil
	})
	return out, err
}

// GetUser returns the user with id.
func (r *UserRepository) GetUser(ctx context.Context, id int64) (*user.User, error) {
	row := new(userRow)
	has, err := r.db.GetEngine(ctx).ID(id).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("user", id))
	}
	return row.toDomain(), nil
}
