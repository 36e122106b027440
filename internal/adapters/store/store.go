// Package store implements the repository ports on top of xorm.
//
// Repositories fetch their engine with database.DB.GetEngine(ctx) so every
// call joins a transaction started further up the stack. Every error is
// passed through storeerr.Translate before it is returned; nothing outside
// this package sees a driver error.
package store

import (
	"context"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
)

// lockBoard serializes writes that depend on a board-wide count, such as
// the number of owners. SQLite already runs every write on one connection.
func lockBoard(ctx context.Context, db *database.DB, boardID int64) error {
	if db.Driver() != config.DriverPostgres {
		return nil
	}
	var id int64
	has, err := db.GetEngine(ctx).SQL("SELECT id FROM board WHERE id = ? FOR UPDATE", boardID).Get(&id)
	if err != nil {
		return err
	}
	if !has {
		return storeerr.MissingRow("board", boardID)
	}
	return nil
}

// affected turns a zero row count into a missing-row error for entity.
func affected(n int64, entity string, id int64) error {
	if n == 0 {
		return storeerr.MissingRow(entity, id)
	}
	return nil
}
