package database_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=1&_busy_timeout=5000",
	}

	db, err := database.Open(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	return db
}

type userRow struct {
	ID         int64 `xorm:"pk autoincr"`
	ExternalID string
	Name       string
	Email      string
	CreatedAt  string
	UpdatedAt  string
}

func (userRow) TableName() string { return "app_user" }

func countUsers(t *testing.T, db *database.DB) int64 {
	t.Helper()

	n, err := db.GetEngine(context.Background()).Count(new(userRow))
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	return n
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate() error: %v", err)
	}
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(ctx context.Context) error {
		if !database.InTransaction(ctx) {
			t.Error("InTransaction() = false inside WithTx")
		}
		_, err := db.GetEngine(ctx).Insert(&userRow{
			ExternalID: "u-1", Name: "Ada",
			CreatedAt: "2026-01-01 00:00:00", UpdatedAt: "2026-01-01 00:00:00",
		})
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error: %v", err)
	}

	if got := countUsers(t, db); got != 1 {
		t.Errorf("users = %d, want 1", got)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := db.GetEngine(ctx).Insert(&userRow{
			ExternalID: "u-1", Name: "Ada",
			CreatedAt: "2026-01-01 00:00:00", UpdatedAt: "2026-01-01 00:00:00",
		}); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithTx() error = %v, want errBoom", err)
	}

	if got := countUsers(t, db); got != 0 {
		t.Errorf("users = %d, want 0 after rollback", got)
	}
}

func TestWithTx_RejectsNesting(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		return db.WithTx(ctx, func(context.Context) error { return nil })
	})
	if !errors.Is(err, database.ErrAlreadyInTransaction) {
		t.Errorf("nested WithTx() error = %v, want ErrAlreadyInTransaction", err)
	}
}

func TestAutoTx_JoinsOuterTransaction(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	errBoom := errors.New("boom")

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		if err := db.AutoTx(ctx, func(ctx context.Context) error {
			_, err := db.GetEngine(ctx).Insert(&userRow{
				ExternalID: "u-2", Name: "Grace",
				CreatedAt: "2026-01-01 00:00:00", UpdatedAt: "2026-01-01 00:00:00",
			})
			return err
		}); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithTx() error = %v, want errBoom", err)
	}

	if got := countUsers(t, db); got != 0 {
		t.Errorf("users = %d, want 0; inner AutoTx should roll back with the outer one", got)
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	if db.Name() != "database" {
		t.Errorf("Name() = %q, want database", db.Name())
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestOpen_BadDriver(t *testing.T) {
	t.Parallel()

	cfg := &config.DatabaseConfig{Driver: "nosuchdriver", DSN: "x"}
	if _, err := database.Open(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Fatal("Open() error = nil, want error for unknown driver")
	}
}
