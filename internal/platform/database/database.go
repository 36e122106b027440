// Package database owns the relational store connection: it opens the xorm
// engine from configuration, applies the embedded schema, carries
// transactions through context.Context and reports store health.
//
// Repositories never hold the engine directly. They call GetEngine(ctx) so
// that work started inside WithTx joins the surrounding transaction.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	// Drivers register themselves with database/sql.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"xorm.io/xorm"
	"xorm.io/xorm/names"

	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
)

// healthCheckName identifies the store in readiness reports.
const healthCheckName = "database"

// DB wraps the xorm engine.
type DB struct {
	engine *xorm.Engine
	driver string
	logger *slog.Logger
}

// Open creates the engine for cfg and verifies the connection. SQLite is
// limited to a single open connection so writers queue instead of failing
// with SQLITE_BUSY.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	engine, err := xorm.NewEngine(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s engine: %w", cfg.Driver, err)
	}

	engine.SetMapper(names.GonicMapper{})
	engine.SetLogger(NewXORMLogger(logger, cfg.ShowSQL))
	engine.ShowSQL(cfg.ShowSQL)
	engine.DatabaseTZ = time.UTC
	engine.TZLocation = time.UTC

	if cfg.Driver == config.DriverSQLite {
		engine.SetMaxOpenConns(1)
	} else {
		engine.SetMaxOpenConns(cfg.MaxOpenConns)
		engine.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		engine.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := engine.PingContext(ctx); err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("pinging %s: %w", cfg.Driver, err)
	}

	logger.Info("database connected", slog.String("driver", cfg.Driver))

	return &DB{engine: engine, driver: cfg.Driver, logger: logger}, nil
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Close releases the underlying connections.
func (db *DB) Close() error {
	return db.engine.Close()
}

// Name returns the health check identifier.
func (db *DB) Name() string {
	return healthCheckName
}

// HealthCheck pings the store.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.engine.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", healthCheckName, err)
	}
	return nil
}
