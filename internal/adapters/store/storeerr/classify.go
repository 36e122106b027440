// Package storeerr translates relational store failures into the domain
// error taxonomy. It is the only code that inspects driver error shapes;
// repositories pass every storage error through Translate before
// returning it.
package storeerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Signal is a driver-independent category of storage failure.
type Signal uint8

const (
	// SignalUnknown is anything the classifier does not recognize.
	SignalUnknown Signal = iota
	SignalUniqueViolation
	SignalMissingRow
	SignalForeignKeyViolation
	SignalRelationViolation
	SignalValidation
	SignalWriteConflict
	// SignalUncategorized is a recognized storage error whose code has no
	// dedicated category.
	SignalUncategorized
)

func (s Signal) String() string {
	switch s {
	case SignalUniqueViolation:
		return "unique-violation"
	case SignalMissingRow:
		return "missing-row"
	case SignalForeignKeyViolation:
		return "foreign-key-violation"
	case SignalRelationViolation:
		return "relation-violation"
	case SignalValidation:
		return "validation-error"
	case SignalWriteConflict:
		return "write-conflict"
	case SignalUncategorized:
		return "uncategorized"
	default:
		return "unknown"
	}
}

// Classification is the outcome of inspecting a storage error. Code is the
// driver's own error code when there is one.
type Classification struct {
	Signal Signal
	Code   string
}

// MissingRowError reports that a mutation or lookup matched no row.
// Repositories return it when an update or delete affects zero rows.
type MissingRowError struct {
	Entity string
	ID     int64
}

func (e *MissingRowError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// MissingRow returns a *MissingRowError for entity and id.
func MissingRow(entity string, id int64) error {
	return &MissingRowError{Entity: entity, ID: id}
}

// Postgres SQLSTATE codes the classifier knows about.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqRestrictViolation   = "23001"
	pqNotNullViolation    = "23502"
	pqCheckViolation      = "23514"
	pqSerialization       = "40001"
	pqDeadlock            = "40P01"
	pqDataExceptionClass  = "22"
)

// Classify maps err onto a Signal by inspecting the driver error shapes
// this service can produce.
func Classify(err error) Classification {
	var missing *MissingRowError
	if errors.As(err, &missing) || errors.Is(err, sql.ErrNoRows) {
		return Classification{Signal: SignalMissingRow}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyPostgres(pqErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(liteErr)
	}

	return Classification{Signal: SignalUnknown}
}

func classifyPostgres(e *pq.Error) Classification {
	code := string(e.Code)
	c := Classification{Code: code}

	switch {
	case code == pqUniqueViolation:
		c.Signal = SignalUniqueViolation
	case code == pqForeignKeyViolation:
		// A delete blocked by a referencing row reports 23503 too; the
		// message is the only way to tell it from a dangling insert.
		if strings.HasPrefix(e.Message, "update or delete on table") {
			c.Signal = SignalRelationViolation
		} else {
			c.Signal = SignalForeignKeyViolation
		}
	case code == pqRestrictViolation:
		c.Signal = SignalRelationViolation
	case code == pqNotNullViolation, code == pqCheckViolation:
		c.Signal = SignalValidation
	case e.Code.Class() == pqDataExceptionClass:
		c.Signal = SignalValidation
	case code == pqSerialization, code == pqDeadlock:
		c.Signal = SignalWriteConflict
	default:
		c.Signal = SignalUncategorized
	}
	return c
}

func classifySQLite(e sqlite3.Error) Classification {
	c := Classification{Code: fmt.Sprintf("sqlite:%d", int(e.ExtendedCode))}

	switch e.Code {
	case sqlite3.ErrConstraint:
		switch e.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			c.Signal = SignalUniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			c.Signal = SignalForeignKeyViolation
		case sqlite3.ErrConstraintTrigger:
			c.Signal = SignalRelationViolation
		case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
			c.Signal = SignalValidation
		default:
			c.Signal = SignalUncategorized
		}
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		c.Signal = SignalWriteConflict
	case sqlite3.ErrMismatch, sqlite3.ErrTooBig, sqlite3.ErrRange:
		c.Signal = SignalValidation
	default:
		c.Signal = SignalUncategorized
	}
	return c
}
