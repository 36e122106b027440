package storeerr

import (
	"errors"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// Messages returned for translated storage failures.
const (
	MsgUniqueViolation     = "a record with this value already exists"
	MsgForeignKeyViolation = "foreign key constraint failed"
	MsgRelationViolation   = "relation violation"
	MsgValidation          = "invalid data provided"
	MsgWriteConflict       = "the record was changed by another request, retry"
	MsgUnexpected          = "an unexpected error occurred"
)

type translation func(c Classification, err error) error

// translations is the signal to kind table. Every Signal has an entry.
var translations = map[Signal]translation{
	SignalUniqueViolation: func(_ Classification, err error) error {
		return &domain.Error{Kind: domain.KindConflict, Message: MsgUniqueViolation, Cause: err}
	},
	SignalMissingRow: func(_ Classification, err error) error {
		msg := "record not found"
		var missing *MissingRowError
		if errors.As(err, &missing) {
			msg = missing.Error()
		}
		return &domain.Error{Kind: domain.KindNotFound, Message: msg, Cause: err}
	},
	SignalForeignKeyViolation: func(_ Classification, err error) error {
		return &domain.Error{Kind: domain.KindBadRequest, Message: MsgForeignKeyViolation, Cause: err}
	},
	SignalRelationViolation: func(_ Classification, err error) error {
		return &domain.Error{Kind: domain.KindBadRequest, Message: MsgRelationViolation, Cause: err}
	},
	SignalValidation: func(_ Classification, err error) error {
		return &domain.Error{Kind: domain.KindBadRequest, Message: MsgValidation, Cause: err}
	},
	SignalWriteConflict: func(_ Classification, err error) error {
		return &domain.Error{Kind: domain.KindConflict, Message: MsgWriteConflict, Cause: err}
	},
	SignalUncategorized: func(c Classification, err error) error {
		return domain.Internal(err, "storage error %s", c.Code)
	},
	SignalUnknown: func(_ Classification, err error) error {
		return domain.Internal(err, MsgUnexpected)
	},
}

// Translate converts a storage failure into a domain error. Errors that
// already belong to the taxonomy are returned unchanged, so Translate is
// idempotent. A nil error translates to nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsDomainError(err) {
		return err
	}

	c := Classify(err)
	fn, ok := translations[c.Signal]
	if !ok {
		fn = translations[SignalUnknown]
	}
	return fn(c, err)
}
