package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failure for callers. Every error that leaves the
// application layer resolves to exactly one Kind.
type Kind uint8

// Error kinds. The zero value is KindInternal so an unclassified error is
// never mistaken for a displayable one.
const (
	KindInternal Kind = iota
	KindForbidden
	KindNotFound
	KindConflict
	KindBadRequest
)

// Sentinel errors for errors.Is() checking. Each one stands for a Kind.
var (
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
)

// String returns the wire name of the kind (e.g. "NOT_FOUND").
func (k Kind) String() string {
	switch k {
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL"
	}
}

// Displayable reports whether the message of an error of this kind may be
// shown to the caller verbatim.
func (k Kind) Displayable() bool {
	return k != KindInternal
}

func (k Kind) sentinel() error {
	switch k {
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	case KindBadRequest:
		return ErrBadRequest
	default:
		return ErrInternal
	}
}

// Error is the single error shape surfaced to callers of the application
// layer. Message is safe to display for every kind except KindInternal.
// Cause keeps the underlying failure for logging and is never rendered.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for the error's kind, so errors.Is(err,
// ErrNotFound) works on any *Error of KindNotFound.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// Forbidden returns a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// BadRequest returns a KindBadRequest error.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Internal returns a KindInternal error carrying cause.
func Internal(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// MsgRequired is the field message for a missing mandatory value.
const MsgRequired = "required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrBadRequest) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

// IsDomainError reports whether err already belongs to the taxonomy.
func IsDomainError(err error) bool {
	var de *Error
	if errors.As(err, &de) {
		return true
	}
	var verr *ValidationError
	return errors.As(err, &verr)
}

// KindOf returns the kind of err. Errors outside the taxonomy are
// KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	switch {
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	default:
		return KindInternal
	}
}
