package ports

import (
	"context"
	"errors"
)

// ErrDegraded is wrapped by a check that still serves traffic but is
// recovering, such as a client whose circuit breaker is half-open. Readiness
// reports it without taking the instance out of rotation.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports whether a dependency the service needs to answer
// requests is usable. The store and the session introspection client
// implement it.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "database".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers behind GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the outcome by
	// checker name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
