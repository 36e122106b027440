package ports

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
)

// ErrUnauthenticated is returned by a PrincipalResolver when the request
// carries no valid credentials. The HTTP layer answers it with 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// PrincipalResolver extracts the authenticated principal from an inbound
// request. How the session was established is the resolver's concern.
type PrincipalResolver interface {
	// Resolve returns ErrUnauthenticated (possibly wrapped) when the request
	// has no usable credentials. Other errors are infrastructure failures.
	Resolve(r *http.Request) (*user.Principal, error)
}
