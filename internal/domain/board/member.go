package board

import (
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
)

// ErrLastOwner is returned when a change would leave a board without an
// OWNER.
var ErrLastOwner = domain.Conflict("a board must keep at least one owner")

// Member is a user's membership on a board, joined with display fields.
type Member struct {
	BoardID   int64
	UserID    int64
	Role      access.Role
	UserName  string
	UserEmail string
	JoinedAt  time.Time
}

// Validate checks business rules for the Member entity.
func (m *Member) Validate() error {
	fields := make(map[string]string)

	if m.UserID <= 0 {
		fields["user_id"] = domain.MsgRequired
	}
	if !m.Role.IsValid() {
		fields["role"] = "must be one of VIEWER, MEMBER, ADMIN, OWNER"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RoleChangeRequirement returns the role the actor must hold to move a
// member from current to next. Anything touching OWNER needs OWNER;
// everything else needs ADMIN. A zero current means the member is new.
func RoleChangeRequirement(current, next access.Role) access.Role {
	if current == access.RoleOwner || next == access.RoleOwner {
		return access.RoleOwner
	}
	return access.RoleAdmin
}
