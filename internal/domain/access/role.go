// Package access holds the board role hierarchy and the access gate that
// every mutating operation passes through before touching storage.
package access

import (
	"fmt"
	"strings"
)

// Role is a board member's role. Roles are totally ordered by Rank.
type Role uint8

const (
	// AnyMember is the requirement used by operations open to every member
	// of the board. It is not a role a member can hold.
	AnyMember Role = iota

	RoleViewer
	RoleMember
	RoleAdmin
	RoleOwner
)

// Roles lists the assignable roles from least to most privileged.
var Roles = []Role{RoleViewer, RoleMember, RoleAdmin, RoleOwner}

// Rank returns the position of r in the hierarchy: VIEWER=0, MEMBER=1,
// ADMIN=2, OWNER=3. Values outside the hierarchy rank -1.
func Rank(r Role) int {
	switch r {
	case RoleViewer:
		return 0
	case RoleMember:
		return 1
	case RoleAdmin:
		return 2
	case RoleOwner:
		return 3
	default:
		return -1
	}
}

// Satisfies reports whether a member holding actual may perform an
// operation that requires required. AnyMember is satisfied by every valid
// role.
func Satisfies(actual, required Role) bool {
	if !actual.IsValid() {
		return false
	}
	if required == AnyMember {
		return true
	}
	return Rank(actual) >= Rank(required)
}

// IsValid returns true if r is one of the four assignable roles.
func (r Role) IsValid() bool {
	return Rank(r) >= 0
}

// String implements fmt.Stringer using the wire names.
func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "VIEWER"
	case RoleMember:
		return "MEMBER"
	case RoleAdmin:
		return "ADMIN"
	case RoleOwner:
		return "OWNER"
	case AnyMember:
		return "ANY"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// ParseRole converts a wire name into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VIEWER":
		return RoleViewer, nil
	case "MEMBER":
		return RoleMember, nil
	case "ADMIN":
		return RoleAdmin, nil
	case "OWNER":
		return RoleOwner, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}
