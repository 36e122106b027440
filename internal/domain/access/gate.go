package access

import "github.com/jsamuelsen11/sprintboard/internal/domain"

// MsgNoAccess is the rejection message for callers with no membership on
// the board.
const MsgNoAccess = "no access to this board"

// Membership is a resolved board membership for one user.
type Membership struct {
	BoardID int64
	UserID  int64
	Role    Role
}

// Authorize decides whether membership allows an operation that requires
// required. A nil membership is always rejected, whatever the requirement.
// Pass AnyMember when any membership suffices.
//
// Authorize and AuthorizeAuthor perform no I/O and are the only producers
// of KindForbidden errors.
func Authorize(m *Membership, required Role) error {
	if m == nil {
		return domain.Forbidden(MsgNoAccess)
	}
	if !Satisfies(m.Role, required) {
		return domain.Forbidden("this action requires the %s role", required)
	}
	return nil
}

// AuthorizeAuthor decides whether membership allows an operation reserved
// to the author of the target, such as editing a comment. A nil membership
// is rejected like in Authorize.
func AuthorizeAuthor(m *Membership, authorID int64) error {
	if m == nil {
		return domain.Forbidden(MsgNoAccess)
	}
	if m.UserID != authorID {
		return domain.Forbidden("only the author may do this")
	}
	return nil
}
