package app

import "github.com/jsamuelsen11/sprintboard/internal/domain/access"

// Operation names a board-scoped action for the policy table.
type Operation string

// Board-scoped operations.
const (
	OpViewBoard       Operation = "board.view"
	OpRenameBoard     Operation = "board.rename"
	OpDeleteBoard     Operation = "board.delete"
	OpManageMembers   Operation = "member.manage"
	OpManageOwners    Operation = "member.manage_owner"
	OpLeaveBoard      Operation = "member.leave"
	OpManageLabels    Operation = "label.manage"
	OpManageSprints   Operation = "sprint.manage"
	OpBulkMove        Operation = "sprint.bulk_move"
	OpWriteTicket     Operation = "ticket.write"
	OpDeleteTicket    Operation = "ticket.delete"
	OpComment         Operation = "comment.write"
	OpEditComment     Operation = "comment.edit"
	OpModerateComment Operation = "comment.moderate"
)

// policy is the minimum role per operation. Role comparison itself lives in
// access.Satisfies.
var policy = map[Operation]access.Role{
	OpViewBoard:       access.AnyMember,
	OpLeaveBoard:      access.AnyMember,
	OpWriteTicket:     access.RoleMember,
	OpComment:         access.RoleMember,
	OpEditComment:     access.RoleMember,
	OpRenameBoard:     access.RoleAdmin,
	OpManageMembers:   access.RoleAdmin,
	OpManageLabels:    access.RoleAdmin,
	OpManageSprints:   access.RoleAdmin,
	OpBulkMove:        access.RoleAdmin,
	OpDeleteTicket:    access.RoleAdmin,
	OpModerateComment: access.RoleAdmin,
	OpDeleteBoard:     access.RoleOwner,
	OpManageOwners:    access.RoleOwner,
}

// RequiredRole returns the minimum role for op. Unknown operations require
// OWNER.
func RequiredRole(op Operation) access.Role {
	if role, ok := policy[op]; ok {
		return role
	}
	return access.RoleOwner
}
