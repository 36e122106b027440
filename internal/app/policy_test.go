package app

import (
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
)

func TestRequiredRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   Operation
		want access.Role
	}{
		{OpViewBoard, access.AnyMember},
		{OpLeaveBoard, access.AnyMember},
		{OpWriteTicket, access.RoleMember},
		{OpComment, access.RoleMember},
		{OpEditComment, access.RoleMember},
		{OpRenameBoard, access.RoleAdmin},
		{OpManageMembers, access.RoleAdmin},
		{OpManageLabels, access.RoleAdmin},
		{OpManageSprints, access.RoleAdmin},
		{OpBulkMove, access.RoleAdmin},
		{OpDeleteTicket, access.RoleAdmin},
		{OpModerateComment, access.RoleAdmin},
		{OpDeleteBoard, access.RoleOwner},
		{OpManageOwners, access.RoleOwner},
		{Operation("no.such.op"), access.RoleOwner},
	}

	for _, tc := range tests {
		t.Run(string(tc.op), func(t *testing.T) {
			t.Parallel()
			if got := RequiredRole(tc.op); got != tc.want {
				t.Errorf("RequiredRole(%q) = %s, want %s", tc.op, got, tc.want)
			}
		})
	}
}
