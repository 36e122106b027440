package app

import (
	"context"
	"fmt"

	appctx "github.com/jsamuelsen11/sprintboard/internal/app/context"
	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// guard resolves the actor's membership and runs the access gate. The
// lookup is memoized for the request only, so a role change is seen by the
// next request.
type guard struct {
	boards  ports.BoardRepository
	metrics *telemetry.Metrics
}

// requiredAuthor labels denials of author-only operations.
const requiredAuthor = "AUTHOR"

func membershipKey(boardID, userID int64) string {
	return fmt.Sprintf("membership:%d:%d", boardID, userID)
}

func (g guard) membership(ctx context.Context, boardID, userID int64) (*access.Membership, error) {
	return appctx.GetOrFetch(ctx, membershipKey(boardID, userID), func(ctx context.Context) (*access.Membership, error) {
		return g.boards.GetMembership(ctx, boardID, userID)
	})
}

// authorize checks that actor may perform op on boardID and returns the
// actor's membership.
func (g guard) authorize(ctx context.Context, actor, boardID int64, op Operation) (*access.Membership, error) {
	return g.require(ctx, actor, boardID, op, RequiredRole(op))
}

// require is authorize with an explicit role, for checks whose requirement
// depends on the target of op.
func (g guard) require(ctx context.Context, actor, boardID int64, op Operation, role access.Role) (*access.Membership, error) {
	m, err := g.membership(ctx, boardID, actor)
	if err != nil {
		return nil, err
	}
	if err := g.check(ctx, m, op, role); err != nil {
		return nil, err
	}
	return m, nil
}

// check runs the gate on a membership already resolved for this request.
func (g guard) check(ctx context.Context, m *access.Membership, op Operation, role access.Role) error {
	if err := access.Authorize(m, role); err != nil {
		g.metrics.RecordAccessDenied(ctx, string(op), role.String())
		return err
	}
	return nil
}

// requireAuthor rejects op unless m belongs to authorID.
func (g guard) requireAuthor(ctx context.Context, m *access.Membership, op Operation, authorID int64) error {
	if err := access.AuthorizeAuthor(m, authorID); err != nil {
		g.metrics.RecordAccessDenied(ctx, string(op), requiredAuthor)
		return err
	}
	return nil
}

// requireMember rejects userID as the target of an assignment when it is
// not a member of boardID.
func (g guard) requireMember(ctx context.Context, boardID, userID int64) error {
	m, err := g.membership(ctx, boardID, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.BadRequest("user %d is not a member of this board", userID)
	}
	return nil
}

// forget drops memoized memberships of boardID after a membership write.
func (g guard) forget(ctx context.Context, boardID int64) {
	appctx.Invalidate(ctx, fmt.Sprintf("membership:%d:", boardID))
}
