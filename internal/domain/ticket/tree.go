package ticket

import (
	"slices"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// MaxDepth bounds the sub-ticket tree. A root ticket has depth 1.
const MaxDepth = 16

// CheckParent validates making parent the parent of child. ancestors is
// the parent's ancestor chain, nearest first, not including parent itself.
// height is the number of levels below child, 0 for a leaf. The deepest
// ticket of the moved subtree must stay within MaxDepth.
// A nil parent detaches the child and is always allowed.
func CheckParent(child, parent *Ticket, ancestors []int64, height int) error {
	if parent == nil {
		return nil
	}
	if parent.ID == child.ID {
		return domain.BadRequest("a ticket cannot be its own parent")
	}
	if parent.BoardID != child.BoardID {
		return domain.BadRequest("parent ticket must be on the same board")
	}
	if slices.Contains(ancestors, child.ID) {
		return domain.BadRequest("ticket %d is an ancestor of ticket %d", child.ID, parent.ID)
	}
	if len(ancestors)+2+height > MaxDepth {
		return domain.BadRequest("sub-tickets may be nested at most %d levels deep", MaxDepth)
	}
	return nil
}
