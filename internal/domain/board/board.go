// Package board defines boards and the things scoped to a single board:
// its backlog, members, sprints and labels.
package board

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// MaxNameLength bounds board, sprint and label names.
const MaxNameLength = 100

// Board is the root of the workflow model. Deleting a board removes its
// backlog, sprints, tickets, labels and memberships.
type Board struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Backlog is the board's singleton holding area for tickets outside any
// sprint. It is created with the board and never deleted on its own.
type Backlog struct {
	ID        int64
	BoardID   int64
	CreatedAt time.Time
}

// Validate checks business rules for the Board entity.
func (b *Board) Validate() error {
	fields := make(map[string]string)

	if msg := checkName(b.Name); msg != "" {
		fields["name"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.MsgRequired
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return fmt.Sprintf("must be at most %d characters, got %d", MaxNameLength, n)
	}
	return ""
}
