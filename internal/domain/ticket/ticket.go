// Package ticket defines tickets, their sub-ticket tree and their comments.
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
)

// MaxTitleLength bounds ticket titles.
const MaxTitleLength = 200

// Ticket is a unit of work on a board. A ticket with a nil SprintID sits
// in the board's backlog. ParentID links it into the board's sub-ticket
// tree.
type Ticket struct {
	ID          int64
	BoardID     int64
	SprintID    *int64
	ParentID    *int64
	Type        Type
	Status      Status
	Title       string
	Description string
	CreatorID   int64
	AssigneeID  *int64

	Labels      []board.Label
	AssigneeIDs []int64
	ReviewerIDs []int64

	SubTicketCount int
	CommentCount   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InBacklog reports whether the ticket is outside every sprint.
func (t *Ticket) InBacklog() bool {
	return t.SprintID == nil
}

// Validate checks business rules for the Ticket entity.
func (t *Ticket) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(t.Title)
	switch {
	case title == "":
		fields["title"] = domain.MsgRequired
	case utf8.RuneCountInString(title) > MaxTitleLength:
		fields["title"] = fmt.Sprintf("must be at most %d characters", MaxTitleLength)
	}
	if !t.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", t.Type)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.SprintID != nil && *t.SprintID <= 0 {
		fields["sprint_id"] = fmt.Sprintf("must be positive, got %d", *t.SprintID)
	}
	if t.ParentID != nil && *t.ParentID <= 0 {
		fields["parent_id"] = fmt.Sprintf("must be positive, got %d", *t.ParentID)
	}
	if t.AssigneeID != nil && *t.AssigneeID <= 0 {
		fields["assignee_id"] = fmt.Sprintf("must be positive, got %d", *t.AssigneeID)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch carries the optional fields of a ticket update. Nil fields are left
// unchanged; ClearAssignee removes the direct assignee.
type Patch struct {
	Title         *string
	Description   *string
	Type          *Type
	Status        *Status
	AssigneeID    *int64
	ClearAssignee bool
}

// Apply writes the patch onto t, enforcing status transitions, and
// validates the result.
func (p Patch) Apply(t *Ticket) error {
	if p.Status != nil && !CanTransition(t.Status, *p.Status) {
		return &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("cannot move from %s to %s", t.Status, *p.Status),
		}}
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	switch {
	case p.ClearAssignee:
		t.AssigneeID = nil
	case p.AssigneeID != nil:
		t.AssigneeID = p.AssigneeID
	}
	return t.Validate()
}
