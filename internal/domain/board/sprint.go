package board

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// SprintStatus is the lifecycle state of a Sprint.
type SprintStatus string

const (
	SprintPlanned   SprintStatus = "PLANNED"
	SprintActive    SprintStatus = "ACTIVE"
	SprintCompleted SprintStatus = "COMPLETED"
)

// IsValid returns true if the status is one of the defined constants.
func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintPlanned, SprintActive, SprintCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s SprintStatus) String() string {
	return string(s)
}

// ErrActiveSprintExists is returned when a second sprint on a board is
// started while another is still active.
var ErrActiveSprintExists = domain.Conflict("another sprint on this board is already active")

// Sprint is a time-boxed container of tickets from one board. Deleting a
// sprint returns its tickets to the backlog.
type Sprint struct {
	ID        int64
	BoardID   int64
	Name      string
	Goal      string
	Status    SprintStatus
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Sprint entity.
func (s *Sprint) Validate() error {
	fields := make(map[string]string)

	if msg := checkName(s.Name); msg != "" {
		fields["name"] = msg
	}
	if !s.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", s.Status)
	}
	if s.StartsAt != nil && s.EndsAt != nil && !s.EndsAt.After(*s.StartsAt) {
		fields["ends_at"] = "must be after starts_at"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SprintPatch carries the optional fields of a sprint update. Nil fields
// are left unchanged.
type SprintPatch struct {
	Name     *string
	Goal     *string
	Status   *SprintStatus
	StartsAt *time.Time
	EndsAt   *time.Time
}

// Apply writes the patch onto s and validates the result.
func (p SprintPatch) Apply(s *Sprint) error {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Goal != nil {
		s.Goal = *p.Goal
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.StartsAt != nil {
		s.StartsAt = p.StartsAt
	}
	if p.EndsAt != nil {
		s.EndsAt = p.EndsAt
	}
	return s.Validate()
}
