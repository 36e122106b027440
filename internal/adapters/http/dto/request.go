package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgPositive     = "must be a positive id"
)

func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// --- Boards ---

// BoardNameRequest is the JSON body for creating or renaming a board.
type BoardNameRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is present.
func (r *BoardNameRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	return validationResult(fields)
}

// AddMemberRequest is the JSON body for adding a board member.
type AddMemberRequest struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// Validate checks the user id and role.
func (r *AddMemberRequest) Validate() error {
	fields := make(map[string]string)
	if r.UserID <= 0 {
		fields["user_id"] = msgPositive
	}
	if _, err := access.ParseRole(r.Role); err != nil {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}
	return validationResult(fields)
}

// ParsedRole returns the validated role.
func (r *AddMemberRequest) ParsedRole() access.Role {
	role, _ := access.ParseRole(r.Role)
	return role
}

// ChangeRoleRequest is the JSON body for changing a member's role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// Validate checks the role.
func (r *ChangeRoleRequest) Validate() error {
	fields := make(map[string]string)
	if _, err := access.ParseRole(r.Role); err != nil {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}
	return validationResult(fields)
}

// ParsedRole returns the validated role.
func (r *ChangeRoleRequest) ParsedRole() access.Role {
	role, _ := access.ParseRole(r.Role)
	return role
}

// CreateLabelRequest is the JSON body for creating a label. Color is
// optional and defaults to a neutral grey.
type CreateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Validate checks that the name is present.
func (r *CreateLabelRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	return validationResult(fields)
}

// ToDomain maps the request to a label.
func (r *CreateLabelRequest) ToDomain() *board.Label {
	return &board.Label{Name: strings.TrimSpace(r.Name), Color: r.Color}
}

// --- Sprints ---

// CreateSprintRequest is the JSON body for creating a sprint.
type CreateSprintRequest struct {
	Name     string     `json:"name"`
	Goal     string     `json:"goal,omitempty"`
	Status   string     `json:"status,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// Validate checks required fields and the status value.
func (r *CreateSprintRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Status != "" && !board.SprintStatus(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	return validationResult(fields)
}

// ToDomain maps the request to a sprint.
func (r *CreateSprintRequest) ToDomain() *board.Sprint {
	return &board.Sprint{
		Name:     r.Name,
		Goal:     r.Goal,
		Status:   board.SprintStatus(r.Status),
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}

// UpdateSprintRequest is the JSON body for updating a sprint.
// All fields are optional; nil means "do not change this field.".
type UpdateSprintRequest struct {
	Name     *string    `json:"name,omitempty"`
	Goal     *string    `json:"goal,omitempty"`
	Status   *string    `json:"status,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateSprintRequest) Validate() error {
	fields := make(map[string]string)
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Status != nil && !board.SprintStatus(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	return validationResult(fields)
}

// ToPatch maps the request to a sprint patch.
func (r *UpdateSprintRequest) ToPatch() board.SprintPatch {
	p := board.SprintPatch{
		Name:     r.Name,
		Goal:     r.Goal,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
	if r.Status != nil {
		s := board.SprintStatus(*r.Status)
		p.Status = &s
	}
	return p
}

// BulkMoveRequest is the JSON body for moving tickets into a sprint.
type BulkMoveRequest struct {
	TicketIDs []int64 `json:"ticket_ids"`
}

// Validate checks that ids are present and positive. The upper bound is
// enforced by the service.
func (r *BulkMoveRequest) Validate() error {
	fields := make(map[string]string)
	if len(r.TicketIDs) == 0 {
		fields["ticket_ids"] = msgRequired
	}
	for i, id := range r.TicketIDs {
		if id <= 0 {
			fields[fmt.Sprintf("ticket_ids[%d]", i)] = msgPositive
		}
	}
	return validationResult(fields)
}

// --- Tickets ---

// CreateTicketRequest is the JSON body for creating a ticket. New tickets
// always start in TODO; type defaults to ISSUE.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	SprintID    *int64 `json:"sprint_id,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	AssigneeID  *int64 `json:"assignee_id,omitempty"`
}

// Validate checks required fields and the type value.
func (r *CreateTicketRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.Type != "" && !ticket.Type(r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", r.Type)
	}
	checkOptionalID(fields, "sprint_id", r.SprintID)
	checkOptionalID(fields, "parent_id", r.ParentID)
	checkOptionalID(fields, "assignee_id", r.AssigneeID)
	return validationResult(fields)
}

// ToDomain maps the request to a ticket.
func (r *CreateTicketRequest) ToDomain() *ticket.Ticket {
	return &ticket.Ticket{
		Title:       r.Title,
		Description: r.Description,
		Type:        ticket.Type(r.Type),
		SprintID:    r.SprintID,
		ParentID:    r.ParentID,
		AssigneeID:  r.AssigneeID,
	}
}

// UpdateTicketRequest is the JSON body for updating a ticket.
// All fields are optional; nil means "do not change this field.".
// ClearAssignee removes the direct assignee.
type UpdateTicketRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Type          *string `json:"type,omitempty"`
	Status        *string `json:"status,omitempty"`
	AssigneeID    *int64  `json:"assignee_id,omitempty"`
	ClearAssignee bool    `json:"clear_assignee,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateTicketRequest) Validate() error {
	fields := make(map[string]string)
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Type != nil && !ticket.Type(*r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", *r.Type)
	}
	if r.Status != nil && !ticket.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	checkOptionalID(fields, "assignee_id", r.AssigneeID)
	if r.ClearAssignee && r.AssigneeID != nil {
		fields["clear_assignee"] = "cannot be combined with assignee_id"
	}
	return validationResult(fields)
}

// ToPatch maps the request to a ticket patch.
func (r *UpdateTicketRequest) ToPatch() ticket.Patch {
	p := ticket.Patch{
		Title:         r.Title,
		Description:   r.Description,
		AssigneeID:    r.AssigneeID,
		ClearAssignee: r.ClearAssignee,
	}
	if r.Type != nil {
		t := ticket.Type(*r.Type)
		p.Type = &t
	}
	if r.Status != nil {
		s := ticket.Status(*r.Status)
		p.Status = &s
	}
	return p
}

// MoveTicketRequest is the JSON body for moving a ticket. A null or
// missing sprint_id moves the ticket to the backlog.
type MoveTicketRequest struct {
	SprintID *int64 `json:"sprint_id"`
}

// Validate checks the sprint id when present.
func (r *MoveTicketRequest) Validate() error {
	fields := make(map[string]string)
	checkOptionalID(fields, "sprint_id", r.SprintID)
	return validationResult(fields)
}

// SetParentRequest is the JSON body for re-parenting a ticket. A null or
// missing parent_id detaches it.
type SetParentRequest struct {
	ParentID *int64 `json:"parent_id"`
}

// Validate checks the parent id when present.
func (r *SetParentRequest) Validate() error {
	fields := make(map[string]string)
	checkOptionalID(fields, "parent_id", r.ParentID)
	return validationResult(fields)
}

// CommentRequest is the JSON body for adding or editing a comment.
type CommentRequest struct {
	Body string `json:"body"`
}

// Validate checks that the body is present.
func (r *CommentRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Body) == "" {
		fields["body"] = msgRequired
	}
	return validationResult(fields)
}

func checkOptionalID(fields map[string]string, name string, id *int64) {
	if id != nil && *id <= 0 {
		fields[name] = msgPositive
	}
}
