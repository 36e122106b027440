package store

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/domain/access"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
)

// Row beans mirror the tables in platform/database/schema. Column names
// come from names.GonicMapper (BoardID -> board_id).

type userRow struct {
	ID         int64 `xorm:"pk autoincr"`
	ExternalID string
	Name       string
	Email      string
	CreatedAt  time.Time `xorm:"created"`
	UpdatedAt  time.Time `xorm:"updated"`
}

func (userRow) TableName() string { return "app_user" }

func (r *userRow) toDomain() *user.User {
	return &user.User{
		ID:         r.ID,
		ExternalID: r.ExternalID,
		Name:       r.Name,
		Email:      r.Email,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type boardRow struct {
	ID        int64 `xorm:"pk autoincr"`
	Name      string
	OwnerID   int64
	CreatedAt time.Time `xorm:"created"`
	UpdatedAt time.Time `xorm:"updated"`
}

func (boardRow) TableName() string { return "board" }

func (r *boardRow) toDomain() board.Board {
	return board.Board{
		ID:        r.ID,
		Name:      r.Name,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type backlogRow struct {
	ID        int64 `xorm:"pk autoincr"`
	BoardID   int64
	CreatedAt time.Time `xorm:"created"`
}

func (backlogRow) TableName() string { return "backlog" }

type memberRow struct {
	ID        int64 `xorm:"pk autoincr"`
	BoardID   int64
	UserID    int64
	Role      string
	CreatedAt time.Time `xorm:"created"`
}

func (memberRow) TableName() string { return "board_member" }

// memberView is a board_member row joined with its user.
type memberView struct {
	BoardID   int64
	UserID    int64
	Role      string
	CreatedAt time.Time
	UserName  string
	UserEmail string
}

func (v *memberView) toDomain() (board.Member, error) {
	role, err := access.ParseRole(v.Role)
	if err != nil {
		return board.Member{}, fmt.Errorf("board %d member %d: %w", v.BoardID, v.UserID, err)
	}
	return board.Member{
		BoardID:   v.BoardID,
		UserID:    v.UserID,
		Role:      role,
		UserName:  v.UserName,
		UserEmail: v.UserEmail,
		JoinedAt:  v.CreatedAt,
	}, nil
}

type sprintRow struct {
	ID        int64 `xorm:"pk autoincr"`
	BoardID   int64
	Name      string
	Goal      string
	Status    string
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time `xorm:"created"`
	UpdatedAt time.Time `xorm:"updated"`
}

func (sprintRow) TableName() string { return "sprint" }

func (r *sprintRow) toDomain() board.Sprint {
	return board.Sprint{
		ID:        r.ID,
		BoardID:   r.BoardID,
		Name:      r.Name,
		Goal:      r.Goal,
		Status:    board.SprintStatus(r.Status),
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type labelRow struct {
	ID      int64 `xorm:"pk autoincr"`
	BoardID int64
	Name    string
	Color   string
}

func (labelRow) TableName() string { return "label" }

func (r *labelRow) toDomain() board.Label {
	return board.Label{ID: r.ID, BoardID: r.BoardID, Name: r.Name, Color: r.Color}
}

type ticketRow struct {
	ID          int64 `xorm:"pk autoincr"`
	BoardID     int64
	SprintID    *int64
	ParentID    *int64
	Type        string
	Status      string
	Title       string
	Description string
	CreatorID   int64
	AssigneeID  *int64
	CreatedAt   time.Time `xorm:"created"`
	UpdatedAt   time.Time `xorm:"updated"`
}

func (ticketRow) TableName() string { return "ticket" }

func (r *ticketRow) toDomain() ticket.Ticket {
	return ticket.Ticket{
		ID:          r.ID,
		BoardID:     r.BoardID,
		SprintID:    r.SprintID,
		ParentID:    r.ParentID,
		Type:        ticket.Type(r.Type),
		Status:      ticket.Status(r.Status),
		Title:       r.Title,
		Description: r.Description,
		CreatorID:   r.CreatorID,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type ticketAssigneeRow struct {
	TicketID  int64     `xorm:"pk"`
	UserID    int64     `xorm:"pk"`
	CreatedAt time.Time `xorm:"created"`
}

func (ticketAssigneeRow) TableName() string { return "ticket_assignee" }

type ticketReviewerRow struct {
	TicketID  int64     `xorm:"pk"`
	UserID    int64     `xorm:"pk"`
	CreatedAt time.Time `xorm:"created"`
}

func (ticketReviewerRow) TableName() string { return "ticket_reviewer" }

type ticketLabelRow struct {
	TicketID int64 `xorm:"pk"`
	LabelID  int64 `xorm:"pk"`
}

func (ticketLabelRow) TableName() string { return "ticket_label" }

// ticketLabelView is a label joined with the ticket it is attached to.
type ticketLabelView struct {
	TicketID int64
	ID       int64
	BoardID  int64
	Name     string
	Color    string
}

// countView holds one row of a grouped count.
type countView struct {
	OwnerID int64
	N       int64
}

type commentRow struct {
	ID        int64 `xorm:"pk autoincr"`
	TicketID  int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time `xorm:"created"`
	UpdatedAt time.Time `xorm:"updated"`
}

func (commentRow) TableName() string { return "comment" }

func (r *commentRow) toDomain() ticket.Comment {
	return ticket.Comment{
		ID:        r.ID,
		TicketID:  r.TicketID,
		AuthorID:  r.AuthorID,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// nullInt64 and nullTime turn optional values into driver arguments for raw
// statements, where xorm does not map nil pointers itself.
func nullInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC()
}

func now() time.Time {
	return time.Now().UTC()
}
