// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// mapSlice converts each element of items with fn.
func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}

// UserResponse represents the authenticated user.
type UserResponse struct {
	ID        int64  `json:"id"`
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Subject:   u.ExternalID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

// BoardResponse represents a single board in HTTP responses.
type BoardResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OwnerID   int64  `json:"owner_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToBoardResponse converts a domain Board to an HTTP response DTO.
func ToBoardResponse(b *board.Board) BoardResponse {
	return BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
	}
}

// BoardListResponse represents a list of boards in HTTP responses.
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
	Count  int             `json:"count"`
}

// ToBoardListResponse converts boards to an HTTP list response DTO.
func ToBoardListResponse(boards []board.Board) BoardListResponse {
	items := mapSlice(boards, ToBoardResponse)
	return BoardListResponse{Boards: items, Count: len(items)}
}

// BoardDetailResponse is a board with its backlog and the caller's role.
type BoardDetailResponse struct {
	BoardResponse
	BacklogID int64  `json:"backlog_id"`
	Role      string `json:"role"`
}

// ToBoardDetailResponse converts ports.BoardDetails to an HTTP response DTO.
func ToBoardDetailResponse(d *ports.BoardDetails) BoardDetailResponse {
	return BoardDetailResponse{
		BoardResponse: ToBoardResponse(&d.Board),
		BacklogID:     d.Backlog.ID,
		Role:          d.Role.String(),
	}
}

// MemberResponse represents a board member.
type MemberResponse struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	JoinedAt string `json:"joined_at"`
}

// ToMemberResponse converts a domain Member to an HTTP response DTO.
func ToMemberResponse(m *board.Member) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID,
		Role:     m.Role.String(),
		Name:     m.UserName,
		Email:    m.UserEmail,
		JoinedAt: formatTime(m.JoinedAt),
	}
}

// MemberListResponse represents a board's members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Count   int              `json:"count"`
}

// ToMemberListResponse converts members to an HTTP list response DTO.
func ToMemberListResponse(members []board.Member) MemberListResponse {
	items := mapSlice(members, ToMemberResponse)
	return MemberListResponse{Members: items, Count: len(items)}
}

// LabelResponse represents a board label.
type LabelResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ToLabelResponse converts a domain Label to an HTTP response DTO.
func ToLabelResponse(l *board.Label) LabelResponse {
	return LabelResponse{ID: l.ID, Name: l.Name, Color: l.Color}
}

// LabelListResponse represents a board's labels.
type LabelListResponse struct {
	Labels []LabelResponse `json:"labels"`
	Count  int             `json:"count"`
}

// ToLabelListResponse converts labels to an HTTP list response DTO.
func ToLabelListResponse(labels []board.Label) LabelListResponse {
	items := mapSlice(labels, ToLabelResponse)
	return LabelListResponse{Labels: items, Count: len(items)}
}

// SprintResponse represents a sprint.
type SprintResponse struct {
	ID        int64   `json:"id"`
	BoardID   int64   `json:"board_id"`
	Name      string  `json:"name"`
	Goal      string  `json:"goal,omitempty"`
	Status    string  `json:"status"`
	StartsAt  *string `json:"starts_at,omitempty"`
	EndsAt    *string `json:"ends_at,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToSprintResponse converts a domain Sprint to an HTTP response DTO.
func ToSprintResponse(s *board.Sprint) SprintResponse {
	return SprintResponse{
		ID:        s.ID,
		BoardID:   s.BoardID,
		Name:      s.Name,
		Goal:      s.Goal,
		Status:    s.Status.String(),
		StartsAt:  formatOptionalTime(s.StartsAt),
		EndsAt:    formatOptionalTime(s.EndsAt),
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

// SprintListResponse represents a board's sprints.
type SprintListResponse struct {
	Sprints []SprintResponse `json:"sprints"`
	Count   int              `json:"count"`
}

// ToSprintListResponse converts sprints to an HTTP list response DTO.
func ToSprintListResponse(sprints []board.Sprint) SprintListResponse {
	items := mapSlice(sprints, ToSprintResponse)
	return SprintListResponse{Sprints: items, Count: len(items)}
}

// TicketResponse represents a ticket with its join rows and counts.
type TicketResponse struct {
	ID             int64           `json:"id"`
	BoardID        int64           `json:"board_id"`
	SprintID       *int64          `json:"sprint_id"`
	ParentID       *int64          `json:"parent_id"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	CreatorID      int64           `json:"creator_id"`
	AssigneeID     *int64          `json:"assignee_id"`
	AssigneeIDs    []int64         `json:"assignee_ids"`
	ReviewerIDs    []int64         `json:"reviewer_ids"`
	Labels         []LabelResponse `json:"labels"`
	SubTicketCount int             `json:"sub_ticket_count"`
	CommentCount   int             `json:"comment_count"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// ToTicketResponse converts a domain Ticket to an HTTP response DTO. Empty
// collections are encoded as [] rather than null.
func ToTicketResponse(t *ticket.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:             t.ID,
		BoardID:        t.BoardID,
		SprintID:       t.SprintID,
		ParentID:       t.ParentID,
		Type:           t.Type.String(),
		Status:         t.Status.String(),
		Title:          t.Title,
		Description:    t.Description,
		CreatorID:      t.CreatorID,
		AssigneeID:     t.AssigneeID,
		AssigneeIDs:    t.AssigneeIDs,
		ReviewerIDs:    t.ReviewerIDs,
		Labels:         mapSlice(t.Labels, ToLabelResponse),
		SubTicketCount: t.SubTicketCount,
		CommentCount:   t.CommentCount,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
	if resp.AssigneeIDs == nil {
		resp.AssigneeIDs = []int64{}
	}
	if resp.ReviewerIDs == nil {
		resp.ReviewerIDs = []int64{}
	}
	return resp
}

// TicketListResponse represents a list of tickets.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Count   int              `json:"count"`
}

// ToTicketListResponse converts tickets to an HTTP list response DTO.
func ToTicketListResponse(tickets []ticket.Ticket) TicketListResponse {
	items := mapSlice(tickets, ToTicketResponse)
	return TicketListResponse{Tickets: items, Count: len(items)}
}

// CommentResponse represents a ticket comment.
type CommentResponse struct {
	ID        int64  `json:"id"`
	TicketID  int64  `json:"ticket_id"`
	AuthorID  int64  `json:"author_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToCommentResponse converts a domain Comment to an HTTP response DTO.
func ToCommentResponse(c *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		TicketID:  c.TicketID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

// CommentListResponse represents a ticket's comments.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Count    int               `json:"count"`
}

// ToCommentListResponse converts comments to an HTTP list response DTO.
func ToCommentListResponse(comments []ticket.Comment) CommentListResponse {
	items := mapSlice(comments, ToCommentResponse)
	return CommentListResponse{Comments: items, Count: len(items)}
}

// BulkMoveResponse represents the result of a bulk move. It includes both
// moved ticket ids and per-item errors.
type BulkMoveResponse struct {
	Moved     []int64             `json:"moved"`
	Errors    []BulkMoveErrorItem `json:"errors"`
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// BulkMoveErrorItem represents a single failed move within a bulk operation.
type BulkMoveErrorItem struct {
	TicketID int64  `json:"ticket_id"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// ToBulkMoveResponse converts a ports.BulkMoveResult to an HTTP response DTO.
// Item messages pass through PublicMessage so store failures stay hidden.
func ToBulkMoveResponse(result *ports.BulkMoveResult) BulkMoveResponse {
	errs := make([]BulkMoveErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkMoveErrorItem{
			TicketID: e.TicketID,
			Code:     kindOf(e.Err),
			Message:  PublicMessage(e.Err),
		}
	}

	return BulkMoveResponse{
		Moved:     result.Moved,
		Errors:    errs,
		Total:     len(result.Moved) + len(result.Errors),
		Succeeded: len(result.Moved),
		Failed:    len(result.Errors),
	}
}
