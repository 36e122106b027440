package store

import (
	"context"

	"xorm.io/builder"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
	"github.com/jsamuelsen11/sprintboard/internal/domain/board"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

var _ ports.TicketRepository = (*TicketRepository)(nil)

// TicketRepository implements ports.TicketRepository.
type TicketRepository struct {
	db *database.DB
}

// NewTicketRepository creates a TicketRepository.
func NewTicketRepository(db *database.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// filterCond builds the WHERE clause for a ticket listing.
func filterCond(boardID int64, f ticket.Filter) builder.Cond {
	cond := builder.NewCond().And(builder.Eq{"board_id": boardID})

	switch {
	case f.Backlog:
		cond = cond.And(builder.IsNull{"sprint_id"})
	case f.SprintID != nil:
		cond = cond.And(builder.Eq{"sprint_id": *f.SprintID})
	}
	if f.Status != "" {
		cond = cond.And(builder.Eq{"status": string(f.Status)})
	}
	if f.Type != "" {
		cond = cond.And(builder.Eq{"type": string(f.Type)})
	}
	if f.ParentID != nil {
		cond = cond.And(builder.Eq{"parent_id": *f.ParentID})
	}
	if f.AssigneeID != nil {
		cond = cond.And(builder.Or(
			builder.Eq{"assignee_id": *f.AssigneeID},
			builder.In("id", builder.Select("ticket_id").From("ticket_assignee").
				Where(builder.Eq{"user_id": *f.AssigneeID})),
		))
	}
	if f.LabelID != nil {
		cond = cond.And(builder.In("id", builder.Select("ticket_id").From("ticket_label").
			Where(builder.Eq{"label_id": *f.LabelID})))
	}
	return cond
}

// ListTickets returns the tickets of boardID matching f, oldest first, with
// their labels, assignees, reviewers and counts loaded.
func (r *TicketRepository) ListTickets(ctx context.Context, boardID int64, f ticket.Filter) ([]ticket.Ticket, error) {
	e := r.db.GetEngine(ctx)

	var rows []ticketRow
	if err := e.Where(filterCond(boardID, f)).Asc("id").Find(&rows); err != nil {
		return nil, storeerr.Translate(err)
	}

	tickets := make([]ticket.Ticket, 0, len(rows))
	for i := range rows {
		tickets = append(tickets, rows[i].toDomain())
	}
	if err := loadRelations(e, tickets); err != nil {
		return nil, storeerr.Translate(err)
	}
	return tickets, nil
}

// loadRelations fills the join-row and count fields of tickets with one
// query per relation.
func loadRelations(e database.Engine, tickets []ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(tickets))
	byID := make(map[int64]*ticket.Ticket, len(tickets))
	for i := range tickets {
		ids = append(ids, tickets[i].ID)
		byID[tickets[i].ID] = &tickets[i]
		tickets[i].Labels = []board.Label{}
		tickets[i].AssigneeIDs = []int64{}
		tickets[i].ReviewerIDs = []int64{}
	}

	var assignees []ticketAssigneeRow
	if err := e.In("ticket_id", ids).Asc("ticket_id", "user_id").Find(&assignees); err != nil {
		return err
	}
	for _, a := range assignees {
		byID[a.TicketID].AssigneeIDs = append(byID[a.TicketID].AssigneeIDs, a.UserID)
	}

	var reviewers []ticketReviewerRow
	if err := e.In("ticket_id", ids).Asc("ticket_id", "user_id").Find(&reviewers); err != nil {
		return err
	}
	for _, rv := range reviewers {
		byID[rv.TicketID].ReviewerIDs = append(byID[rv.TicketID].ReviewerIDs, rv.UserID)
	}

	var labels []ticketLabelView
	if err := e.Table("label").
		Select("ticket_label.ticket_id, label.id, label.board_id, label.name, label.color").
		Join("INNER", "ticket_label", "ticket_label.label_id = label.id").
		In("ticket_label.ticket_id", ids).
		Asc("label.name").
		Find(&labels); err != nil {
		return err
	}
	for _, l := range labels {
		t := byID[l.TicketID]
		t.Labels = append(t.Labels, board.Label{ID: l.ID, BoardID: l.BoardID, Name: l.Name, Color: l.Color})
	}

	var subCounts []countView
	if err := e.Table("ticket").
		Select("parent_id AS owner_id, COUNT(*) AS n").
		In("parent_id", ids).
		GroupBy("parent_id").
		Find(&subCounts); err != nil {
		return err
	}
	for _, c := range subCounts {
		byID[c.OwnerID].SubTicketCount = int(c.N)
	}

	var commentCounts []countView
	if err := e.Table("comment").
		Select("ticket_id AS owner_id, COUNT(*) AS n").
		In("ticket_id", ids).
		GroupBy("ticket_id").
		Find(&commentCounts); err != nil {
		return err
	}
	for _, c := range commentCounts {
		byID[c.OwnerID].CommentCount = int(c.N)
	}

	return nil
}

// GetTicket returns the ticket with ticketID on boardID.
func (r *TicketRepository) GetTicket(ctx context.Context, boardID, ticketID int64) (*ticket.Ticket, error) {
	e := r.db.GetEngine(ctx)

	row := new(ticketRow)
	has, err := e.Where("id = ? AND board_id = ?", ticketID, boardID).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("ticket", ticketID))
	}

	tickets := []ticket.Ticket{row.toDomain()}
	if err := loadRelations(e, tickets); err != nil {
		return nil, storeerr.Translate(err)
	}
	return &tickets[0], nil
}

// CreateTicket inserts a ticket. A sprint or parent on another board is
// rejected by the schema as a relation violation.
func (r *TicketRepository) CreateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error) {
	row := &ticketRow{
		BoardID:     t.BoardID,
		SprintID:    t.SprintID,
		ParentID:    t.ParentID,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Title:       t.Title,
		Description: t.Description,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
	}

	var out *ticket.Ticket
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		if _, err := r.db.GetEngine(ctx).Insert(row); err != nil {
			return err
		}
		var err error
		out, err = r.GetTicket(ctx, row.BoardID, row.ID)
		return err
	})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return out, nil
}

// UpdateTicket writes the scalar fields of t, including a cleared assignee.
func (r *TicketRepository) UpdateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error) {
	var out *ticket.Ticket
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		res, err := r.db.GetEngine(ctx).Exec(
			"UPDATE ticket SET title = ?, description = ?, type = ?, status = ?, assignee_id = ?, updated_at = ?"+
				" WHERE id = ? AND board_id = ?",
			t.Title, t.Description, string(t.Type), string(t.Status), nullInt64(t.AssigneeID), now(),
			t.ID, t.BoardID,
		)
		if err != nil {
			return err
		}
		if err := rowsAffected(res, "ticket", t.ID); err != nil {
			return err
		}
		out, err = r.GetTicket(ctx, t.BoardID, t.ID)
		return err
	})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return out, nil
}

// DeleteTicket deletes a ticket. Join rows and comments cascade;
// sub-tickets lose their parent.
func (r *TicketRepository) DeleteTicket(ctx context.Context, boardID, ticketID int64) error {
	n, err := r.db.GetEngine(ctx).Where("id = ? AND board_id = ?", ticketID, boardID).Delete(new(ticketRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "ticket", ticketID))
}

// MoveTicket overwrites the ticket's sprint. nil sends it to the backlog.
func (r *TicketRepository) MoveTicket(ctx context.Context, boardID, ticketID int64, sprintID *int64) error {
	res, err := r.db.GetEngine(ctx).Exec(
		"UPDATE ticket SET sprint_id = ?, updated_at = ? WHERE id = ? AND board_id = ?",
		nullInt64(sprintID), now(), ticketID, boardID,
	)
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(rowsAffected(res, "ticket", ticketID))
}

// SetParent overwrites the ticket's parent. nil detaches it.
func (r *TicketRepository) SetParent(ctx context.Context, boardID, ticketID int64, parentID *int64) error {
	res, err := r.db.GetEngine(ctx).Exec(
		"UPDATE ticket SET parent_id = ?, updated_at = ? WHERE id = ? AND board_id = ?",
		nullInt64(parentID), now(), ticketID, boardID,
	)
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(rowsAffected(res, "ticket", ticketID))
}

// ancestorsQuery walks parent_id upwards. The depth bound stops the walk
// even if a cycle slipped into the table.
const ancestorsQuery = `WITH RECURSIVE chain (id, parent_id, depth) AS (
    SELECT id, parent_id, 0 FROM ticket WHERE id = ?
    UNION ALL
    SELECT t.id, t.parent_id, c.depth + 1 FROM ticket t INNER JOIN chain c ON t.id = c.parent_id
    WHERE c.depth < ?
)
SELECT id FROM chain WHERE depth > 0 ORDER BY depth`

// Ancestors returns the ids above ticketID, nearest first.
func (r *TicketRepository) Ancestors(ctx context.Context, ticketID int64) ([]int64, error) {
	ids := []int64{}
	if err := r.db.GetEngine(ctx).SQL(ancestorsQuery, ticketID, ticket.MaxDepth).Find(&ids); err != nil {
		return nil, storeerr.Translate(err)
	}
	return ids, nil
}

// subtreeQuery walks parent_id downwards and reports the deepest level
// reached, bounded like ancestorsQuery.
const subtreeQuery = `WITH RECURSIVE below (id, depth) AS (
    SELECT id, 0 FROM ticket WHERE id = ?
    UNION ALL
    SELECT t.id, b.depth + 1 FROM ticket t INNER JOIN below b ON t.parent_id = b.id
    WHERE b.depth < ?
)
SELECT COALESCE(MAX(depth), 0) FROM below`

// SubtreeHeight returns the number of levels below ticketID.
func (r *TicketRepository) SubtreeHeight(ctx context.Context, ticketID int64) (int, error) {
	heights := []int64{}
	if err := r.db.GetEngine(ctx).SQL(subtreeQuery, ticketID, ticket.MaxDepth).Find(&heights); err != nil {
		return 0, storeerr.Translate(err)
	}
	if len(heights) == 0 {
		return 0, nil
	}
	return int(heights[0]), nil
}
