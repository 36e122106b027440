package store

import (
	"context"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
	"github.com/jsamuelsen11/sprintboard/internal/domain/ticket"
)

// ListComments returns the comments of ticketID, oldest first.
func (r *TicketRepository) ListComments(ctx context.Context, ticketID int64) ([]ticket.Comment, error) {
	var rows []commentRow
	if err := r.db.GetEngine(ctx).Where("ticket_id = ?", ticketID).Asc("id").Find(&rows); err != nil {
		return nil, storeerr.Translate(err)
	}

	comments := make([]ticket.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, rows[i].toDomain())
	}
	return comments, nil
}

// GetComment returns the comment with commentID on ticketID.
func (r *TicketRepository) GetComment(ctx context.Context, ticketID, commentID int64) (*ticket.Comment, error) {
	row := new(commentRow)
	has, err := r.db.GetEngine(ctx).Where("id = ? AND ticket_id = ?", commentID, ticketID).Get(row)
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	if !has {
		return nil, storeerr.Translate(storeerr.MissingRow("comment", commentID))
	}
	c := row.toDomain()
	return &c, nil
}

// CreateComment inserts a comment.
func (r *TicketRepository) CreateComment(ctx context.Context, c *ticket.Comment) (*ticket.Comment, error) {
	row := &commentRow{TicketID: c.TicketID, AuthorID: c.AuthorID, Body: c.Body}
	if _, err := r.db.GetEngine(ctx).Insert(row); err != nil {
		return nil, storeerr.Translate(err)
	}
	created := row.toDomain()
	return &created, nil
}

// UpdateComment rewrites the body. The author never changes.
func (r *TicketRepository) UpdateComment(ctx context.Context, c *ticket.Comment) (*ticket.Comment, error) {
	var out *ticket.Comment
	err := r.db.AutoTx(ctx, func(ctx context.Context) error {
		n, err := r.db.GetEngine(ctx).
			Where("id = ? AND ticket_id = ?", c.ID, c.TicketID).
			Cols("body").
			Update(&commentRow{Body: c.Body})
		if err != nil {
			return err
		}
		if err := affected(n, "comment", c.ID); err != nil {
			return err
		}
		out, err = r.GetComment(ctx, c.TicketID, c.ID)
		return err
	})
	if err != nil {
		return nil, storeerr.Translate(err)
	}
	return out, nil
}

// DeleteComment deletes the comment with commentID on ticketID.
func (r *TicketRepository) DeleteComment(ctx context.Context, ticketID, commentID int64) error {
	n, err := r.db.GetEngine(ctx).Where("id = ? AND ticket_id = ?", commentID, ticketID).Delete(new(commentRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "comment", commentID))
}
