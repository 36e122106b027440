package store

import (
	"context"
	"database/sql"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/store/storeerr"
)

// Join rows carry no state beyond the pair. Inserting an existing pair is a
// unique violation; deleting a missing one is a missing row.

// AddAssignee links userID to ticketID as an assignee.
func (r *TicketRepository) AddAssignee(ctx context.Context, ticketID, userID int64) error {
	_, err := r.db.GetEngine(ctx).Insert(&ticketAssigneeRow{TicketID: ticketID, UserID: userID})
	return storeerr.Translate(err)
}

// RemoveAssignee unlinks userID from ticketID.
func (r *TicketRepository) RemoveAssignee(ctx context.Context, ticketID, userID int64) error {
	n, err := r.db.GetEngine(ctx).Where("ticket_id = ? AND user_id = ?", ticketID, userID).Delete(new(ticketAssigneeRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "assignee", userID))
}

// AddReviewer links userID to ticketID as a reviewer.
func (r *TicketRepository) AddReviewer(ctx context.Context, ticketID, userID int64) error {
	_, err := r.db.GetEngine(ctx).Insert(&ticketReviewerRow{TicketID: ticketID, UserID: userID})
	return storeerr.Translate(err)
}

// RemoveReviewer unlinks the reviewer userID from ticketID.
func (r *TicketRepository) RemoveReviewer(ctx context.Context, ticketID, userID int64) error {
	n, err := r.db.GetEngine(ctx).Where("ticket_id = ? AND user_id = ?", ticketID, userID).Delete(new(ticketReviewerRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "reviewer", userID))
}

// AttachLabel tags ticketID with labelID. A label of another board is
// rejected by the schema as a relation violation.
func (r *TicketRepository) AttachLabel(ctx context.Context, ticketID, labelID int64) error {
	_, err := r.db.GetEngine(ctx).Insert(&ticketLabelRow{TicketID: ticketID, LabelID: labelID})
	return storeerr.Translate(err)
}

// DetachLabel removes labelID from ticketID.
func (r *TicketRepository) DetachLabel(ctx context.Context, ticketID, labelID int64) error {
	n, err := r.db.GetEngine(ctx).Where("ticket_id = ? AND label_id = ?", ticketID, labelID).Delete(new(ticketLabelRow))
	if err != nil {
		return storeerr.Translate(err)
	}
	return storeerr.Translate(affected(n, "label", labelID))
}

func rowsAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	return affected(n, entity, id)
}
