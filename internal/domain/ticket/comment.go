package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// MaxCommentLength bounds comment bodies.
const MaxCommentLength = 10000

// Comment is a note on a ticket. AuthorID never changes after creation.
type Comment struct {
	ID        int64
	TicketID  int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Comment entity.
func (c *Comment) Validate() error {
	fields := make(map[string]string)

	body := strings.TrimSpace(c.Body)
	switch {
	case body == "":
		fields["body"] = domain.MsgRequired
	case utf8.RuneCountInString(body) > MaxCommentLength:
		fields["body"] = fmt.Sprintf("must be at most %d characters", MaxCommentLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
