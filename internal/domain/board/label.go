package board

import (
	"regexp"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// DefaultLabelColor is used when a label is created without a color.
const DefaultLabelColor = "#6b7280"

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Label is a board-scoped tag. Names are unique within a board.
type Label struct {
	ID      int64
	BoardID int64
	Name    string
	Color   string
}

// Validate checks business rules for the Label entity. An empty color is
// replaced with DefaultLabelColor.
func (l *Label) Validate() error {
	fields := make(map[string]string)

	if msg := checkName(l.Name); msg != "" {
		fields["name"] = msg
	}
	if l.Color == "" {
		l.Color = DefaultLabelColor
	}
	if !colorPattern.MatchString(l.Color) {
		fields["color"] = "must be a hex color like #a1b2c3"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
