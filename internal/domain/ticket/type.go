package ticket

// Type categorizes a ticket.
type Type string

const (
	TypeIssue   Type = "ISSUE"
	TypeFix     Type = "FIX"
	TypeHotfix  Type = "HOTFIX"
	TypeProblem Type = "PROBLEM"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeIssue, TypeFix, TypeHotfix, TypeProblem:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
