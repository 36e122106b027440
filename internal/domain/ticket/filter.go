package ticket

// Filter holds optional filter criteria for listing a board's tickets.
// Zero-value fields mean "no filter" for that dimension. Backlog and
// SprintID are mutually exclusive; Backlog wins when both are set.
type Filter struct {
	SprintID   *int64
	Backlog    bool
	Status     Status
	Type       Type
	AssigneeID *int64
	LabelID    *int64
	ParentID   *int64
}
