package ticket

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

// requireValidationField asserts err is a *domain.ValidationError naming field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Errorf("errors.Is(err, ErrBadRequest) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func validTicket() Ticket {
	return Ticket{
		ID:        10,
		BoardID:   1,
		Type:      TypeIssue,
		Status:    StatusTodo,
		Title:     "Login button misaligned",
		CreatorID: 3,
	}
}

func TestType_IsValid(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{TypeIssue, TypeFix, TypeHotfix, TypeProblem} {
		if !typ.IsValid() {
			t.Errorf("Type(%q).IsValid() = false", typ)
		}
	}
	for _, typ := range []Type{"", "issue", "BUG"} {
		if typ.IsValid() {
			t.Errorf("Type(%q).IsValid() = true", typ)
		}
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusTodo, StatusInProgress, true},
		{StatusTodo, StatusInReview, false},
		{StatusTodo, StatusDone, false},
		{StatusInProgress, StatusInReview, true},
		{StatusInProgress, StatusDone, true},
		{StatusInReview, StatusInProgress, true},
		{StatusInReview, StatusDone, true},
		{StatusDone, StatusInProgress, true},
		{StatusDone, StatusInReview, false},
		{StatusDone, StatusTodo, true},
		{StatusInReview, StatusTodo, true},
		{StatusDone, StatusDone, true},
		{StatusTodo, "CLOSED", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			t.Parallel()
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTicket_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Ticket)
		wantField string
	}{
		{name: "valid", mutate: func(*Ticket) {}},
		{name: "missing title", mutate: func(tk *Ticket) { tk.Title = " " }, wantField: "title"},
		{name: "long title", mutate: func(tk *Ticket) { tk.Title = strings.Repeat("a", MaxTitleLength+1) }, wantField: "title"},
		{name: "bad type", mutate: func(tk *Ticket) { tk.Type = "TASK" }, wantField: "type"},
		{name: "bad status", mutate: func(tk *Ticket) { tk.Status = "" }, wantField: "status"},
		{name: "zero sprint", mutate: func(tk *Ticket) { tk.SprintID = int64Ptr(0) }, wantField: "sprint_id"},
		{name: "negative parent", mutate: func(tk *Ticket) { tk.ParentID = int64Ptr(-1) }, wantField: "parent_id"},
		{name: "zero assignee", mutate: func(tk *Ticket) { tk.AssigneeID = int64Ptr(0) }, wantField: "assignee_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tk := validTicket()
			tt.mutate(&tk)

			err := tk.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestTicket_InBacklog(t *testing.T) {
	t.Parallel()

	tk := validTicket()
	if !tk.InBacklog() {
		t.Error("InBacklog() = false for ticket without sprint")
	}
	tk.SprintID = int64Ptr(4)
	if tk.InBacklog() {
		t.Error("InBacklog() = true for ticket in sprint")
	}
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	t.Run("applies fields", func(t *testing.T) {
		t.Parallel()

		tk := validTicket()
		title := "Fix login button"
		status := StatusInProgress
		typ := TypeFix

		err := Patch{Title: &title, Status: &status, Type: &typ, AssigneeID: int64Ptr(8)}.Apply(&tk)
		if err != nil {
			t.Fatalf("Apply() = %v", err)
		}
		if tk.Title != title || tk.Status != status || tk.Type != typ || tk.AssigneeID == nil || *tk.AssigneeID != 8 {
			t.Errorf("Apply() result = %+v", tk)
		}
	})

	t.Run("clears assignee", func(t *testing.T) {
		t.Parallel()

		tk := validTicket()
		tk.AssigneeID = int64Ptr(8)
		if err := (Patch{ClearAssignee: true}).Apply(&tk); err != nil {
			t.Fatalf("Apply() = %v", err)
		}
		if tk.AssigneeID != nil {
			t.Errorf("AssigneeID = %v, want nil", *tk.AssigneeID)
		}
	})

	t.Run("rejects illegal transition", func(t *testing.T) {
		t.Parallel()

		tk := validTicket()
		status := StatusDone
		err := Patch{Status: &status}.Apply(&tk)
		requireValidationField(t, err, "status")
		if tk.Status != StatusTodo {
			t.Errorf("Status = %s, want unchanged TODO", tk.Status)
		}
	})
}

func TestComment_Validate(t *testing.T) {
	t.Parallel()

	if err := (&Comment{Body: "looks good"}).Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	requireValidationField(t, (&Comment{Body: "  "}).Validate(), "body")
	requireValidationField(t, (&Comment{Body: strings.Repeat("x", MaxCommentLength+1)}).Validate(), "body")
}
