package ticket

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

func TestCheckParent(t *testing.T) {
	t.Parallel()

	child := &Ticket{ID: 5, BoardID: 1}

	deep := make([]int64, MaxDepth-1)
	for i := range deep {
		deep[i] = int64(100 + i)
	}

	tests := []struct {
		name      string
		parent    *Ticket
		ancestors []int64
		height    int
		wantErr   bool
	}{
		{name: "detach", parent: nil},
		{name: "root parent", parent: &Ticket{ID: 2, BoardID: 1}},
		{name: "parent with unrelated ancestors", parent: &Ticket{ID: 2, BoardID: 1}, ancestors: []int64{3, 4}},
		{name: "self", parent: &Ticket{ID: 5, BoardID: 1}, wantErr: true},
		{name: "other board", parent: &Ticket{ID: 2, BoardID: 9}, wantErr: true},
		{name: "cycle through descendant", parent: &Ticket{ID: 7, BoardID: 1}, ancestors: []int64{6, 5, 1}, wantErr: true},
		{name: "too deep", parent: &Ticket{ID: 2, BoardID: 1}, ancestors: deep, wantErr: true},
		{name: "at max depth", parent: &Ticket{ID: 2, BoardID: 1}, ancestors: deep[:MaxDepth-2]},
		{name: "subtree fits", parent: &Ticket{ID: 2, BoardID: 1}, ancestors: deep[:MaxDepth-5], height: 3},
		{name: "subtree too tall", parent: &Ticket{ID: 2, BoardID: 1}, ancestors: deep[:MaxDepth-5], height: 4, wantErr: true},
		{name: "subtree under root", parent: &Ticket{ID: 2, BoardID: 1}, height: MaxDepth - 2},
		{name: "subtree under root too tall", parent: &Ticket{ID: 2, BoardID: 1}, height: MaxDepth - 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckParent(child, tt.parent, tt.ancestors, tt.height)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckParent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, domain.ErrBadRequest) {
				t.Errorf("CheckParent() error = %v, want ErrBadRequest", err)
			}
		})
	}
}
