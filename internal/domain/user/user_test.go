package user

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

func TestPrincipal_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal Principal
		wantField string
	}{
		{name: "valid", principal: Principal{Subject: "u-1", Email: "ada@example.com"}},
		{name: "no email is fine", principal: Principal{Subject: "u-1"}},
		{name: "missing subject", principal: Principal{Name: "Ada"}, wantField: "subject"},
		{name: "blank subject", principal: Principal{Subject: "   "}, wantField: "subject"},
		{name: "bad email", principal: Principal{Subject: "u-1", Email: "not-an-email"}, wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.principal.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, missing %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestPrincipal_DisplayName(t *testing.T) {
	t.Parallel()

	if got := (Principal{Subject: "u-1", Name: "Ada"}).DisplayName(); got != "Ada" {
		t.Errorf("DisplayName() = %q, want Ada", got)
	}
	if got := (Principal{Subject: "u-1"}).DisplayName(); got != "u-1" {
		t.Errorf("DisplayName() = %q, want u-1", got)
	}
}
