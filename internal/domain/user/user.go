// Package user defines the people who own boards, create tickets and comment.
package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/sprintboard/internal/domain"
)

// User is a resolved account. ExternalID is the subject issued by whatever
// authenticated the caller; ID is the local key every other table references.
type User struct {
	ID         int64
	ExternalID string
	Name       string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Principal is what the authentication layer hands the core: an opaque
// subject plus optional profile hints used when the user is first seen.
type Principal struct {
	Subject string
	Name    string
	Email   string
}

// Validate checks the principal carries a subject and a well-formed email
// when one is given.
func (p Principal) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Subject) == "" {
		fields["subject"] = domain.MsgRequired
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			fields["email"] = "invalid address"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DisplayName returns Name, falling back to the subject.
func (p Principal) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return p.Subject
}
