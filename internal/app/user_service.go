// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. Every board-scoped method passes the access gate before it
// touches a repository.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/sprintboard/internal/domain/user"
	"github.com/jsamuelsen11/sprintboard/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService.
type UserService struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewUserService creates a UserService. A nil logger discards output.
func NewUserService(users ports.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: orDiscard(logger)}
}

// Resolve returns the local user for an authenticated principal.
func (s *UserService) Resolve(ctx context.Context, p user.Principal) (*user.User, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpsertUser(ctx, p)
	if err != nil {
		logFailure(ctx, s.logger, "ResolveUser", err, slog.String("subject", p.Subject))
		return nil, err
	}
	return u, nil
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		logFailure(ctx, s.logger, "GetUser", err, slog.Int64("user_id", id))
		return nil, err
	}
	return u, nil
}
