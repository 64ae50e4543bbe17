package service

import (
	"context"
	"time"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserStore is the slice of the user repository the service needs.
type UserStore interface {
	Upsert(ctx context.Context, u *domain.User) (bool, *domain.User, error)
}

// UserService implements idempotent-by-email user registration.
type UserService struct {
	users  UserStore
	logger *zerolog.Logger
}

func NewUserService(s *server.Server, repos *repository.Repositories) *UserService {
	return &UserService{
		users:  repos.Users,
		logger: s.Logger,
	}
}

// RegisterResult is the tagged outcome of a registration: either this
// call created the record, or the email already existed and the
// stored record is returned unchanged.
type RegisterResult struct {
	User    *domain.User
	Created bool
}

// Register creates a user for the given email unless one exists.
//
// Server-assigned fields (id, role "user", createdAt, lastLogin) are
// stamped here. The unique-key-guarded upsert in the repository makes
// the operation safe under concurrent identical requests: the store
// never ends up with two records for one email.
func (s *UserService) Register(ctx context.Context, email string) (*RegisterResult, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	now := time.Now().UTC()
	candidate := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Role:      domain.RoleUser,
		CreatedAt: now,
		LastLogin: now,
	}

	created, user, err := s.users.Upsert(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if created {
		s.logger.Info().
			Str("user_id", user.ID.String()).
			Str("email", user.Email).
			Msg("registered user")
	}

	return &RegisterResult{User: user, Created: created}, nil
}
