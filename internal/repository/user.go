package repository

import (
	"context"
	"errors"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const userColumns = "id, email, role, created_at, last_login"

// UserRepository persists user records keyed by email.
type UserRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{pool: pool, log: logger}
}

// Upsert inserts the user unless the email is already taken.
//
// The insert is guarded by the users_email_key unique constraint with
// ON CONFLICT DO NOTHING, so two concurrent registrations of the same
// email cannot both insert; exactly one wins and the other observes
// the winner. Returns (true, inserted) when this call created the
// record, (false, existing) when the email was already present. The
// existing record is returned untouched, createdAt included.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) (bool, *domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`insert into users (id, email, role, created_at, last_login)
		 values ($1, $2, $3, $4, $5)
		 on conflict (email) do nothing
		 returning `+userColumns,
		u.ID, u.Email, u.Role, u.CreatedAt, u.LastLogin,
	)

	var created domain.User
	err := row.Scan(&created.ID, &created.Email, &created.Role, &created.CreatedAt, &created.LastLogin)
	if err == nil {
		return true, &created, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, nil, err
	}

	// Conflict path: the email exists, fetch the winner.
	existing, err := r.GetByEmail(ctx, u.Email)
	if err != nil {
		return false, nil, err
	}
	return false, existing, nil
}

// GetByEmail fetches a user by their unique email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"select "+userColumns+" from users where email = $1", email)

	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
