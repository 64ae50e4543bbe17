package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Repositories is a container for all repository instances, built once
// at startup and shared by the service layer and background jobs.
type Repositories struct {
	Parcels  *ParcelRepository
	Users    *UserRepository
	Payments *PaymentRepository
}

// NewRepositories constructs the repository container on top of the
// shared connection pool.
func NewRepositories(pool *pgxpool.Pool, logger *zerolog.Logger) *Repositories {
	return &Repositories{
		Parcels:  NewParcelRepository(pool, logger),
		Users:    NewUserRepository(pool, logger),
		Payments: NewPaymentRepository(pool, logger),
	}
}
