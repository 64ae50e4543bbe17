package repository

import (
	"context"
	"errors"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const parcelColumns = "id, created_by, payment_status, delivery_status, attributes, created_at, paid_at"

// ParcelRepository persists parcel records. Arbitrary client-supplied
// fields live in the attributes JSONB column; everything else is a
// fixed, server-managed column.
type ParcelRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

func NewParcelRepository(pool *pgxpool.Pool, logger *zerolog.Logger) *ParcelRepository {
	return &ParcelRepository{pool: pool, log: logger}
}

// List returns parcels newest-first, optionally filtered by creator
// email. An empty result is a valid empty slice, never an error.
func (r *ParcelRepository) List(ctx context.Context, q ListQuery) ([]domain.Parcel, error) {
	where, args := emailPredicate("created_by", q)
	sql := "select " + parcelColumns + " from parcels" + where + " order by created_at desc"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := []domain.Parcel{}
	for rows.Next() {
		var p domain.Parcel
		if err := scanParcel(rows, &p); err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, rows.Err()
}

// Insert stores a new parcel record.
func (r *ParcelRepository) Insert(ctx context.Context, p *domain.Parcel) error {
	_, err := r.pool.Exec(ctx,
		`insert into parcels (id, created_by, payment_status, delivery_status, attributes, created_at)
		 values ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.CreatedBy, p.PaymentStatus, p.DeliveryStatus, p.Attributes, p.CreatedAt,
	)
	return err
}

// GetByID fetches a single parcel, returning ErrNotFound when no
// record carries the id.
func (r *ParcelRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Parcel, error) {
	row := r.pool.QueryRow(ctx,
		"select "+parcelColumns+" from parcels where id = $1", id)

	var p domain.Parcel
	if err := scanParcel(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes a parcel by id and reports how many rows went away.
// Deleting a nonexistent id is not an error; the count is simply 0.
func (r *ParcelRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, "delete from parcels where id = $1", id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// scanParcel reads one parcel row from either pgx.Row or pgx.Rows.
func scanParcel(row pgx.Row, p *domain.Parcel) error {
	return row.Scan(
		&p.ID,
		&p.CreatedBy,
		&p.PaymentStatus,
		&p.DeliveryStatus,
		&p.Attributes,
		&p.CreatedAt,
		&p.PaidAt,
	)
}
