package repository

import (
	"context"
	"errors"
	"time"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const paymentColumns = "id, parcel_id, user_email, amount_cents, status, paid_at"

// PaymentRepository persists payment records and owns the two-step
// payment/parcel write that must stay consistent.
type PaymentRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

func NewPaymentRepository(pool *pgxpool.Pool, logger *zerolog.Logger) *PaymentRepository {
	return &PaymentRepository{pool: pool, log: logger}
}

// List returns payments newest-first, optionally filtered by the
// paying user's email.
func (r *PaymentRepository) List(ctx context.Context, q ListQuery) ([]domain.Payment, error) {
	where, args := emailPredicate("user_email", q)
	sql := "select " + paymentColumns + " from payments" + where + " order by paid_at desc"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Insert stores a new payment row. New payments always start in the
// pending state; confirmation happens in ConfirmWithParcelUpdate.
func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) error {
	_, err := r.pool.Exec(ctx,
		`insert into payments (id, parcel_id, user_email, amount_cents, status, paid_at)
		 values ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.ParcelID, p.UserEmail, p.AmountCents, p.Status, p.PaidAt,
	)
	return err
}

// GetByID fetches a single payment.
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx,
		"select "+paymentColumns+" from payments where id = $1", id)

	var p domain.Payment
	if err := scanPayment(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ConfirmWithParcelUpdate marks the referenced parcel paid and flips
// the payment to confirmed, atomically.
//
// Both updates run in one transaction: either the parcel shows paid
// AND the payment shows confirmed, or neither write lands. A missing
// parcel (deleted between payment insert and this call) rolls the
// transaction back with ErrNotFound.
func (r *PaymentRepository) ConfirmWithParcelUpdate(ctx context.Context, paymentID, parcelID uuid.UUID, paidAt time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`update parcels
		 set payment_status = $2, delivery_status = $3, paid_at = $4
		 where id = $1`,
		parcelID, domain.ParcelPaid, domain.DeliveryPending, paidAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx,
		"update payments set status = $2 where id = $1",
		paymentID, domain.PaymentConfirmed,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// MarkReconciliationPending flags a payment whose parcel update failed
// after the payment row landed. The reconcile job picks these up.
func (r *PaymentRepository) MarkReconciliationPending(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"update payments set status = $2 where id = $1",
		id, domain.PaymentReconciliationPending,
	)
	return err
}

// Reconcile retries the parcel update for a stuck payment and
// confirms it. Idempotent: an already-confirmed payment is a no-op,
// so redelivered reconcile tasks are harmless.
func (r *PaymentRepository) Reconcile(ctx context.Context, paymentID uuid.UUID) error {
	p, err := r.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if p.Status == domain.PaymentConfirmed {
		return nil
	}
	return r.ConfirmWithParcelUpdate(ctx, p.ID, p.ParcelID, p.PaidAt)
}

func scanPayment(row pgx.Row, p *domain.Payment) error {
	return row.Scan(
		&p.ID,
		&p.ParcelID,
		&p.UserEmail,
		&p.AmountCents,
		&p.Status,
		&p.PaidAt,
	)
}
