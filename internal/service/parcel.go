package service

import (
	"context"
	"errors"
	"time"

	"github.com/profasthq/profast-api/internal/domain"
	"github.com/profasthq/profast-api/internal/errs"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ParcelStore is the slice of the parcel repository the service needs.
// Narrowed to an interface so tests can substitute a stub.
type ParcelStore interface {
	List(ctx context.Context, q repository.ListQuery) ([]domain.Parcel, error)
	Insert(ctx context.Context, p *domain.Parcel) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Parcel, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ParcelService implements parcel CRUD on top of the store.
type ParcelService struct {
	parcels ParcelStore
	logger  *zerolog.Logger
}

func NewParcelService(s *server.Server, repos *repository.Repositories) *ParcelService {
	return &ParcelService{
		parcels: repos.Parcels,
		logger:  s.Logger,
	}
}

// List returns parcels newest-first, filtered by creator email when
// one is given. An empty result is an empty slice, not an error.
func (s *ParcelService) List(ctx context.Context, q repository.ListQuery) ([]domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.parcels.List(ctx, q)
}

// Create stamps server-assigned fields onto a new parcel and stores
// it. Client attributes under reserved keys are discarded; a fresh
// parcel is always unpaid and pending delivery.
func (s *ParcelService) Create(ctx context.Context, createdBy string, attributes map[string]any) (*domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	attrs := make(map[string]any, len(attributes))
	for k, v := range attributes {
		if domain.IsReservedParcelKey(k) {
			continue
		}
		attrs[k] = v
	}

	parcel := &domain.Parcel{
		ID:             uuid.New(),
		CreatedBy:      createdBy,
		PaymentStatus:  domain.ParcelUnpaid,
		DeliveryStatus: domain.DeliveryPending,
		Attributes:     attrs,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.parcels.Insert(ctx, parcel); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("parcel_id", parcel.ID.String()).
		Str("created_by", parcel.CreatedBy).
		Msg("created parcel")

	return parcel, nil
}

// Get fetches a parcel by its raw id string. A malformed id cannot
// address any record, so it maps to NotFound like a missing one.
func (s *ParcelService) Get(ctx context.Context, rawID string) (*domain.Parcel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errs.NewNotFoundError("Parcel not found")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	parcel, err := s.parcels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Parcel not found")
		}
		return nil, err
	}
	return parcel, nil
}

// Delete removes a parcel by its raw id string and returns how many
// records were deleted. Nonexistent and malformed ids both yield a
// count of 0 without error.
func (s *ParcelService) Delete(ctx context.Context, rawID string) (int64, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	deleted, err := s.parcels.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info().
			Str("parcel_id", id.String()).
			Msg("deleted parcel")
	}

	return deleted, nil
}
