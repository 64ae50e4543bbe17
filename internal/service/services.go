package service

import (
	"github.com/profasthq/profast-api/internal/lib/job"
	"github.com/profasthq/profast-api/internal/lib/payment"
	"github.com/profasthq/profast-api/internal/repository"
	"github.com/profasthq/profast-api/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Parcels  *ParcelService
	Users    *UserService
	Payments *PaymentService
	Job      *job.JobService
}

// NewServices constructs the service container.
//
// The payment-intent client is injected rather than constructed here
// so tests can substitute a stub gateway.
func NewServices(s *server.Server, repos *repository.Repositories, intents payment.IntentClient) (*Services, error) {
	return &Services{
		Parcels:  NewParcelService(s, repos),
		Users:    NewUserService(s, repos),
		Payments: NewPaymentService(s, repos, intents),
		Job:      s.Job,
	}, nil
}
