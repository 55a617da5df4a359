package schedule

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/glamourlabs/salon-manager/internal/audit"
	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/timezone"
)

type CompleteAppointmentInput struct {
	AccountID     string
	AppointmentID string

	// registrado na conclusão quando informado
	PaymentMethod string
}

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *gocache.Cache
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *gocache.Cache,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AccountID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	changed, err := domain.Complete(ap, timezone.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		// já terminal (completed ou block): repetir a ação não é erro
		return ap, nil
	}

	if in.PaymentMethod != "" {
		if !domain.IsValidPaymentMethod(in.PaymentMethod) {
			return nil, httperr.ErrBusiness("invalid_payment_method")
		}
		ap.PaymentMethod = &in.PaymentMethod
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	invalidateMonthFor(uc.cache, in.AccountID, ap.Date)

	uc.audit.Dispatch(audit.Event{
		AccountID: in.AccountID,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
