package schedule

import (
	"context"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/glamourlabs/salon-manager/internal/audit"
	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	AccountID string

	ClientID  string
	ServiceID string
	StaffID   string

	Date string
	Time string

	Notes         string
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *gocache.Cache
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *gocache.Cache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// data e hora no formato do calendário, alinhadas na grade de slots
	if !domain.IsValidDate(in.Date) || !domain.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !domain.IsSlotTime(in.Time) {
		return nil, httperr.ErrBusiness("outside_slot_grid")
	}

	// cliente, serviço e profissional são obrigatórios em um agendamento
	// (bloqueios passam por CreateBlock)
	if in.ClientID == "" {
		return nil, httperr.ErrBusiness("client_required")
	}
	if in.ServiceID == "" {
		return nil, httperr.ErrBusiness("service_required")
	}
	if in.StaffID == "" {
		return nil, httperr.ErrBusiness("staff_required")
	}

	if _, err := uc.repo.GetClient(ctx, in.AccountID, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.AccountID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetStaff(ctx, in.AccountID, in.StaffID); err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	var payment *string
	if in.PaymentMethod != "" {
		if !domain.IsValidPaymentMethod(in.PaymentMethod) {
			return nil, httperr.ErrBusiness("invalid_payment_method")
		}
		payment = &in.PaymentMethod
	}

	// no máximo um registro por tripla (date, time, staff)
	occupying, err := uc.repo.FindAppointmentAt(
		ctx, in.AccountID, in.Date, in.Time, in.StaffID,
	)
	if err != nil {
		return nil, err
	}
	if occupying != nil {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		ID:            uuid.NewString(),
		AccountID:     in.AccountID,
		Kind:          string(domain.KindBooking),
		ClientID:      &in.ClientID,
		ServiceID:     &in.ServiceID,
		StaffID:       in.StaffID,
		Date:          in.Date,
		Time:          in.Time,
		Status:        string(domain.InitialStatus(domain.KindBooking)),
		Notes:         in.Notes,
		PaymentMethod: payment,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	invalidateMonthFor(uc.cache, in.AccountID, in.Date)

	uc.audit.Dispatch(audit.Event{
		AccountID: in.AccountID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"date":       ap.Date,
			"time":       ap.Time,
			"staff_id":   ap.StaffID,
			"service_id": service.ID,
		},
	})

	return ap, nil
}
