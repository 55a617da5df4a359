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

type CreateBlockInput struct {
	AccountID string
	StaffID   string
	Date      string
	Time      string
	Notes     string
}

// CreateBlock reserva um slot como indisponibilidade do profissional.
// Bloqueio não tem cliente nem serviço; só ocupa a tripla.
type CreateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *gocache.Cache
}

func NewCreateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *gocache.Cache,
) *CreateBlock {
	return &CreateBlock{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.Appointment, error) {

	if !domain.IsValidDate(in.Date) || !domain.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !domain.IsSlotTime(in.Time) {
		return nil, httperr.ErrBusiness("outside_slot_grid")
	}

	if in.StaffID == "" {
		return nil, httperr.ErrBusiness("staff_required")
	}
	if _, err := uc.repo.GetStaff(ctx, in.AccountID, in.StaffID); err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

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
		ID:        uuid.NewString(),
		AccountID: in.AccountID,
		Kind:      string(domain.KindBlock),
		StaffID:   in.StaffID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.InitialStatus(domain.KindBlock)),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	invalidateMonthFor(uc.cache, in.AccountID, in.Date)

	uc.audit.Dispatch(audit.Event{
		AccountID: in.AccountID,
		Action:    "slot_blocked",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"date":     ap.Date,
			"time":     ap.Time,
			"staff_id": ap.StaffID,
		},
	})

	return ap, nil
}
