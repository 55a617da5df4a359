package schedule

import (
	"context"
	"errors"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/glamourlabs/salon-manager/internal/audit"
	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
)

// RemoveAppointment apaga o registro em definitivo: o sistema remove em vez
// de marcar como cancelado. Id ausente é no-op, sem erro.
type RemoveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *gocache.Cache
}

func NewRemoveAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *gocache.Cache,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	accountID string,
	appointmentID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, accountID, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, accountID, appointmentID); err != nil {
		return err
	}

	invalidateMonthFor(uc.cache, accountID, ap.Date)

	uc.audit.Dispatch(audit.Event{
		AccountID: accountID,
		Action:    "appointment_removed",
		Entity:    "appointment",
		EntityID:  &appointmentID,
		Metadata: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
			"kind": ap.Kind,
		},
	})

	return nil
}
