package schedule

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/timezone"
)

type MonthOverview struct {
	repo  domain.Repository
	cache *gocache.Cache
}

func NewMonthOverview(
	repo domain.Repository,
	cache *gocache.Cache,
) *MonthOverview {
	return &MonthOverview{
		repo:  repo,
		cache: cache,
	}
}

// Execute devolve o resumo por dia do mês exibido. O agregado é cacheado
// por (conta, ano-mês) e invalidado em toda mutação de agendamento.
func (uc *MonthOverview) Execute(
	ctx context.Context,
	accountID string,
	year int,
	month int,
) ([]domain.MonthDay, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	yearMonth := fmt.Sprintf("%04d-%02d", year, month)

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(monthCacheKey(accountID, yearMonth)); ok {
			if days, ok := cached.([]domain.MonthDay); ok {
				return days, nil
			}
		}
	}

	from := yearMonth + "-01"
	to := yearMonth + "-31"

	aps, err := uc.repo.ListAppointmentsByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.ListClients(ctx, accountID)
	if err != nil {
		return nil, err
	}
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	days := domain.MonthOverview(
		year,
		time.Month(month),
		aps,
		clientNames,
		timezone.Now(),
	)

	if uc.cache != nil {
		uc.cache.SetDefault(monthCacheKey(accountID, yearMonth), days)
	}

	return days, nil
}
