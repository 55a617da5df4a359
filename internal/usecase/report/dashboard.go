package report

import (
	"context"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/money"
	"github.com/glamourlabs/salon-manager/internal/timezone"
)

type DashboardSummary struct {
	TodayScheduled    int     `json:"today_scheduled"`
	ClientCount       int     `json:"client_count"`
	ServiceCount      int     `json:"service_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRevenueLabel string  `json:"total_revenue_label"`

	Today []models.Appointment `json:"today"`
}

type Dashboard struct {
	repo domain.Repository
}

func NewDashboard(repo domain.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

// Execute calcula os cartões da tela inicial: agendados de hoje, tamanho
// dos cadastros e receita acumulada de todos os concluídos.
func (uc *Dashboard) Execute(
	ctx context.Context,
	accountID string,
) (*DashboardSummary, error) {

	today := domain.FormatDate(timezone.Now())

	todayAps, err := uc.repo.ListAppointmentsByDate(ctx, accountID, today)
	if err != nil {
		return nil, err
	}
	domain.SortByTime(todayAps)

	scheduled := 0
	for _, ap := range todayAps {
		if domain.Status(ap.Status) == domain.StatusScheduled {
			scheduled++
		}
	}

	clients, err := uc.repo.ListClients(ctx, accountID)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx, accountID)
	if err != nil {
		return nil, err
	}
	priceByID := make(map[string]float64, len(services))
	for _, s := range services {
		priceByID[s.ID] = s.Price
	}

	all, err := uc.repo.ListAppointments(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, ap := range all {
		if domain.Status(ap.Status) != domain.StatusCompleted {
			continue
		}
		if ap.ServiceID != nil {
			revenue += priceByID[*ap.ServiceID]
		}
	}

	return &DashboardSummary{
		TodayScheduled:    scheduled,
		ClientCount:       len(clients),
		ServiceCount:      len(services),
		TotalRevenue:      revenue,
		TotalRevenueLabel: money.FormatBRL(revenue),
		Today:             todayAps,
	}, nil
}
