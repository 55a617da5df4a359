package schedule

import (
	"context"
	"time"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/dto"
	"github.com/glamourlabs/salon-manager/internal/models"
)

type ListUpcoming struct {
	repo domain.Repository
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{repo: repo}
}

// Execute devolve os agendamentos da conta que começam na próxima hora
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	accountID string,
	now time.Time,
) ([]dto.ReminderDTO, error) {

	aps, err := uc.repo.ListAppointmentsByDate(
		ctx, accountID, domain.FormatDate(now),
	)
	if err != nil {
		return nil, err
	}

	upcoming := domain.UpcomingWithinHour(now, aps)
	if len(upcoming) == 0 {
		return []dto.ReminderDTO{}, nil
	}

	clients, staff, services, err := rosterMaps(ctx, uc.repo, accountID)
	if err != nil {
		return nil, err
	}

	return toReminderDTOs(upcoming, clients, staff, services), nil
}

// ExecuteAll varre o dia inteiro, todas as contas, e agrupa por conta.
// Alimenta o snapshot do serviço de lembretes.
func (uc *ListUpcoming) ExecuteAll(
	ctx context.Context,
	now time.Time,
) (map[string][]models.Appointment, error) {

	aps, err := uc.repo.ListScheduledOnDate(ctx, domain.FormatDate(now))
	if err != nil {
		return nil, err
	}

	upcoming := domain.UpcomingWithinHour(now, aps)

	byAccount := make(map[string][]models.Appointment)
	for _, ap := range upcoming {
		byAccount[ap.AccountID] = append(byAccount[ap.AccountID], ap)
	}

	return byAccount, nil
}

// Describe resolve nomes de um snapshot já filtrado pelo serviço de fundo
func (uc *ListUpcoming) Describe(
	ctx context.Context,
	accountID string,
	aps []models.Appointment,
) ([]dto.ReminderDTO, error) {

	if len(aps) == 0 {
		return []dto.ReminderDTO{}, nil
	}

	clients, staff, services, err := rosterMaps(ctx, uc.repo, accountID)
	if err != nil {
		return nil, err
	}

	return toReminderDTOs(aps, clients, staff, services), nil
}

func toReminderDTOs(
	aps []models.Appointment,
	clients map[string]models.Client,
	staff map[string]models.Staff,
	services map[string]models.Service,
) []dto.ReminderDTO {

	out := make([]dto.ReminderDTO, 0, len(aps))
	for _, ap := range aps {
		row := dto.ReminderDTO{
			ID:        ap.ID,
			Date:      ap.Date,
			Time:      ap.Time,
			StaffName: staff[ap.StaffID].Name,
		}
		if ap.ClientID != nil {
			row.ClientName = clients[*ap.ClientID].Name
		}
		if ap.ServiceID != nil {
			row.ServiceName = services[*ap.ServiceID].Name
		}
		out = append(out, row)
	}
	return out
}
