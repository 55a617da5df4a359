package schedule

import (
	"context"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/dto"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/money"
	"github.com/glamourlabs/salon-manager/internal/notify"
)

type ListDayAppointments struct {
	repo domain.Repository
}

func NewListDayAppointments(repo domain.Repository) *ListDayAppointments {
	return &ListDayAppointments{repo: repo}
}

// Execute lista o dia em ordem crescente de horário, com nomes resolvidos
// contra os cadastros. Cadastro apagado não quebra a linha: o nome sai
// vazio e o link de WhatsApp é omitido.
func (uc *ListDayAppointments) Execute(
	ctx context.Context,
	accountID string,
	date string,
) ([]dto.DayAppointmentDTO, error) {

	if !domain.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	account, err := uc.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsByDate(ctx, accountID, date)
	if err != nil {
		return nil, err
	}

	domain.SortByTime(aps)

	clients, staff, services, err := rosterMaps(ctx, uc.repo, accountID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DayAppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		row := dto.DayAppointmentDTO{
			ID:          ap.ID,
			Time:        ap.Time,
			Kind:        ap.Kind,
			Status:      ap.Status,
			Notes:       ap.Notes,
			StaffName:   staff[ap.StaffID].Name,
			CanComplete: domain.Status(ap.Status) == domain.StatusScheduled,
		}

		if ap.PaymentMethod != nil {
			row.PaymentMethod = *ap.PaymentMethod
		}

		if domain.Kind(ap.Kind) == domain.KindBooking {
			var client models.Client
			if ap.ClientID != nil {
				client = clients[*ap.ClientID]
			}
			row.ClientName = client.Name

			if ap.ServiceID != nil {
				svc := services[*ap.ServiceID]
				row.ServiceName = svc.Name
				row.Price = svc.Price
				row.PriceLabel = money.FormatBRL(svc.Price)
			}

			if client.Phone != "" {
				row.WhatsAppLink = notify.WhatsAppLink(
					client.Phone,
					notify.ConfirmationMessage(
						client.Name,
						account.SalonName,
						ap.Date,
						ap.Time,
						row.ServiceName,
					),
				)
			}
		}

		out = append(out, row)
	}

	return out, nil
}

// rosterMaps carrega snapshots de leitura indexados por id
func rosterMaps(
	ctx context.Context,
	repo domain.Repository,
	accountID string,
) (map[string]models.Client, map[string]models.Staff, map[string]models.Service, error) {

	clientList, err := repo.ListClients(ctx, accountID)
	if err != nil {
		return nil, nil, nil, err
	}
	staffList, err := repo.ListStaff(ctx, accountID)
	if err != nil {
		return nil, nil, nil, err
	}
	serviceList, err := repo.ListServices(ctx, accountID)
	if err != nil {
		return nil, nil, nil, err
	}

	clients := make(map[string]models.Client, len(clientList))
	for _, c := range clientList {
		clients[c.ID] = c
	}
	staff := make(map[string]models.Staff, len(staffList))
	for _, s := range staffList {
		staff[s.ID] = s
	}
	services := make(map[string]models.Service, len(serviceList))
	for _, s := range serviceList {
		services[s.ID] = s
	}

	return clients, staff, services, nil
}
