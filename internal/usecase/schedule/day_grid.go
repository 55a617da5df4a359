package schedule

import (
	"context"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
)

type GridColumn struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Photo   string `json:"photo,omitempty"`
}

type DayGridOutput struct {
	Date    string           `json:"date"`
	Slots   []string         `json:"slots"`
	Columns []GridColumn     `json:"columns"`
	Rows    []domain.GridRow `json:"rows"`
}

type DayGrid struct {
	repo domain.Repository
}

func NewDayGrid(repo domain.Repository) *DayGrid {
	return &DayGrid{repo: repo}
}

// Execute monta a grade slots × equipe de uma data. Célula ocupada carrega
// o id do registro; o cliente usa isso para recusar novo agendamento ali e
// pré-preencher o formulário nas células livres.
func (uc *DayGrid) Execute(
	ctx context.Context,
	accountID string,
	date string,
) (*DayGridOutput, error) {

	if !domain.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	staff, err := uc.repo.ListStaff(ctx, accountID)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointmentsByDate(ctx, accountID, date)
	if err != nil {
		return nil, err
	}

	columns := make([]GridColumn, 0, len(staff))
	for _, member := range staff {
		columns = append(columns, GridColumn{
			StaffID: member.ID,
			Name:    member.Name,
			Color:   member.Color,
			Photo:   member.Photo,
		})
	}

	return &DayGridOutput{
		Date:    date,
		Slots:   domain.SlotTimes(),
		Columns: columns,
		Rows:    domain.DayGrid(aps, staff),
	}, nil
}
