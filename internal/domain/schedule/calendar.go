package schedule

import (
	"sort"
	"time"

	"github.com/glamourlabs/salon-manager/internal/models"
)

// Máximo de prévias exibidas por dia na grade do mês
const monthPreviewLimit = 3

// BlockLabel é o rótulo de prévia de um bloqueio na grade do mês
const BlockLabel = "Bloqueado"

type PreviewEntry struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

type MonthDay struct {
	Date    string         `json:"date"`
	Day     int            `json:"day"`
	Count   int            `json:"count"`
	Preview []PreviewEntry `json:"preview"`
	More    int            `json:"more"`
	Today   bool           `json:"today"`
}

// MonthOverview agrega os agendamentos de um mês em resumos por dia: total
// (todos os status contam), as primeiras 3 prévias na ordem da coleção e o
// excedente "+N". O marcador de hoje compara strings de data-calendário
// produzidas por FormatDate, nunca proximidade de timestamp.
func MonthOverview(
	year int,
	month time.Month,
	appointments []models.Appointment,
	clientNames map[string]string,
	now time.Time,
) []MonthDay {

	byDate := make(map[string][]models.Appointment, len(appointments))
	for _, ap := range appointments {
		byDate[ap.Date] = append(byDate[ap.Date], ap)
	}

	today := FormatDate(now)
	daysInMonth := time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()

	days := make([]MonthDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := FormatDate(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
		aps := byDate[date]

		md := MonthDay{
			Date:    date,
			Day:     day,
			Count:   len(aps),
			Preview: make([]PreviewEntry, 0, monthPreviewLimit),
			Today:   date == today,
		}

		for i, ap := range aps {
			if i == monthPreviewLimit {
				break
			}
			md.Preview = append(md.Preview, PreviewEntry{
				Time:  ap.Time,
				Label: previewLabel(ap, clientNames),
			})
		}
		if md.Count > monthPreviewLimit {
			md.More = md.Count - monthPreviewLimit
		}

		days = append(days, md)
	}

	return days
}

func previewLabel(ap models.Appointment, clientNames map[string]string) string {
	if Kind(ap.Kind) == KindBlock {
		return BlockLabel
	}
	if ap.ClientID == nil {
		return ""
	}
	// referência pendurada vira rótulo vazio, nunca erro
	return clientNames[*ap.ClientID]
}

// SortByTime ordena in place por horário crescente. Comparação lexicográfica
// basta: os horários são "15:04" com zero à esquerda.
func SortByTime(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].Time < aps[j].Time
	})
}

// ===============================
// Grade do dia (slots × equipe)
// ===============================

type GridCell struct {
	StaffID       string `json:"staff_id"`
	Occupied      bool   `json:"occupied"`
	AppointmentID string `json:"appointment_id,omitempty"`
	Kind          string `json:"kind,omitempty"`
	Status        string `json:"status,omitempty"`
}

type GridRow struct {
	Time  string     `json:"time"`
	Cells []GridCell `json:"cells"`
}

// DayGrid monta o produto cruzado slots × equipe para uma data. Uma célula
// está ocupada sse existe um registro naquela tripla (date, time, staff);
// célula ocupada não deve abrir novo agendamento no cliente.
func DayGrid(appointments []models.Appointment, staff []models.Staff) []GridRow {
	occupancy := make(map[string]models.Appointment, len(appointments))
	for _, ap := range appointments {
		occupancy[ap.Time+"|"+ap.StaffID] = ap
	}

	slots := SlotTimes()
	rows := make([]GridRow, 0, len(slots))

	for _, hm := range slots {
		row := GridRow{
			Time:  hm,
			Cells: make([]GridCell, 0, len(staff)),
		}

		for _, member := range staff {
			cell := GridCell{StaffID: member.ID}
			if ap, ok := occupancy[hm+"|"+member.ID]; ok {
				cell.Occupied = true
				cell.AppointmentID = ap.ID
				cell.Kind = ap.Kind
				cell.Status = ap.Status
			}
			row.Cells = append(row.Cells, cell)
		}

		rows = append(rows, row)
	}

	return rows
}
