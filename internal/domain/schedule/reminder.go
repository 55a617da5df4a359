package schedule

import (
	"time"

	"github.com/glamourlabs/salon-manager/internal/models"
)

// Janela de antecedência dos lembretes, em minutos (intervalo (0, 60])
const ReminderWindowMinutes = 60

// UpcomingWithinHour filtra os agendamentos que começam na próxima hora:
// data == hoje (mesma regra de igualdade de FormatDate), status scheduled e
// diferença de minuto-do-dia em (0, 60]. Diferença <= 0 exclui atrasados:
// um lembrete some sozinho quando o horário chega. Resultado ordenado por
// horário crescente.
func UpcomingWithinHour(now time.Time, appointments []models.Appointment) []models.Appointment {
	today := FormatDate(now)
	nowMin := now.Hour()*60 + now.Minute()

	out := make([]models.Appointment, 0)
	for _, ap := range appointments {
		if ap.Date != today || Status(ap.Status) != StatusScheduled {
			continue
		}

		apMin, err := MinutesOfDay(ap.Time)
		if err != nil {
			continue
		}

		diff := apMin - nowMin
		if diff > 0 && diff <= ReminderWindowMinutes {
			out = append(out, ap)
		}
	}

	SortByTime(out)
	return out
}
