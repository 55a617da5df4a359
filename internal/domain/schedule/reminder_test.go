package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schedule "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/models"
)

func ap(id, date, hm, status string) models.Appointment {
	return models.Appointment{
		ID:     id,
		Kind:   string(schedule.KindBooking),
		Date:   date,
		Time:   hm,
		Status: status,
	}
}

func TestUpcomingWithinHour(t *testing.T) {
	// relógio em 10:30 de 2026-08-31
	now := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	today := schedule.FormatDate(now)

	t.Run("janela (0, 60]", func(t *testing.T) {
		aps := []models.Appointment{
			ap("late", today, "10:00", "scheduled"),     // já passou
			ap("now", today, "10:30", "scheduled"),      // diff 0, excluído
			ap("edge", today, "11:30", "scheduled"),     // diff exato de 60, incluído
			ap("soon", today, "11:00", "scheduled"),     // dentro da janela
			ap("far", today, "12:00", "scheduled"),      // diff 90, fora
			ap("tomorrow", "2026-09-01", "10:45", "scheduled"),
		}

		got := schedule.UpcomingWithinHour(now, aps)

		require.Len(t, got, 2)
		assert.Equal(t, "soon", got[0].ID)
		assert.Equal(t, "edge", got[1].ID)
	})

	t.Run("só scheduled participa", func(t *testing.T) {
		aps := []models.Appointment{
			ap("done", today, "11:00", "completed"),
			ap("blocked", today, "11:00", "blocked"),
			ap("ok", today, "11:15", "scheduled"),
		}

		got := schedule.UpcomingWithinHour(now, aps)

		require.Len(t, got, 1)
		assert.Equal(t, "ok", got[0].ID)
	})

	t.Run("vazio devolve slice vazio, não nil", func(t *testing.T) {
		got := schedule.UpcomingWithinHour(now, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
