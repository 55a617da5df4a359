package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schedule "github.com/glamourlabs/salon-manager/internal/domain/schedule"
)

func TestComplete(t *testing.T) {
	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)

	t.Run("scheduled conclui e marca o instante", func(t *testing.T) {
		a := ap("a1", "2026-08-31", "13:00", "scheduled")

		changed, err := schedule.Complete(&a, now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "completed", a.Status)
		require.NotNil(t, a.CompletedAt)
		assert.Equal(t, now, *a.CompletedAt)
	})

	t.Run("repetir a conclusão é no-op", func(t *testing.T) {
		a := ap("a1", "2026-08-31", "13:00", "completed")
		first := now.Add(-time.Hour)
		a.CompletedAt = &first

		changed, err := schedule.Complete(&a, now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, first, *a.CompletedAt)
	})

	t.Run("bloqueio nunca transiciona", func(t *testing.T) {
		a := ap("b1", "2026-08-31", "13:00", "blocked")
		a.Kind = string(schedule.KindBlock)

		changed, err := schedule.Complete(&a, now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "blocked", a.Status)
		assert.Nil(t, a.CompletedAt)
	})
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, schedule.StatusScheduled, schedule.InitialStatus(schedule.KindBooking))
	assert.Equal(t, schedule.StatusBlocked, schedule.InitialStatus(schedule.KindBlock))
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, schedule.IsValidPaymentMethod("cash"))
	assert.True(t, schedule.IsValidPaymentMethod("card"))
	assert.True(t, schedule.IsValidPaymentMethod("pix"))
	assert.False(t, schedule.IsValidPaymentMethod("boleto"))
	assert.False(t, schedule.IsValidPaymentMethod(""))
}
