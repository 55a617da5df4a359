package schedule

import (
	"time"

	"github.com/glamourlabs/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete conclui um agendamento. Idempotente: estados terminais
// (completed, blocked) retornam changed=false sem erro, então repetir a
// ação não falha nem altera nada.
func Complete(ap *models.Appointment, now time.Time) (changed bool, err error) {
	if IsTerminal(Status(ap.Status)) {
		return false, nil
	}
	if err := CanComplete(Status(ap.Status)); err != nil {
		return false, err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return true, nil
}
