package schedule

import "github.com/glamourlabs/salon-manager/internal/httperr"

// ===============================
// Appointment Kind / Status
// ===============================

type Kind string

const (
	KindBooking Kind = "booking"
	KindBlock   Kind = "block"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusBlocked   Status = "blocked"
)

// ===============================
// Payment methods
// ===============================

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

func IsValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanComplete define se um agendamento pode ser concluído.
// Estados terminais (completed, blocked) não são erro: a transição
// vira no-op na camada de usecase.
func CanComplete(current Status) error {
	if current == StatusScheduled {
		return nil
	}
	if current == StatusCompleted || current == StatusBlocked {
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

// IsTerminal informa se o status não admite mais transições
func IsTerminal(current Status) bool {
	return current == StatusCompleted || current == StatusBlocked
}

func InitialStatus(kind Kind) Status {
	if kind == KindBlock {
		return StatusBlocked
	}
	return StatusScheduled
}
