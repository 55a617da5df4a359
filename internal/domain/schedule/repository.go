package schedule

import (
	"context"

	"github.com/glamourlabs/salon-manager/internal/models"
)

// Repository é a única superfície de leitura/mutação da coleção de
// agendamentos. Nenhum outro componente escreve na tabela diretamente.
type Repository interface {
	// -------- Account --------
	GetAccount(
		ctx context.Context,
		accountID string,
	) (*models.Account, error)

	// -------- Rosters (snapshots de leitura) --------
	GetClient(
		ctx context.Context,
		accountID string,
		clientID string,
	) (*models.Client, error)

	GetStaff(
		ctx context.Context,
		accountID string,
		staffID string,
	) (*models.Staff, error)

	GetService(
		ctx context.Context,
		accountID string,
		serviceID string,
	) (*models.Service, error)

	ListClients(
		ctx context.Context,
		accountID string,
	) ([]models.Client, error)

	ListStaff(
		ctx context.Context,
		accountID string,
	) ([]models.Staff, error)

	ListServices(
		ctx context.Context,
		accountID string,
	) ([]models.Service, error)

	// -------- Appointment (create / occupancy) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// FindAppointmentAt devolve o registro que ocupa a tripla
	// (date, time, staff), ou nil quando o slot está livre.
	FindAppointmentAt(
		ctx context.Context,
		accountID string,
		date string,
		hm string,
		staffID string,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		accountID string,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// DeleteAppointment remove de forma definitiva; id ausente é no-op.
	DeleteAppointment(
		ctx context.Context,
		accountID string,
		appointmentID string,
	) error

	// -------- Listagens --------
	ListAppointmentsByDate(
		ctx context.Context,
		accountID string,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByDateRange(
		ctx context.Context,
		accountID string,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		accountID string,
	) ([]models.Appointment, error)

	// ListScheduledOnDate varre todas as contas; alimenta o serviço de
	// lembretes.
	ListScheduledOnDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)
}
