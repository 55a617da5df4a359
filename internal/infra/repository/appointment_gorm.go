package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Account
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAccount(
	ctx context.Context,
	accountID string,
) (*models.Account, error) {

	var account models.Account
	if err := r.db.WithContext(ctx).
		First(&account, "id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// --------------------------------------------------
// Rosters
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	accountID string,
	clientID string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", clientID, accountID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetStaff(
	ctx context.Context,
	accountID string,
	staffID string,
) (*models.Staff, error) {

	var member models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", staffID, accountID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	accountID string,
	serviceID string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", serviceID, accountID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) ListClients(
	ctx context.Context,
	accountID string,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *AppointmentGormRepository) ListStaff(
	ctx context.Context,
	accountID string,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	accountID string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (create / occupancy)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) FindAppointmentAt(
	ctx context.Context,
	accountID string,
	date string,
	hm string,
	staffID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"account_id = ? AND date = ? AND time = ? AND staff_id = ?",
			accountID, date, hm, staffID,
		).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	accountID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", appointmentID, accountID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	accountID string,
	appointmentID string,
) error {
	// id ausente: zero linhas afetadas, sem erro (remoção idempotente)
	return r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", appointmentID, accountID).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	accountID string,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND date = ?", accountID, date).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByDateRange(
	ctx context.Context,
	accountID string,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"account_id = ? AND date >= ? AND date <= ?",
			accountID, from, to,
		).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	accountID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListScheduledOnDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", date, "scheduled").
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
