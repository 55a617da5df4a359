package report_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/glamourlabs/salon-manager/internal/db"
	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/infra/repository"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/timezone"
	ucreport "github.com/glamourlabs/salon-manager/internal/usecase/report"
)

const accountID = "acc-1"

func newTestRepo(t *testing.T) (*gorm.DB, *repository.AppointmentGormRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db, repository.NewAppointmentGormRepository(db)
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.Account{
		ID: accountID, Name: "Maria", Email: "maria@studio.com",
		SalonName: "Studio Glamour", PasswordHash: "x",
	}).Error)

	require.NoError(t, db.Create(&models.Client{
		ID: "cli-ana", AccountID: accountID, Name: "Ana",
	}).Error)
	require.NoError(t, db.Create(&models.Client{
		ID: "cli-joana", AccountID: accountID, Name: "Joana",
	}).Error)

	require.NoError(t, db.Create(&models.Service{
		ID: "svc-corte", AccountID: accountID, Name: "Corte Feminino", Price: 80,
	}).Error)
	require.NoError(t, db.Create(&models.Service{
		ID: "svc-escova", AccountID: accountID, Name: "Escova", Price: 50,
	}).Error)
}

func completed(id, date, hm, clientID, serviceID, payment string) *models.Appointment {
	ap := &models.Appointment{
		ID:        id,
		AccountID: accountID,
		Kind:      "booking",
		ClientID:  &clientID,
		ServiceID: &serviceID,
		StaffID:   "stf-1",
		Date:      date,
		Time:      hm,
		Status:    "completed",
	}
	if payment != "" {
		ap.PaymentMethod = &payment
	}
	return ap
}

func TestRevenueReport(t *testing.T) {
	ctx := context.Background()
	db, repo := newTestRepo(t)
	seed(t, db)

	uc := ucreport.NewRevenueReport(repo)

	today := domain.FormatDate(timezone.Now())

	require.NoError(t, db.Create(completed("a1", today, "09:00", "cli-ana", "svc-corte", "pix")).Error)
	require.NoError(t, db.Create(completed("a2", today, "10:00", "cli-ana", "svc-corte", "cash")).Error)
	require.NoError(t, db.Create(completed("a3", today, "11:00", "cli-joana", "svc-escova", "pix")).Error)
	require.NoError(t, db.Create(completed("a4", "2020-01-01", "09:00", "cli-joana", "svc-corte", "")).Error)

	// scheduled nunca entra no relatório
	sched := completed("a5", today, "12:00", "cli-ana", "svc-corte", "")
	sched.Status = "scheduled"
	require.NoError(t, db.Create(sched).Error)

	t.Run("período all soma todos os concluídos", func(t *testing.T) {
		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodAll, "")
		require.NoError(t, err)

		assert.Equal(t, 4, sum.Count)
		assert.Equal(t, 290.0, sum.TotalRevenue)
		assert.Equal(t, "R$290,00", sum.TotalRevenueLabel)
	})

	t.Run("período week corta datas antigas", func(t *testing.T) {
		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodWeek, "")
		require.NoError(t, err)

		assert.Equal(t, 3, sum.Count)
		assert.Equal(t, 210.0, sum.TotalRevenue)
	})

	t.Run("por serviço em ordem de receita", func(t *testing.T) {
		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodAll, "")
		require.NoError(t, err)

		require.Len(t, sum.ByService, 2)
		assert.Equal(t, "Corte Feminino", sum.ByService[0].Name)
		assert.Equal(t, 3, sum.ByService[0].Count)
		assert.Equal(t, 240.0, sum.ByService[0].Revenue)
		assert.Equal(t, "Escova", sum.ByService[1].Name)
	})

	t.Run("por forma de pagamento", func(t *testing.T) {
		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodAll, "")
		require.NoError(t, err)

		require.Len(t, sum.ByPayment, 2)
		assert.Equal(t, "pix", sum.ByPayment[0].Method)
		assert.Equal(t, 130.0, sum.ByPayment[0].Revenue)
	})

	t.Run("filtro por serviço", func(t *testing.T) {
		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodAll, "svc-escova")
		require.NoError(t, err)

		assert.Equal(t, 1, sum.Count)
		assert.Equal(t, 50.0, sum.TotalRevenue)
	})

	t.Run("insights de clientes", func(t *testing.T) {
		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodAll, "")
		require.NoError(t, err)

		require.NotEmpty(t, sum.TopByFrequency)
		top := sum.TopByFrequency[0]
		assert.Equal(t, "Ana", top.Name)
		assert.Equal(t, 2, top.Frequency)
		assert.Equal(t, 160.0, top.TotalSpend)
		assert.Equal(t, "Corte Feminino", top.FavoriteService)
	})

	t.Run("serviço apagado conta receita zero", func(t *testing.T) {
		require.NoError(t, db.Create(completed("a6", "2020-01-02", "09:00", "cli-ana", "svc-sumiu", "")).Error)

		sum, err := uc.Execute(ctx, accountID, ucreport.PeriodAll, "")
		require.NoError(t, err)

		assert.Equal(t, 5, sum.Count)
		assert.Equal(t, 290.0, sum.TotalRevenue)
	})

	t.Run("período desconhecido é recusado", func(t *testing.T) {
		_, err := uc.Execute(ctx, accountID, "decade", "")
		assert.True(t, httperr.IsBusiness(err, "invalid_period"))
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	db, repo := newTestRepo(t)
	seed(t, db)

	uc := ucreport.NewDashboard(repo)

	today := domain.FormatDate(timezone.Now())

	sched := completed("d1", today, "09:00", "cli-ana", "svc-corte", "")
	sched.Status = "scheduled"
	require.NoError(t, db.Create(sched).Error)

	require.NoError(t, db.Create(completed("d2", "2020-01-01", "09:00", "cli-joana", "svc-escova", "pix")).Error)

	sum, err := uc.Execute(ctx, accountID)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.TodayScheduled)
	assert.Equal(t, 2, sum.ClientCount)
	assert.Equal(t, 2, sum.ServiceCount)
	assert.Equal(t, 50.0, sum.TotalRevenue)
	assert.Equal(t, "R$50,00", sum.TotalRevenueLabel)

	require.Len(t, sum.Today, 1)
	assert.Equal(t, "d1", sum.Today[0].ID)
}
