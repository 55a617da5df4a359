package reminder_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbpkg "github.com/glamourlabs/salon-manager/internal/db"
	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/infra/repository"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/reminder"
	"github.com/glamourlabs/salon-manager/internal/timezone"
	ucschedule "github.com/glamourlabs/salon-manager/internal/usecase/schedule"
)

func TestServiceSnapshot(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	// agendamento daqui a pouco, dentro da janela de uma hora
	soon := timezone.Now().Add(5 * time.Minute)
	require.NoError(t, db.Create(&models.Appointment{
		ID:        "ap-1",
		AccountID: "acc-1",
		Kind:      "booking",
		StaffID:   "stf-1",
		Date:      domain.FormatDate(soon),
		Time:      soon.Format("15:04"),
		Status:    "scheduled",
	}).Error)

	repo := repository.NewAppointmentGormRepository(db)
	svc := reminder.NewService(ucschedule.NewListUpcoming(repo), zap.NewNop())

	assert.Empty(t, svc.Snapshot("acc-1"), "antes do Start o snapshot é vazio")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	require.Eventually(t, func() bool {
		return len(svc.Snapshot("acc-1")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	got := svc.Snapshot("acc-1")[0]
	assert.Equal(t, "ap-1", got.ID)

	assert.Empty(t, svc.Snapshot("outra-conta"))
}
