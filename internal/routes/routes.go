package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/glamourlabs/salon-manager/internal/audit"
	"github.com/glamourlabs/salon-manager/internal/config"
	"github.com/glamourlabs/salon-manager/internal/handlers"
	infraRepo "github.com/glamourlabs/salon-manager/internal/infra/repository"
	"github.com/glamourlabs/salon-manager/internal/middleware"
	"github.com/glamourlabs/salon-manager/internal/reminder"
	ucReport "github.com/glamourlabs/salon-manager/internal/usecase/report"
	ucSchedule "github.com/glamourlabs/salon-manager/internal/usecase/schedule"
)

// RegisterRoutes monta toda a árvore de dependências e devolve o serviço
// de lembretes para o main iniciar junto com o servidor.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) *reminder.Service {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	monthCache := ucSchedule.NewMonthCache()

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	createBookingUC := ucSchedule.NewCreateBooking(
		scheduleRepo,
		auditDispatcher,
		monthCache,
	)

	createBlockUC := ucSchedule.NewCreateBlock(
		scheduleRepo,
		auditDispatcher,
		monthCache,
	)

	removeUC := ucSchedule.NewRemoveAppointment(
		scheduleRepo,
		auditDispatcher,
		monthCache,
	)

	completeUC := ucSchedule.NewCompleteAppointment(
		scheduleRepo,
		auditDispatcher,
		monthCache,
	)

	listDayUC := ucSchedule.NewListDayAppointments(scheduleRepo)

	monthOverviewUC := ucSchedule.NewMonthOverview(scheduleRepo, monthCache)

	dayGridUC := ucSchedule.NewDayGrid(scheduleRepo)

	upcomingUC := ucSchedule.NewListUpcoming(scheduleRepo)

	// ======================================================
	// 🧠 USE CASES — RELATÓRIOS
	// ======================================================
	revenueUC := ucReport.NewRevenueReport(scheduleRepo)
	dashboardUC := ucReport.NewDashboard(scheduleRepo)

	// ======================================================
	// ⏰ LEMBRETES (SERVIÇO DE FUNDO)
	// ======================================================
	reminderService := reminder.NewService(upcomingUC, log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		createBlockUC,
		removeUC,
		completeUC,
		listDayUC,
		monthOverviewUC,
		dayGridUC,
		upcomingUC,
		reminderService,
	)

	reportHandler := handlers.NewReportHandler(revenueUC, dashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PATCH("/me/staff/:id", staffHandler.Update)
			secured.DELETE("/me/staff/:id", staffHandler.Delete)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.POST("/me/appointments/blocks", appointmentHandler.CreateBlock)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.Month)
			secured.GET("/me/appointments/grid", appointmentHandler.Grid)
			secured.GET("/me/appointments/slots", appointmentHandler.Slots)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Remove)

			secured.GET("/me/reminders", appointmentHandler.Reminders)

			// ------------------------------
			// RELATÓRIOS
			// ------------------------------
			secured.GET("/me/reports/summary", reportHandler.Summary)
			secured.GET("/me/reports/dashboard", reportHandler.Dashboard)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	return reminderService
}
