package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/httpresp"
	"github.com/glamourlabs/salon-manager/internal/middleware"
	"github.com/glamourlabs/salon-manager/internal/reminder"
	"github.com/glamourlabs/salon-manager/internal/timezone"
	ucschedule "github.com/glamourlabs/salon-manager/internal/usecase/schedule"
)

type AppointmentHandler struct {
	createBooking *ucschedule.CreateBooking
	createBlock   *ucschedule.CreateBlock
	remove        *ucschedule.RemoveAppointment
	complete      *ucschedule.CompleteAppointment
	listDay       *ucschedule.ListDayAppointments
	monthOverview *ucschedule.MonthOverview
	dayGrid       *ucschedule.DayGrid
	upcoming      *ucschedule.ListUpcoming
	reminders     *reminder.Service
}

func NewAppointmentHandler(
	createBooking *ucschedule.CreateBooking,
	createBlock *ucschedule.CreateBlock,
	remove *ucschedule.RemoveAppointment,
	complete *ucschedule.CompleteAppointment,
	listDay *ucschedule.ListDayAppointments,
	monthOverview *ucschedule.MonthOverview,
	dayGrid *ucschedule.DayGrid,
	upcoming *ucschedule.ListUpcoming,
	reminders *reminder.Service,
) *AppointmentHandler {
	return &AppointmentHandler{
		createBooking: createBooking,
		createBlock:   createBlock,
		remove:        remove,
		complete:      complete,
		listDay:       listDay,
		monthOverview: monthOverview,
		dayGrid:       dayGrid,
		upcoming:      upcoming,
		reminders:     reminders,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID  string `json:"clientId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	StaffID   string `json:"staffId" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

type CreateBlockRequest struct {
	StaffID string `json:"staffId" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

type CompleteAppointmentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// writeBusinessError traduz o código de negócio para o status HTTP
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "erro interno ao processar a solicitação")
		return
	}

	switch {
	case code == "slot_taken":
		httperr.Conflict(c, code, "Este horário já está ocupado para o profissional.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Registro não encontrado.")
	default:
		httperr.BadRequest(c, code, "Não foi possível processar o agendamento.")
	}
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createBooking.Execute(c.Request.Context(), ucschedule.CreateBookingInput{
		AccountID:     accountID,
		ClientID:      req.ClientID,
		ServiceID:     req.ServiceID,
		StaffID:       req.StaffID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) CreateBlock(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createBlock.Execute(c.Request.Context(), ucschedule.CreateBlockInput{
		AccountID: accountID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// Remove é idempotente: apagar um id inexistente responde ok
func (h *AppointmentHandler) Remove(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	if err := h.remove.Execute(c.Request.Context(), accountID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	var req CompleteAppointmentRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", err.Error())
			return
		}
	}

	ap, err := h.complete.Execute(c.Request.Context(), ucschedule.CompleteAppointmentInput{
		AccountID:     accountID,
		AppointmentID: id,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	date := c.Query("date")

	if date == "" {
		date = domain.FormatDate(timezone.Now())
	}

	rows, err := h.listDay.Execute(c.Request.Context(), accountID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) Month(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	now := timezone.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	days, err := h.monthOverview.Execute(c.Request.Context(), accountID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

func (h *AppointmentHandler) Grid(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	date := c.Query("date")
	if date == "" {
		date = domain.FormatDate(timezone.Now())
	}

	grid, err := h.dayGrid.Execute(c.Request.Context(), accountID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, grid)
}

// Slots devolve a grade fixa de horários do salão
func (h *AppointmentHandler) Slots(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"slots":       domain.SlotTimes(),
		"slotMinutes": domain.SlotMinutes,
	})
}

// Reminders lista os agendamentos da conta que começam na próxima hora.
// Por padrão responde do snapshot do serviço de fundo; live=1 força uma
// leitura fresca no banco.
func (h *AppointmentHandler) Reminders(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	if c.Query("live") == "1" {
		rows, err := h.upcoming.Execute(c.Request.Context(), accountID, timezone.Now())
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.List(c, rows)
		return
	}

	aps := h.reminders.Snapshot(accountID)

	rows, err := h.upcoming.Describe(c.Request.Context(), accountID, aps)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, rows)
}
