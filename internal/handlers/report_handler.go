package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glamourlabs/salon-manager/internal/httpresp"
	"github.com/glamourlabs/salon-manager/internal/middleware"
	ucreport "github.com/glamourlabs/salon-manager/internal/usecase/report"
)

type ReportHandler struct {
	revenue   *ucreport.RevenueReport
	dashboard *ucreport.Dashboard
}

func NewReportHandler(
	revenue *ucreport.RevenueReport,
	dashboard *ucreport.Dashboard,
) *ReportHandler {
	return &ReportHandler{
		revenue:   revenue,
		dashboard: dashboard,
	}
}

// Summary agrega os concluídos do período. period: week|month|all,
// service filtra por um serviço específico.
func (h *ReportHandler) Summary(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	period := c.DefaultQuery("period", ucreport.PeriodMonth)
	serviceFilter := c.Query("service")

	summary, err := h.revenue.Execute(c.Request.Context(), accountID, period, serviceFilter)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	summary, err := h.dashboard.Execute(c.Request.Context(), accountID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, summary)
}
