package report

import (
	"context"
	"sort"
	"time"

	domain "github.com/glamourlabs/salon-manager/internal/domain/schedule"
	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/money"
	"github.com/glamourlabs/salon-manager/internal/timezone"
)

// Períodos aceitos pelos relatórios
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

type ServiceStat struct {
	ServiceID    string  `json:"service_id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	RevenueLabel string  `json:"revenue_label"`
}

type DayPoint struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type PaymentStat struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type ClientInsight struct {
	ClientID        string  `json:"client_id"`
	Name            string  `json:"name"`
	Frequency       int     `json:"frequency"`
	TotalSpend      float64 `json:"total_spend"`
	FavoriteService string  `json:"favorite_service"`
}

type Summary struct {
	Period            string  `json:"period"`
	ServiceFilter     string  `json:"service_filter,omitempty"`
	Count             int     `json:"count"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRevenueLabel string  `json:"total_revenue_label"`

	ByService []ServiceStat `json:"by_service"`
	ByDay     []DayPoint    `json:"by_day"`
	ByPayment []PaymentStat `json:"by_payment"`

	TopByFrequency []ClientInsight `json:"top_by_frequency"`
	TopBySpend     []ClientInsight `json:"top_by_spend"`
}

type RevenueReport struct {
	repo domain.Repository
}

func NewRevenueReport(repo domain.Repository) *RevenueReport {
	return &RevenueReport{repo: repo}
}

// Execute agrega somente agendamentos concluídos, filtrados por período e,
// opcionalmente, por serviço. Receita vem do preço atual do serviço;
// serviço apagado conta como zero, nunca erro.
func (uc *RevenueReport) Execute(
	ctx context.Context,
	accountID string,
	period string,
	serviceFilter string,
) (*Summary, error) {

	switch period {
	case PeriodWeek, PeriodMonth, PeriodAll:
	default:
		return nil, httperr.ErrBusiness("invalid_period")
	}

	aps, err := uc.repo.ListAppointments(ctx, accountID)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx, accountID)
	if err != nil {
		return nil, err
	}
	serviceByID := make(map[string]models.Service, len(services))
	for _, s := range services {
		serviceByID[s.ID] = s
	}

	clients, err := uc.repo.ListClients(ctx, accountID)
	if err != nil {
		return nil, err
	}
	clientByID := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}

	now := timezone.Now()
	completed := filterCompleted(aps, period, serviceFilter, now)

	sum := &Summary{
		Period:        period,
		ServiceFilter: serviceFilter,
		Count:         len(completed),
		ByService:     []ServiceStat{},
		ByDay:         []DayPoint{},
		ByPayment:     []PaymentStat{},
	}

	priceOf := func(ap models.Appointment) float64 {
		if ap.ServiceID == nil {
			return 0
		}
		return serviceByID[*ap.ServiceID].Price
	}

	// total + por serviço + por dia + por forma de pagamento
	svcStats := map[string]*ServiceStat{}
	dayStats := map[string]*DayPoint{}
	payStats := map[string]*PaymentStat{}

	for _, ap := range completed {
		price := priceOf(ap)
		sum.TotalRevenue += price

		if ap.ServiceID != nil {
			st, ok := svcStats[*ap.ServiceID]
			if !ok {
				svc := serviceByID[*ap.ServiceID]
				st = &ServiceStat{
					ServiceID: *ap.ServiceID,
					Name:      svc.Name,
					Color:     svc.Color,
				}
				svcStats[*ap.ServiceID] = st
			}
			st.Count++
			st.Revenue += price
		}

		dp, ok := dayStats[ap.Date]
		if !ok {
			dp = &DayPoint{Date: ap.Date}
			dayStats[ap.Date] = dp
		}
		dp.Count++
		dp.Revenue += price

		if ap.PaymentMethod != nil {
			ps, ok := payStats[*ap.PaymentMethod]
			if !ok {
				ps = &PaymentStat{Method: *ap.PaymentMethod}
				payStats[*ap.PaymentMethod] = ps
			}
			ps.Count++
			ps.Revenue += price
		}
	}

	sum.TotalRevenueLabel = money.FormatBRL(sum.TotalRevenue)

	for _, st := range svcStats {
		st.RevenueLabel = money.FormatBRL(st.Revenue)
		sum.ByService = append(sum.ByService, *st)
	}
	sort.Slice(sum.ByService, func(i, j int) bool {
		return sum.ByService[i].Revenue > sum.ByService[j].Revenue
	})

	for _, dp := range dayStats {
		sum.ByDay = append(sum.ByDay, *dp)
	}
	sort.Slice(sum.ByDay, func(i, j int) bool {
		return sum.ByDay[i].Date < sum.ByDay[j].Date
	})

	for _, ps := range payStats {
		sum.ByPayment = append(sum.ByPayment, *ps)
	}
	sort.Slice(sum.ByPayment, func(i, j int) bool {
		return sum.ByPayment[i].Revenue > sum.ByPayment[j].Revenue
	})

	sum.TopByFrequency, sum.TopBySpend = clientInsights(
		completed, clientByID, serviceByID,
	)

	return sum, nil
}

func filterCompleted(
	aps []models.Appointment,
	period string,
	serviceFilter string,
	now time.Time,
) []models.Appointment {

	weekFloor := domain.FormatDate(now.AddDate(0, 0, -7))
	thisMonth := domain.FormatDate(now)[:7]

	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if domain.Status(ap.Status) != domain.StatusCompleted {
			continue
		}
		if serviceFilter != "" {
			if ap.ServiceID == nil || *ap.ServiceID != serviceFilter {
				continue
			}
		}

		switch period {
		case PeriodWeek:
			if ap.Date < weekFloor {
				continue
			}
		case PeriodMonth:
			if len(ap.Date) < 7 || ap.Date[:7] != thisMonth {
				continue
			}
		}

		out = append(out, ap)
	}
	return out
}

const insightsLimit = 5

func clientInsights(
	completed []models.Appointment,
	clientByID map[string]models.Client,
	serviceByID map[string]models.Service,
) (topFrequency, topSpend []ClientInsight) {

	type agg struct {
		insight ClientInsight
		perSvc  map[string]int
	}
	byClient := map[string]*agg{}

	for _, ap := range completed {
		if ap.ClientID == nil {
			continue
		}
		a, ok := byClient[*ap.ClientID]
		if !ok {
			a = &agg{
				insight: ClientInsight{
					ClientID: *ap.ClientID,
					Name:     clientByID[*ap.ClientID].Name,
				},
				perSvc: map[string]int{},
			}
			byClient[*ap.ClientID] = a
		}
		a.insight.Frequency++
		if ap.ServiceID != nil {
			a.insight.TotalSpend += serviceByID[*ap.ServiceID].Price
			a.perSvc[*ap.ServiceID]++
		}
	}

	insights := make([]ClientInsight, 0, len(byClient))
	for _, a := range byClient {
		best, bestCount := "", 0
		for svcID, n := range a.perSvc {
			if n > bestCount {
				best, bestCount = svcID, n
			}
		}
		if best != "" {
			a.insight.FavoriteService = serviceByID[best].Name
		}
		insights = append(insights, a.insight)
	}

	// empates desempatam pelo outro eixo, e por nome por último, para a
	// ordem não depender da iteração do map
	byFreq := append([]ClientInsight(nil), insights...)
	sort.Slice(byFreq, func(i, j int) bool {
		if byFreq[i].Frequency != byFreq[j].Frequency {
			return byFreq[i].Frequency > byFreq[j].Frequency
		}
		if byFreq[i].TotalSpend != byFreq[j].TotalSpend {
			return byFreq[i].TotalSpend > byFreq[j].TotalSpend
		}
		return byFreq[i].Name < byFreq[j].Name
	})
	if len(byFreq) > insightsLimit {
		byFreq = byFreq[:insightsLimit]
	}

	bySpend := append([]ClientInsight(nil), insights...)
	sort.Slice(bySpend, func(i, j int) bool {
		if bySpend[i].TotalSpend != bySpend[j].TotalSpend {
			return bySpend[i].TotalSpend > bySpend[j].TotalSpend
		}
		if bySpend[i].Frequency != bySpend[j].Frequency {
			return bySpend[i].Frequency > bySpend[j].Frequency
		}
		return bySpend[i].Name < bySpend[j].Name
	})
	if len(bySpend) > insightsLimit {
		bySpend = bySpend[:insightsLimit]
	}

	return byFreq, bySpend
}
