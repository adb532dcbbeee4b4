package dashboard

import (
	"github.com/BruksfildServices01/estetica-admin/internal/clock"
	"github.com/BruksfildServices01/estetica-admin/internal/dto"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type Metrics struct {
	store *store.Store
}

func NewMetrics(st *store.Store) *Metrics {
	return &Metrics{store: st}
}

// Execute recalcula os quatro KPIs do painel a partir do snapshot atual.
// "today" vem do chamador (YYYY-MM-DD) para manter tudo determinístico.
func (uc *Metrics) Execute(today string) dto.DashboardMetricsDTO {

	snap := uc.store.Snapshot()
	out := dto.DashboardMetricsDTO{}

	for _, ap := range snap.Appointments {
		if ap.Date == today {
			out.TodayAppointments++
		}
	}

	for _, c := range snap.Clients {
		if c.IsVip {
			out.VipClients++
		}
	}

	for _, p := range snap.Products {
		if p.LowStock() {
			out.LowStock++
		}
	}

	// Receita mensal compara só o número do mês — ano fica de fora, igual o
	// painel sempre calculou. Lançamento de outubro de qualquer ano conta em
	// outubro.
	currentMonth, ok := clock.Month(today)
	if !ok {
		return out
	}
	for _, t := range snap.Transactions {
		if t.Type != models.TransactionIncome {
			continue
		}
		if m, ok := clock.Month(t.Date); ok && m == currentMonth {
			out.MonthlyIncome += t.Amount
		}
	}

	return out
}
