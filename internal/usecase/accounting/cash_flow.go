package accounting

import (
	"sort"

	"github.com/BruksfildServices01/estetica-admin/internal/dto"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type CashFlow struct {
	store *store.Store
}

func NewCashFlow(st *store.Store) *CashFlow {
	return &CashFlow{store: st}
}

// Execute agrupa os lançamentos por data, somando ingresos e gastos em
// separado — um ponto por data distinta, ordenado ascendente. O resultado não
// depende da ordem de chegada dos lançamentos.
func (uc *CashFlow) Execute() []dto.CashFlowPointDTO {

	snap := uc.store.Snapshot()

	byDate := make(map[string]*dto.CashFlowPointDTO)
	for _, t := range snap.Transactions {
		point, ok := byDate[t.Date]
		if !ok {
			point = &dto.CashFlowPointDTO{Date: t.Date}
			byDate[t.Date] = point
		}
		switch t.Type {
		case models.TransactionIncome:
			point.Income += t.Amount
		case models.TransactionExpense:
			point.Expense += t.Amount
		}
	}

	out := make([]dto.CashFlowPointDTO, 0, len(byDate))
	for _, point := range byDate {
		out = append(out, *point)
	}

	// datas são YYYY-MM-DD, ordem lexicográfica = cronológica
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	return out
}
