package accounting

import (
	"github.com/BruksfildServices01/estetica-admin/internal/dto"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type Summary struct {
	store *store.Store
}

func NewSummary(st *store.Store) *Summary {
	return &Summary{store: st}
}

func (uc *Summary) Execute() dto.AccountingSummaryDTO {

	snap := uc.store.Snapshot()
	out := dto.AccountingSummaryDTO{}

	for _, t := range snap.Transactions {
		switch t.Type {
		case models.TransactionIncome:
			out.TotalIncome += t.Amount
		case models.TransactionExpense:
			out.TotalExpense += t.Amount
		}
	}

	out.Balance = out.TotalIncome - out.TotalExpense
	return out
}
