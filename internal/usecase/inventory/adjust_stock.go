package inventory

import (
	"github.com/BruksfildServices01/estetica-admin/internal/audit"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

type AdjustStock struct {
	store *store.Store
	audit *audit.Recorder
}

func NewAdjustStock(st *store.Store, rec *audit.Recorder) *AdjustStock {
	return &AdjustStock{store: st, audit: rec}
}

// Execute soma delta (qualquer sinal e magnitude) ao estoque, travando em
// zero. Id ausente é no-op.
func (uc *AdjustStock) Execute(id string, delta int) store.UpdateResult {

	snap := uc.store.Snapshot()
	result := store.NotFoundNoop

	for i := range snap.Products {
		if snap.Products[i].ID == id {
			q := snap.Products[i].Quantity + delta
			if q < 0 {
				q = 0
			}
			snap.Products[i].Quantity = q
			result = store.Applied
			break
		}
	}

	if result == store.Applied {
		uc.store.ReplaceProducts(snap.Products)
		uc.audit.Record(audit.Event{
			Action:   "stock_adjusted",
			Entity:   "product",
			EntityID: id,
		})
	}

	return result
}
