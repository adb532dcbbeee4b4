package store

import (
	"testing"

	"github.com/BruksfildServices01/estetica-admin/internal/models"
)

func TestSnapshotIsolation(t *testing.T) {
	st := New()
	st.ReplaceClients([]models.Client{{
		ID:   "1",
		Name: "Ana",
		ClinicalData: models.ClinicalData{
			TreatedAreas: []string{"nose"},
		},
	}})
	st.ReplaceProducts([]models.Product{{ID: "1", Name: "Aceite", Quantity: 3}})

	snap := st.Snapshot()

	// mexer no snapshot não pode vazar para o store
	snap.Clients[0].Name = "Outra"
	snap.Clients[0].ClinicalData.TreatedAreas[0] = "chin"
	snap.Products[0].Quantity = 99
	snap.Products = append(snap.Products, models.Product{ID: "2"})

	fresh := st.Snapshot()
	if fresh.Clients[0].Name != "Ana" {
		t.Errorf("client name leaked: %q", fresh.Clients[0].Name)
	}
	if fresh.Clients[0].ClinicalData.TreatedAreas[0] != "nose" {
		t.Errorf("treated areas leaked: %v", fresh.Clients[0].ClinicalData.TreatedAreas)
	}
	if fresh.Products[0].Quantity != 3 || len(fresh.Products) != 1 {
		t.Errorf("products leaked: %+v", fresh.Products)
	}
}

func TestReplaceKeepsOldSnapshotConsistent(t *testing.T) {
	st := New()
	st.ReplaceTransactions([]models.Transaction{{ID: "1", Amount: 10}})

	before := st.Snapshot()

	st.ReplaceTransactions([]models.Transaction{
		{ID: "1", Amount: 10},
		{ID: "2", Amount: 20},
	})

	if len(before.Transactions) != 1 {
		t.Errorf("old snapshot changed after replace: %d transactions", len(before.Transactions))
	}
	if got := st.Snapshot(); len(got.Transactions) != 2 {
		t.Errorf("replace not visible: %d transactions", len(got.Transactions))
	}
}

func TestUpdateResultString(t *testing.T) {
	if Applied.String() != "applied" || NotFoundNoop.String() != "not_found_noop" {
		t.Errorf("unexpected labels: %q %q", Applied, NotFoundNoop)
	}
}
