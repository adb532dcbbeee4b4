package accounting

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/BruksfildServices01/estetica-admin/internal/dto"
	"github.com/BruksfildServices01/estetica-admin/internal/models"
	"github.com/BruksfildServices01/estetica-admin/internal/store"
)

func demoTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "1", Date: "2023-10-01", Amount: 350, Type: models.TransactionIncome},
		{ID: "2", Date: "2023-10-02", Amount: 120, Type: models.TransactionExpense},
		{ID: "3", Date: "2023-10-05", Amount: 800, Type: models.TransactionIncome},
		{ID: "4", Date: "2023-10-10", Amount: 200, Type: models.TransactionExpense},
	}
}

func TestSummary(t *testing.T) {
	st := store.New()
	st.ReplaceTransactions(demoTransactions())

	got := NewSummary(st).Execute()

	if got.TotalIncome != 1150 {
		t.Errorf("TotalIncome = %v, want 1150", got.TotalIncome)
	}
	if got.TotalExpense != 320 {
		t.Errorf("TotalExpense = %v, want 320", got.TotalExpense)
	}
	if got.Balance != 830 {
		t.Errorf("Balance = %v, want 830", got.Balance)
	}
}

func TestSummary_NegativeBalance(t *testing.T) {
	st := store.New()
	st.ReplaceTransactions([]models.Transaction{
		{ID: "1", Date: "2023-10-01", Amount: 100, Type: models.TransactionIncome},
		{ID: "2", Date: "2023-10-02", Amount: 400, Type: models.TransactionExpense},
	})

	if got := NewSummary(st).Execute(); got.Balance != -300 {
		t.Errorf("Balance = %v, want -300", got.Balance)
	}
}

func TestCashFlow_GroupsAndSorts(t *testing.T) {
	st := store.New()
	st.ReplaceTransactions([]models.Transaction{
		{ID: "1", Date: "2023-10-05", Amount: 800, Type: models.TransactionIncome},
		{ID: "2", Date: "2023-10-01", Amount: 350, Type: models.TransactionIncome},
		{ID: "3", Date: "2023-10-05", Amount: 50, Type: models.TransactionExpense},
		{ID: "4", Date: "2023-10-01", Amount: 120, Type: models.TransactionExpense},
	})

	got := NewCashFlow(st).Execute()

	want := []dto.CashFlowPointDTO{
		{Date: "2023-10-01", Income: 350, Expense: 120},
		{Date: "2023-10-05", Income: 800, Expense: 50},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CashFlow = %+v, want %+v", got, want)
	}
}

// embaralhar a entrada não pode mudar o agrupamento
func TestCashFlow_OrderIndependent(t *testing.T) {
	base := demoTransactions()

	st := store.New()
	st.ReplaceTransactions(base)
	want := NewCashFlow(st).Execute()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]models.Transaction(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		st2 := store.New()
		st2.ReplaceTransactions(shuffled)

		if got := NewCashFlow(st2).Execute(); !reflect.DeepEqual(got, want) {
			t.Fatalf("shuffle %d changed result:\n got %+v\nwant %+v", i, got, want)
		}
	}

	for i := 1; i < len(want); i++ {
		if want[i-1].Date >= want[i].Date {
			t.Errorf("series not ascending: %q before %q", want[i-1].Date, want[i].Date)
		}
	}
}
