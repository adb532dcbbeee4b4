package dto

type AccountingSummaryDTO struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"` // pode ser negativo
}

// CashFlowPointDTO é um ponto do gráfico de fluxo de caixa: somas separadas
// de ingresos e gastos de uma data.
type CashFlowPointDTO struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
