package models

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        string          `json:"date" yaml:"date"` // YYYY-MM-DD
	Description string          `json:"description" yaml:"description"`
	Amount      float64         `json:"amount" yaml:"amount"` // sempre >= 0
	Type        TransactionType `json:"type" yaml:"type"`
}
