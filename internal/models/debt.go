package models

import "github.com/shopspring/decimal"

// Debt represents a loan owed to a lender. InterestRate is a percentage kept
// for reference only; it is not compounded into the remaining balance.
type Debt struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Lender       string          `json:"lender"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interestRate"`
	StartDate    string          `json:"startDate,omitempty"`
	DueDate      string          `json:"dueDate"`
}

// Payment is an amount paid towards a debt.
type Payment struct {
	ID     string          `json:"id"`
	DebtID string          `json:"debtId"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}
