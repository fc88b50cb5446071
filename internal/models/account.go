package models

import "github.com/shopspring/decimal"

// Account represents a financial account. Its current balance is derived,
// never stored.
type Account struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
}
