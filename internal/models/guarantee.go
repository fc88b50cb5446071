package models

import "github.com/shopspring/decimal"

// Guarantee records a warranty or deposit. It has no derived values.
type Guarantee struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}
