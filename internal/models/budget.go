package models

import "github.com/shopspring/decimal"

// Budget caps spending on expenses carrying Tag.
type Budget struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Limit     decimal.Decimal `json:"limit"`
	Tag       string          `json:"tag"`
	StartDate string          `json:"startDate,omitempty"`
	EndDate   string          `json:"endDate,omitempty"`
}
