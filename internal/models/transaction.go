package models

import "github.com/shopspring/decimal"

// Frequency is the recurrence period of a recurring transaction.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// Frequencies lists every supported frequency.
var Frequencies = []Frequency{
	FrequencyWeekly,
	FrequencyBiWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyAnnually,
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// Transaction represents an income (positive amount) or an expense
// (negative amount).
type Transaction struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Tags              []string        `json:"tags"`
	AccountID         string          `json:"accountId,omitempty"`
	IsRecurring       bool            `json:"isRecurring"`
	Frequency         Frequency       `json:"frequency,omitempty"`
	RecurrenceEndDate string          `json:"recurrenceEndDate,omitempty"`
}

// IsExpense reports whether the transaction takes money out.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// IsIncome reports whether the transaction brings money in.
func (t Transaction) IsIncome() bool { return t.Amount.IsPositive() }

// HasTag reports whether tag is in the transaction's tag set.
func (t Transaction) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// HasAllTags reports whether the transaction's tag set is a superset of tags.
func (t Transaction) HasAllTags(tags []string) bool {
	for _, tag := range tags {
		if !t.HasTag(tag) {
			return false
		}
	}
	return true
}
