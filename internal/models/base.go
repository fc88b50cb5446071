// Package models defines the ledger entities as they are persisted and
// returned to callers.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO day layout used by every date field.
const DateLayout = "2006-01-02"

func init() {
	// Amounts round-trip as plain JSON numbers, matching the stored records.
	decimal.MarshalJSONWithoutQuotes = true
}

// Day returns the day component (YYYY-MM-DD) of an ISO date or timestamp string.
func Day(date string) string {
	date = strings.TrimSpace(date)
	if len(date) > len(DateLayout) {
		return date[:len(DateLayout)]
	}
	return date
}

// ParseDate parses the day component of an ISO date string.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, Day(date))
}

// FormatDate renders t as an ISO day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
