package aggregate

import (
	"slices"
	"time"

	"finledger/internal/models"
)

// MaxProjectionSpan is the longest window recurring transactions are
// projected over.
const MaxProjectionSpan = 5 * 366 * 24 * time.Hour

// Occurrence is one projected instance of a recurring transaction.
type Occurrence struct {
	Date        string             `json:"date"`
	Transaction models.Transaction `json:"transaction"`
}

// Occurrences lists the days within [from, to] on which tx recurs, starting
// at its own date and stopping after its recurrence end date. Non-recurring
// transactions and transactions with an unparsable date yield nothing.
func Occurrences(tx models.Transaction, from, to time.Time) []time.Time {
	if !tx.IsRecurring || !tx.Frequency.Valid() {
		return nil
	}
	start, err := models.ParseDate(tx.Date)
	if err != nil {
		return nil
	}
	end := truncateDay(to)
	if tx.RecurrenceEndDate != "" {
		if until, err := models.ParseDate(tx.RecurrenceEndDate); err == nil && until.Before(end) {
			end = until
		}
	}
	from = truncateDay(from)

	var out []time.Time
	for n := 0; ; n++ {
		d := step(start, tx.Frequency, n)
		if d.After(end) {
			break
		}
		if !d.Before(from) {
			out = append(out, d)
		}
	}
	return out
}

// UpcomingRecurring projects every recurring transaction into [from, to] and
// orders the occurrences by date. Projections are never stored.
func UpcomingRecurring(txs []models.Transaction, from, to time.Time) []Occurrence {
	var out []Occurrence
	for _, tx := range txs {
		for _, d := range Occurrences(tx, from, to) {
			out = append(out, Occurrence{Date: models.FormatDate(d), Transaction: tx})
		}
	}
	slices.SortStableFunc(out, func(a, b Occurrence) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}
		return 0
	})
	return out
}

// step returns the n-th occurrence after start. Month-based frequencies are
// computed from start each time and clamped to the last day of the month, so
// a Jan 31 series lands on Feb 29 rather than drifting into March.
func step(start time.Time, f models.Frequency, n int) time.Time {
	switch f {
	case models.FrequencyWeekly:
		return start.AddDate(0, 0, 7*n)
	case models.FrequencyBiWeekly:
		return start.AddDate(0, 0, 14*n)
	case models.FrequencyMonthly:
		return addMonths(start, n)
	case models.FrequencyQuarterly:
		return addMonths(start, 3*n)
	default:
		return addMonths(start, 12*n)
	}
}

func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
