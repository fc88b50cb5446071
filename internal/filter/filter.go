// Package filter narrows transaction lists by composing independent
// predicates. A transaction is kept only if every present predicate holds.
package filter

import (
	"strings"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// Amount comparison operators.
const (
	OpGreaterThan = "gt"
	OpLessThan    = "lt"
	OpBetween     = "between"
)

// AmountCondition compares the signed amount against Value. For OpBetween,
// Value is "min,max" and both bounds are inclusive.
type AmountCondition struct {
	Op    string `json:"op" validate:"amount_op"`
	Value string `json:"value"`
}

// Spec describes a transaction view. Zero-valued fields impose no restriction.
type Spec struct {
	AccountIDs []string
	// EmptyAccountsMatchNone makes an empty AccountIDs match nothing instead
	// of everything. Views scoped to the selected accounts set it.
	EmptyAccountsMatchNone bool

	// DateStart and DateEnd bound the day component, inclusive.
	DateStart string
	DateEnd   string

	// Tags must all be present on a transaction.
	Tags []string

	DescriptionContains string
	Amount              *AmountCondition
	RecurringOnly       bool
}

// Predicate reports whether a transaction belongs in a view.
type Predicate func(models.Transaction) bool

// Predicates builds one predicate per present criterion. Malformed dates and
// amount bounds yield no predicate.
func (s Spec) Predicates() []Predicate {
	var preds []Predicate

	if len(s.AccountIDs) > 0 {
		ids := make(map[string]struct{}, len(s.AccountIDs))
		for _, id := range s.AccountIDs {
			ids[id] = struct{}{}
		}
		preds = append(preds, func(tx models.Transaction) bool {
			_, ok := ids[tx.AccountID]
			return ok
		})
	} else if s.EmptyAccountsMatchNone {
		preds = append(preds, func(models.Transaction) bool { return false })
	}

	if start, ok := day(s.DateStart); ok {
		preds = append(preds, func(tx models.Transaction) bool { return models.Day(tx.Date) >= start })
	}
	if end, ok := day(s.DateEnd); ok {
		preds = append(preds, func(tx models.Transaction) bool { return models.Day(tx.Date) <= end })
	}

	if tags := nonBlank(s.Tags); len(tags) > 0 {
		preds = append(preds, func(tx models.Transaction) bool { return tx.HasAllTags(tags) })
	}

	if q := strings.ToLower(strings.TrimSpace(s.DescriptionContains)); q != "" {
		preds = append(preds, func(tx models.Transaction) bool {
			return strings.Contains(strings.ToLower(tx.Description), q)
		})
	}

	if p := s.Amount.predicate(); p != nil {
		preds = append(preds, p)
	}

	if s.RecurringOnly {
		preds = append(preds, func(tx models.Transaction) bool { return tx.IsRecurring })
	}

	return preds
}

// Apply returns the transactions satisfying every predicate of s, in their
// original order. The input is not modified.
func Apply(txs []models.Transaction, s Spec) []models.Transaction {
	return Match(txs, s.Predicates()...)
}

// Match keeps the transactions for which every predicate holds.
func Match(txs []models.Transaction, preds ...Predicate) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
next:
	for _, tx := range txs {
		for _, p := range preds {
			if !p(tx) {
				continue next
			}
		}
		out = append(out, tx)
	}
	return out
}

func (c *AmountCondition) predicate() Predicate {
	if c == nil {
		return nil
	}
	switch c.Op {
	case OpGreaterThan:
		v, err := decimal.NewFromString(strings.TrimSpace(c.Value))
		if err != nil {
			return nil
		}
		return func(tx models.Transaction) bool { return tx.Amount.GreaterThan(v) }
	case OpLessThan:
		v, err := decimal.NewFromString(strings.TrimSpace(c.Value))
		if err != nil {
			return nil
		}
		return func(tx models.Transaction) bool { return tx.Amount.LessThan(v) }
	case OpBetween:
		lo, hi, ok := bounds(c.Value)
		if !ok {
			return nil
		}
		return func(tx models.Transaction) bool {
			return tx.Amount.GreaterThanOrEqual(lo) && tx.Amount.LessThanOrEqual(hi)
		}
	}
	return nil
}

func bounds(value string) (lo, hi decimal.Decimal, ok bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return lo, hi, false
	}
	lo, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return lo, hi, false
	}
	hi, err = decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return lo, hi, false
	}
	return lo, hi, true
}

func day(date string) (string, bool) {
	if strings.TrimSpace(date) == "" {
		return "", false
	}
	t, err := models.ParseDate(date)
	if err != nil {
		return "", false
	}
	return models.FormatDate(t), true
}

func nonBlank(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
