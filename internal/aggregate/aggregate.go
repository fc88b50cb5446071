// Package aggregate computes derived ledger values: account balances, budget
// progress, debt balances and tag/date totals. Every function is pure and
// works on exact decimal sums; rounding is left to presentation.
package aggregate

import (
	"slices"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// NoTag is the bucket untagged expenses are credited to in tag aggregates.
const NoTag = "No Tag"

var hundred = decimal.NewFromInt(100)

// AccountBalances seeds every account with its starting balance and adds each
// transaction whose accountId names a known account. Transactions without an
// account or with a dangling accountId are ignored.
func AccountBalances(accounts []models.Account, txs []models.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		balances[a.ID] = a.StartingBalance
	}
	for _, tx := range txs {
		if tx.AccountID == "" {
			continue
		}
		if bal, ok := balances[tx.AccountID]; ok {
			balances[tx.AccountID] = bal.Add(tx.Amount)
		}
	}
	return balances
}

// TagAmount is a total credited to one tag.
type TagAmount struct {
	Tag    string          `json:"tag"`
	Amount decimal.Decimal `json:"amount"`
}

// DateAmount is a total for one day.
type DateAmount struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseAggregateByTag credits each expense's absolute amount to every one of
// its tags, and untagged expenses to NoTag. The result is sorted by amount
// descending; ties keep first-seen order.
func ExpenseAggregateByTag(txs []models.Transaction) []TagAmount {
	g := newGrouper()
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		amount := tx.Amount.Abs()
		if len(tx.Tags) == 0 {
			g.add(NoTag, amount)
			continue
		}
		for _, tag := range tx.Tags {
			g.add(tag, amount)
		}
	}
	return g.tagAmounts()
}

// Summary holds income and expense totals plus their breakdowns.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	Net           decimal.Decimal `json:"net"`
	IncomeByTag   []TagAmount     `json:"incomeByTag"`
	ExpenseByTag  []TagAmount     `json:"expenseByTag"`
	IncomeByDate  []DateAmount    `json:"incomeByDate"`
	ExpenseByDate []DateAmount    `json:"expenseByDate"`
}

// SummaryTotals sums income and absolute expense and groups both by tag and by
// day. Untagged transactions count towards the totals and the per-day groups
// but not the per-tag groups. Groups are sorted by amount descending.
func SummaryTotals(txs []models.Transaction) Summary {
	incomeTags, expenseTags := newGrouper(), newGrouper()
	incomeDays, expenseDays := newGrouper(), newGrouper()
	income, expense := decimal.Zero, decimal.Zero

	for _, tx := range txs {
		day := models.Day(tx.Date)
		switch {
		case tx.IsIncome():
			income = income.Add(tx.Amount)
			incomeDays.add(day, tx.Amount)
			for _, tag := range tx.Tags {
				incomeTags.add(tag, tx.Amount)
			}
		case tx.IsExpense():
			amount := tx.Amount.Abs()
			expense = expense.Add(amount)
			expenseDays.add(day, amount)
			for _, tag := range tx.Tags {
				expenseTags.add(tag, amount)
			}
		}
	}

	return Summary{
		TotalIncome:   income,
		TotalExpense:  expense,
		Net:           income.Sub(expense),
		IncomeByTag:   incomeTags.tagAmounts(),
		ExpenseByTag:  expenseTags.tagAmounts(),
		IncomeByDate:  incomeDays.dateAmounts(),
		ExpenseByDate: expenseDays.dateAmounts(),
	}
}

// grouper sums amounts per key and remembers first-seen key order.
type grouper struct {
	keys   []string
	totals map[string]decimal.Decimal
}

func newGrouper() *grouper {
	return &grouper{totals: make(map[string]decimal.Decimal)}
}

func (g *grouper) add(key string, amount decimal.Decimal) {
	total, ok := g.totals[key]
	if !ok {
		g.keys = append(g.keys, key)
	}
	g.totals[key] = total.Add(amount)
}

func (g *grouper) tagAmounts() []TagAmount {
	out := make([]TagAmount, len(g.keys))
	for i, k := range g.keys {
		out[i] = TagAmount{Tag: k, Amount: g.totals[k]}
	}
	slices.SortStableFunc(out, func(a, b TagAmount) int { return b.Amount.Cmp(a.Amount) })
	return out
}

func (g *grouper) dateAmounts() []DateAmount {
	out := make([]DateAmount, len(g.keys))
	for i, k := range g.keys {
		out[i] = DateAmount{Date: k, Amount: g.totals[k]}
	}
	slices.SortStableFunc(out, func(a, b DateAmount) int { return b.Amount.Cmp(a.Amount) })
	return out
}
