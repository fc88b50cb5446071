package aggregate

import (
	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// BudgetSpent is the absolute total of expenses tagged with the budget's tag.
// Budget dates do not restrict which transactions count.
func BudgetSpent(b models.Budget, txs []models.Transaction) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range txs {
		if tx.IsExpense() && tx.HasTag(b.Tag) {
			spent = spent.Add(tx.Amount.Abs())
		}
	}
	return spent
}

// BudgetProgress is spent as a percentage of the limit, clamped to [0, 100].
// Limits below 1 are treated as 1.
func BudgetProgress(b models.Budget, spent decimal.Decimal) decimal.Decimal {
	limit := decimal.Max(decimal.NewFromInt(1), b.Limit)
	pct := spent.Div(limit).Mul(hundred)
	return decimal.Min(hundred, decimal.Max(decimal.Zero, pct))
}

// BudgetLeft is what remains of the limit, never below zero.
func BudgetLeft(b models.Budget, spent decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, b.Limit.Sub(spent))
}

// BudgetStatus is a budget together with its derived values.
type BudgetStatus struct {
	models.Budget
	Spent    decimal.Decimal `json:"spent"`
	Progress decimal.Decimal `json:"progress"`
	Left     decimal.Decimal `json:"left"`
}

// BudgetStatusOf derives the status of one budget.
func BudgetStatusOf(b models.Budget, txs []models.Transaction) BudgetStatus {
	spent := BudgetSpent(b, txs)
	return BudgetStatus{
		Budget:   b,
		Spent:    spent,
		Progress: BudgetProgress(b, spent),
		Left:     BudgetLeft(b, spent),
	}
}

// BudgetStatuses derives the status of every budget, in input order.
func BudgetStatuses(budgets []models.Budget, txs []models.Transaction) []BudgetStatus {
	out := make([]BudgetStatus, len(budgets))
	for i, b := range budgets {
		out[i] = BudgetStatusOf(b, txs)
	}
	return out
}
