package aggregate

import (
	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// DebtPaid sums the payments recorded against the debt.
func DebtPaid(d models.Debt, payments []models.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		if p.DebtID == d.ID {
			paid = paid.Add(p.Amount)
		}
	}
	return paid
}

// DebtRemaining is principal minus payments. Overpayment makes it negative.
func DebtRemaining(d models.Debt, payments []models.Payment) decimal.Decimal {
	return d.Principal.Sub(DebtPaid(d, payments))
}

// DebtStatus is a debt together with its payments and derived balances.
type DebtStatus struct {
	models.Debt
	Paid      decimal.Decimal  `json:"paid"`
	Remaining decimal.Decimal  `json:"remaining"`
	Payments  []models.Payment `json:"payments"`
}

// DebtStatuses derives the status of every debt, in input order.
func DebtStatuses(debts []models.Debt, payments []models.Payment) []DebtStatus {
	out := make([]DebtStatus, len(debts))
	for i, d := range debts {
		own := []models.Payment{}
		for _, p := range payments {
			if p.DebtID == d.ID {
				own = append(own, p)
			}
		}
		paid := DebtPaid(d, own)
		out[i] = DebtStatus{
			Debt:      d,
			Paid:      paid,
			Remaining: d.Principal.Sub(paid),
			Payments:  own,
		}
	}
	return out
}
