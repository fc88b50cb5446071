package ledger

import (
	"slices"

	"finledger/internal/models"
)

// Collection names one entity collection. The names double as storage keys.
type Collection string

const (
	CollectionAccounts     Collection = "accounts"
	CollectionTransactions Collection = "transactions"
	CollectionBudgets      Collection = "budgets"
	CollectionDebts        Collection = "debts"
	CollectionPayments     Collection = "payments"
	CollectionGuarantees   Collection = "guarantees"
	CollectionSelection    Collection = "selection"
)

// Collections lists every collection in load order. The selection comes
// after the accounts it refers to.
var Collections = []Collection{
	CollectionAccounts,
	CollectionTransactions,
	CollectionBudgets,
	CollectionDebts,
	CollectionPayments,
	CollectionGuarantees,
	CollectionSelection,
}

// Snapshot is a full copy of the ledger state. Slices are most-recent-first.
type Snapshot struct {
	Accounts     []models.Account
	Transactions []models.Transaction
	Budgets      []models.Budget
	Debts        []models.Debt
	Payments     []models.Payment
	Guarantees   []models.Guarantee
	// Selection is the selected account ids in selection order.
	Selection []string
}

// Clone returns a deep copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Accounts:     cloneOrEmpty(s.Accounts),
		Transactions: cloneTransactions(s.Transactions),
		Budgets:      cloneOrEmpty(s.Budgets),
		Debts:        cloneOrEmpty(s.Debts),
		Payments:     cloneOrEmpty(s.Payments),
		Guarantees:   cloneOrEmpty(s.Guarantees),
		Selection:    cloneOrEmpty(s.Selection),
	}
}

func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

func cloneTransactions(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		tx.Tags = cloneOrEmpty(tx.Tags)
		out[i] = tx
	}
	return out
}

// Change describes which collections a store operation touched.
type Change struct {
	Collections []Collection
	// Reloaded is set when the whole snapshot was replaced from storage
	// rather than mutated by a store operation.
	Reloaded bool
}

// Touches reports whether c includes coll.
func (c Change) Touches(coll Collection) bool {
	return slices.Contains(c.Collections, coll)
}
