package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finledger/internal/ledger"
	"finledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// FixedDay is the "today" of every store built by NewTestStore.
var FixedDay = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

// NewTestStore returns an empty store with sequential ids ("id-1", "id-2", ...)
// and a clock frozen at FixedDay.
func NewTestStore(t *testing.T) *ledger.Store {
	t.Helper()

	var seq atomic.Int64
	return ledger.NewStore(
		ledger.WithIDGenerator(func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }),
		ledger.WithClock(func() time.Time { return FixedDay }),
	)
}

// CreateTestAccount adds an account with a unique name and the given starting balance.
func CreateTestAccount(t *testing.T, s *ledger.Store, startingBalance string) models.Account {
	t.Helper()

	account, err := s.AddAccount(ledger.NewAccount{
		Name:            fmt.Sprintf("Test Account %d", nextID()),
		StartingBalance: D(startingBalance),
	})
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction adds a transaction dated date with the given amount and tags.
func CreateTestTransaction(t *testing.T, s *ledger.Store, accountID, date, amount string, tags ...string) models.Transaction {
	t.Helper()

	tx, err := s.AddTransaction(ledger.NewTransaction{
		Date:        date,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      DP(amount),
		Tags:        tags,
		AccountID:   accountID,
	})
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget adds a budget on tag with the given limit.
func CreateTestBudget(t *testing.T, s *ledger.Store, tag, limit string) models.Budget {
	t.Helper()

	budget, err := s.AddBudget(ledger.NewBudget{
		Name:  fmt.Sprintf("Test Budget %d", nextID()),
		Limit: DP(limit),
		Tag:   tag,
	})
	if err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestDebt adds a debt with the given principal, due at the end of 2025.
func CreateTestDebt(t *testing.T, s *ledger.Store, principal string) models.Debt {
	t.Helper()

	debt, err := s.AddDebt(ledger.NewDebt{
		Name:      fmt.Sprintf("Test Debt %d", nextID()),
		Lender:    "Test Bank",
		Principal: DP(principal),
		DueDate:   "2025-12-31",
	})
	if err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestPayment records a payment against debtID.
func CreateTestPayment(t *testing.T, s *ledger.Store, debtID, amount, date string) models.Payment {
	t.Helper()

	payment, err := s.AddPayment(ledger.NewPayment{
		DebtID: debtID,
		Amount: DP(amount),
		Date:   date,
	})
	if err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}
