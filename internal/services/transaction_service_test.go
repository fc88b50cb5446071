package services

import (
	"testing"

	"finledger/internal/filter"
	"finledger/internal/ledger"
	"finledger/internal/pagination"
	"finledger/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("prefills_first_selected_account", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		svc := NewTransactionService(store)
		first := testutil.CreateTestAccount(t, store, "0")
		second := testutil.CreateTestAccount(t, store, "0")
		_, _ = store.ToggleSelection(second.ID)
		_, _ = store.ToggleSelection(first.ID)

		tx, err := svc.CreateTransaction(ledger.NewTransaction{Description: "Coffee", Amount: testutil.DP("-3")})
		testutil.AssertNoError(t, err)

		if tx.AccountID != second.ID {
			t.Errorf("expected account %s, got %s", second.ID, tx.AccountID)
		}
	})

	t.Run("requires_account_without_selection", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		svc := NewTransactionService(store)
		testutil.CreateTestAccount(t, store, "0")

		_, err := svc.CreateTransaction(ledger.NewTransaction{Description: "Coffee", Amount: testutil.DP("-3")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestGetTransactions(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewTransactionService(store)
	a := testutil.CreateTestAccount(t, store, "0")
	b := testutil.CreateTestAccount(t, store, "0")
	testutil.CreateTestTransaction(t, store, a.ID, "2024-01-01", "-10", "food")
	testutil.CreateTestTransaction(t, store, b.ID, "2024-01-02", "-20", "food")
	testutil.CreateTestTransaction(t, store, b.ID, "2024-01-03", "500", "salary")

	t.Run("filter_spec", func(t *testing.T) {
		page, err := svc.GetTransactions(TransactionQuery{Spec: filter.Spec{Tags: []string{"food"}}}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Errorf("expected 2 food transactions, got %d", page.TotalItems)
		}
	})

	t.Run("selected_only_with_empty_selection", func(t *testing.T) {
		page, err := svc.GetTransactions(TransactionQuery{SelectedOnly: true}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected no transactions, got %d", page.TotalItems)
		}
	})

	t.Run("selected_only", func(t *testing.T) {
		_, _ = store.ToggleSelection(b.ID)
		defer func() { _, _ = store.ToggleSelection(b.ID) }()

		page, err := svc.GetTransactions(TransactionQuery{SelectedOnly: true}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Errorf("expected 2 transactions for account b, got %d", page.TotalItems)
		}
		if page.Data[0].Date != "2024-01-03" {
			t.Errorf("expected most recent first, got %s", page.Data[0].Date)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.GetTransactionByID("missing")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
