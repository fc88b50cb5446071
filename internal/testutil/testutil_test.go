package testutil_test

import (
	"testing"

	"finledger/internal/errors"
	"finledger/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	if err := db.Table("kv_entries").Count(&count).Error; err != nil {
		t.Errorf("table kv_entries should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	s := testutil.NewTestStore(t)

	account := testutil.CreateTestAccount(t, s, "50.25")
	if account.ID != "id-1" {
		t.Errorf("expected sequential id id-1, got %s", account.ID)
	}
	testutil.AssertDecimal(t, account.StartingBalance, "50.25")

	tx := testutil.CreateTestTransaction(t, s, account.ID, "", "-10", "food, lunch")
	if tx.Date != "2024-03-15" {
		t.Errorf("expected frozen clock date, got %s", tx.Date)
	}
	if len(tx.Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", tx.Tags)
	}

	budget := testutil.CreateTestBudget(t, s, "food", "300")
	testutil.AssertDecimal(t, budget.Limit, "300")

	debt := testutil.CreateTestDebt(t, s, "1000")
	payment := testutil.CreateTestPayment(t, s, debt.ID, "100", "2024-01-01")
	if payment.DebtID != debt.ID {
		t.Errorf("expected payment for %s, got %s", debt.ID, payment.DebtID)
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrValidation, "VALIDATION_ERROR")
	testutil.AssertAppError(t, errors.Wrap(errors.ErrPersistence, nil), "PERSISTENCE_ERROR")
	testutil.AssertNoError(t, nil)
}
