package ledger_test

import (
	"slices"
	"sync"
	"testing"

	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/testutil"
)

func TestAddAccount(t *testing.T) {
	t.Run("success_prepends", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		first, err := s.AddAccount(ledger.NewAccount{Name: "Checking", StartingBalance: testutil.D("100")})
		testutil.AssertNoError(t, err)
		second, err := s.AddAccount(ledger.NewAccount{Name: "Savings"})
		testutil.AssertNoError(t, err)

		accounts := s.Accounts()
		if len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(accounts))
		}
		if accounts[0].ID != second.ID || accounts[1].ID != first.ID {
			t.Errorf("expected most-recent-first order, got %v", accounts)
		}
		testutil.AssertDecimal(t, first.StartingBalance, "100")
		testutil.AssertDecimal(t, second.StartingBalance, "0")
	})

	t.Run("blank_name", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddAccount(ledger.NewAccount{Name: "   "})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		if len(s.Accounts()) != 0 {
			t.Error("failed add must not change the collection")
		}
	})
}

func TestRemoveAccount(t *testing.T) {
	t.Run("keeps_transactions", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		account := testutil.CreateTestAccount(t, s, "100")
		testutil.CreateTestTransaction(t, s, account.ID, "2024-01-01", "-30")
		testutil.CreateTestTransaction(t, s, account.ID, "2024-01-02", "50")

		s.RemoveAccount(account.ID)

		if len(s.Accounts()) != 0 {
			t.Error("expected account to be removed")
		}
		txs := s.Transactions()
		if len(txs) != 2 {
			t.Fatalf("expected 2 transactions to survive, got %d", len(txs))
		}
		for _, tx := range txs {
			if tx.AccountID != account.ID {
				t.Errorf("expected dangling accountId %q, got %q", account.ID, tx.AccountID)
			}
		}
	})

	t.Run("prunes_selection", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		a := testutil.CreateTestAccount(t, s, "0")
		b := testutil.CreateTestAccount(t, s, "0")
		_, err := s.ToggleSelection(a.ID)
		testutil.AssertNoError(t, err)
		_, err = s.ToggleSelection(b.ID)
		testutil.AssertNoError(t, err)

		var change ledger.Change
		s.Subscribe(func(c ledger.Change) { change = c })
		s.RemoveAccount(a.ID)

		if got := s.SelectedAccountIDs(); !slices.Equal(got, []string{b.ID}) {
			t.Errorf("expected selection [%s], got %v", b.ID, got)
		}
		if !change.Touches(ledger.CollectionAccounts) || !change.Touches(ledger.CollectionSelection) {
			t.Errorf("expected accounts and selection touched, got %v", change.Collections)
		}
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		testutil.CreateTestAccount(t, s, "0")

		var changes int
		s.Subscribe(func(ledger.Change) { changes++ })
		s.RemoveAccount("missing")

		if len(s.Accounts()) != 1 {
			t.Error("unknown id must not remove anything")
		}
		if changes != 0 {
			t.Errorf("expected no change notification, got %d", changes)
		}
	})
}

func TestAddTransaction(t *testing.T) {
	t.Run("normalizes_tags_and_defaults_date", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		tx, err := s.AddTransaction(ledger.NewTransaction{
			Description: "Groceries",
			Amount:      testutil.DP("-25.50"),
			Tags:        []string{" food, lunch ,, food", "lunch"},
		})
		testutil.AssertNoError(t, err)

		if !slices.Equal(tx.Tags, []string{"food", "lunch"}) {
			t.Errorf("expected tags [food lunch], got %v", tx.Tags)
		}
		if tx.Date != "2024-03-15" {
			t.Errorf("expected default date 2024-03-15, got %s", tx.Date)
		}
		testutil.AssertDecimal(t, tx.Amount, "-25.5")
	})

	t.Run("missing_description", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddTransaction(ledger.NewTransaction{Amount: testutil.DP("1")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("missing_amount", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddTransaction(ledger.NewTransaction{Description: "Coffee"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("account_required_when_accounts_exist", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		testutil.CreateTestAccount(t, s, "0")

		_, err := s.AddTransaction(ledger.NewTransaction{Description: "Coffee", Amount: testutil.DP("-3")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		if len(s.Transactions()) != 0 {
			t.Error("failed add must not change the collection")
		}
	})

	t.Run("dangling_account_accepted", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		testutil.CreateTestAccount(t, s, "0")

		tx, err := s.AddTransaction(ledger.NewTransaction{Description: "Coffee", Amount: testutil.DP("-3"), AccountID: "gone"})
		testutil.AssertNoError(t, err)
		if tx.AccountID != "gone" {
			t.Errorf("expected accountId gone, got %s", tx.AccountID)
		}
	})

	t.Run("recurring_requires_frequency", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddTransaction(ledger.NewTransaction{Description: "Rent", Amount: testutil.DP("-500"), IsRecurring: true})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("invalid_frequency", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddTransaction(ledger.NewTransaction{Description: "Rent", Amount: testutil.DP("-500"), IsRecurring: true, Frequency: "daily"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("frequency_dropped_when_not_recurring", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		tx, err := s.AddTransaction(ledger.NewTransaction{
			Description:       "Rent",
			Amount:            testutil.DP("-500"),
			Frequency:         models.FrequencyMonthly,
			RecurrenceEndDate: "2024-12-31",
		})
		testutil.AssertNoError(t, err)
		if tx.Frequency != "" || tx.RecurrenceEndDate != "" {
			t.Errorf("expected recurrence fields dropped, got %q %q", tx.Frequency, tx.RecurrenceEndDate)
		}
	})

	t.Run("malformed_date", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddTransaction(ledger.NewTransaction{Date: "15/03/2024", Description: "Coffee", Amount: testutil.DP("-3")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestRemoveTransaction(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		keep := testutil.CreateTestTransaction(t, s, "", "2024-01-01", "10")
		drop := testutil.CreateTestTransaction(t, s, "", "2024-01-02", "20")

		s.RemoveTransaction(drop.ID)
		once := s.Transactions()
		s.RemoveTransaction(drop.ID)
		twice := s.Transactions()

		if len(once) != 1 || once[0].ID != keep.ID {
			t.Fatalf("expected only %s to remain, got %v", keep.ID, once)
		}
		if len(twice) != len(once) || twice[0].ID != once[0].ID {
			t.Errorf("second remove changed state: %v vs %v", once, twice)
		}
	})
}

func TestAddBudget(t *testing.T) {
	t.Run("trims_tag", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		budget, err := s.AddBudget(ledger.NewBudget{Name: "Food", Limit: testutil.DP("100"), Tag: "  food "})
		testutil.AssertNoError(t, err)
		if budget.Tag != "food" {
			t.Errorf("expected trimmed tag, got %q", budget.Tag)
		}
	})

	t.Run("limit_must_be_positive", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		for _, limit := range []string{"0", "-5"} {
			_, err := s.AddBudget(ledger.NewBudget{Name: "Food", Limit: testutil.DP(limit), Tag: "food"})
			testutil.AssertAppError(t, err, "VALIDATION_ERROR")
		}
		if len(s.Budgets()) != 0 {
			t.Error("failed add must not change the collection")
		}
	})

	t.Run("missing_tag", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddBudget(ledger.NewBudget{Name: "Food", Limit: testutil.DP("100"), Tag: " "})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestAddDebt(t *testing.T) {
	t.Run("defaults_interest_rate", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		debt, err := s.AddDebt(ledger.NewDebt{Name: "Car", Lender: "Bank", Principal: testutil.DP("500"), DueDate: "2025-01-01"})
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, debt.InterestRate, "0")
	})

	t.Run("negative_principal", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddDebt(ledger.NewDebt{Name: "Car", Lender: "Bank", Principal: testutil.DP("-1"), DueDate: "2025-01-01"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("negative_rate", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddDebt(ledger.NewDebt{Name: "Car", Lender: "Bank", Principal: testutil.DP("1"), InterestRate: testutil.DP("-0.1"), DueDate: "2025-01-01"})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("missing_due_date", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddDebt(ledger.NewDebt{Name: "Car", Lender: "Bank", Principal: testutil.DP("1")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestRemoveDebt(t *testing.T) {
	t.Run("cascades_to_own_payments_only", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		car := testutil.CreateTestDebt(t, s, "500")
		house := testutil.CreateTestDebt(t, s, "1000")
		testutil.CreateTestPayment(t, s, car.ID, "200", "2024-01-01")
		testutil.CreateTestPayment(t, s, car.ID, "100", "2024-02-01")
		kept := testutil.CreateTestPayment(t, s, house.ID, "50", "2024-01-01")

		var change ledger.Change
		s.Subscribe(func(c ledger.Change) { change = c })
		s.RemoveDebt(car.ID)

		payments := s.Payments()
		if len(payments) != 1 || payments[0].ID != kept.ID {
			t.Fatalf("expected only payment %s to survive, got %v", kept.ID, payments)
		}
		if len(s.Debts()) != 1 {
			t.Errorf("expected 1 remaining debt, got %d", len(s.Debts()))
		}
		if !change.Touches(ledger.CollectionDebts) || !change.Touches(ledger.CollectionPayments) {
			t.Errorf("expected debts and payments touched, got %v", change.Collections)
		}
	})
}

func TestAddPayment(t *testing.T) {
	t.Run("dangling_debt_accepted", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		payment, err := s.AddPayment(ledger.NewPayment{DebtID: "gone", Amount: testutil.DP("10"), Date: "2024-01-01"})
		testutil.AssertNoError(t, err)
		if payment.DebtID != "gone" {
			t.Errorf("expected debtId gone, got %s", payment.DebtID)
		}
	})

	t.Run("missing_date", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		_, err := s.AddPayment(ledger.NewPayment{DebtID: "d", Amount: testutil.DP("10")})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestGuarantees(t *testing.T) {
	s := testutil.NewTestStore(t)

	g, err := s.AddGuarantee(ledger.NewGuarantee{Name: "Deposit", Amount: testutil.DP("300"), Date: "2024-01-01"})
	testutil.AssertNoError(t, err)

	_, err = s.AddGuarantee(ledger.NewGuarantee{Name: "Deposit", Date: "2024-01-01"})
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")

	got, err := s.Guarantee(g.ID)
	testutil.AssertNoError(t, err)
	if got.Name != "Deposit" {
		t.Errorf("expected Deposit, got %s", got.Name)
	}

	s.RemoveGuarantee(g.ID)
	_, err = s.Guarantee(g.ID)
	testutil.AssertAppError(t, err, "GUARANTEE_NOT_FOUND")
}

func TestLookups(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.Account("missing")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	_, err = s.Transaction("missing")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	_, err = s.Budget("missing")
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	_, err = s.Debt("missing")
	testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
}

func TestToggleSelection(t *testing.T) {
	t.Run("toggle_in_selection_order", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		a := testutil.CreateTestAccount(t, s, "0")
		b := testutil.CreateTestAccount(t, s, "0")

		for _, id := range []string{b.ID, a.ID} {
			selected, err := s.ToggleSelection(id)
			testutil.AssertNoError(t, err)
			if !selected {
				t.Errorf("expected %s selected", id)
			}
		}
		if got := s.SelectedAccountIDs(); !slices.Equal(got, []string{b.ID, a.ID}) {
			t.Errorf("expected selection order [%s %s], got %v", b.ID, a.ID, got)
		}
		if s.DefaultAccountID() != b.ID {
			t.Errorf("expected default account %s, got %s", b.ID, s.DefaultAccountID())
		}

		selected, err := s.ToggleSelection(b.ID)
		testutil.AssertNoError(t, err)
		if selected {
			t.Error("expected second toggle to deselect")
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		s := testutil.NewTestStore(t)

		var changes int
		s.Subscribe(func(ledger.Change) { changes++ })
		_, err := s.ToggleSelection("missing")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
		if changes != 0 {
			t.Errorf("expected no change notification, got %d", changes)
		}
	})

	t.Run("notifies_selection", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		a := testutil.CreateTestAccount(t, s, "0")

		var change ledger.Change
		s.Subscribe(func(c ledger.Change) { change = c })
		_, err := s.ToggleSelection(a.ID)
		testutil.AssertNoError(t, err)

		if !slices.Equal(change.Collections, []ledger.Collection{ledger.CollectionSelection}) {
			t.Errorf("expected only selection touched, got %v", change.Collections)
		}
		if got := s.Snapshot().Selection; !slices.Equal(got, []string{a.ID}) {
			t.Errorf("expected snapshot selection [%s], got %v", a.ID, got)
		}
	})
}

func TestReplace(t *testing.T) {
	s := testutil.NewTestStore(t)
	a := testutil.CreateTestAccount(t, s, "0")
	b := testutil.CreateTestAccount(t, s, "0")
	_, _ = s.ToggleSelection(a.ID)
	_, _ = s.ToggleSelection(b.ID)

	var change ledger.Change
	s.Subscribe(func(c ledger.Change) { change = c })

	s.Replace(ledger.Snapshot{Accounts: []models.Account{b}, Selection: []string{a.ID, b.ID, b.ID}})

	if !change.Reloaded {
		t.Error("expected reload notification")
	}
	if got := s.SelectedAccountIDs(); !slices.Equal(got, []string{b.ID}) {
		t.Errorf("expected pruned selection [%s], got %v", b.ID, got)
	}

	s.Replace(ledger.Snapshot{Accounts: []models.Account{a, b}})
	if got := s.SelectedAccountIDs(); len(got) != 0 {
		t.Errorf("expected the stored empty selection to win, got %v", got)
	}
	if snap := s.Snapshot(); snap.Transactions == nil || len(snap.Transactions) != 0 {
		t.Errorf("expected empty non-nil transactions, got %v", snap.Transactions)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.CreateTestTransaction(t, s, "", "2024-01-01", "-5", "food")

	txs := s.Transactions()
	txs[0].Tags[0] = "mutated"
	txs[0].Description = "mutated"

	fresh := s.Transactions()
	if fresh[0].Tags[0] != "food" || fresh[0].Description == "mutated" {
		t.Errorf("reader mutation leaked into store: %+v", fresh[0])
	}
}

func TestUnsubscribe(t *testing.T) {
	s := testutil.NewTestStore(t)

	var calls int
	unsubscribe := s.Subscribe(func(ledger.Change) { calls++ })
	testutil.CreateTestAccount(t, s, "0")
	unsubscribe()
	testutil.CreateTestAccount(t, s, "0")

	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}

func TestConcurrentMutations(t *testing.T) {
	s := testutil.NewTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			testutil.CreateTestTransaction(t, s, "", "2024-01-01", "1")
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	if got := len(s.Transactions()); got != 50 {
		t.Errorf("expected 50 transactions, got %d", got)
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single_free_text", []string{"a, b,c"}, []string{"a", "b", "c"}},
		{"drops_blank_pieces", []string{" , ,x"}, []string{"x"}},
		{"dedupes_keeps_first", []string{"b,a", "b"}, []string{"b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ledger.NormalizeTags(tt.raw...); !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
