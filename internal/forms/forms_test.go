package forms_test

import (
	"encoding/json"
	"slices"
	"testing"

	"finledger/internal/filter"
	"finledger/internal/forms"
	"finledger/internal/testutil"
)

func TestAccountForm(t *testing.T) {
	t.Run("non_numeric_balance_is_zero", func(t *testing.T) {
		cmd, err := forms.AccountForm{Name: " Checking ", StartingBalance: "lots"}.Command()
		testutil.AssertNoError(t, err)
		if cmd.Name != "Checking" {
			t.Errorf("expected trimmed name, got %q", cmd.Name)
		}
		testutil.AssertDecimal(t, cmd.StartingBalance, "0")
	})

	t.Run("parses_balance", func(t *testing.T) {
		cmd, err := forms.AccountForm{Name: "Savings", StartingBalance: "1250.75"}.Command()
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, cmd.StartingBalance, "1250.75")
	})
}

func TestTransactionForm(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd, err := forms.TransactionForm{
			Description: "Lunch",
			Amount:      "-12.40",
			Tags:        "food, lunch, food",
			IsRecurring: true,
			Frequency:   "weekly",
		}.Command()
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, *cmd.Amount, "-12.4")
		if !slices.Equal(cmd.Tags, []string{"food", "lunch"}) {
			t.Errorf("expected [food lunch], got %v", cmd.Tags)
		}
		if cmd.Frequency != "weekly" {
			t.Errorf("expected weekly, got %s", cmd.Frequency)
		}
	})

	t.Run("empty_amount_is_absent", func(t *testing.T) {
		cmd, err := forms.TransactionForm{Description: "Lunch"}.Command()
		testutil.AssertNoError(t, err)
		if cmd.Amount != nil {
			t.Errorf("expected nil amount, got %v", cmd.Amount)
		}
	})

	t.Run("non_numeric_amount", func(t *testing.T) {
		_, err := forms.TransactionForm{Description: "Lunch", Amount: "ten"}.Command()
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("rejected_by_store_without_amount", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		cmd, err := forms.TransactionForm{Description: "Lunch"}.Command()
		testutil.AssertNoError(t, err)

		_, err = s.AddTransaction(cmd)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestDebtForm(t *testing.T) {
	cmd, err := forms.DebtForm{Name: "Car", Lender: "Bank", Principal: "500", InterestRate: "n/a", DueDate: "2025-01-01"}.Command()
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, *cmd.InterestRate, "0")

	_, err = forms.DebtForm{Name: "Car", Lender: "Bank", Principal: "five hundred"}.Command()
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}

func TestBudgetPaymentGuaranteeForms(t *testing.T) {
	b, err := forms.BudgetForm{Name: "Food", Limit: "300", Tag: " food "}.Command()
	testutil.AssertNoError(t, err)
	if b.Tag != "food" {
		t.Errorf("expected trimmed tag, got %q", b.Tag)
	}

	_, err = forms.PaymentForm{DebtID: "d", Amount: "x"}.Command()
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")

	g, err := forms.GuaranteeForm{Name: "Deposit", Amount: "150", Date: "2024-01-01"}.Command()
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, *g.Amount, "150")
}

func TestFilterForm(t *testing.T) {
	spec := forms.FilterForm{
		AccountIDs: "a, b",
		Tags:       "food,lunch",
		From:       "2024-01-01",
		AmountOp:   "between",
		Amount:     "-50,0",
	}.Spec()

	if !slices.Equal(spec.AccountIDs, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", spec.AccountIDs)
	}
	if !slices.Equal(spec.Tags, []string{"food", "lunch"}) {
		t.Errorf("expected [food lunch], got %v", spec.Tags)
	}
	if spec.Amount == nil || spec.Amount.Op != filter.OpBetween {
		t.Errorf("expected between condition, got %+v", spec.Amount)
	}

	if empty := (forms.FilterForm{}).Spec(); empty.Amount != nil || len(empty.AccountIDs) != 0 {
		t.Errorf("expected empty spec, got %+v", empty)
	}
}

func TestTransactionForm_JSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount string
		wantTags   []string
	}{
		{"string amount and free text tags", `{"amount":"-3.5","tags":"food, cafe"}`, "-3.5", []string{"food", "cafe"}},
		{"numeric amount and tag list", `{"amount":-3.5,"tags":["food","cafe"]}`, "-3.5", []string{"food", "cafe"}},
		{"exact decimal digits", `{"amount":0.1,"tags":[]}`, "0.1", []string{}},
		{"null values", `{"amount":null,"tags":null}`, "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f forms.TransactionForm
			if err := json.Unmarshal([]byte(tt.body), &f); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			cmd, err := f.Command()
			testutil.AssertNoError(t, err)

			if tt.wantAmount == "" {
				if cmd.Amount != nil {
					t.Errorf("expected absent amount, got %v", cmd.Amount)
				}
			} else {
				testutil.AssertDecimal(t, *cmd.Amount, tt.wantAmount)
			}
			if !slices.Equal(cmd.Tags, tt.wantTags) {
				t.Errorf("expected tags %v, got %v", tt.wantTags, cmd.Tags)
			}
		})
	}

	t.Run("rejects a boolean amount", func(t *testing.T) {
		var f forms.TransactionForm
		if err := json.Unmarshal([]byte(`{"amount":true}`), &f); err == nil {
			t.Error("expected a decode error")
		}
	})
}

func TestNumberFlag(t *testing.T) {
	var n forms.Number
	testutil.AssertNoError(t, n.Set("-40"))
	if n.String() != "-40" {
		t.Errorf("expected -40, got %q", n.String())
	}
}

func TestFilterForm_Validate(t *testing.T) {
	tests := []struct {
		name string
		form forms.FilterForm
		code string
	}{
		{"empty", forms.FilterForm{}, ""},
		{"valid dates", forms.FilterForm{From: "2024-01-01", To: "2024-12-31", AmountOp: "between"}, ""},
		{"malformed from", forms.FilterForm{From: "garbage"}, "INVALID_INPUT"},
		{"malformed to", forms.FilterForm{To: "2024-02-30"}, "INVALID_INPUT"},
		{"unknown operator", forms.FilterForm{AmountOp: "eq"}, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.code == "" {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertAppError(t, err, tt.code)
		})
	}
}
