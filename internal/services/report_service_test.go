package services

import (
	"testing"
	"time"

	"finledger/internal/filter"
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/testutil"
)

func TestReportService(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewReportService(store)
	testutil.CreateTestTransaction(t, store, "", "2024-01-01", "1000", "salary")
	testutil.CreateTestTransaction(t, store, "", "2024-01-02", "-10")
	testutil.CreateTestTransaction(t, store, "", "2024-01-03", "-5", "gas")
	_, err := store.AddTransaction(ledger.NewTransaction{
		Date:        "2024-01-05",
		Description: "Rent",
		Amount:      testutil.DP("-400"),
		Tags:        []string{"home"},
		IsRecurring: true,
		Frequency:   models.FrequencyMonthly,
	})
	testutil.AssertNoError(t, err)

	t.Run("summary", func(t *testing.T) {
		s := svc.Summary(TransactionQuery{})
		testutil.AssertDecimal(t, s.TotalIncome, "1000")
		testutil.AssertDecimal(t, s.TotalExpense, "415")
		testutil.AssertDecimal(t, s.Net, "585")
	})

	t.Run("expenses_by_tag_filtered", func(t *testing.T) {
		spec := filter.Spec{DateEnd: "2024-01-03"}
		got := svc.ExpensesByTag(TransactionQuery{Spec: spec})
		if len(got) != 2 || got[0].Tag != "No Tag" || got[1].Tag != "gas" {
			t.Errorf("unexpected aggregate %v", got)
		}
	})

	t.Run("recurring", func(t *testing.T) {
		from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

		got := svc.Recurring(TransactionQuery{}, from, to)
		if len(got) != 2 || got[0].Date != "2024-02-05" || got[1].Date != "2024-03-05" {
			t.Errorf("unexpected occurrences %v", got)
		}
	})

	t.Run("selected_only_empty", func(t *testing.T) {
		s := svc.Summary(TransactionQuery{SelectedOnly: true})
		testutil.AssertDecimal(t, s.TotalIncome, "0")
	})
}
