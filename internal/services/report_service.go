package services

import (
	"time"

	"finledger/internal/aggregate"
	"finledger/internal/filter"
	"finledger/internal/ledger"
	"finledger/internal/models"
)

// reportService computes derived reports over the current transactions.
type reportService struct {
	store *ledger.Store
}

// NewReportService creates a new ReportServicer.
func NewReportService(store *ledger.Store) ReportServicer {
	return &reportService{store: store}
}

// Summary totals income and expense over the transactions matching q.
func (s *reportService) Summary(q TransactionQuery) aggregate.Summary {
	return aggregate.SummaryTotals(s.matching(q))
}

// ExpensesByTag aggregates expenses per tag over the transactions matching q.
func (s *reportService) ExpensesByTag(q TransactionQuery) []aggregate.TagAmount {
	return aggregate.ExpenseAggregateByTag(s.matching(q))
}

// Recurring projects the recurring transactions matching q into [from, to].
func (s *reportService) Recurring(q TransactionQuery, from, to time.Time) []aggregate.Occurrence {
	q.Spec.RecurringOnly = true
	occurrences := aggregate.UpcomingRecurring(s.matching(q), from, to)
	if occurrences == nil {
		occurrences = []aggregate.Occurrence{}
	}
	return occurrences
}

func (s *reportService) matching(q TransactionQuery) []models.Transaction {
	return filter.Apply(s.store.Transactions(), resolve(s.store, q))
}
