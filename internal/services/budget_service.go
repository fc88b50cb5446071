package services

import (
	"finledger/internal/aggregate"
	"finledger/internal/ledger"
	"finledger/internal/pagination"
)

// budgetService handles budget-related operations.
type budgetService struct {
	store *ledger.Store
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(store *ledger.Store) BudgetServicer {
	return &budgetService{store: store}
}

// CreateBudget creates a budget and returns it with its current progress.
func (s *budgetService) CreateBudget(cmd ledger.NewBudget) (*aggregate.BudgetStatus, error) {
	budget, err := s.store.AddBudget(cmd)
	if err != nil {
		return nil, err
	}
	status := aggregate.BudgetStatusOf(budget, s.store.Transactions())
	return &status, nil
}

// GetBudgets returns a page of budgets with spent, progress and left.
func (s *budgetService) GetBudgets(page pagination.PageRequest) (*pagination.PageResponse[aggregate.BudgetStatus], error) {
	snap := s.store.Snapshot()
	result := pagination.Paginate(aggregate.BudgetStatuses(snap.Budgets, snap.Transactions), page)
	return &result, nil
}

// GetBudgetByID returns one budget with its progress.
func (s *budgetService) GetBudgetByID(id string) (*aggregate.BudgetStatus, error) {
	budget, err := s.store.Budget(id)
	if err != nil {
		return nil, err
	}
	status := aggregate.BudgetStatusOf(budget, s.store.Transactions())
	return &status, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(id string) {
	s.store.RemoveBudget(id)
}
