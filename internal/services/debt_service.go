package services

import (
	"finledger/internal/aggregate"
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/pagination"
)

// debtService handles debt and payment operations.
type debtService struct {
	store *ledger.Store
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(store *ledger.Store) DebtServicer {
	return &debtService{store: store}
}

// CreateDebt creates a debt.
func (s *debtService) CreateDebt(cmd ledger.NewDebt) (*aggregate.DebtStatus, error) {
	debt, err := s.store.AddDebt(cmd)
	if err != nil {
		return nil, err
	}
	status := aggregate.DebtStatuses([]models.Debt{debt}, nil)[0]
	return &status, nil
}

// GetDebts returns a page of debts with their payments and remaining balance.
func (s *debtService) GetDebts(page pagination.PageRequest) (*pagination.PageResponse[aggregate.DebtStatus], error) {
	snap := s.store.Snapshot()
	result := pagination.Paginate(aggregate.DebtStatuses(snap.Debts, snap.Payments), page)
	return &result, nil
}

// GetDebtByID returns one debt with its payments.
func (s *debtService) GetDebtByID(id string) (*aggregate.DebtStatus, error) {
	debt, err := s.store.Debt(id)
	if err != nil {
		return nil, err
	}
	status := aggregate.DebtStatuses([]models.Debt{debt}, s.store.Payments())[0]
	return &status, nil
}

// DeleteDebt removes a debt and its payments.
func (s *debtService) DeleteDebt(id string) {
	s.store.RemoveDebt(id)
}

// AddPayment records a payment. The debt it names need not exist.
func (s *debtService) AddPayment(cmd ledger.NewPayment) (*models.Payment, error) {
	payment, err := s.store.AddPayment(cmd)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
