package services

import (
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/pagination"
)

// guaranteeService handles guarantee-related operations.
type guaranteeService struct {
	store *ledger.Store
}

// NewGuaranteeService creates a new GuaranteeServicer.
func NewGuaranteeService(store *ledger.Store) GuaranteeServicer {
	return &guaranteeService{store: store}
}

// CreateGuarantee creates a guarantee.
func (s *guaranteeService) CreateGuarantee(cmd ledger.NewGuarantee) (*models.Guarantee, error) {
	g, err := s.store.AddGuarantee(cmd)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetGuarantees returns a page of guarantees, most recent first.
func (s *guaranteeService) GetGuarantees(page pagination.PageRequest) (*pagination.PageResponse[models.Guarantee], error) {
	result := pagination.Paginate(s.store.Guarantees(), page)
	return &result, nil
}

// GetGuaranteeByID returns one guarantee.
func (s *guaranteeService) GetGuaranteeByID(id string) (*models.Guarantee, error) {
	g, err := s.store.Guarantee(id)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGuarantee removes a guarantee.
func (s *guaranteeService) DeleteGuarantee(id string) {
	s.store.RemoveGuarantee(id)
}
