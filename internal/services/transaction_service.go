package services

import (
	"finledger/internal/filter"
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/pagination"
)

// transactionService handles transaction-related operations.
type transactionService struct {
	store *ledger.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(store *ledger.Store) TransactionServicer {
	return &transactionService{store: store}
}

// CreateTransaction creates a transaction. Without an explicit account it is
// assigned to the first selected account.
func (s *transactionService) CreateTransaction(cmd ledger.NewTransaction) (*models.Transaction, error) {
	if cmd.AccountID == "" {
		cmd.AccountID = s.store.DefaultAccountID()
	}
	tx, err := s.store.AddTransaction(cmd)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTransactions returns a page of the transactions matching q, most recent first.
func (s *transactionService) GetTransactions(q TransactionQuery, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	txs := filter.Apply(s.store.Transactions(), resolve(s.store, q))
	result := pagination.Paginate(txs, page)
	return &result, nil
}

// GetTransactionByID returns one transaction.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	tx, err := s.store.Transaction(id)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(id string) {
	s.store.RemoveTransaction(id)
}
