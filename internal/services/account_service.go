package services

import (
	"github.com/shopspring/decimal"

	"finledger/internal/aggregate"
	apperrors "finledger/internal/errors"
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/pagination"
)

// AccountView is an account with its derived balance and selection state.
type AccountView struct {
	models.Account
	Balance  decimal.Decimal `json:"balance"`
	Selected bool            `json:"selected"`
}

// accountService handles account-related operations.
type accountService struct {
	store *ledger.Store
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(store *ledger.Store) AccountServicer {
	return &accountService{store: store}
}

// CreateAccount creates a new account.
func (s *accountService) CreateAccount(cmd ledger.NewAccount) (*AccountView, error) {
	account, err := s.store.AddAccount(cmd)
	if err != nil {
		return nil, err
	}
	return &AccountView{Account: account, Balance: account.StartingBalance}, nil
}

// GetAccounts returns a page of accounts, most recent first.
func (s *accountService) GetAccounts(page pagination.PageRequest) (*pagination.PageResponse[AccountView], error) {
	result := pagination.Paginate(s.views(), page)
	return &result, nil
}

// GetAccountByID returns one account with its balance.
func (s *accountService) GetAccountByID(id string) (*AccountView, error) {
	for _, v := range s.views() {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

// DeleteAccount removes an account. Its transactions are kept.
func (s *accountService) DeleteAccount(id string) {
	s.store.RemoveAccount(id)
}

// ToggleSelection flips the selection state of an account.
func (s *accountService) ToggleSelection(id string) (bool, error) {
	return s.store.ToggleSelection(id)
}

// SelectedAccountIDs returns the selection in selection order.
func (s *accountService) SelectedAccountIDs() []string {
	return s.store.SelectedAccountIDs()
}

func (s *accountService) views() []AccountView {
	snap := s.store.Snapshot()
	selected := make(map[string]bool)
	for _, id := range s.store.SelectedAccountIDs() {
		selected[id] = true
	}
	balances := aggregate.AccountBalances(snap.Accounts, snap.Transactions)

	views := make([]AccountView, len(snap.Accounts))
	for i, a := range snap.Accounts {
		views[i] = AccountView{Account: a, Balance: balances[a.ID], Selected: selected[a.ID]}
	}
	return views
}
