// Package ledger is the Entity Store: the single owner of accounts,
// transactions, budgets, debts, payments and guarantees, and the only way to
// change them. Readers always receive copies.
package ledger

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/selection"
	"finledger/internal/uuid"
	"finledger/internal/validator"
)

// Store holds the ledger snapshot behind one exclusive lock per mutation.
type Store struct {
	mu        sync.RWMutex
	snap      Snapshot
	selection *selection.Coordinator

	newID func() string
	now   func() time.Time

	listenersMu sync.RWMutex
	listeners   []func(Change)
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock overrides the clock used for default transaction dates.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		snap:      Snapshot{}.Clone(),
		selection: selection.New(),
		newID:     uuid.New,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every mutation or reload, outside
// the store lock. It returns a function that removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, fn)
	idx := len(s.listeners) - 1
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

func (s *Store) notify(change Change) {
	s.listenersMu.RLock()
	listeners := slices.Clone(s.listeners)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		if fn != nil {
			fn(change)
		}
	}
}

func (s *Store) touched(colls ...Collection) {
	s.notify(Change{Collections: colls})
}

// Snapshot returns a deep copy of the full ledger state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.snap.Clone()
	out.Selection = cloneOrEmpty(s.selection.IDs())
	return out
}

// Replace swaps in a snapshot loaded from storage, selection included. The
// selection is pruned against the new accounts in the same critical section.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap.Clone()
	s.selection = selection.New(s.snap.Selection...)
	s.snap.Selection = nil
	s.pruneSelectionLocked()
	s.mu.Unlock()

	s.notify(Change{Collections: slices.Clone(Collections), Reloaded: true})
}

// Accounts returns a copy of the account collection.
func (s *Store) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snap.Accounts)
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTransactions(s.snap.Transactions)
}

// Budgets returns a copy of the budget collection.
func (s *Store) Budgets() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snap.Budgets)
}

// Debts returns a copy of the debt collection.
func (s *Store) Debts() []models.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snap.Debts)
}

// Payments returns a copy of the payment collection.
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snap.Payments)
}

// Guarantees returns a copy of the guarantee collection.
func (s *Store) Guarantees() []models.Guarantee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snap.Guarantees)
}

// Account looks up an account by id.
func (s *Store) Account(id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.snap.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, apperrors.ErrAccountNotFound
}

// Transaction looks up a transaction by id.
func (s *Store) Transaction(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.snap.Transactions {
		if tx.ID == id {
			tx.Tags = slices.Clone(tx.Tags)
			return tx, nil
		}
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// Budget looks up a budget by id.
func (s *Store) Budget(id string) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.snap.Budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Budget{}, apperrors.ErrBudgetNotFound
}

// Debt looks up a debt by id.
func (s *Store) Debt(id string) (models.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.snap.Debts {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Debt{}, apperrors.ErrDebtNotFound
}

// Guarantee looks up a guarantee by id.
func (s *Store) Guarantee(id string) (models.Guarantee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.snap.Guarantees {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Guarantee{}, apperrors.ErrGuaranteeNotFound
}

// AddAccount creates an account and prepends it to the collection.
func (s *Store) AddAccount(cmd NewAccount) (models.Account, error) {
	if err := validate(cmd); err != nil {
		return models.Account{}, err
	}

	s.mu.Lock()
	account := models.Account{
		ID:              s.newID(),
		Name:            cmd.Name,
		StartingBalance: cmd.StartingBalance,
	}
	s.snap.Accounts = slices.Insert(s.snap.Accounts, 0, account)
	s.mu.Unlock()

	s.touched(CollectionAccounts)
	return account, nil
}

// RemoveAccount deletes an account. Transactions referencing it are kept and
// their accountId is left dangling. The account is dropped from the selection
// before the lock is released.
func (s *Store) RemoveAccount(id string) {
	s.mu.Lock()
	before := len(s.snap.Accounts)
	s.snap.Accounts = slices.DeleteFunc(s.snap.Accounts, func(a models.Account) bool { return a.ID == id })
	removed := len(s.snap.Accounts) != before
	deselected := false
	if removed {
		selected := s.selection.Len()
		s.pruneSelectionLocked()
		deselected = s.selection.Len() != selected
	}
	s.mu.Unlock()

	switch {
	case deselected:
		s.touched(CollectionAccounts, CollectionSelection)
	case removed:
		s.touched(CollectionAccounts)
	}
}

// AddTransaction creates a transaction and prepends it to the collection.
// When accounts exist the transaction must name one; the reference itself is
// not checked.
func (s *Store) AddTransaction(cmd NewTransaction) (models.Transaction, error) {
	if err := validate(cmd); err != nil {
		return models.Transaction{}, err
	}
	if cmd.IsRecurring && cmd.Frequency == "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrValidation, "frequency is required")
	}

	s.mu.Lock()
	if cmd.AccountID == "" && len(s.snap.Accounts) > 0 {
		s.mu.Unlock()
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrValidation, "accountId is required when accounts exist")
	}

	tx := models.Transaction{
		ID:          s.newID(),
		Date:        cmd.Date,
		Description: cmd.Description,
		Amount:      *cmd.Amount,
		Tags:        NormalizeTags(cmd.Tags...),
		AccountID:   cmd.AccountID,
		IsRecurring: cmd.IsRecurring,
	}
	if tx.Date == "" {
		tx.Date = models.FormatDate(s.now())
	}
	if tx.IsRecurring {
		tx.Frequency = cmd.Frequency
		tx.RecurrenceEndDate = cmd.RecurrenceEndDate
	}
	s.snap.Transactions = slices.Insert(s.snap.Transactions, 0, tx)
	s.mu.Unlock()

	s.touched(CollectionTransactions)
	tx.Tags = slices.Clone(tx.Tags)
	return tx, nil
}

// RemoveTransaction deletes a transaction. Unknown ids are ignored.
func (s *Store) RemoveTransaction(id string) {
	if removeByID(s, &s.snap.Transactions, id, func(t models.Transaction) string { return t.ID }) {
		s.touched(CollectionTransactions)
	}
}

// AddBudget creates a budget with a trimmed tag.
func (s *Store) AddBudget(cmd NewBudget) (models.Budget, error) {
	if err := validate(cmd); err != nil {
		return models.Budget{}, err
	}
	if !cmd.Limit.IsPositive() {
		return models.Budget{}, apperrors.WithMessage(apperrors.ErrValidation, "limit must be greater than 0")
	}

	s.mu.Lock()
	budget := models.Budget{
		ID:        s.newID(),
		Name:      cmd.Name,
		Limit:     *cmd.Limit,
		Tag:       strings.TrimSpace(cmd.Tag),
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
	}
	s.snap.Budgets = slices.Insert(s.snap.Budgets, 0, budget)
	s.mu.Unlock()

	s.touched(CollectionBudgets)
	return budget, nil
}

// RemoveBudget deletes a budget. Unknown ids are ignored.
func (s *Store) RemoveBudget(id string) {
	if removeByID(s, &s.snap.Budgets, id, func(b models.Budget) string { return b.ID }) {
		s.touched(CollectionBudgets)
	}
}

// AddDebt creates a debt. A missing interest rate is 0.
func (s *Store) AddDebt(cmd NewDebt) (models.Debt, error) {
	if err := validate(cmd); err != nil {
		return models.Debt{}, err
	}
	rate := decimal.Zero
	if cmd.InterestRate != nil {
		rate = *cmd.InterestRate
	}
	if cmd.Principal.IsNegative() {
		return models.Debt{}, apperrors.WithMessage(apperrors.ErrValidation, "principal must be at least 0")
	}
	if rate.IsNegative() {
		return models.Debt{}, apperrors.WithMessage(apperrors.ErrValidation, "interestRate must be at least 0")
	}

	s.mu.Lock()
	debt := models.Debt{
		ID:           s.newID(),
		Name:         cmd.Name,
		Lender:       cmd.Lender,
		Principal:    *cmd.Principal,
		InterestRate: rate,
		StartDate:    cmd.StartDate,
		DueDate:      cmd.DueDate,
	}
	s.snap.Debts = slices.Insert(s.snap.Debts, 0, debt)
	s.mu.Unlock()

	s.touched(CollectionDebts)
	return debt, nil
}

// RemoveDebt deletes a debt together with every payment recorded against it.
// This is the only cascading delete in the ledger.
func (s *Store) RemoveDebt(id string) {
	s.mu.Lock()
	debts := len(s.snap.Debts)
	payments := len(s.snap.Payments)
	s.snap.Debts = slices.DeleteFunc(s.snap.Debts, func(d models.Debt) bool { return d.ID == id })
	s.snap.Payments = slices.DeleteFunc(s.snap.Payments, func(p models.Payment) bool { return p.DebtID == id })
	var colls []Collection
	if len(s.snap.Debts) != debts {
		colls = append(colls, CollectionDebts)
	}
	if len(s.snap.Payments) != payments {
		colls = append(colls, CollectionPayments)
	}
	s.mu.Unlock()

	if len(colls) > 0 {
		s.touched(colls...)
	}
}

// AddPayment records a payment against a debt.
func (s *Store) AddPayment(cmd NewPayment) (models.Payment, error) {
	if err := validate(cmd); err != nil {
		return models.Payment{}, err
	}

	s.mu.Lock()
	payment := models.Payment{
		ID:     s.newID(),
		DebtID: cmd.DebtID,
		Amount: *cmd.Amount,
		Date:   cmd.Date,
	}
	s.snap.Payments = slices.Insert(s.snap.Payments, 0, payment)
	s.mu.Unlock()

	s.touched(CollectionPayments)
	return payment, nil
}

// AddGuarantee creates a guarantee.
func (s *Store) AddGuarantee(cmd NewGuarantee) (models.Guarantee, error) {
	if err := validate(cmd); err != nil {
		return models.Guarantee{}, err
	}

	s.mu.Lock()
	guarantee := models.Guarantee{
		ID:          s.newID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		Amount:      *cmd.Amount,
		Date:        cmd.Date,
	}
	s.snap.Guarantees = slices.Insert(s.snap.Guarantees, 0, guarantee)
	s.mu.Unlock()

	s.touched(CollectionGuarantees)
	return guarantee, nil
}

// RemoveGuarantee deletes a guarantee. Unknown ids are ignored.
func (s *Store) RemoveGuarantee(id string) {
	if removeByID(s, &s.snap.Guarantees, id, func(g models.Guarantee) string { return g.ID }) {
		s.touched(CollectionGuarantees)
	}
}

// ToggleSelection selects or deselects an account and reports whether it is
// selected afterwards. Only existing accounts can be selected.
func (s *Store) ToggleSelection(accountID string) (bool, error) {
	s.mu.Lock()
	if !s.selection.Contains(accountID) && !s.hasAccountLocked(accountID) {
		s.mu.Unlock()
		return false, apperrors.ErrAccountNotFound
	}
	selected := s.selection.Toggle(accountID)
	s.mu.Unlock()

	s.touched(CollectionSelection)
	return selected, nil
}

// SelectedAccountIDs returns the selection in selection order.
func (s *Store) SelectedAccountIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.IDs()
}

// DefaultAccountID is the account new transaction forms are pre-filled with:
// the first selected account, if any.
func (s *Store) DefaultAccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.First()
}

func (s *Store) pruneSelectionLocked() {
	s.selection.Prune(s.hasAccountLocked)
}

func (s *Store) hasAccountLocked(id string) bool {
	for _, a := range s.snap.Accounts {
		if a.ID == id {
			return true
		}
	}
	return false
}

func removeByID[T any](s *Store, items *[]T, id string, idOf func(T) string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(*items)
	*items = slices.DeleteFunc(*items, func(item T) bool { return idOf(item) == id })
	return len(*items) != before
}

func validate(cmd interface{}) error {
	if err := validator.Struct(cmd); err != nil {
		return apperrors.WithMessage(apperrors.ErrValidation, err.Error())
	}
	return nil
}
