package services

import (
	"time"

	"finledger/internal/aggregate"
	"finledger/internal/filter"
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/pagination"
)

// AccountServicer defines the contract for account-related operations.
type AccountServicer interface {
	CreateAccount(cmd ledger.NewAccount) (*AccountView, error)
	GetAccounts(page pagination.PageRequest) (*pagination.PageResponse[AccountView], error)
	GetAccountByID(id string) (*AccountView, error)
	DeleteAccount(id string)
	ToggleSelection(id string) (bool, error)
	SelectedAccountIDs() []string
}

// TransactionServicer defines the contract for transaction-related operations.
type TransactionServicer interface {
	CreateTransaction(cmd ledger.NewTransaction) (*models.Transaction, error)
	GetTransactions(q TransactionQuery, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	DeleteTransaction(id string)
}

// BudgetServicer defines the contract for budget-related operations.
type BudgetServicer interface {
	CreateBudget(cmd ledger.NewBudget) (*aggregate.BudgetStatus, error)
	GetBudgets(page pagination.PageRequest) (*pagination.PageResponse[aggregate.BudgetStatus], error)
	GetBudgetByID(id string) (*aggregate.BudgetStatus, error)
	DeleteBudget(id string)
}

// DebtServicer defines the contract for debt and payment operations.
type DebtServicer interface {
	CreateDebt(cmd ledger.NewDebt) (*aggregate.DebtStatus, error)
	GetDebts(page pagination.PageRequest) (*pagination.PageResponse[aggregate.DebtStatus], error)
	GetDebtByID(id string) (*aggregate.DebtStatus, error)
	DeleteDebt(id string)
	AddPayment(cmd ledger.NewPayment) (*models.Payment, error)
}

// GuaranteeServicer defines the contract for guarantee-related operations.
type GuaranteeServicer interface {
	CreateGuarantee(cmd ledger.NewGuarantee) (*models.Guarantee, error)
	GetGuarantees(page pagination.PageRequest) (*pagination.PageResponse[models.Guarantee], error)
	GetGuaranteeByID(id string) (*models.Guarantee, error)
	DeleteGuarantee(id string)
}

// ReportServicer defines the contract for derived reports over transactions.
type ReportServicer interface {
	Summary(q TransactionQuery) aggregate.Summary
	ExpensesByTag(q TransactionQuery) []aggregate.TagAmount
	Recurring(q TransactionQuery, from, to time.Time) []aggregate.Occurrence
}

// TransactionQuery selects the transactions a view or report covers.
type TransactionQuery struct {
	Spec filter.Spec
	// SelectedOnly scopes the query to the selected accounts; with nothing
	// selected it matches no transactions.
	SelectedOnly bool
}

// resolve turns q into a filter spec against the current selection.
func resolve(store *ledger.Store, q TransactionQuery) filter.Spec {
	spec := q.Spec
	if q.SelectedOnly {
		spec.AccountIDs = store.SelectedAccountIDs()
		spec.EmptyAccountsMatchNone = true
	}
	return spec
}
