// Package forms turns raw user input (flag values, query strings, form
// fields) into typed ledger commands. Empty strings mean "absent"; the ledger
// store decides which absent values are errors.
package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "finledger/internal/errors"
	"finledger/internal/filter"
	"finledger/internal/ledger"
	"finledger/internal/models"
	"finledger/internal/validator"
)

// AccountForm is the raw input for a new account.
type AccountForm struct {
	Name            string `form:"name" json:"name"`
	StartingBalance Number `form:"startingBalance" json:"startingBalance" swaggertype:"number"`
}

// Command converts the form. A non-numeric starting balance is 0.
func (f AccountForm) Command() (ledger.NewAccount, error) {
	return ledger.NewAccount{
		Name:            strings.TrimSpace(f.Name),
		StartingBalance: lenient(string(f.StartingBalance)),
	}, nil
}

// TransactionForm is the raw input for a new transaction. Tags is free text
// such as "food, lunch" or, from JSON, a list of tags.
type TransactionForm struct {
	Date              string `form:"date" json:"date"`
	Description       string `form:"description" json:"description"`
	Amount            Number `form:"amount" json:"amount" swaggertype:"number"`
	Tags              Text   `form:"tags" json:"tags" swaggertype:"array,string"`
	AccountID         string `form:"accountId" json:"accountId"`
	IsRecurring       bool   `form:"isRecurring" json:"isRecurring"`
	Frequency         string `form:"frequency" json:"frequency"`
	RecurrenceEndDate string `form:"recurrenceEndDate" json:"recurrenceEndDate"`
}

// Command converts the form.
func (f TransactionForm) Command() (ledger.NewTransaction, error) {
	amount, err := strict("amount", string(f.Amount))
	if err != nil {
		return ledger.NewTransaction{}, err
	}
	return ledger.NewTransaction{
		Date:              strings.TrimSpace(f.Date),
		Description:       strings.TrimSpace(f.Description),
		Amount:            amount,
		Tags:              ledger.NormalizeTags(string(f.Tags)),
		AccountID:         strings.TrimSpace(f.AccountID),
		IsRecurring:       f.IsRecurring,
		Frequency:         models.Frequency(strings.TrimSpace(f.Frequency)),
		RecurrenceEndDate: strings.TrimSpace(f.RecurrenceEndDate),
	}, nil
}

// BudgetForm is the raw input for a new budget.
type BudgetForm struct {
	Name      string `form:"name" json:"name"`
	Limit     Number `form:"limit" json:"limit" swaggertype:"number"`
	Tag       string `form:"tag" json:"tag"`
	StartDate string `form:"startDate" json:"startDate"`
	EndDate   string `form:"endDate" json:"endDate"`
}

// Command converts the form.
func (f BudgetForm) Command() (ledger.NewBudget, error) {
	limit, err := strict("limit", string(f.Limit))
	if err != nil {
		return ledger.NewBudget{}, err
	}
	return ledger.NewBudget{
		Name:      strings.TrimSpace(f.Name),
		Limit:     limit,
		Tag:       strings.TrimSpace(f.Tag),
		StartDate: strings.TrimSpace(f.StartDate),
		EndDate:   strings.TrimSpace(f.EndDate),
	}, nil
}

// DebtForm is the raw input for a new debt.
type DebtForm struct {
	Name         string `form:"name" json:"name"`
	Lender       string `form:"lender" json:"lender"`
	Principal    Number `form:"principal" json:"principal" swaggertype:"number"`
	InterestRate Number `form:"interestRate" json:"interestRate" swaggertype:"number"`
	StartDate    string `form:"startDate" json:"startDate"`
	DueDate      string `form:"dueDate" json:"dueDate"`
}

// Command converts the form. A non-numeric interest rate is 0.
func (f DebtForm) Command() (ledger.NewDebt, error) {
	principal, err := strict("principal", string(f.Principal))
	if err != nil {
		return ledger.NewDebt{}, err
	}
	rate := lenient(string(f.InterestRate))
	return ledger.NewDebt{
		Name:         strings.TrimSpace(f.Name),
		Lender:       strings.TrimSpace(f.Lender),
		Principal:    principal,
		InterestRate: &rate,
		StartDate:    strings.TrimSpace(f.StartDate),
		DueDate:      strings.TrimSpace(f.DueDate),
	}, nil
}

// PaymentForm is the raw input for a debt payment.
type PaymentForm struct {
	DebtID string `form:"debtId" json:"debtId"`
	Amount Number `form:"amount" json:"amount" swaggertype:"number"`
	Date   string `form:"date" json:"date"`
}

// Command converts the form.
func (f PaymentForm) Command() (ledger.NewPayment, error) {
	amount, err := strict("amount", string(f.Amount))
	if err != nil {
		return ledger.NewPayment{}, err
	}
	return ledger.NewPayment{
		DebtID: strings.TrimSpace(f.DebtID),
		Amount: amount,
		Date:   strings.TrimSpace(f.Date),
	}, nil
}

// GuaranteeForm is the raw input for a new guarantee.
type GuaranteeForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Amount      Number `form:"amount" json:"amount" swaggertype:"number"`
	Date        string `form:"date" json:"date"`
}

// Command converts the form.
func (f GuaranteeForm) Command() (ledger.NewGuarantee, error) {
	amount, err := strict("amount", string(f.Amount))
	if err != nil {
		return ledger.NewGuarantee{}, err
	}
	return ledger.NewGuarantee{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Amount:      amount,
		Date:        strings.TrimSpace(f.Date),
	}, nil
}

// FilterForm is the raw input of a transaction view. AccountIDs and Tags are
// comma separated.
type FilterForm struct {
	AccountIDs    string `form:"account_ids" json:"account_ids"`
	From          string `form:"from" json:"from" binding:"omitempty,iso_date" validate:"omitempty,iso_date"`
	To            string `form:"to" json:"to" binding:"omitempty,iso_date" validate:"omitempty,iso_date"`
	Tags          string `form:"tags" json:"tags"`
	Query         string `form:"q" json:"q"`
	AmountOp      string `form:"amount_op" json:"amount_op" binding:"omitempty,amount_op" validate:"omitempty,amount_op"`
	Amount        string `form:"amount" json:"amount"`
	RecurringOnly bool   `form:"recurring_only" json:"recurring_only"`
}

// Validate rejects malformed dates and unknown amount operators with
// ErrInvalidInput. Gin binding applies the same rules.
func (f FilterForm) Validate() error {
	if err := validator.Struct(f); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// Spec converts the form into a filter spec.
func (f FilterForm) Spec() filter.Spec {
	spec := filter.Spec{
		AccountIDs:          ledger.NormalizeTags(f.AccountIDs),
		DateStart:           strings.TrimSpace(f.From),
		DateEnd:             strings.TrimSpace(f.To),
		Tags:                ledger.NormalizeTags(f.Tags),
		DescriptionContains: f.Query,
		RecurringOnly:       f.RecurringOnly,
	}
	if op := strings.TrimSpace(f.AmountOp); op != "" {
		spec.Amount = &filter.AmountCondition{Op: op, Value: f.Amount}
	}
	return spec
}

// strict parses a required amount. Empty input is nil so the store can report
// the missing field; anything else must be a number.
func strict(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, field+" must be a number")
	}
	return &d, nil
}

func lenient(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
