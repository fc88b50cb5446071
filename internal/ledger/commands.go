package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// NewAccount is the validated input of AddAccount.
type NewAccount struct {
	Name            string          `json:"name" validate:"notblank"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
}

// NewTransaction is the validated input of AddTransaction. An empty Date
// defaults to the store's current day. Tags may hold free text ("food, lunch").
type NewTransaction struct {
	Date              string           `json:"date" validate:"omitempty,iso_date"`
	Description       string           `json:"description" validate:"notblank"`
	Amount            *decimal.Decimal `json:"amount" validate:"required"`
	Tags              []string         `json:"tags"`
	AccountID         string           `json:"accountId"`
	IsRecurring       bool             `json:"isRecurring"`
	Frequency         models.Frequency `json:"frequency" validate:"omitempty,frequency"`
	RecurrenceEndDate string           `json:"recurrenceEndDate" validate:"omitempty,iso_date"`
}

// NewBudget is the validated input of AddBudget.
type NewBudget struct {
	Name      string           `json:"name" validate:"notblank"`
	Limit     *decimal.Decimal `json:"limit" validate:"required"`
	Tag       string           `json:"tag" validate:"notblank"`
	StartDate string           `json:"startDate" validate:"omitempty,iso_date"`
	EndDate   string           `json:"endDate" validate:"omitempty,iso_date"`
}

// NewDebt is the validated input of AddDebt. A nil InterestRate means 0.
type NewDebt struct {
	Name         string           `json:"name" validate:"notblank"`
	Lender       string           `json:"lender" validate:"notblank"`
	Principal    *decimal.Decimal `json:"principal" validate:"required"`
	InterestRate *decimal.Decimal `json:"interestRate"`
	StartDate    string           `json:"startDate" validate:"omitempty,iso_date"`
	DueDate      string           `json:"dueDate" validate:"required,iso_date"`
}

// NewPayment is the validated input of AddPayment. DebtID may reference a
// debt that no longer exists.
type NewPayment struct {
	DebtID string           `json:"debtId" validate:"notblank"`
	Amount *decimal.Decimal `json:"amount" validate:"required"`
	Date   string           `json:"date" validate:"required,iso_date"`
}

// NewGuarantee is the validated input of AddGuarantee.
type NewGuarantee struct {
	Name        string           `json:"name" validate:"notblank"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Date        string           `json:"date" validate:"required,iso_date"`
}

// NormalizeTags splits every entry on commas, trims each piece, drops empty
// pieces and duplicates, and keeps first-seen order.
func NormalizeTags(raw ...string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{})
	for _, entry := range raw {
		for _, piece := range strings.Split(entry, ",") {
			tag := strings.TrimSpace(piece)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
