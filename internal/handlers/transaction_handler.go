package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finledger/internal/errors"
	"finledger/internal/forms"
	"finledger/internal/pagination"
	"finledger/internal/services"
	"finledger/internal/validator"
)

// Scope values accepted by the scope query parameter.
const (
	scopeAll      = "all"
	scopeSelected = "selected"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// bindTransactionQuery reads the filter and scope query parameters.
func bindTransactionQuery(c *gin.Context) (services.TransactionQuery, error) {
	var f forms.FilterForm
	if err := c.ShouldBindQuery(&f); err != nil {
		return services.TransactionQuery{}, apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Describe(err))
	}

	q := services.TransactionQuery{Spec: f.Spec()}
	switch c.Query("scope") {
	case "", scopeAll:
	case scopeSelected:
		q.SelectedOnly = true
	default:
		return services.TransactionQuery{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "scope must be all or selected")
	}
	return q, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a transaction. Without an accountId it is assigned to the first selected account.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body forms.TransactionForm true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req forms.TransactionForm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, err)
		return
	}

	cmd, err := req.Command()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.CreateTransaction(cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions handles listing transactions through the filter engine
// @Summary     List transactions
// @Description List transactions matching every given filter, most recent first
// @Tags        transactions
// @Produce     json
// @Param       account_ids    query string false "Comma separated account ids"
// @Param       scope          query string false "all (default) or selected"
// @Param       from           query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to             query string false "End date (YYYY-MM-DD, inclusive)"
// @Param       tags           query string false "Comma separated tags, all required"
// @Param       q              query string false "Case-insensitive description search"
// @Param       amount_op      query string false "gt, lt or between"
// @Param       amount         query string false "Amount bound, min,max for between"
// @Param       recurring_only query bool   false "Only recurring transactions"
// @Param       page           query int    false "Page number (default 1)"
// @Param       page_size      query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		bindInvalid(c, err)
		return
	}

	q, err := bindTransactionQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(q, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID handles retrieving a single transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.transactionService.DeleteTransaction(id)
	c.Status(http.StatusNoContent)
}
