package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/forms"
	"finledger/internal/pagination"
	"finledger/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount handles the creation of a new account
// @Summary     Create an account
// @Description Create a new account with an optional starting balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body forms.AccountForm true "Account details"
// @Success     201 {object} services.AccountView "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req forms.AccountForm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, err)
		return
	}

	cmd, err := req.Command()
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles listing accounts
// @Summary     List accounts
// @Description List accounts with their derived balance and selection state, most recent first
// @Tags        accounts
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.AccountView] "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		bindInvalid(c, err)
		return
	}

	result, err := h.accountService.GetAccounts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccountByID handles retrieving a single account
// @Summary     Get account by ID
// @Description Get one account with its derived balance
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} services.AccountView "Account details"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount handles deleting an account
// @Summary     Delete an account
// @Description Delete an account. Its transactions are kept. Unknown ids are ignored.
// @Tags        accounts
// @Param       id path string true "Account ID"
// @Success     204 "Account deleted"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.accountService.DeleteAccount(id)
	c.Status(http.StatusNoContent)
}

// GetSelection handles listing the selected accounts
// @Summary     Get the account selection
// @Description List the selected account ids in selection order
// @Tags        selection
// @Produce     json
// @Success     200 {object} SelectionResponse "Selected account ids"
// @Router      /selection [get]
func (h *AccountHandler) GetSelection(c *gin.Context) {
	ids := h.accountService.SelectedAccountIDs()
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, SelectionResponse{AccountIDs: ids})
}

// ToggleSelection handles selecting or deselecting an account
// @Summary     Toggle account selection
// @Description Select the account when unselected, otherwise deselect it
// @Tags        selection
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} ToggleResponse "Selection state after the toggle"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /selection/{id}/toggle [post]
func (h *AccountHandler) ToggleSelection(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	selected, err := h.accountService.ToggleSelection(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{AccountID: id, Selected: selected})
}
