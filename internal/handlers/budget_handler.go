package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/forms"
	"finledger/internal/pagination"
	"finledger/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudget handles the creation of a new budget
// @Summary     Create a budget
// @Description Create a spending limit on one tag
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body forms.BudgetForm true "Budget details"
// @Success     201 {object} aggregate.BudgetStatus "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req forms.BudgetForm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, err)
		return
	}

	cmd, err := req.Command()
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets
// @Summary     List budgets
// @Description List budgets with spent, progress and left
// @Tags        budgets
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[aggregate.BudgetStatus] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		bindInvalid(c, err)
		return
	}

	result, err := h.budgetService.GetBudgets(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudgetByID handles retrieving a single budget
// @Summary     Get budget by ID
// @Tags        budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} aggregate.BudgetStatus "Budget details"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget
// @Summary     Delete a budget
// @Tags        budgets
// @Param       id path string true "Budget ID"
// @Success     204 "Budget deleted"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.budgetService.DeleteBudget(id)
	c.Status(http.StatusNoContent)
}
