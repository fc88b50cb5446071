package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/forms"
	"finledger/internal/pagination"
	"finledger/internal/services"
)

// DebtHandler handles debt and payment requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebt handles the creation of a new debt
// @Summary     Create a debt
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       request body forms.DebtForm true "Debt details"
// @Success     201 {object} aggregate.DebtStatus "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req forms.DebtForm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, err)
		return
	}

	cmd, err := req.Command()
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.CreateDebt(cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts handles listing debts
// @Summary     List debts
// @Description List debts with their payments, paid and remaining amounts
// @Tags        debts
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[aggregate.DebtStatus] "Paginated debts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		bindInvalid(c, err)
		return
	}

	result, err := h.debtService.GetDebts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDebtByID handles retrieving a single debt
// @Summary     Get debt by ID
// @Tags        debts
// @Produce     json
// @Param       id path string true "Debt ID"
// @Success     200 {object} aggregate.DebtStatus "Debt details"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebtByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles deleting a debt and its payments
// @Summary     Delete a debt
// @Description Delete a debt together with every payment recorded against it
// @Tags        debts
// @Param       id path string true "Debt ID"
// @Success     204 "Debt deleted"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.debtService.DeleteDebt(id)
	c.Status(http.StatusNoContent)
}

// AddPayment handles recording a payment against a debt
// @Summary     Record a payment
// @Tags        debts
// @Accept      json
// @Produce     json
// @Param       id      path string            true "Debt ID"
// @Param       request body forms.PaymentForm true "Payment details"
// @Success     201 {object} models.Payment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/payments [post]
func (h *DebtHandler) AddPayment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req forms.PaymentForm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, err)
		return
	}
	req.DebtID = id

	cmd, err := req.Command()
	if err != nil {
		respondWithError(c, err)
		return
	}

	payment, err := h.debtService.AddPayment(cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}
