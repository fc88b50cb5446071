package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finledger/internal/forms"
	"finledger/internal/pagination"
	"finledger/internal/services"
)

// GuaranteeHandler handles guarantee-related requests.
type GuaranteeHandler struct {
	guaranteeService services.GuaranteeServicer
}

// NewGuaranteeHandler creates a new GuaranteeHandler.
func NewGuaranteeHandler(guaranteeService services.GuaranteeServicer) *GuaranteeHandler {
	return &GuaranteeHandler{guaranteeService: guaranteeService}
}

// CreateGuarantee handles the creation of a new guarantee
// @Summary     Create a guarantee
// @Tags        guarantees
// @Accept      json
// @Produce     json
// @Param       request body forms.GuaranteeForm true "Guarantee details"
// @Success     201 {object} models.Guarantee "Guarantee created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /guarantees [post]
func (h *GuaranteeHandler) CreateGuarantee(c *gin.Context) {
	var req forms.GuaranteeForm
	if err := c.ShouldBindJSON(&req); err != nil {
		bindInvalid(c, err)
		return
	}

	cmd, err := req.Command()
	if err != nil {
		respondWithError(c, err)
		return
	}

	g, err := h.guaranteeService.CreateGuarantee(cmd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"guarantee": g})
}

// GetGuarantees handles listing guarantees
// @Summary     List guarantees
// @Tags        guarantees
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Guarantee] "Paginated guarantees"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /guarantees [get]
func (h *GuaranteeHandler) GetGuarantees(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		bindInvalid(c, err)
		return
	}

	result, err := h.guaranteeService.GetGuarantees(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGuaranteeByID handles retrieving a single guarantee
// @Summary     Get guarantee by ID
// @Tags        guarantees
// @Produce     json
// @Param       id path string true "Guarantee ID"
// @Success     200 {object} models.Guarantee "Guarantee details"
// @Failure     404 {object} ErrorResponse "Guarantee not found"
// @Router      /guarantees/{id} [get]
func (h *GuaranteeHandler) GetGuaranteeByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	g, err := h.guaranteeService.GetGuaranteeByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"guarantee": g})
}

// DeleteGuarantee handles deleting a guarantee
// @Summary     Delete a guarantee
// @Tags        guarantees
// @Param       id path string true "Guarantee ID"
// @Success     204 "Guarantee deleted"
// @Router      /guarantees/{id} [delete]
func (h *GuaranteeHandler) DeleteGuarantee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.guaranteeService.DeleteGuarantee(id)
	c.Status(http.StatusNoContent)
}
