package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"finledger/internal/aggregate"
	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/services"
)

// defaultRecurringWindow is how far ahead recurring transactions are
// projected when no end date is given.
const defaultRecurringWindow = 30 * 24 * time.Hour

// ReportHandler serves derived reports over filtered transactions.
type ReportHandler struct {
	reportService services.ReportServicer
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, now: time.Now}
}

// GetSummary handles income and expense totals
// @Summary     Income and expense summary
// @Description Totals, net and per-tag and per-day breakdowns over the filtered transactions
// @Tags        reports
// @Produce     json
// @Param       account_ids query string false "Comma separated account ids"
// @Param       scope       query string false "all (default) or selected"
// @Param       from        query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to          query string false "End date (YYYY-MM-DD, inclusive)"
// @Param       tags        query string false "Comma separated tags, all required"
// @Param       q           query string false "Case-insensitive description search"
// @Success     200 {object} aggregate.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	q, err := bindTransactionQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": h.reportService.Summary(q)})
}

// GetExpensesByTag handles the per-tag expense breakdown
// @Summary     Expenses by tag
// @Description Each expense magnitude is credited to every one of its tags, largest total first. Untagged expenses are grouped under "No Tag".
// @Tags        reports
// @Produce     json
// @Param       account_ids query string false "Comma separated account ids"
// @Param       scope       query string false "all (default) or selected"
// @Param       from        query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       to          query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {array} aggregate.TagAmount "Expenses per tag"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/expenses-by-tag [get]
func (h *ReportHandler) GetExpensesByTag(c *gin.Context) {
	q, err := bindTransactionQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": h.reportService.ExpensesByTag(q)})
}

// GetRecurring handles projecting recurring transactions
// @Summary     Upcoming recurring transactions
// @Description Project recurring transactions into [from, to]. Defaults to today through 30 days ahead.
// @Tags        reports
// @Produce     json
// @Param       from        query string false "Window start (YYYY-MM-DD)"
// @Param       to          query string false "Window end (YYYY-MM-DD)"
// @Param       account_ids query string false "Comma separated account ids"
// @Param       scope       query string false "all (default) or selected"
// @Param       tags        query string false "Comma separated tags, all required"
// @Success     200 {array} aggregate.Occurrence "Projected occurrences ordered by date"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/recurring [get]
func (h *ReportHandler) GetRecurring(c *gin.Context) {
	q, err := bindTransactionQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	// from and to bound the projection window, not the transactions' own dates.
	q.Spec.DateStart, q.Spec.DateEnd = "", ""

	today := h.now().UTC().Truncate(24 * time.Hour)
	from, err := parseWindowDate(c.Query("from"), today, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseWindowDate(c.Query("to"), from.Add(defaultRecurringWindow), "to")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if to.Before(from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must not be before from"))
		return
	}
	if to.Sub(from) > aggregate.MaxProjectionSpan {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "the window must not exceed five years"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":        models.FormatDate(from),
		"to":          models.FormatDate(to),
		"occurrences": h.reportService.Recurring(q, from, to),
	})
}

func parseWindowDate(raw string, fallback time.Time, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	t, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be a YYYY-MM-DD date")
	}
	return t, nil
}
