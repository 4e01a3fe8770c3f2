package handlers

import (
	"net/http"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers the report generation routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// getTrialBalance godoc
// @Summary Generate a trial balance
// @Description Lists every leaf account's net debit/credit over the period with grand totals
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param startDate query string false "Period start (YYYY-MM-DD); pre-period activity folds into opening balances"
// @Param endDate query string false "Period end (YYYY-MM-DD), defaults to today"
// @Param fiscalYear query string false "Restrict to a fiscal year label"
// @Param fiscalPeriod query int false "Restrict to a fiscal period (1-12)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	startDate, ok := parseDateParam(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "endDate")
	if !ok {
		return
	}
	fiscalPeriod, err := parseFiscalPeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := domain.TrialBalanceQuery{
		StartDate:    startDate,
		EndDate:      endDate,
		FiscalYear:   c.Query("fiscalYear"),
		FiscalPeriod: fiscalPeriod,
	}
	tb, err := h.reportingService.GenerateTrialBalance(c.Request.Context(), c.Param("organization_id"), q)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb, q))
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Produces the statement of financial position as of a single date
// @Tags reports
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param asOf query string false "Position date (YYYY-MM-DD), defaults to today"
// @Param fiscalYear query string false "Scope the revenue/expense summary to one fiscal year"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /organizations/{organization_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateParam(c, "asOf")
	if !ok {
		return
	}

	q := domain.BalanceSheetQuery{
		AsOf:       time.Now(),
		FiscalYear: c.Query("fiscalYear"),
	}
	if asOf != nil {
		q.AsOf = *asOf
	}

	bs, err := h.reportingService.GenerateBalanceSheet(c.Request.Context(), c.Param("organization_id"), q)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}
