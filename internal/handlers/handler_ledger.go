package handlers

import (
	"net/http"

	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for posting and voiding ledger entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerLedgerRoutes registers routes related to ledger entries.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	rg.POST("/vouchers", h.postVoucher)
	rg.GET("/vouchers/:voucher_id", h.getVoucherEntries)

	entries := rg.Group("/entries")
	{
		entries.GET("/:entry_id", h.getEntry)
		entries.POST("/:entry_id/void", h.voidEntry)
	}
}

// postVoucher godoc
// @Summary Post a balanced voucher
// @Description Persists a balanced batch of debit/credit entries atomically
// @Tags ledger
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param voucher body dto.PostVoucherRequest true "Voucher entries"
// @Success 201 {array} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced voucher or invalid entries"
// @Security BearerAuth
// @Router /organizations/{organization_id}/vouchers [post]
func (h *ledgerHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entries, err := h.ledgerService.PostVoucherEntries(c.Request.Context(), c.Param("organization_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post voucher")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerEntriesResponse(entries))
}

// getVoucherEntries godoc
// @Summary List the entries of a voucher
// @Description Retrieves every entry posted under one voucher, void lines included
// @Tags ledger
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param voucher_id path string true "Voucher ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/vouchers/{voucher_id} [get]
func (h *ledgerHandler) getVoucherEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.ledgerService.ListVoucherEntries(c.Request.Context(), c.Param("organization_id"), c.Param("voucher_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve voucher entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get a ledger entry by ID
// @Tags ledger
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/entries/{entry_id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), c.Param("organization_id"), c.Param("entry_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// voidEntry godoc
// @Summary Void a ledger entry
// @Description Flips an active entry to VOID so it stops counting towards balances
// @Tags ledger
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Entry is already void"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/entries/{entry_id}/void [post]
func (h *ledgerHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.VoidEntry(c.Request.Context(), c.Param("organization_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to void ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}
