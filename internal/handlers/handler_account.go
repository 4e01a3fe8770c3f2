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

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	balanceService   portssvc.BalanceCalculatorSvc
	statementService portssvc.StatementService
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, balanceService portssvc.BalanceCalculatorSvc, statementService portssvc.StatementService) {
	h := &accountHandler{
		accountService:   accountService,
		balanceService:   balanceService,
		statementService: statementService,
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/seed-default", h.seedDefaultChart)
		accounts.GET("/by-code/:code", h.getAccountByCode)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
		accounts.GET("/:account_id/children", h.getChildren)
		accounts.GET("/:account_id/path", h.getHierarchyPath)
		accounts.GET("/:account_id/balance", h.getAccountBalance)
		accounts.GET("/:account_id/ledger", h.getAccountLedger)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new account in the organization's chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), c.Param("organization_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("organization_id"), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// seedDefaultChart godoc
// @Summary Seed the default chart of accounts
// @Description Bulk-creates the standard chart for a fresh organization
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 201 {object} dto.SeedChartResponse
// @Failure 409 {object} map[string]string "Organization already has accounts"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/seed-default [post]
func (h *accountHandler) seedDefaultChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	seeded, err := h.accountService.SeedDefaultChart(c.Request.Context(), c.Param("organization_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to seed default chart")
		return
	}
	c.JSON(http.StatusCreated, dto.SeedChartResponse{SeededAccounts: seeded})
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountByCode godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/by-code/{code} [get]
func (h *accountHandler) getAccountByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.accountService.GetAccountByCode(c.Request.Context(), c.Param("organization_id"), c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} map[string]string "System account restriction"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Soft-delete an account
// @Description Deletes a leaf account with no ledger history
// @Tags accounts
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Param override_system query bool false "Allow deleting a system account"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Account cannot be deleted"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	overrideSystem := c.Query("override_system") == "true"
	err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"), userID, overrideSystem)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getChildren godoc
// @Summary List the direct children of an account
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id}/children [get]
func (h *accountHandler) getChildren(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	children, err := h.accountService.ResolveChildren(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list child accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(children))
}

// getHierarchyPath godoc
// @Summary Get the root-to-node path of an account
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id}/path [get]
func (h *accountHandler) getHierarchyPath(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	path, err := h.accountService.ResolveHierarchyPath(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to resolve account path")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(path))
}

// getAccountBalance godoc
// @Summary Compute an account's balance
// @Description Computes the signed balance of one account over an optional date window
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Param asOf query string false "Balance as of this date (YYYY-MM-DD), defaults to today"
// @Param startDate query string false "Fold pre-window activity into an opening balance (YYYY-MM-DD)"
// @Param fiscalYear query string false "Restrict to a fiscal year label"
// @Param fiscalPeriod query int false "Restrict to a fiscal period (1-12)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateParam(c, "asOf")
	if !ok {
		return
	}
	startDate, ok := parseDateParam(c, "startDate")
	if !ok {
		return
	}

	q := domain.BalanceQuery{
		AsOf:       time.Now(),
		StartDate:  startDate,
		FiscalYear: c.Query("fiscalYear"),
	}
	if asOf != nil {
		q.AsOf = *asOf
	}
	if fp, err := parseFiscalPeriod(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else {
		q.FiscalPeriod = fp
	}

	balance, err := h.balanceService.ComputeAccountBalance(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"), q)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute account balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance))
}

// getAccountLedger godoc
// @Summary Get an account's running ledger
// @Description Returns the ordered entries of one account with a running balance per row
// @Tags accounts
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param account_id path string true "Account ID"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD), defaults to today"
// @Param includeVoid query bool false "Include voided entries as audit rows"
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{organization_id}/accounts/{account_id}/ledger [get]
func (h *accountHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	startDate, ok := parseDateParam(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := parseDateParam(c, "endDate")
	if !ok {
		return
	}

	q := domain.StatementQuery{
		StartDate:   startDate,
		EndDate:     endDate,
		IncludeVoid: c.Query("includeVoid") == "true",
	}
	statement, err := h.statementService.GenerateAccountLedger(c.Request.Context(), c.Param("organization_id"), c.Param("account_id"), q)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate account ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement, q))
}
