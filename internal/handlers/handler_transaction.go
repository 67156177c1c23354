package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers ledger routes. writeMW guards the endpoints that add spending.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, writeMW ...gin.HandlerFunc) {
	h := newTransactionHandler(transactionService)
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMW...), handler)
	}

	txns := rg.Group("/transactions")
	{
		txns.POST("", guarded(h.recordTransaction)...)
		txns.GET("", h.listTransactions)
		txns.PUT("/:id", guarded(h.updateTransaction)...)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Appends an income or expense to the ledger. Expenses pass through the kill-switch first.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.RecordTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Blocked by the kill-switch, with the decision"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "Ledger unavailable"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	logger.Info("Received request to record transaction", slog.String("direction", req.Direction), slog.String("category", req.Category))

	txn, decision, err := h.transactionService.RecordTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondWriteError(c, logger, err, decision, "record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, writeResponse(txn, decision))
}

// updateTransaction godoc
// @Summary Correct a transaction
// @Description Changes fields of a stored transaction. Added spending passes through the kill-switch first.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.RecordTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Blocked by the kill-switch, with the decision"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "Ledger unavailable"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to update transaction")

	txn, decision, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		respondWriteError(c, logger, err, decision, "update transaction")
		return
	}

	logger.Info("Transaction updated")
	c.JSON(http.StatusOK, writeResponse(txn, decision))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction from the ledger of the logged-in user
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 503 {object} map[string]string "Ledger unavailable"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("transaction_id", transactionID))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, logger, err, "delete transaction")
		return
	}

	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}

// respondWriteError answers a blocked write with 403 and the decision, and anything else via respondError.
func respondWriteError(c *gin.Context, logger *slog.Logger, err error, decision *domain.KillSwitchDecision, action string) {
	if errors.Is(err, apperrors.ErrTransactionBlocked) && decision != nil {
		logger.Warn("Transaction blocked by kill-switch", slog.String("reason", decision.Reason))
		c.JSON(http.StatusForbidden, gin.H{
			"error":      decision.Reason,
			"killSwitch": dto.ToKillSwitchDecisionResponse(decision),
		})
		return
	}
	respondError(c, logger, err, action)
}

// writeResponse attaches the kill-switch decision only when it warned.
func writeResponse(txn *domain.Transaction, decision *domain.KillSwitchDecision) dto.RecordTransactionResponse {
	resp := dto.RecordTransactionResponse{Transaction: dto.ToTransactionResponse(txn)}
	if decision != nil && decision.Status == domain.StatusWarning {
		warning := dto.ToKillSwitchDecisionResponse(decision)
		resp.KillSwitch = &warning
	}
	return resp
}

// listTransactions godoc
// @Summary List transactions
// @Description Pages through the ledger of the logged-in user, newest first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size (1-200, default 50)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Ledger unavailable"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}
