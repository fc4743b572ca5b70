package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/SscSPs/erp_accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	clock              domain.Clock
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, clock domain.Clock) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		clock:              clock,
	}
}

// createTransaction godoc
// @Summary Create a draft transaction
// @Description Creates a draft income, expense, purchase or loan with a freshly allocated reference number
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Reference number could not be allocated"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID), slog.String("ref_number", txn.RefNumber))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, domain.Today(h.clock)))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the organisation's transactions, newest issue date first, filtered by status and kind
// @Tags transactions
// @Produce  json
// @Param   state query string false "Status filter" Enums(all, draft, approved, paid, due, awaiting_payment)
// @Param   kind query string false "Transaction kind" Enums(INCOME, EXPENSE, BUY, LOAN_RECEIVE, LOAN_GIVE)
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	res, err := h.transactionService.ListTransactions(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}

	logger.Debug("Transactions listed successfully", slog.Int("count", len(res.Transactions)))
	c.JSON(http.StatusOK, res)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a transaction with its detail lines and pay plan
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), actor, c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, domain.Today(h.clock)))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Edits lines and percentages of a transaction that has not moved money yet and recalculates its totals
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Stale version or transaction locked"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), actor, transactionID, req)
	if err != nil {
		respondError(c, err, "update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID), slog.Int64("version", txn.Version))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, domain.Today(h.clock)))
}

// approveTransaction godoc
// @Summary Approve a draft transaction
// @Description Moves a draft to approved; transactions in any other state are returned unchanged
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to approve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID}/approve [post]
func (h *transactionHandler) approveTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.ApproveTransaction(c.Request.Context(), actor, c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "approve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, domain.Today(h.clock)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction with its lines and pay plan when no money has moved through it
// @Tags transactions
// @Param   transactionID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction has payments"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), actor, transactionID); err != nil {
		respondError(c, err, "delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}

// addPayPlan godoc
// @Summary Add a pay plan installment
// @Description Schedules an installment; the plan stays ordered by due date
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   payPlan body dto.PayPlanRequest true "Installment"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Failed to add pay plan"
// @Security BearerAuth
// @Router /transactions/{transactionID}/pay_plans [post]
func (h *transactionHandler) addPayPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.PayPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPayPlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.AddPayPlan(c.Request.Context(), actor, transactionID, req)
	if err != nil {
		respondError(c, err, "add pay plan")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, domain.Today(h.clock)))
}

// nextPayment godoc
// @Summary Suggest the next payment
// @Description Returns the next unpaid installment, or the whole balance when there is no plan
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.NextPaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to compute next payment"
// @Security BearerAuth
// @Router /transactions/{transactionID}/next_payment [get]
func (h *transactionHandler) nextPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	res, err := h.transactionService.NextPayment(c.Request.Context(), actor, c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "compute next payment")
		return
	}
	c.JSON(http.StatusOK, res)
}
