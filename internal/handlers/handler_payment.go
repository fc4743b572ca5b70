package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/SscSPs/erp_accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// applyPayment godoc
// @Summary Apply a payment to a transaction
// @Description Lowers the balance of the transaction, and of the counter transaction when one takes part, and posts principal and interest ledger entries in one atomic unit
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   payment body dto.ApplyPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Failed to apply payment"
// @Security BearerAuth
// @Router /transactions/{transactionID}/payments [post]
func (h *paymentHandler) applyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.ApplyPayment(c.Request.Context(), actor, transactionID, req)
	if err != nil {
		respondError(c, err, "apply payment")
		return
	}

	logger.Info("Payment applied successfully", slog.String("transaction_id", transactionID), slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List the payments of a transaction
// @Description Lists every payment applied to a transaction, oldest first, with their totals
// @Tags payments
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /transactions/{transactionID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), actor, c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
