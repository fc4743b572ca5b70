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

type quickTransactionHandler struct {
	quickService portssvc.QuickTransactionSvc
	clock        domain.Clock
}

func newQuickTransactionHandler(qs portssvc.QuickTransactionSvc, clock domain.Clock) *quickTransactionHandler {
	return &quickTransactionHandler{quickService: qs, clock: clock}
}

// createQuickTransaction godoc
// @Summary Create a settled transaction
// @Description Creates a transaction that is paid on creation together with its single ledger entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateQuickTransactionRequest true "Quick transaction details"
// @Success 201 {object} dto.QuickTransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Reference number could not be allocated"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]string "Failed to create quick transaction"
// @Security BearerAuth
// @Router /quick_transactions [post]
func (h *quickTransactionHandler) createQuickTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateQuickTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuickTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, entry, err := h.quickService.CreateQuickTransaction(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "create quick transaction")
		return
	}

	logger.Info("Quick transaction created successfully", slog.String("transaction_id", txn.TransactionID), slog.String("ref_number", txn.RefNumber))
	c.JSON(http.StatusCreated, dto.QuickTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn, domain.Today(h.clock)),
		LedgerEntry: dto.ToLedgerEntryResponse(entry),
	})
}
