package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/core/services"
	"github.com/SscSPs/erp_accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fieldErrorResponse is one entry of a 422 body.
type fieldErrorResponse struct {
	Entity  string `json:"entity"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps a service error to a status code and writes it. action
// completes "Failed to ..." in the generic 500 message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var fieldErrs apperrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		logger.Warn("Validation failed", slog.String("action", action), slog.String("error", err.Error()))
		body := make([]fieldErrorResponse, len(fieldErrs))
		for i, fe := range fieldErrs {
			body[i] = fieldErrorResponse{Entity: fe.Entity, Field: fe.Field}
			if fe.Err != nil {
				body[i].Message = fe.Err.Error()
			}
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": body})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrDuplicateReferenceNumber),
		errors.Is(err, services.ErrTransactionHasPayments),
		errors.Is(err, services.ErrTransactionLocked),
		errors.Is(err, services.ErrTransactionAlreadyPaid):
		logger.Warn("Request conflicts with stored state", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid request", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// requireActor reads the authenticated actor or writes a 401.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return actor, ok
}
