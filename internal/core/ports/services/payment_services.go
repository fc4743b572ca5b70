package services

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/dto"
)

// PaymentSvcFacade applies and lists payments.
type PaymentSvcFacade interface {
	// ApplyPayment lowers the target's balance, and the counter account's when
	// one takes part, and posts the principal and interest ledger entries, all
	// in one atomic unit.
	ApplyPayment(ctx context.Context, actor domain.Actor, transactionID string, req dto.ApplyPaymentRequest) (*domain.Payment, error)

	// ListPayments retrieves the payments applied to a transaction.
	ListPayments(ctx context.Context, actor domain.Actor, transactionID string) ([]domain.Payment, error)
}
