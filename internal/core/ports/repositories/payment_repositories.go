package repositories

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// ListPaymentsByTransaction retrieves the payments applied to a transaction, oldest first.
	ListPaymentsByTransaction(ctx context.Context, organisationID, transactionID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
