package services

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransaction retrieves a transaction with its details and pay plan.
	GetTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the organisation's transactions filtered by status.
	ListTransactions(ctx context.Context, actor domain.Actor, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// NextPayment suggests the amount and interest of the next payment.
	NextPayment(ctx context.Context, actor domain.Actor, transactionID string) (*dto.NextPaymentResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction creates a draft with a freshly allocated reference number.
	CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction edits lines and percentages and recalculates totals.
	UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// ApproveTransaction moves a draft to Approved; other states are left alone.
	ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error)

	// AddPayPlan appends an installment to the transaction's plan.
	AddPayPlan(ctx context.Context, actor domain.Actor, transactionID string, req dto.PayPlanRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction that never moved money.
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
