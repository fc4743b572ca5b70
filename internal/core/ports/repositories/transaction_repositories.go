package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
)

// TransactionListFilter narrows ListTransactions.
type TransactionListFilter struct {
	OrganisationID string
	Kind           domain.TransactionKind // empty for every kind
	Status         domain.StatusFilter
	Today          time.Time // reference day for the Due status
	Limit          int
	NextToken      *string
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its details and pay plan.
	FindTransactionByID(ctx context.Context, organisationID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions, newest issue date first.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, filter TransactionListFilter) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction with its details and pay plan.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites a transaction and rewrites its details and
	// pay plan. It fails with apperrors.ErrConflict when the stored version
	// differs from txn.Version, and bumps txn.Version on success.
	UpdateTransaction(ctx context.Context, txn *domain.Transaction) error

	// DeleteTransaction removes a transaction together with its details and pay plan.
	DeleteTransaction(ctx context.Context, organisationID, transactionID string) error
}

// TransactionLocker defines operations that serialize writers on transaction rows.
type TransactionLocker interface {
	// FindTransactionsByIDsForUpdate loads and locks the transactions in id
	// order until the surrounding unit of work ends. Missing ids yield
	// apperrors.ErrNotFound.
	FindTransactionsByIDsForUpdate(ctx context.Context, organisationID string, transactionIDs []string) (map[string]domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionLocker
}
