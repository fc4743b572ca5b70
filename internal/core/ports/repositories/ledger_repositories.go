package repositories

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// ListLedgerEntriesByTransaction retrieves a page of entries posted against
	// a transaction, oldest first.
	ListLedgerEntriesByTransaction(ctx context.Context, organisationID, transactionID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// HasLedgerEntries reports whether any entry posts against the transaction
	// or names it as the counter account.
	HasLedgerEntries(ctx context.Context, organisationID, transactionID string) (bool, error)
}

// LedgerWriter appends ledger entries. There is no update or delete.
type LedgerWriter interface {
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
