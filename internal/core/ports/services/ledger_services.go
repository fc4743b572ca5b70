package services

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/dto"
)

// LedgerPosterSvc appends ledger entries. Callers run it inside a unit of work.
type LedgerPosterSvc interface {
	// Post appends one entry. A zero amount returns (nil, nil) when
	// req.SkipZero is set and an error otherwise.
	Post(ctx context.Context, actor domain.Actor, req domain.PostingRequest) (*domain.LedgerEntry, error)
}

// LedgerReaderSvc reads ledger entries.
type LedgerReaderSvc interface {
	// ListLedgerEntries retrieves a page of the entries posted against a transaction.
	ListLedgerEntries(ctx context.Context, actor domain.Actor, transactionID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerPosterSvc
	LedgerReaderSvc
}
