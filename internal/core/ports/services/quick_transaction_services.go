package services

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/dto"
)

// QuickTransactionSvc creates transactions that are settled on creation.
type QuickTransactionSvc interface {
	// CreateQuickTransaction creates a Paid transaction for the full amount and
	// its single ledger entry in one atomic unit.
	CreateQuickTransaction(ctx context.Context, actor domain.Actor, req dto.CreateQuickTransactionRequest) (*domain.Transaction, *domain.LedgerEntry, error)
}
