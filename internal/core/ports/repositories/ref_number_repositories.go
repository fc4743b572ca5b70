package repositories

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
)

// RefNumberRepository backs reference number allocation.
type RefNumberRepository interface {
	// LockLatestRefNumber returns the highest reference number stored for the
	// organisation and kind, or "" when there is none. It must run inside a
	// unit of work and holds off other allocators for the same organisation
	// and kind until that unit ends.
	LockLatestRefNumber(ctx context.Context, organisationID string, kind domain.TransactionKind) (string, error)
}
