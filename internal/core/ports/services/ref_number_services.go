package services

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
)

// RefNumberSvc allocates year-scoped reference numbers.
type RefNumberSvc interface {
	// NextReference returns the next reference for kind in the actor's
	// organisation. It must run inside a unit of work; the allocation is
	// serialized until that unit ends.
	NextReference(ctx context.Context, actor domain.Actor, kind domain.TransactionKind) (string, error)
}
