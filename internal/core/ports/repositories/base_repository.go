package repositories

import (
	"context"
)

// UnitOfWork runs a group of repository calls as one atomic unit.
type UnitOfWork interface {
	// WithinTx calls fn with a context bound to a single database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	// Calling WithinTx with a context that already carries a transaction
	// joins it instead of opening a new one.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
