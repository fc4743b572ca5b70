// Package memory keeps every repository in process. A unit of work holds the
// store's single writer lock from begin to end and restores a snapshot when it
// fails, so readers never see half of a unit.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
)

type unitKey struct{}

type state struct {
	transactions map[string]domain.Transaction
	payments     []domain.Payment
	ledger       []domain.LedgerEntry
}

func newState() *state {
	return &state{transactions: make(map[string]domain.Transaction)}
}

func (s *state) clone() *state {
	c := &state{
		transactions: make(map[string]domain.Transaction, len(s.transactions)),
		payments:     append([]domain.Payment(nil), s.payments...),
		ledger:       append([]domain.LedgerEntry(nil), s.ledger...),
	}
	for id, t := range s.transactions {
		c.transactions[id] = cloneTransaction(t)
	}
	return c
}

// Store is the shared state behind the memory repositories.
type Store struct {
	mu   sync.Mutex
	data *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newState()}
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

// WithinTx runs fn while holding the writer lock. The state is rolled back to
// the snapshot taken at begin when fn fails or ctx is done.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inUnit(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: begin: %w", apperrors.ErrAtomicCommitFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	err := fn(context.WithValue(ctx, unitKey{}, s))
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: commit: %w", apperrors.ErrAtomicCommitFailed, ctx.Err())
	}
	if err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) inUnit(ctx context.Context) bool {
	owner, _ := ctx.Value(unitKey{}).(*Store)
	return owner == s
}

// view runs fn against the state, taking the lock unless the caller's unit
// already holds it.
func (s *Store) view(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inUnit(ctx) {
		return fn(s.data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Repositories wires every memory repository into a RepositoryProvider.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork:      s,
		TransactionRepo: NewTransactionRepository(s),
		LedgerRepo:      NewLedgerRepository(s),
		PaymentRepo:     NewPaymentRepository(s),
		RefNumberRepo:   NewRefNumberRepository(s),
	}
}

func cloneTransaction(t domain.Transaction) domain.Transaction {
	c := t
	c.Details = append([]domain.TransactionDetail(nil), t.Details...)
	c.PayPlans = append([]domain.PayPlan(nil), t.PayPlans...)
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	if t.ApprovedAt != nil {
		at := *t.ApprovedAt
		c.ApprovedAt = &at
	}
	return c
}
