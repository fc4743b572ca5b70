package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting/internal/utils/pagination"
)

type TransactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.store.view(ctx, func(st *state) error {
		if _, ok := st.transactions[txn.TransactionID]; ok {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
		for _, t := range st.transactions {
			if t.OrganisationID == txn.OrganisationID && t.Kind == txn.Kind && t.RefNumber == txn.RefNumber {
				return fmt.Errorf("reference number %s: %w", txn.RefNumber, apperrors.ErrDuplicate)
			}
		}
		st.transactions[txn.TransactionID] = cloneTransaction(txn)
		return nil
	})
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, organisationID, transactionID string) (*domain.Transaction, error) {
	var found domain.Transaction
	err := r.store.view(ctx, func(st *state) error {
		t, ok := st.transactions[transactionID]
		if !ok || t.OrganisationID != organisationID {
			return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		found = cloneTransaction(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// FindTransactionsByIDsForUpdate returns copies of the transactions. The unit
// of work already holds the store exclusively, so no row lock is needed.
func (r *TransactionRepository) FindTransactionsByIDsForUpdate(ctx context.Context, organisationID string, transactionIDs []string) (map[string]domain.Transaction, error) {
	if !r.store.inUnit(ctx) {
		return nil, fmt.Errorf("locking transactions outside a unit of work: %w", apperrors.ErrInternal)
	}
	result := make(map[string]domain.Transaction, len(transactionIDs))
	err := r.store.view(ctx, func(st *state) error {
		for _, id := range transactionIDs {
			t, ok := st.transactions[id]
			if !ok || t.OrganisationID != organisationID {
				return fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
			}
			result[id] = cloneTransaction(t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn *domain.Transaction) error {
	return r.store.view(ctx, func(st *state) error {
		stored, ok := st.transactions[txn.TransactionID]
		if !ok || stored.OrganisationID != txn.OrganisationID {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
		}
		if stored.Version != txn.Version {
			return fmt.Errorf("transaction %s at version %d, got %d: %w", txn.TransactionID, stored.Version, txn.Version, apperrors.ErrConflict)
		}
		txn.Version++
		st.transactions[txn.TransactionID] = cloneTransaction(*txn)
		return nil
	})
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, organisationID, transactionID string) error {
	return r.store.view(ctx, func(st *state) error {
		t, ok := st.transactions[transactionID]
		if !ok || t.OrganisationID != organisationID {
			return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		delete(st.transactions, transactionID)
		return nil
	})
}

// ListTransactions pages newest issue date first.
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, *string, error) {
	var cursor *pagination.Cursor
	if filter.NextToken != nil && *filter.NextToken != "" {
		c, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		cursor = &c
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var matched []domain.Transaction
	err := r.store.view(ctx, func(st *state) error {
		for _, t := range st.transactions {
			if t.OrganisationID != filter.OrganisationID {
				continue
			}
			if filter.Kind != "" && t.Kind != filter.Kind {
				continue
			}
			if !filter.Status.Matches(&t, filter.Today) {
				continue
			}
			if cursor != nil && !cursor.Before(t.IssueDate, t.CreatedAt, t.TransactionID) {
				continue
			}
			matched = append(matched, cloneTransaction(t))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.IssueDate.Equal(b.IssueDate) {
			return a.IssueDate.After(b.IssueDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.TransactionID > b.TransactionID
	})

	var nextToken *string
	if len(matched) > limit {
		matched = matched[:limit]
		last := matched[limit-1]
		token := pagination.EncodeToken(last.IssueDate, last.CreatedAt, last.TransactionID)
		nextToken = &token
	}
	return matched, nextToken, nil
}
