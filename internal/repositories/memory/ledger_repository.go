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

type LedgerRepository struct {
	store *Store
}

func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return r.store.view(ctx, func(st *state) error {
		for _, e := range st.ledger {
			if e.EntryID == entry.EntryID {
				return fmt.Errorf("ledger entry %s: %w", entry.EntryID, apperrors.ErrDuplicate)
			}
		}
		st.ledger = append(st.ledger, entry)
		return nil
	})
}

func (r *LedgerRepository) HasLedgerEntries(ctx context.Context, organisationID, transactionID string) (bool, error) {
	found := false
	err := r.store.view(ctx, func(st *state) error {
		for _, e := range st.ledger {
			if e.OrganisationID == organisationID && (e.TransactionID == transactionID || e.AccountToID == transactionID) {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

// ListLedgerEntriesByTransaction pages oldest entry first.
func (r *LedgerRepository) ListLedgerEntriesByTransaction(ctx context.Context, organisationID, transactionID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		cursor = &c
	}
	if limit <= 0 {
		limit = 50
	}

	var entries []domain.LedgerEntry
	err := r.store.view(ctx, func(st *state) error {
		for _, e := range st.ledger {
			if e.OrganisationID != organisationID || e.TransactionID != transactionID {
				continue
			}
			if cursor != nil && !cursor.After(e.EntryDate, e.CreatedAt, e.EntryID) {
				continue
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.EntryID < b.EntryID
	})

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		next = &token
	}
	return entries, next, nil
}
