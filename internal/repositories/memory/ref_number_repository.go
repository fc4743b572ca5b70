package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
)

type RefNumberRepository struct {
	store *Store
}

func NewRefNumberRepository(store *Store) *RefNumberRepository {
	return &RefNumberRepository{store: store}
}

var _ portsrepo.RefNumberRepository = (*RefNumberRepository)(nil)

// LockLatestRefNumber relies on the unit of work holding the store, which
// serializes every allocation.
func (r *RefNumberRepository) LockLatestRefNumber(ctx context.Context, organisationID string, kind domain.TransactionKind) (string, error) {
	if !r.store.inUnit(ctx) {
		return "", fmt.Errorf("allocating a reference number outside a unit of work: %w", apperrors.ErrInternal)
	}
	latest := ""
	var best domain.RefNumber
	err := r.store.view(ctx, func(st *state) error {
		for _, t := range st.transactions {
			if t.OrganisationID != organisationID || t.Kind != kind {
				continue
			}
			ref, err := domain.ParseRefNumber(t.RefNumber)
			if err != nil {
				continue
			}
			if latest == "" || ref.Year > best.Year || (ref.Year == best.Year && ref.Sequence > best.Sequence) {
				best = ref
				latest = t.RefNumber
			}
		}
		return nil
	})
	return latest, err
}
