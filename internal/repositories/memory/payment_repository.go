package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
)

type PaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

var _ portsrepo.PaymentRepositoryFacade = (*PaymentRepository)(nil)

func (r *PaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return r.store.view(ctx, func(st *state) error {
		for _, p := range st.payments {
			if p.PaymentID == payment.PaymentID {
				return fmt.Errorf("payment %s: %w", payment.PaymentID, apperrors.ErrDuplicate)
			}
		}
		st.payments = append(st.payments, payment)
		return nil
	})
}

func (r *PaymentRepository) ListPaymentsByTransaction(ctx context.Context, organisationID, transactionID string) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	err := r.store.view(ctx, func(st *state) error {
		for _, p := range st.payments {
			if p.OrganisationID == organisationID && p.TransactionID == transactionID {
				payments = append(payments, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].PaymentDate.Equal(payments[j].PaymentDate) {
			return payments[i].PaymentDate.Before(payments[j].PaymentDate)
		}
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
	return payments, nil
}
