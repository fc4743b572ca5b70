package pgsql

import (
	"context"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting/internal/models"
	"github.com/SscSPs/erp_accounting/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectPaymentFields = `
	payment_id, organisation_id, transaction_id, amount, interests_penalties, currency_code,
	account_to_id, conciliation, reference, payment_date,
	created_at, created_by, last_updated_at, last_updated_by
`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + selectPaymentFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PaymentID,
		m.OrganisationID,
		m.TransactionID,
		m.Amount,
		m.InterestsPenalties,
		m.CurrencyCode,
		m.AccountToID,
		m.Conciliation,
		m.Reference,
		m.PaymentDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "payment "+m.PaymentID)
	}
	return nil
}

func (r *PgxPaymentRepository) ListPaymentsByTransaction(ctx context.Context, organisationID, transactionID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + selectPaymentFields + `
		FROM payments
		WHERE organisation_id = $1 AND transaction_id = $2
		ORDER BY payment_date, created_at, payment_id;
	`
	rows, err := r.db(ctx).Query(ctx, query, organisationID, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for transaction "+transactionID, err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.OrganisationID,
			&m.TransactionID,
			&m.Amount,
			&m.InterestsPenalties,
			&m.CurrencyCode,
			&m.AccountToID,
			&m.Conciliation,
			&m.Reference,
			&m.PaymentDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
