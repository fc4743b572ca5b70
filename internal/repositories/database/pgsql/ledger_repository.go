package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting/internal/models"
	"github.com/SscSPs/erp_accounting/internal/utils/mapping"
	"github.com/SscSPs/erp_accounting/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectLedgerFields = `
	entry_id, organisation_id, transaction_id, account_to_id, payment_id,
	amount, operation, conciliation, reference, entry_date, created_at, created_by
`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveLedgerEntry appends one entry. The table has no UPDATE or DELETE path.
func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + selectLedgerFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.EntryID,
		m.OrganisationID,
		m.TransactionID,
		m.AccountToID,
		m.PaymentID,
		m.Amount,
		m.Operation,
		m.Conciliation,
		m.Reference,
		m.EntryDate,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return writeError(err, "ledger entry "+m.EntryID)
	}
	return nil
}

func (r *PgxLedgerRepository) HasLedgerEntries(ctx context.Context, organisationID, transactionID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ledger_entries
			WHERE organisation_id = $1 AND (transaction_id = $2 OR account_to_id = $2)
		);
	`
	var found bool
	if err := r.db(ctx).QueryRow(ctx, query, organisationID, transactionID).Scan(&found); err != nil {
		return false, apperrors.NewAppError(500, "failed to check ledger entries for transaction "+transactionID, err)
	}
	return found, nil
}

// ListLedgerEntriesByTransaction pages oldest entry first using a keyset token.
func (r *PgxLedgerRepository) ListLedgerEntriesByTransaction(ctx context.Context, organisationID, transactionID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	filterClause := `WHERE organisation_id = $1 AND transaction_id = $2`
	args := []interface{}{organisationID, transactionID}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, err)
		}
		filterClause += ` AND (entry_date, created_at, entry_id) > ($3, $4, $5)`
		args = append(args, cursor.SortDate, cursor.CreatedAt, cursor.ID)
	}
	query := `SELECT ` + selectLedgerFields + ` FROM ledger_entries ` + filterClause +
		` ORDER BY entry_date, created_at, entry_id LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for transaction "+transactionID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.OrganisationID,
			&m.TransactionID,
			&m.AccountToID,
			&m.PaymentID,
			&m.Amount,
			&m.Operation,
			&m.Conciliation,
			&m.Reference,
			&m.EntryDate,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		newToken := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		nextTokenVal = &newToken
		modelEntries = modelEntries[:limit]
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries), nextTokenVal, nil
}
