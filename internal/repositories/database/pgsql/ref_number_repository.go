package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefNumberRepository struct {
	BaseRepository
}

func newPgxRefNumberRepository(pool *pgxpool.Pool) portsrepo.RefNumberRepository {
	return &PgxRefNumberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RefNumberRepository = (*PgxRefNumberRepository)(nil)

// LockLatestRefNumber takes a transaction scoped advisory lock on the
// organisation and kind, then reads the highest parsed reference. Rows whose
// reference could not be parsed carry ref_sequence 0 and are ignored.
func (r *PgxRefNumberRepository) LockLatestRefNumber(ctx context.Context, organisationID string, kind domain.TransactionKind) (string, error) {
	tx, ok := txFrom(ctx)
	if !ok {
		return "", fmt.Errorf("allocating a reference number outside a unit of work: %w", apperrors.ErrInternal)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, organisationID+":"+string(kind)); err != nil {
		return "", apperrors.NewAppError(500, "failed to lock reference numbers for "+string(kind), err)
	}

	query := `
		SELECT ref_number
		FROM transactions
		WHERE organisation_id = $1 AND kind = $2 AND ref_sequence > 0
		ORDER BY ref_year DESC, ref_sequence DESC
		LIMIT 1;
	`
	var latest string
	if err := tx.QueryRow(ctx, query, organisationID, string(kind)).Scan(&latest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", apperrors.NewAppError(500, "failed to read latest reference number for "+string(kind), err)
	}
	return latest, nil
}
