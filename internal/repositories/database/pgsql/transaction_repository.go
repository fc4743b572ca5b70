package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting/internal/models"
	"github.com/SscSPs/erp_accounting/internal/utils/mapping"
	"github.com/SscSPs/erp_accounting/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectTransactionFields = `
		transaction_id, organisation_id, kind, ref_number, ref_year, ref_sequence, state,
		contact_id, description, currency_code, exchange_rate, discount_percent, tax_percent,
		gross_total, total, original_total, balance, issue_date, payment_date, due_date,
		cash, approver_id, approved_at, version,
		created_at, created_by, last_updated_at, last_updated_by
	`

	insertTransactionQuery = `
		INSERT INTO transactions (` + selectTransactionFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
	`

	updateTransactionQuery = `
		UPDATE transactions
		SET state = $3, contact_id = $4, description = $5, currency_code = $6, exchange_rate = $7,
		    discount_percent = $8, tax_percent = $9, gross_total = $10, total = $11,
		    original_total = $12, balance = $13, issue_date = $14, payment_date = $15,
		    due_date = $16, cash = $17, approver_id = $18, approved_at = $19,
		    last_updated_at = $20, last_updated_by = $21, version = version + 1
		WHERE organisation_id = $1 AND transaction_id = $2 AND version = $22;
	`

	insertDetailQuery = `
		INSERT INTO transaction_details (detail_id, transaction_id, position, item_id, description, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	insertPayPlanQuery = `
		INSERT INTO pay_plans (pay_plan_id, transaction_id, position, amount, interests_penalties, due_date, paid,
		                       created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transactions, their lines and pay plans.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row, m *models.Transaction) error {
	return row.Scan(
		&m.TransactionID,
		&m.OrganisationID,
		&m.Kind,
		&m.RefNumber,
		&m.RefYear,
		&m.RefSequence,
		&m.State,
		&m.ContactID,
		&m.Description,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.DiscountPercent,
		&m.TaxPercent,
		&m.GrossTotal,
		&m.Total,
		&m.OriginalTotal,
		&m.Balance,
		&m.IssueDate,
		&m.PaymentDate,
		&m.DueDate,
		&m.Cash,
		&m.ApproverID,
		&m.ApprovedAt,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// queueChildren adds the inserts for the lines and pay plan of txn to batch.
func queueChildren(batch *pgx.Batch, txn domain.Transaction) {
	for _, d := range mapping.ToModelTransactionDetails(txn) {
		batch.Queue(insertDetailQuery,
			d.DetailID,
			d.TransactionID,
			d.Position,
			d.ItemID,
			d.Description,
			d.Quantity,
			d.Price,
		)
	}
	for i, p := range txn.PayPlans {
		m := mapping.ToModelPayPlan(p)
		batch.Queue(insertPayPlanQuery,
			m.PayPlanID,
			txn.TransactionID,
			i,
			m.Amount,
			m.InterestsPenalties,
			m.DueDate,
			m.Paid,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveTransaction inserts the transaction row, its lines and its pay plan in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	return r.WithinTx(ctx, func(ctx context.Context) error {
		db := r.db(ctx)
		_, err := db.Exec(ctx, insertTransactionQuery,
			m.TransactionID,
			m.OrganisationID,
			m.Kind,
			m.RefNumber,
			m.RefYear,
			m.RefSequence,
			m.State,
			m.ContactID,
			m.Description,
			m.CurrencyCode,
			m.ExchangeRate,
			m.DiscountPercent,
			m.TaxPercent,
			m.GrossTotal,
			m.Total,
			m.OriginalTotal,
			m.Balance,
			m.IssueDate,
			m.PaymentDate,
			m.DueDate,
			m.Cash,
			m.ApproverID,
			m.ApprovedAt,
			m.Version,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return writeError(err, "transaction "+m.TransactionID)
		}

		batch := &pgx.Batch{}
		queueChildren(batch, txn)
		if batch.Len() == 0 {
			return nil
		}
		br := db.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return writeError(err, "lines of transaction "+m.TransactionID)
		}
		return nil
	})
}

// FindTransactionByID retrieves a transaction with its lines and pay plan.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, organisationID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + selectTransactionFields + ` FROM transactions WHERE organisation_id = $1 AND transaction_id = $2;`

	var m models.Transaction
	if err := scanTransaction(r.db(ctx).QueryRow(ctx, query, organisationID, transactionID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txns, err := r.attachChildren(ctx, []models.Transaction{m})
	if err != nil {
		return nil, err
	}
	return &txns[0], nil
}

// FindTransactionsByIDsForUpdate locks the rows in id order so that concurrent
// units touching the same pair always queue in the same order.
func (r *PgxTransactionRepository) FindTransactionsByIDsForUpdate(ctx context.Context, organisationID string, transactionIDs []string) (map[string]domain.Transaction, error) {
	tx, ok := txFrom(ctx)
	if !ok {
		return nil, fmt.Errorf("locking transactions outside a unit of work: %w", apperrors.ErrInternal)
	}
	if len(transactionIDs) == 0 {
		return map[string]domain.Transaction{}, nil
	}

	query := `
		SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE organisation_id = $1 AND transaction_id = ANY($2)
		ORDER BY transaction_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, organisationID, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock transactions", err)
	}
	locked, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}

	txns, err := r.attachChildren(ctx, locked)
	if err != nil {
		return nil, err
	}
	result := make(map[string]domain.Transaction, len(txns))
	for _, t := range txns {
		result[t.TransactionID] = t
	}
	for _, id := range transactionIDs {
		if _, ok := result[id]; !ok {
			return nil, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
		}
	}
	return result, nil
}

// UpdateTransaction overwrites the row guarded by its version and rewrites the lines and pay plan.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn *domain.Transaction) error {
	m := mapping.ToModelTransaction(*txn)
	err := r.WithinTx(ctx, func(ctx context.Context) error {
		db := r.db(ctx)
		tag, err := db.Exec(ctx, updateTransactionQuery,
			m.OrganisationID,
			m.TransactionID,
			m.State,
			m.ContactID,
			m.Description,
			m.CurrencyCode,
			m.ExchangeRate,
			m.DiscountPercent,
			m.TaxPercent,
			m.GrossTotal,
			m.Total,
			m.OriginalTotal,
			m.Balance,
			m.IssueDate,
			m.PaymentDate,
			m.DueDate,
			m.Cash,
			m.ApproverID,
			m.ApprovedAt,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
			m.Version,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			existsQuery := `SELECT EXISTS (SELECT 1 FROM transactions WHERE organisation_id = $1 AND transaction_id = $2);`
			if err := db.QueryRow(ctx, existsQuery, m.OrganisationID, m.TransactionID).Scan(&exists); err != nil {
				return apperrors.NewAppError(500, "failed to check transaction "+m.TransactionID, err)
			}
			if !exists {
				return fmt.Errorf("transaction %s: %w", m.TransactionID, apperrors.ErrNotFound)
			}
			return fmt.Errorf("transaction %s is no longer at version %d: %w", m.TransactionID, m.Version, apperrors.ErrConflict)
		}

		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM transaction_details WHERE transaction_id = $1;`, m.TransactionID)
		batch.Queue(`DELETE FROM pay_plans WHERE transaction_id = $1;`, m.TransactionID)
		queueChildren(batch, *txn)
		br := db.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return writeError(err, "lines of transaction "+m.TransactionID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	txn.Version++
	return nil
}

// DeleteTransaction removes the row; lines and pay plan go with it through ON DELETE CASCADE.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, organisationID, transactionID string) error {
	query := `DELETE FROM transactions WHERE organisation_id = $1 AND transaction_id = $2;`
	tag, err := r.db(ctx).Exec(ctx, query, organisationID, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

// statusClause returns the SQL condition for a status filter. today is bound
// to the placeholder $n when the filter needs it.
func statusClause(f domain.StatusFilter, n int) (string, bool) {
	switch f {
	case domain.FilterDraft:
		return `state = 'DRAFT'`, false
	case domain.FilterApproved:
		return `state = 'APPROVED'`, false
	case domain.FilterPaid:
		return `state = 'PAID'`, false
	case domain.FilterDue:
		return `state = 'APPROVED' AND payment_date < $` + strconv.Itoa(n), true
	case domain.FilterAwaitingPayment:
		return `state = 'APPROVED' AND cash = FALSE`, false
	default:
		return "", false
	}
}

// ListTransactions pages newest issue date first using a keyset token.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	filterClause := `WHERE organisation_id = $1`
	args := []interface{}{filter.OrganisationID}

	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		filterClause += ` AND kind = $` + strconv.Itoa(len(args))
	}
	if clause, needsToday := statusClause(filter.Status, len(args)+1); clause != "" {
		if needsToday {
			args = append(args, domain.DateOf(filter.Today))
		}
		filterClause += ` AND ` + clause
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, err)
		}
		// Tuple comparison is concise and efficient in Postgres
		filterClause += ` AND (issue_date, created_at, transaction_id) < ($` + strconv.Itoa(len(args)+1) +
			`, $` + strconv.Itoa(len(args)+2) + `, $` + strconv.Itoa(len(args)+3) + `)`
		args = append(args, cursor.SortDate, cursor.CreatedAt, cursor.ID)
	}

	query := `SELECT ` + selectTransactionFields + ` FROM transactions ` + filterClause +
		` ORDER BY issue_date DESC, created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for organisation "+filter.OrganisationID, err)
	}
	modelTxns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(modelTxns) > limit {
		last := modelTxns[limit-1]
		newToken := pagination.EncodeToken(last.IssueDate, last.CreatedAt, last.TransactionID)
		nextTokenVal = &newToken
		modelTxns = modelTxns[:limit]
	}

	txns, err := r.attachChildren(ctx, modelTxns)
	if err != nil {
		return nil, nil, err
	}
	return txns, nextTokenVal, nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	var out []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := scanTransaction(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return out, nil
}

// attachChildren loads the lines and pay plans of every transaction in two queries.
func (r *PgxTransactionRepository) attachChildren(ctx context.Context, txns []models.Transaction) ([]domain.Transaction, error) {
	if len(txns) == 0 {
		return []domain.Transaction{}, nil
	}
	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	db := r.db(ctx)

	detailRows, err := db.Query(ctx, `
		SELECT detail_id, transaction_id, position, item_id, description, quantity, price
		FROM transaction_details
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position;
	`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction details", err)
	}
	details := make(map[string][]models.TransactionDetail, len(ids))
	for detailRows.Next() {
		var d models.TransactionDetail
		if err := detailRows.Scan(&d.DetailID, &d.TransactionID, &d.Position, &d.ItemID, &d.Description, &d.Quantity, &d.Price); err != nil {
			detailRows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan transaction detail row", err)
		}
		details[d.TransactionID] = append(details[d.TransactionID], d)
	}
	detailRows.Close()
	if err := detailRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction detail rows", err)
	}

	planRows, err := db.Query(ctx, `
		SELECT pay_plan_id, transaction_id, position, amount, interests_penalties, due_date, paid,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM pay_plans
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, due_date, position;
	`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pay plans", err)
	}
	plans := make(map[string][]models.PayPlan, len(ids))
	for planRows.Next() {
		var p models.PayPlan
		if err := planRows.Scan(
			&p.PayPlanID,
			&p.TransactionID,
			&p.Position,
			&p.Amount,
			&p.InterestsPenalties,
			&p.DueDate,
			&p.Paid,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		); err != nil {
			planRows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan pay plan row", err)
		}
		plans[p.TransactionID] = append(plans[p.TransactionID], p)
	}
	planRows.Close()
	if err := planRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pay plan rows", err)
	}

	out := make([]domain.Transaction, len(txns))
	for i, m := range txns {
		out[i] = mapping.ToDomainTransaction(m, details[m.TransactionID], plans[m.TransactionID])
	}
	return out, nil
}
