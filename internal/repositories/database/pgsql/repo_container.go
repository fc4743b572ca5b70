package pgsql

import (
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	refNumberRepo := newPgxRefNumberRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UnitOfWork:      newUnitOfWork(dbPool),
		TransactionRepo: transactionRepo,
		LedgerRepo:      ledgerRepo,
		PaymentRepo:     paymentRepo,
		RefNumberRepo:   refNumberRepo,
	}
}
