package services

import (
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	opts = append([]Option{
		WithMaxRefNumberAttempts(cfg.RefNumberMaxAttempts),
		WithDefaultCurrency(cfg.DefaultCurrency),
	}, opts...)

	container := &portssvc.ServiceContainer{}

	// Reference numbers and the ledger are shared by the writing services.
	container.RefNumber = NewRefNumberService(repos.RefNumberRepo, opts...)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.TransactionRepo, opts...)

	container.Transaction = NewTransactionService(repos, container.RefNumber, opts...)
	container.Payment = NewPaymentService(repos, container.Ledger, opts...)
	container.QuickTransaction = NewQuickTransactionService(repos, container.RefNumber, container.Ledger, opts...)

	return container
}
