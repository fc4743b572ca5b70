package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type quickTransactionService struct {
	BaseService
	uow             portsrepo.UnitOfWork
	transactionRepo portsrepo.TransactionWriter
	refNumbers      portssvc.RefNumberSvc
	ledger          portssvc.LedgerPosterSvc
}

// NewQuickTransactionService creates a new QuickTransactionSvc.
func NewQuickTransactionService(repos portsrepo.RepositoryProvider, refNumbers portssvc.RefNumberSvc, ledger portssvc.LedgerPosterSvc, opts ...Option) portssvc.QuickTransactionSvc {
	return &quickTransactionService{
		BaseService:     newBaseService(opts),
		uow:             repos.UnitOfWork,
		transactionRepo: repos.TransactionRepo,
		refNumbers:      refNumbers,
		ledger:          ledger,
	}
}

var _ portssvc.QuickTransactionSvc = (*quickTransactionService)(nil)

func (s *quickTransactionService) CreateQuickTransaction(ctx context.Context, actor domain.Actor, req dto.CreateQuickTransactionRequest) (*domain.Transaction, *domain.LedgerEntry, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, nil, err
	}
	var fe apperrors.FieldErrors
	kind, err := domain.ParseKind(string(req.Kind))
	if err != nil {
		fe.Add("transaction", "kind", err)
	}
	amount := domain.RoundMoney(req.Amount)
	if !amount.IsPositive() {
		fe.Add("transaction", "amount", ErrLedgerZeroOrInvalidAmount)
	} else if !domain.HasMoneyScale(req.Amount) {
		fe.Add("transaction", "amount", domain.ErrTooManyDecimals)
	}
	if err := fe.ErrOrNil(); err != nil {
		s.LogWarn(ctx, err, "Quick transaction rejected")
		return nil, nil, err
	}
	op, err := kind.PrincipalOperation()
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	issueDate := now
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}
	currency := req.CurrencyCode
	if currency == "" {
		currency = s.DefaultCurrency
	}

	txn := domain.NewTransaction(kind, actor, issueDate, currency, now)
	txn.TransactionID = uuid.NewString()
	txn.ContactID = req.ContactID
	txn.Description = req.Description
	for _, d := range req.Details {
		txn.Details = append(txn.Details, newDetail(d))
	}
	if len(txn.Details) == 0 {
		txn.Details = []domain.TransactionDetail{{
			DetailID:    uuid.NewString(),
			Description: req.Description,
			Quantity:    decimal.NewFromInt(1),
			Price:       amount,
		}}
	}
	// The amount is authoritative; lines are kept for reference only.
	txn.GrossTotal = amount
	txn.Total = amount
	txn.OriginalTotal = amount
	txn.Balance = decimal.Zero
	txn.SettleState(actor, now)
	if err := txn.Validate(); err != nil {
		fe.Add("transaction", "attributes", err)
		s.LogWarn(ctx, fe, "Quick transaction rejected")
		return nil, nil, fe
	}

	var entry *domain.LedgerEntry
	err = withRefNumberRetry(ctx, &s.BaseService, s.MaxRefNumberAttempts, func(ctx context.Context) error {
		return s.uow.WithinTx(ctx, func(ctx context.Context) error {
			ref, err := s.refNumbers.NextReference(ctx, actor, kind)
			if err != nil {
				return err
			}
			txn.RefNumber = ref
			if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
				return fmt.Errorf("%w: saving quick transaction: %w", apperrors.ErrAtomicCommitFailed, err)
			}
			reference := req.Reference
			if reference == "" {
				reference = quickReference(kind, ref)
			}
			posted, err := s.ledger.Post(ctx, actor, domain.PostingRequest{
				TransactionID: txn.TransactionID,
				AccountToID:   req.AccountToID,
				Amount:        amount,
				Operation:     op,
				Conciliation:  req.Conciliation,
				Reference:     reference,
			})
			if err != nil {
				return fmt.Errorf("%w: %w", apperrors.ErrAtomicCommitFailed, err)
			}
			entry = posted
			return nil
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create quick transaction", slog.String("kind", string(kind)))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Quick transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("ref_number", txn.RefNumber),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)))
	return txn, entry, nil
}

// quickReference builds the default ledger text, e.g. "Quick loan receive LR-26-0001".
func quickReference(kind domain.TransactionKind, ref string) string {
	label := strings.ReplaceAll(strings.ToLower(string(kind)), "_", " ")
	return "Quick " + label + " " + ref
}
