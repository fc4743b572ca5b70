package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService owns the lifecycle of transactions before money moves:
// creation, edits, approval, installments and deletion.
type transactionService struct {
	BaseService
	uow             portsrepo.UnitOfWork
	transactionRepo portsrepo.TransactionRepositoryFacade
	ledgerRepo      portsrepo.LedgerReader
	paymentRepo     portsrepo.PaymentReader
	refNumbers      portssvc.RefNumberSvc
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repos portsrepo.RepositoryProvider, refNumbers portssvc.RefNumberSvc, opts ...Option) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(opts),
		uow:             repos.UnitOfWork,
		transactionRepo: repos.TransactionRepo,
		ledgerRepo:      repos.LedgerRepo,
		paymentRepo:     repos.PaymentRepo,
		refNumbers:      refNumbers,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	kind, err := domain.ParseKind(string(req.Kind))
	if err != nil {
		var fe apperrors.FieldErrors
		fe.Add("transaction", "kind", err)
		return nil, fe
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
	if req.ExchangeRate != nil {
		txn.ExchangeRate = *req.ExchangeRate
	}
	txn.DiscountPercent = req.DiscountPercent
	txn.TaxPercent = req.TaxPercent
	for _, d := range req.Details {
		txn.Details = append(txn.Details, newDetail(d))
	}
	for _, p := range req.PayPlans {
		txn.AddPayPlan(newPayPlan(p, actor, now))
	}

	if err := recalculate(txn); err != nil {
		s.LogWarn(ctx, err, "Rejected transaction", slog.String("kind", string(kind)))
		return nil, err
	}

	err = withRefNumberRetry(ctx, &s.BaseService, s.MaxRefNumberAttempts, func(ctx context.Context) error {
		return s.uow.WithinTx(ctx, func(ctx context.Context) error {
			ref, err := s.refNumbers.NextReference(ctx, actor, kind)
			if err != nil {
				return err
			}
			txn.RefNumber = ref
			if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
				return fmt.Errorf("%w: saving transaction: %w", apperrors.ErrAtomicCommitFailed, err)
			}
			return nil
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.String("kind", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("ref_number", txn.RefNumber),
		slog.String("total", txn.Total.StringFixed(domain.MoneyScale)))
	return txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	txn, err := s.transactionRepo.FindTransactionByID(ctx, actor.OrganisationID, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, actor domain.Actor, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	status, err := domain.ParseStatusFilter(params.State)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	var kind domain.TransactionKind
	if params.Kind != "" {
		if kind, err = domain.ParseKind(params.Kind); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
	}

	today := s.today()
	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionListFilter{
		OrganisationID: actor.OrganisationID,
		Kind:           kind,
		Status:         status,
		Today:          today,
		Limit:          params.Limit,
		NextToken:      params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("state", string(status)))
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns, today),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) NextPayment(ctx context.Context, actor domain.Actor, transactionID string) (*dto.NextPaymentResponse, error) {
	txn, err := s.GetTransaction(ctx, actor, transactionID)
	if err != nil {
		return nil, err
	}
	amount, interests := txn.SuggestedPayment()
	res := &dto.NextPaymentResponse{
		TransactionID:      txn.TransactionID,
		Amount:             amount,
		InterestsPenalties: interests,
		Balance:            txn.Balance,
	}
	if next := txn.NextDue(); next != nil {
		due := next.DueDate
		res.PayPlanID = next.PayPlanID
		res.DueDate = &due
	}
	return res, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}

	var updated *domain.Transaction
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		txn, err := s.lockOne(ctx, actor, transactionID)
		if err != nil {
			return err
		}
		if req.Version != 0 && req.Version != txn.Version {
			return fmt.Errorf("%w: transaction %s is at version %d", apperrors.ErrConflict, transactionID, txn.Version)
		}
		moved, err := s.ledgerRepo.HasLedgerEntries(ctx, actor.OrganisationID, transactionID)
		if err != nil {
			return err
		}
		if moved {
			return ErrTransactionLocked
		}

		if err := applyEdits(txn, req); err != nil {
			return err
		}
		if err := recalculate(txn); err != nil {
			return err
		}
		txn.LastUpdatedAt = s.now()
		txn.LastUpdatedBy = actor.UserID

		if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("%w: updating transaction: %w", apperrors.ErrAtomicCommitFailed, err)
		}
		updated = txn
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, err, "Transaction update rejected", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", updated.TransactionID),
		slog.String("balance", updated.Balance.StringFixed(domain.MoneyScale)),
		slog.String("state", string(updated.State)))
	return updated, nil
}

func (s *transactionService) ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}

	var result *domain.Transaction
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		txn, err := s.lockOne(ctx, actor, transactionID)
		if err != nil {
			return err
		}
		result = txn
		now := s.now()
		if !txn.Approve(actor, now) {
			s.LogDebug(ctx, "Approve ignored", slog.String("transaction_id", transactionID), slog.String("state", string(txn.State)))
			return nil
		}
		txn.LastUpdatedAt = now
		txn.LastUpdatedBy = actor.UserID
		if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("%w: approving transaction: %w", apperrors.ErrAtomicCommitFailed, err)
		}
		s.LogInfo(ctx, "Transaction approved", slog.String("transaction_id", transactionID), slog.String("ref_number", txn.RefNumber))
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to approve transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return result, nil
}

func (s *transactionService) AddPayPlan(ctx context.Context, actor domain.Actor, transactionID string, req dto.PayPlanRequest) (*domain.Transaction, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() || req.InterestsPenalties.IsNegative() {
		var fe apperrors.FieldErrors
		fe.Add("payPlan", "amount", domain.ErrNegativeAmount)
		return nil, fe
	}

	var result *domain.Transaction
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		txn, err := s.lockOne(ctx, actor, transactionID)
		if err != nil {
			return err
		}
		if txn.State == domain.StatePaid {
			return ErrTransactionAlreadyPaid
		}

		now := s.now()
		txn.AddPayPlan(newPayPlan(req, actor, now))
		if txn.PayPlansBalance().IsNegative() {
			var fe apperrors.FieldErrors
			fe.Add("transaction", "payPlans", fmt.Errorf("scheduled %s exceeds the balance %s",
				txn.PayPlansTotal().StringFixed(domain.MoneyScale), txn.Balance.StringFixed(domain.MoneyScale)))
			return fe
		}
		txn.UpdatePaymentDate()
		txn.LastUpdatedAt = now
		txn.LastUpdatedBy = actor.UserID

		if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("%w: adding pay plan: %w", apperrors.ErrAtomicCommitFailed, err)
		}
		result = txn
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, err, "Pay plan rejected", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Pay plan entry added",
		slog.String("transaction_id", transactionID),
		slog.String("payment_date", result.PaymentDate.Format("2006-01-02")))
	return result, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	if err := s.requireActor(ctx, actor); err != nil {
		return err
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.lockOne(ctx, actor, transactionID); err != nil {
			return err
		}
		payments, err := s.paymentRepo.ListPaymentsByTransaction(ctx, actor.OrganisationID, transactionID)
		if err != nil {
			return err
		}
		moved, err := s.ledgerRepo.HasLedgerEntries(ctx, actor.OrganisationID, transactionID)
		if err != nil {
			return err
		}
		if len(payments) > 0 || moved {
			return ErrTransactionHasPayments
		}
		if err := s.transactionRepo.DeleteTransaction(ctx, actor.OrganisationID, transactionID); err != nil {
			return fmt.Errorf("%w: deleting transaction: %w", apperrors.ErrAtomicCommitFailed, err)
		}
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, err, "Transaction delete rejected", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// lockOne loads and locks a single transaction inside the current unit.
func (s *transactionService) lockOne(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	locked, err := s.transactionRepo.FindTransactionsByIDsForUpdate(ctx, actor.OrganisationID, []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn, ok := locked[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func newDetail(d dto.TransactionDetailRequest) domain.TransactionDetail {
	id := d.DetailID
	if id == "" {
		id = uuid.NewString()
	}
	return domain.TransactionDetail{
		DetailID:    id,
		ItemID:      d.ItemID,
		Description: d.Description,
		Quantity:    d.Quantity,
		Price:       d.Price,
	}
}

func newPayPlan(p dto.PayPlanRequest, actor domain.Actor, now time.Time) domain.PayPlan {
	return domain.PayPlan{
		PayPlanID:          uuid.NewString(),
		Amount:             domain.RoundMoney(p.Amount),
		InterestsPenalties: domain.RoundMoney(p.InterestsPenalties),
		DueDate:            p.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
}

// applyEdits copies the requested changes onto txn. Lines named in
// DeletedDetailIDs are flagged and dropped by the next recalculation.
func applyEdits(txn *domain.Transaction, req dto.UpdateTransactionRequest) error {
	if req.ContactID != nil {
		txn.ContactID = *req.ContactID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.ExchangeRate != nil {
		txn.ExchangeRate = *req.ExchangeRate
	}
	if req.DiscountPercent != nil {
		txn.DiscountPercent = *req.DiscountPercent
	}
	if req.TaxPercent != nil {
		txn.TaxPercent = *req.TaxPercent
	}
	if req.IssueDate != nil {
		txn.IssueDate = domain.DateOf(*req.IssueDate)
	}

	index := make(map[string]int, len(txn.Details))
	for i, d := range txn.Details {
		index[d.DetailID] = i
	}
	var fe apperrors.FieldErrors
	for _, d := range req.Details {
		if d.DetailID == "" {
			txn.Details = append(txn.Details, newDetail(d))
			continue
		}
		i, ok := index[d.DetailID]
		if !ok {
			fe.Add("detail", d.DetailID, apperrors.ErrNotFound)
			continue
		}
		txn.Details[i] = newDetail(d)
	}
	for _, id := range req.DeletedDetailIDs {
		i, ok := index[id]
		if !ok {
			fe.Add("detail", id, apperrors.ErrNotFound)
			continue
		}
		txn.Details[i].Deleted = true
	}
	return fe.ErrOrNil()
}

// recalculate validates txn and rebuilds its totals, balance, state, payment
// date and cash flag in that order.
func recalculate(txn *domain.Transaction) error {
	var fe apperrors.FieldErrors
	if err := txn.Validate(); err != nil {
		fe.Add("transaction", "attributes", err)
		return fe
	}
	lines := 0
	for _, d := range txn.Details {
		if !d.Deleted {
			lines++
		}
	}
	if lines == 0 {
		fe.Add("transaction", "details", fmt.Errorf("at least one detail line is required"))
		return fe
	}
	if err := txn.Recalculate(); err != nil {
		fe.Add("transaction", "exchangeRate", err)
		return fe
	}
	for _, p := range txn.PayPlans {
		if !p.Amount.IsPositive() {
			fe.Add("payPlan", p.PayPlanID, fmt.Errorf("installment amount must be positive"))
		}
	}
	if txn.PayPlansBalance().LessThan(decimal.Zero) {
		fe.Add("transaction", "payPlans", fmt.Errorf("scheduled %s exceeds the balance %s",
			txn.PayPlansTotal().StringFixed(domain.MoneyScale), txn.Balance.StringFixed(domain.MoneyScale)))
	}
	if err := fe.ErrOrNil(); err != nil {
		return err
	}
	txn.UpdatePaymentDate()
	txn.UpdateCash()
	return nil
}
