package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentService applies money to transactions. Every payment updates the
// target, the counter account when it takes part, and the ledger in a single
// unit of work.
type paymentService struct {
	BaseService
	uow             portsrepo.UnitOfWork
	transactionRepo portsrepo.TransactionRepositoryFacade
	paymentRepo     portsrepo.PaymentRepositoryFacade
	ledger          portssvc.LedgerPosterSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(repos portsrepo.RepositoryProvider, ledger portssvc.LedgerPosterSvc, opts ...Option) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService:     newBaseService(opts),
		uow:             repos.UnitOfWork,
		transactionRepo: repos.TransactionRepo,
		paymentRepo:     repos.PaymentRepo,
		ledger:          ledger,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ApplyPayment(ctx context.Context, actor domain.Actor, transactionID string, req dto.ApplyPaymentRequest) (*domain.Payment, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	if err := validatePaymentScale(req); err != nil {
		s.LogWarn(ctx, err, "Payment rejected", slog.String("transaction_id", transactionID))
		return nil, err
	}
	amount := domain.RoundMoney(req.Amount)
	interest := domain.RoundMoney(req.InterestsPenalties)
	logAttrs := []any{
		slog.String("transaction_id", transactionID),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)),
		slog.String("interest", interest.StringFixed(domain.MoneyScale)),
	}

	// Reject what is already known to fail before taking any lock.
	target, err := s.transactionRepo.FindTransactionByID(ctx, actor.OrganisationID, transactionID)
	if err != nil {
		return nil, err
	}
	counter, err := s.findCounter(ctx, actor, req.AccountToID)
	if err != nil {
		return nil, err
	}
	if err := validatePayment(target, counter, req.CurrencyCode, amount, interest); err != nil {
		s.LogWarn(ctx, err, "Payment rejected", logAttrs...)
		return nil, err
	}

	var payment *domain.Payment
	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		ids := []string{transactionID}
		if counter != nil {
			ids = append(ids, counter.TransactionID)
		}
		locked, err := s.transactionRepo.FindTransactionsByIDsForUpdate(ctx, actor.OrganisationID, ids)
		if err != nil {
			return err
		}
		t := locked[transactionID]
		var c *domain.Transaction
		if counter != nil {
			lc := locked[counter.TransactionID]
			c = &lc
		}
		// Balances may have moved since the pre-check.
		if err := validatePayment(&t, c, req.CurrencyCode, amount, interest); err != nil {
			return err
		}

		now := s.now()
		if err := t.ApplyPayment(amount); err != nil {
			return err
		}
		paidPlans := t.SettlePayPlans()
		t.UpdatePaymentDate()
		t.SettleState(actor, now)
		t.LastUpdatedAt = now
		t.LastUpdatedBy = actor.UserID
		if err := s.transactionRepo.UpdateTransaction(ctx, &t); err != nil {
			return fmt.Errorf("%w: updating target: %w", apperrors.ErrAtomicCommitFailed, err)
		}

		if counterParticipates(c) {
			c.Balance = domain.RoundMoney(c.Balance.Sub(amount.Add(interest)))
			c.SettleState(actor, now)
			c.LastUpdatedAt = now
			c.LastUpdatedBy = actor.UserID
			if err := s.transactionRepo.UpdateTransaction(ctx, c); err != nil {
				return fmt.Errorf("%w: updating counter account: %w", apperrors.ErrAtomicCommitFailed, err)
			}
		}

		currency := req.CurrencyCode
		if currency == "" {
			currency = t.CurrencyCode
		}
		paymentDate := now
		if req.PaymentDate != nil {
			paymentDate = *req.PaymentDate
		}
		reference := req.Reference
		if reference == "" {
			reference = defaultPaymentReference(&t)
		}
		p := domain.Payment{
			PaymentID:          uuid.NewString(),
			OrganisationID:     actor.OrganisationID,
			TransactionID:      t.TransactionID,
			Amount:             amount,
			InterestsPenalties: interest,
			CurrencyCode:       currency,
			AccountToID:        req.AccountToID,
			Conciliation:       req.Conciliation,
			Reference:          reference,
			PaymentDate:        domain.DateOf(paymentDate),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if err := s.paymentRepo.SavePayment(ctx, p); err != nil {
			return fmt.Errorf("%w: saving payment: %w", apperrors.ErrAtomicCommitFailed, err)
		}

		principalOp, err := t.Kind.PrincipalOperation()
		if err != nil {
			return err
		}
		interestOp, err := t.Kind.InterestOperation()
		if err != nil {
			return err
		}
		postings := []domain.PostingRequest{
			{Amount: amount, Operation: principalOp},
			{Amount: interest, Operation: interestOp},
		}
		for _, pr := range postings {
			pr.TransactionID = t.TransactionID
			pr.AccountToID = req.AccountToID
			pr.PaymentID = p.PaymentID
			pr.Conciliation = req.Conciliation
			pr.Reference = reference
			pr.SkipZero = true
			if _, err := s.ledger.Post(ctx, actor, pr); err != nil {
				return fmt.Errorf("%w: %w", apperrors.ErrAtomicCommitFailed, err)
			}
		}

		if len(paidPlans) > 0 {
			s.LogDebug(ctx, "Pay plan entries settled", slog.Any("pay_plan_ids", paidPlans))
		}
		payment = &p
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAtomicCommitFailed) {
			s.LogError(ctx, err, "Payment rolled back", logAttrs...)
		} else {
			s.LogWarn(ctx, err, "Payment rejected", logAttrs...)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Payment applied", append(logAttrs, slog.String("payment_id", payment.PaymentID))...)
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, actor domain.Actor, transactionID string) ([]domain.Payment, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	if _, err := s.transactionRepo.FindTransactionByID(ctx, actor.OrganisationID, transactionID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByTransaction(ctx, actor.OrganisationID, transactionID)
}

// findCounter resolves the counter account reference. References that are
// not transactions of the organisation name an external account such as a
// bank and yield nil.
func (s *paymentService) findCounter(ctx context.Context, actor domain.Actor, accountToID string) (*domain.Transaction, error) {
	if accountToID == "" {
		return nil, nil
	}
	counter, err := s.transactionRepo.FindTransactionByID(ctx, actor.OrganisationID, accountToID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return counter, err
}

// counterParticipates reports whether the counter account is an outgoing
// obligation whose balance funds the payment.
func counterParticipates(c *domain.Transaction) bool {
	if c == nil {
		return false
	}
	incoming, err := c.Kind.IsIncoming()
	return err == nil && !incoming
}

// validatePayment collects every rule the payment breaks across the target
// and the counter account.
func validatePayment(target, counter *domain.Transaction, currency string, amount, interest decimal.Decimal) error {
	var fe apperrors.FieldErrors
	if amount.IsNegative() {
		fe.Add("payment", "amount", domain.ErrNegativeAmount)
	}
	if interest.IsNegative() {
		fe.Add("payment", "interestsPenalties", domain.ErrNegativeAmount)
	}
	if currency != "" && currency != target.CurrencyCode {
		fe.Add("payment", "currencyCode", ErrCurrencyMismatch)
	}
	if amount.GreaterThan(target.Balance) {
		fe.Add("transaction", "balance", fmt.Errorf("%w: amount %s, balance %s", domain.ErrInsufficientBalance,
			amount.StringFixed(domain.MoneyScale), target.Balance.StringFixed(domain.MoneyScale)))
	}

	if counter != nil {
		if counter.TransactionID == target.TransactionID {
			fe.Add("payment", "accountToID", ErrSameCounterAccount)
		} else if counterParticipates(counter) {
			if counter.Balance.LessThan(amount.Add(interest)) {
				fe.Add("accountTo", "balance", ErrCounterAccountInsufficientBalance)
			}
			if counter.State != domain.StateApproved {
				fe.Add("accountTo", "state", ErrCounterAccountNotApproved)
			}
		}
	}
	return fe.ErrOrNil()
}

// validatePaymentScale rejects amounts that would change when stored.
func validatePaymentScale(req dto.ApplyPaymentRequest) error {
	var fe apperrors.FieldErrors
	if !domain.HasMoneyScale(req.Amount) {
		fe.Add("payment", "amount", domain.ErrTooManyDecimals)
	}
	if !domain.HasMoneyScale(req.InterestsPenalties) {
		fe.Add("payment", "interestsPenalties", domain.ErrTooManyDecimals)
	}
	return fe.ErrOrNil()
}

func defaultPaymentReference(t *domain.Transaction) string {
	if t.Kind.PayType() == "collect" {
		return "Collection " + t.RefNumber
	}
	return "Payment " + t.RefNumber
}
