package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/google/uuid"
)

// ledgerService is the posting engine. It only ever appends entries.
type ledgerService struct {
	BaseService
	ledgerRepo      portsrepo.LedgerRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, transactionRepo portsrepo.TransactionReader, opts ...Option) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService:     newBaseService(opts),
		ledgerRepo:      ledgerRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) Post(ctx context.Context, actor domain.Actor, req domain.PostingRequest) (*domain.LedgerEntry, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	if !req.Operation.Valid() {
		return nil, fmt.Errorf("%w: unknown operation %q", ErrLedgerPostFailed, req.Operation)
	}
	if req.TransactionID == "" {
		return nil, fmt.Errorf("%w: missing account reference", ErrLedgerPostFailed)
	}

	amount := domain.RoundMoney(req.Amount)
	if amount.IsZero() && req.SkipZero && !req.Amount.IsNegative() {
		return nil, nil
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrLedgerZeroOrInvalidAmount, req.Amount.String())
	}

	now := s.now()
	entry := domain.LedgerEntry{
		EntryID:        uuid.NewString(),
		OrganisationID: actor.OrganisationID,
		TransactionID:  req.TransactionID,
		AccountToID:    req.AccountToID,
		PaymentID:      req.PaymentID,
		Amount:         req.Operation.Signed(amount),
		Operation:      req.Operation,
		Conciliation:   req.Conciliation,
		Reference:      req.Reference,
		EntryDate:      domain.DateOf(now),
		CreatedAt:      now,
		CreatedBy:      actor.UserID,
	}
	if err := s.ledgerRepo.SaveLedgerEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("%w: %w", ErrLedgerPostFailed, err)
	}

	s.LogDebug(ctx, "Posted ledger entry",
		slog.String("entry_id", entry.EntryID),
		slog.String("transaction_id", entry.TransactionID),
		slog.String("operation", string(entry.Operation)),
		slog.String("amount", entry.Amount.StringFixed(domain.MoneyScale)))
	return &entry, nil
}

func (s *ledgerService) ListLedgerEntries(ctx context.Context, actor domain.Actor, transactionID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return nil, err
	}
	if _, err := s.transactionRepo.FindTransactionByID(ctx, actor.OrganisationID, transactionID); err != nil {
		return nil, err
	}
	entries, nextToken, err := s.ledgerRepo.ListLedgerEntriesByTransaction(ctx, actor.OrganisationID, transactionID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return &dto.ListLedgerResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
