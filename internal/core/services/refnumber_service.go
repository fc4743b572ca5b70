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
)

type refNumberService struct {
	BaseService
	repo portsrepo.RefNumberRepository
}

// NewRefNumberService creates the reference number allocator.
func NewRefNumberService(repo portsrepo.RefNumberRepository, opts ...Option) portssvc.RefNumberSvc {
	return &refNumberService{
		BaseService: newBaseService(opts),
		repo:        repo,
	}
}

var _ portssvc.RefNumberSvc = (*refNumberService)(nil)

func (s *refNumberService) NextReference(ctx context.Context, actor domain.Actor, kind domain.TransactionKind) (string, error) {
	if err := s.requireActor(ctx, actor); err != nil {
		return "", err
	}
	latest, err := s.repo.LockLatestRefNumber(ctx, actor.OrganisationID, kind)
	if err != nil {
		return "", fmt.Errorf("failed to read latest reference number: %w", err)
	}
	ref, err := domain.NextRefNumber(kind, latest, s.today())
	if err != nil {
		return "", err
	}
	s.LogDebug(ctx, "Allocated reference number", slog.String("kind", string(kind)), slog.String("ref_number", ref.String()))
	return ref.String(), nil
}

// withRefNumberRetry runs an allocating unit of work again when it failed on
// the reference number uniqueness guard. After maxAttempts collisions it
// gives up with ErrDuplicateReferenceNumber.
func withRefNumberRetry(ctx context.Context, base *BaseService, maxAttempts int, unit func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = unit(ctx)
		if err == nil || !errors.Is(err, apperrors.ErrDuplicate) {
			return err
		}
		base.LogWarn(ctx, err, "Reference number collided, retrying", slog.Int("attempt", attempt))
	}
	base.LogError(ctx, err, "Reference number allocation kept colliding", slog.Int("attempts", maxAttempts))
	return fmt.Errorf("%w: %w", apperrors.ErrDuplicateReferenceNumber, err)
}
