package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock RefNumberRepository ---
type MockRefNumberRepository struct {
	mock.Mock
}

var _ portsrepo.RefNumberRepository = (*MockRefNumberRepository)(nil)

func (m *MockRefNumberRepository) LockLatestRefNumber(ctx context.Context, organisationID string, kind domain.TransactionKind) (string, error) {
	args := m.Called(ctx, organisationID, kind)
	return args.String(0), args.Error(1)
}

func TestNextReference(t *testing.T) {
	actor := domain.Actor{UserID: "user-1", OrganisationID: "org-1"}
	repoErr := errors.New("connection refused")

	tests := []struct {
		name    string
		kind    domain.TransactionKind
		latest  string
		repoErr error
		want    string
		wantErr error
	}{
		{name: "first of the year", kind: domain.KindExpense, want: "E-26-0001"},
		{name: "continues sequence", kind: domain.KindIncome, latest: "I-26-0041", want: "I-26-0042"},
		{name: "restarts on new year", kind: domain.KindLoanReceive, latest: "LR-25-0300", want: "LR-26-0001"},
		{name: "repository failure", kind: domain.KindBuy, repoErr: repoErr, wantErr: repoErr},
		{name: "corrupt latest", kind: domain.KindBuy, latest: "garbage", wantErr: domain.ErrInvalidRefNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockRefNumberRepository)
			repo.On("LockLatestRefNumber", ctx, "org-1", tt.kind).Return(tt.latest, tt.repoErr).Once()
			svc := services.NewRefNumberService(repo, services.WithClock(domain.FixedClock{T: testNow}))

			ref, err := svc.NextReference(ctx, actor, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, ref)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestNextReference_RequiresActor(t *testing.T) {
	repo := new(MockRefNumberRepository)
	svc := services.NewRefNumberService(repo)

	_, err := svc.NextReference(context.Background(), domain.Actor{UserID: "user-1"}, domain.KindExpense)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	repo.AssertNotCalled(t, "LockLatestRefNumber", mock.Anything, mock.Anything, mock.Anything)
}
