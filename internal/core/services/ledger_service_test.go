package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/core/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) HasLedgerEntries(ctx context.Context, organisationID, transactionID string) (bool, error) {
	args := m.Called(ctx, organisationID, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerEntriesByTransaction(ctx context.Context, organisationID, transactionID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, organisationID, transactionID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

// --- Mock TransactionReader ---
type MockTransactionReader struct {
	mock.Mock
}

var _ portsrepo.TransactionReader = (*MockTransactionReader)(nil)

func (m *MockTransactionReader) FindTransactionByID(ctx context.Context, organisationID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, organisationID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), nil, args.Error(2)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockTxnReader  *MockTransactionReader
	service        portssvc.LedgerSvcFacade
	actor          domain.Actor
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockTxnReader = new(MockTransactionReader)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockTxnReader, services.WithClock(domain.FixedClock{T: testNow}))
	suite.actor = domain.Actor{UserID: "user-1", OrganisationID: "org-1"}
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPost_SignsOutgoingAmounts() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("SaveLedgerEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Operation == domain.OpPayOut &&
			e.Amount.Equal(decimal.RequireFromString("-17.01")) &&
			e.TransactionID == "txn-1" &&
			e.OrganisationID == "org-1" &&
			e.CreatedBy == "user-1" &&
			e.EntryDate.Equal(domain.DateOf(testNow)) &&
			e.EntryID != ""
	})).Return(nil).Once()

	entry, err := suite.service.Post(ctx, suite.actor, domain.PostingRequest{
		TransactionID: "txn-1",
		Amount:        decimal.RequireFromString("17.005"),
		Operation:     domain.OpPayOut,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("-17.01", entry.Amount.StringFixed(2))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPost_ZeroAmount() {
	ctx := context.Background()

	entry, err := suite.service.Post(ctx, suite.actor, domain.PostingRequest{
		TransactionID: "txn-1",
		Amount:        decimal.Zero,
		Operation:     domain.OpPayIn,
		SkipZero:      true,
	})
	suite.NoError(err)
	suite.Nil(entry)

	_, err = suite.service.Post(ctx, suite.actor, domain.PostingRequest{
		TransactionID: "txn-1",
		Amount:        decimal.RequireFromString("0.004"),
		Operation:     domain.OpPayIn,
	})
	suite.ErrorIs(err, services.ErrLedgerZeroOrInvalidAmount)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPost_RejectsBadRequests() {
	ctx := context.Background()

	_, err := suite.service.Post(ctx, suite.actor, domain.PostingRequest{TransactionID: "txn-1", Amount: decimal.NewFromInt(-5), Operation: domain.OpPayIn, SkipZero: true})
	suite.ErrorIs(err, services.ErrLedgerZeroOrInvalidAmount)

	_, err = suite.service.Post(ctx, suite.actor, domain.PostingRequest{TransactionID: "txn-1", Amount: decimal.NewFromInt(5), Operation: "REFUND"})
	suite.ErrorIs(err, services.ErrLedgerPostFailed)

	_, err = suite.service.Post(ctx, suite.actor, domain.PostingRequest{Amount: decimal.NewFromInt(5), Operation: domain.OpPayIn})
	suite.ErrorIs(err, services.ErrLedgerPostFailed)

	_, err = suite.service.Post(ctx, domain.Actor{}, domain.PostingRequest{TransactionID: "txn-1", Amount: decimal.NewFromInt(5), Operation: domain.OpPayIn})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPost_RepositoryError() {
	ctx := context.Background()
	repoErr := errors.New("connection reset")
	suite.mockLedgerRepo.On("SaveLedgerEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(repoErr).Once()

	entry, err := suite.service.Post(ctx, suite.actor, domain.PostingRequest{
		TransactionID: "txn-1",
		Amount:        decimal.NewFromInt(3),
		Operation:     domain.OpInterestIn,
	})

	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrLedgerPostFailed)
	suite.ErrorIs(err, repoErr)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListLedgerEntries_Success() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{EntryID: "e1", TransactionID: "txn-1", Amount: decimal.NewFromInt(10), Operation: domain.OpPayIn},
		{EntryID: "e2", TransactionID: "txn-1", Amount: decimal.NewFromInt(2), Operation: domain.OpInterestIn},
	}
	suite.mockTxnReader.On("FindTransactionByID", ctx, "org-1", "txn-1").Return(&domain.Transaction{TransactionID: "txn-1"}, nil).Once()
	suite.mockLedgerRepo.On("ListLedgerEntriesByTransaction", ctx, "org-1", "txn-1", 50, (*string)(nil)).Return(entries, "next-page", nil).Once()

	res, err := suite.service.ListLedgerEntries(ctx, suite.actor, "txn-1", dto.ListLedgerParams{Limit: 50})

	suite.Require().NoError(err)
	suite.Len(res.Entries, 2)
	suite.Require().NotNil(res.NextToken)
	suite.Equal("next-page", *res.NextToken)
	suite.mockTxnReader.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListLedgerEntries_UnknownTransaction() {
	ctx := context.Background()
	suite.mockTxnReader.On("FindTransactionByID", ctx, "org-1", "nope").Return(nil, apperrors.ErrNotFound).Once()

	res, err := suite.service.ListLedgerEntries(ctx, suite.actor, "nope", dto.ListLedgerParams{Limit: 50})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListLedgerEntriesByTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
