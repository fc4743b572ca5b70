package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/core/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/SscSPs/erp_accounting/internal/handlers"
	"github.com/SscSPs/erp_accounting/internal/middleware"
	"github.com/SscSPs/erp_accounting/internal/platform/config"
	"github.com/SscSPs/erp_accounting/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) GetTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, actor domain.Actor, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) NextPayment(ctx context.Context, actor domain.Actor, transactionID string) (*dto.NextPaymentResponse, error) {
	args := m.Called(ctx, actor, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NextPaymentResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, actor domain.Actor, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ApproveTransaction(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) AddPayPlan(ctx context.Context, actor domain.Actor, transactionID string, req dto.PayPlanRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	args := m.Called(ctx, actor, transactionID)
	return args.Error(0)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) ApplyPayment(ctx context.Context, actor domain.Actor, transactionID string, req dto.ApplyPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, actor, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, actor domain.Actor, transactionID string) ([]domain.Payment, error) {
	args := m.Called(ctx, actor, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	mockPaymentService     *MockPaymentService
	jwtSecret              string
	actor                  domain.Actor
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

// generateTestToken creates a signed JWT for the actor.
func generateTestToken(secret string, actor domain.Actor) (string, error) {
	claims := middleware.Claims{
		Org: actor.OrganisationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "erp-test",
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.actor = domain.Actor{UserID: "user-1", OrganisationID: "org-1"}
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockPaymentService = new(MockPaymentService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, ""))
	handlers.RegisterTransactionRoutes(v1, &portssvc.ServiceContainer{
		Transaction: suite.mockTransactionService,
		Payment:     suite.mockPaymentService,
	}, domain.FixedClock{T: testNow})
}

func (suite *TransactionHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	token, err := generateTestToken(suite.jwtSecret, suite.actor)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleTransaction() *domain.Transaction {
	txn := domain.NewTransaction(domain.KindExpense, domain.Actor{UserID: "user-1", OrganisationID: "org-1"}, testNow, "BOB", testNow)
	txn.TransactionID = "txn-1"
	txn.RefNumber = "E-26-0001"
	txn.Details = []domain.TransactionDetail{{DetailID: "d1", Quantity: decimal.NewFromInt(2), Price: decimal.RequireFromString("8.50")}}
	_ = txn.Recalculate()
	return txn
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/txn-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "GetTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestTokenWithoutOrganisation() {
	suite.actor = domain.Actor{UserID: "user-1"}
	w := suite.do(http.MethodGet, "/api/v1/transactions/txn-1", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, suite.actor, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Kind == domain.KindExpense && len(req.Details) == 1 && req.Details[0].Price.Equal(decimal.RequireFromString("8.50"))
	})).Return(sampleTransaction(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]interface{}{
		"kind":    "EXPENSE",
		"details": []map[string]string{{"quantity": "2", "price": "8.50"}},
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("E-26-0001", res.RefNumber)
	suite.Equal("17.00", res.Total.StringFixed(2))
	suite.Equal(domain.StatusDraft, res.Status)
	suite.Equal("pay", res.PayType)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_BindingRules() {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"unknown kind", map[string]interface{}{"kind": "GIFT", "details": []map[string]string{{"quantity": "1", "price": "1"}}}},
		{"no lines", map[string]interface{}{"kind": "INCOME", "details": []map[string]string{}}},
		{"zero quantity", map[string]interface{}{"kind": "INCOME", "details": []map[string]string{{"quantity": "0", "price": "1"}}}},
		{"negative price", map[string]interface{}{"kind": "INCOME", "details": []map[string]string{{"quantity": "1", "price": "-1"}}}},
		{"discount above hundred", map[string]interface{}{"kind": "INCOME", "discountPercent": "100.5", "details": []map[string]string{{"quantity": "1", "price": "1"}}}},
		{"zero exchange rate", map[string]interface{}{"kind": "INCOME", "exchangeRate": "0", "details": []map[string]string{{"quantity": "1", "price": "1"}}}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/transactions", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestErrorMapping() {
	fieldErrs := apperrors.FieldErrors{}
	fieldErrs.Add("transaction", "amount", domain.ErrInsufficientBalance)
	fieldErrs.Add("counter_account", "balance", services.ErrCounterAccountInsufficientBalance)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("transaction nope: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"stale version", fmt.Errorf("transaction txn-1: %w", apperrors.ErrConflict), http.StatusConflict},
		{"locked", services.ErrTransactionLocked, http.StatusConflict},
		{"already paid", fmt.Errorf("transaction txn-1: %w", services.ErrTransactionAlreadyPaid), http.StatusConflict},
		{"field errors", fieldErrs, http.StatusUnprocessableEntity},
		{"plain validation", fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation), http.StatusBadRequest},
		{"commit failed", fmt.Errorf("%w: connection reset", apperrors.ErrAtomicCommitFailed), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockTransactionService.On("GetTransaction", mock.Anything, suite.actor, "txn-1").Return(nil, tt.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/transactions/txn-1", nil)

			suite.Equal(tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusInternalServerError {
				suite.NotContains(w.Body.String(), "connection reset")
			}
		})
	}
}

func (suite *TransactionHandlerTestSuite) TestApplyPayment_FieldErrors() {
	fieldErrs := apperrors.FieldErrors{}
	fieldErrs.Add("transaction", "amount", domain.ErrInsufficientBalance)
	fieldErrs.Add("counter_account", "state", services.ErrCounterAccountNotApproved)
	suite.mockPaymentService.On("ApplyPayment", mock.Anything, suite.actor, "txn-1", mock.AnythingOfType("dto.ApplyPaymentRequest")).Return(nil, fieldErrs).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/payments", map[string]string{"amount": "20", "accountToID": "txn-2"})

	suite.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Fields []struct {
			Entity string `json:"entity"`
			Field  string `json:"field"`
		} `json:"fields"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Fields, 2)
	suite.Equal("counter_account", body.Fields[1].Entity)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestApplyPayment_NegativeAmountRejectedAtBinding() {
	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/payments", map[string]string{"amount": "-1"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestAddPayPlan_AlreadyPaid() {
	suite.mockTransactionService.On("AddPayPlan", mock.Anything, suite.actor, "txn-1", mock.AnythingOfType("dto.PayPlanRequest")).
		Return(nil, fmt.Errorf("transaction txn-1: %w", services.ErrTransactionAlreadyPaid)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/pay_plans", map[string]string{
		"amount":  "10.00",
		"dueDate": testNow.AddDate(0, 1, 0).Format(time.RFC3339),
	})

	suite.Equal(http.StatusConflict, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), services.ErrTransactionAlreadyPaid.Error())
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestApplyPayment_TooManyDecimals() {
	fieldErrs := apperrors.FieldErrors{}
	fieldErrs.Add("payment", "amount", domain.ErrTooManyDecimals)
	suite.mockPaymentService.On("ApplyPayment", mock.Anything, suite.actor, "txn-1", mock.AnythingOfType("dto.ApplyPaymentRequest")).Return(nil, fieldErrs).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/txn-1/payments", map[string]string{"amount": "5.005"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, suite.actor, "txn-1").Return(nil).Once()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, suite.actor, "txn-2").Return(services.ErrTransactionHasPayments).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/transactions/txn-1", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/api/v1/transactions/txn-2", nil).Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Query() {
	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.actor, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.State == "due" && p.Limit == 20 && p.NextToken == nil
	})).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/transactions?state=due", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/transactions?state=overdue", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/transactions?limit=1000", nil).Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

// TestPaymentFlowAgainstMemoryStore drives the real services through the router.
func (suite *TransactionHandlerTestSuite) TestPaymentFlowAgainstMemoryStore() {
	cfg := &config.Config{DefaultCurrency: "BOB", RefNumberMaxAttempts: 3}
	container := services.NewServiceContainer(cfg, memory.NewStore().Repositories(), services.WithClock(domain.FixedClock{T: testNow}))
	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, ""))
	handlers.RegisterTransactionRoutes(v1, container, domain.FixedClock{T: testNow})

	w := suite.do(http.MethodPost, "/api/v1/transactions", map[string]interface{}{
		"kind":    "EXPENSE",
		"details": []map[string]string{{"quantity": "2", "price": "8.50"}},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("E-26-0001", created.RefNumber)

	base := "/api/v1/transactions/" + created.TransactionID
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, base+"/approve", nil).Code)

	w = suite.do(http.MethodPost, base+"/payments", map[string]string{"amount": "20"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = suite.do(http.MethodPost, base+"/payments", map[string]string{"amount": "17"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, base, nil)
	var paid dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &paid))
	suite.Equal(domain.StatusPaid, paid.Status)
	suite.True(paid.Balance.IsZero())

	w = suite.do(http.MethodGet, base+"/ledger", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var ledger dto.ListLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &ledger))
	suite.Require().Len(ledger.Entries, 1)
	suite.Equal(domain.OpPayOut, ledger.Entries[0].Operation)
	suite.Equal("-17.00", ledger.Entries[0].Amount.StringFixed(2))

	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, base, nil).Code)

	w = suite.do(http.MethodPost, "/api/v1/quick_transactions", map[string]string{"kind": "INCOME", "amount": "50"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.True(strings.Contains(w.Body.String(), `"refNumber":"I-26-0001"`))
}
