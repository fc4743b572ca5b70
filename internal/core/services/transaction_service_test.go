package services_test

import (
	"testing"

	"github.com/SscSPs/erp_accounting/internal/apperrors"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/core/services"
	"github.com/SscSPs/erp_accounting/internal/dto"
	"github.com/stretchr/testify/suite"
)

// TransactionServiceTestSuite covers the lifecycle before and around payments.
type TransactionServiceTestSuite struct {
	serviceFixture
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (suite *TransactionServiceTestSuite) TestCreateAppliesDiscountTaxAndRate() {
	rate := d("6.96")
	txn, err := suite.svc.Transaction.CreateTransaction(suite.ctx, suite.actor, dto.CreateTransactionRequest{
		Kind:            domain.KindIncome,
		CurrencyCode:    "USD",
		ExchangeRate:    &rate,
		DiscountPercent: d("10"),
		TaxPercent:      d("13"),
		Details:         []dto.TransactionDetailRequest{line("2", "50.00")},
	})
	suite.Require().NoError(err)

	suite.Equal("USD", txn.CurrencyCode)
	suite.Equal("100.00", txn.GrossTotal.StringFixed(2))
	suite.Equal("101.70", txn.Total.StringFixed(2))
	suite.Equal("14.61", txn.Balance.StringFixed(2))
	suite.Equal(domain.StateDraft, txn.State)
}

func (suite *TransactionServiceTestSuite) TestCreateDefaultsCurrency() {
	txn := suite.create(domain.KindExpense, line("1", "1.00"))
	suite.Equal("BOB", txn.CurrencyCode)
	suite.Equal(suite.actor.OrganisationID, txn.OrganisationID)
	suite.Equal(suite.actor.UserID, txn.CreatedBy)
}

func (suite *TransactionServiceTestSuite) TestCreateRejectsInvalidInput() {
	zeroRate := d("0")
	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
		want error
	}{
		{
			name: "unknown kind",
			req:  dto.CreateTransactionRequest{Kind: "GIFT", Details: []dto.TransactionDetailRequest{line("1", "1")}},
			want: domain.ErrUnknownKind,
		},
		{
			name: "no lines",
			req:  dto.CreateTransactionRequest{Kind: domain.KindExpense},
			want: apperrors.ErrValidation,
		},
		{
			name: "zero exchange rate",
			req: dto.CreateTransactionRequest{
				Kind:         domain.KindExpense,
				ExchangeRate: &zeroRate,
				Details:      []dto.TransactionDetailRequest{line("1", "1")},
			},
			want: domain.ErrInvalidExchangeRate,
		},
		{
			name: "zero quantity",
			req:  dto.CreateTransactionRequest{Kind: domain.KindExpense, Details: []dto.TransactionDetailRequest{line("0", "5")}},
			want: domain.ErrNonPositiveQuantity,
		},
		{
			name: "plan exceeds balance",
			req: dto.CreateTransactionRequest{
				Kind:     domain.KindExpense,
				Details:  []dto.TransactionDetailRequest{line("1", "10")},
				PayPlans: []dto.PayPlanRequest{{Amount: d("10.01"), DueDate: testNow}},
			},
			want: apperrors.ErrValidation,
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.svc.Transaction.CreateTransaction(suite.ctx, suite.actor, tt.req)
			suite.ErrorIs(err, tt.want)
		})
	}
}

func (suite *TransactionServiceTestSuite) TestUpdateRecalculates() {
	txn := suite.create(domain.KindExpense, line("1", "10.00"), line("2", "3.50"))
	keep, drop := txn.Details[0].DetailID, txn.Details[1].DetailID

	tax := d("10")
	updated, err := suite.svc.Transaction.UpdateTransaction(suite.ctx, suite.actor, txn.TransactionID, dto.UpdateTransactionRequest{
		TaxPercent: &tax,
		Details: []dto.TransactionDetailRequest{
			{DetailID: keep, Quantity: d("3"), Price: d("10.00")},
			line("1", "5.00"),
		},
		DeletedDetailIDs: []string{drop},
		Version:          txn.Version,
	})
	suite.Require().NoError(err)

	suite.Len(updated.Details, 2)
	suite.Equal("35.00", updated.GrossTotal.StringFixed(2))
	suite.Equal("38.50", updated.Total.StringFixed(2))
	suite.Equal("38.50", updated.Balance.StringFixed(2))
	suite.Equal(txn.Version+1, updated.Version)
	suite.Equal(domain.StateDraft, updated.State)
}

func (suite *TransactionServiceTestSuite) TestUpdateGuards() {
	txn := suite.create(domain.KindExpense, line("1", "10.00"))
	desc := "new"

	_, err := suite.svc.Transaction.UpdateTransaction(suite.ctx, suite.actor, txn.TransactionID, dto.UpdateTransactionRequest{
		Description: &desc,
		Version:     txn.Version + 5,
	})
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.svc.Transaction.UpdateTransaction(suite.ctx, suite.actor, txn.TransactionID, dto.UpdateTransactionRequest{
		DeletedDetailIDs: []string{"nope"},
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.Transaction.UpdateTransaction(suite.ctx, suite.actor, txn.TransactionID, dto.UpdateTransactionRequest{
		DeletedDetailIDs: []string{txn.Details[0].DetailID},
	})
	suite.ErrorIs(err, apperrors.ErrValidation, "removing the last line is rejected")

	_, err = suite.pay(txn.TransactionID, "1.00", "0", "")
	suite.Require().NoError(err)
	_, err = suite.svc.Transaction.UpdateTransaction(suite.ctx, suite.actor, txn.TransactionID, dto.UpdateTransactionRequest{Description: &desc})
	suite.ErrorIs(err, services.ErrTransactionLocked)

	suite.Equal("9.00", suite.reload(txn.TransactionID).Balance.StringFixed(2))
}

func (suite *TransactionServiceTestSuite) TestApproveOnlyMovesDrafts() {
	txn := suite.create(domain.KindExpense, line("1", "10.00"))

	approved, err := suite.svc.Transaction.ApproveTransaction(suite.ctx, suite.actor, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(domain.StateApproved, approved.State)
	suite.Equal(suite.actor.UserID, approved.ApproverID)
	suite.Require().NotNil(approved.ApprovedAt)

	other := domain.Actor{UserID: "user-2", OrganisationID: suite.actor.OrganisationID}
	again, err := suite.svc.Transaction.ApproveTransaction(suite.ctx, other, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(suite.actor.UserID, again.ApproverID)
	suite.Equal(approved.Version, again.Version)
}

func (suite *TransactionServiceTestSuite) TestAddPayPlan() {
	txn := suite.createApproved(domain.KindExpense, line("1", "10.00"))
	due := testNow.AddDate(0, 0, 5)

	withPlan, err := suite.svc.Transaction.AddPayPlan(suite.ctx, suite.actor, txn.TransactionID, dto.PayPlanRequest{Amount: d("4.00"), DueDate: due})
	suite.Require().NoError(err)
	suite.False(withPlan.Cash)
	suite.Equal(domain.DateOf(due), withPlan.PaymentDate)
	suite.Equal("6.00", withPlan.PayPlansBalance().StringFixed(2))

	_, err = suite.svc.Transaction.AddPayPlan(suite.ctx, suite.actor, txn.TransactionID, dto.PayPlanRequest{Amount: d("6.01"), DueDate: due})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Len(suite.reload(txn.TransactionID).PayPlans, 1)

	_, err = suite.svc.Transaction.AddPayPlan(suite.ctx, suite.actor, txn.TransactionID, dto.PayPlanRequest{Amount: d("0"), DueDate: due})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.pay(txn.TransactionID, "10.00", "0", "")
	suite.Require().NoError(err)
	_, err = suite.svc.Transaction.AddPayPlan(suite.ctx, suite.actor, txn.TransactionID, dto.PayPlanRequest{Amount: d("1.00"), DueDate: due})
	suite.ErrorIs(err, services.ErrTransactionAlreadyPaid)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	free := suite.create(domain.KindExpense, line("1", "10.00"))
	paid := suite.create(domain.KindExpense, line("1", "10.00"))
	_, err := suite.pay(paid.TransactionID, "1.00", "0", "")
	suite.Require().NoError(err)

	suite.ErrorIs(suite.svc.Transaction.DeleteTransaction(suite.ctx, suite.actor, paid.TransactionID), services.ErrTransactionHasPayments)
	suite.Require().NoError(suite.svc.Transaction.DeleteTransaction(suite.ctx, suite.actor, free.TransactionID))

	_, err = suite.svc.Transaction.GetTransaction(suite.ctx, suite.actor, free.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.svc.Transaction.DeleteTransaction(suite.ctx, suite.actor, free.TransactionID), apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestOrganisationsAreIsolated() {
	txn := suite.create(domain.KindExpense, line("1", "10.00"))
	stranger := domain.Actor{UserID: "user-9", OrganisationID: "org-9"}

	_, err := suite.svc.Transaction.GetTransaction(suite.ctx, stranger, txn.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	other, err := suite.svc.Transaction.CreateTransaction(suite.ctx, stranger, dto.CreateTransactionRequest{
		Kind:    domain.KindExpense,
		Details: []dto.TransactionDetailRequest{line("1", "1.00")},
	})
	suite.Require().NoError(err)
	suite.Equal("E-26-0001", other.RefNumber, "sequences are per organisation")
}

func (suite *TransactionServiceTestSuite) TestListByStatus() {
	draft := suite.create(domain.KindExpense, line("1", "10.00"))
	approved := suite.createApproved(domain.KindExpense, line("1", "10.00"))
	planned := suite.createApproved(domain.KindIncome, line("1", "10.00"))
	_, err := suite.svc.Transaction.AddPayPlan(suite.ctx, suite.actor, planned.TransactionID, dto.PayPlanRequest{Amount: d("5.00"), DueDate: testNow.AddDate(0, 0, -3)})
	suite.Require().NoError(err)
	paid := suite.create(domain.KindExpense, line("1", "10.00"))
	_, err = suite.pay(paid.TransactionID, "10.00", "0", "")
	suite.Require().NoError(err)

	ids := func(state, kind string) []string {
		res, err := suite.svc.Transaction.ListTransactions(suite.ctx, suite.actor, dto.ListTransactionsParams{State: state, Kind: kind, Limit: 20})
		suite.Require().NoError(err)
		var out []string
		for _, t := range res.Transactions {
			out = append(out, t.TransactionID)
		}
		return out
	}

	suite.ElementsMatch([]string{draft.TransactionID}, ids("draft", ""))
	suite.ElementsMatch([]string{approved.TransactionID, planned.TransactionID}, ids("approved", ""))
	suite.ElementsMatch([]string{paid.TransactionID}, ids("paid", ""))
	suite.ElementsMatch([]string{planned.TransactionID}, ids("due", ""))
	suite.ElementsMatch([]string{planned.TransactionID}, ids("awaiting_payment", ""))
	suite.ElementsMatch([]string{planned.TransactionID}, ids("all", "INCOME"))
	suite.Len(ids("", ""), 4)

	res, err := suite.svc.Transaction.ListTransactions(suite.ctx, suite.actor, dto.ListTransactionsParams{State: "due", Limit: 20})
	suite.Require().NoError(err)
	suite.Equal(domain.StatusDue, res.Transactions[0].Status)

	_, err = suite.svc.Transaction.ListTransactions(suite.ctx, suite.actor, dto.ListTransactionsParams{State: "overdue", Limit: 20})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestNextPaymentWithoutPlan() {
	txn := suite.create(domain.KindExpense, line("1", "17.00"))
	next, err := suite.svc.Transaction.NextPayment(suite.ctx, suite.actor, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal("17.00", next.Amount.StringFixed(2))
	suite.True(next.InterestsPenalties.IsZero())
	suite.Nil(next.DueDate)
}
