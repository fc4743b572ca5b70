package dto

import (
	"time"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionDetailRequest is one line of a create or update request.
// On update a line carrying a DetailID replaces the stored line with that id.
type TransactionDetailRequest struct {
	DetailID    string          `json:"detailID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description" binding:"max=255"`
	Quantity    decimal.Decimal `json:"quantity" binding:"dgt=0" swaggertype:"string" example:"2"`
	Price       decimal.Decimal `json:"price" binding:"dgte=0" swaggertype:"string" example:"3.50"`
}

// PayPlanRequest schedules one installment.
type PayPlanRequest struct {
	Amount             decimal.Decimal `json:"amount" binding:"dgt=0" swaggertype:"string" example:"100.00"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties" binding:"dgte=0" swaggertype:"string" example:"0"`
	DueDate            time.Time       `json:"dueDate" binding:"required"`
}

// CreateTransactionRequest defines the data needed to create a draft transaction.
type CreateTransactionRequest struct {
	Kind            domain.TransactionKind     `json:"kind" binding:"required,oneof=INCOME EXPENSE BUY LOAN_RECEIVE LOAN_GIVE"`
	ContactID       string                     `json:"contactID"`
	Description     string                     `json:"description" binding:"max=500"`
	CurrencyCode    string                     `json:"currencyCode" binding:"omitempty,len=3,uppercase"` // defaults to the organisation currency
	ExchangeRate    *decimal.Decimal           `json:"exchangeRate" binding:"omitempty,dgt=0" swaggertype:"string" example:"1"`
	DiscountPercent decimal.Decimal            `json:"discountPercent" binding:"dgte=0,dlte=100" swaggertype:"string" example:"0"`
	TaxPercent      decimal.Decimal            `json:"taxPercent" binding:"dgte=0" swaggertype:"string" example:"13"`
	IssueDate       *time.Time                 `json:"issueDate"`
	Details         []TransactionDetailRequest `json:"details" binding:"required,min=1,dive"`
	PayPlans        []PayPlanRequest           `json:"payPlans" binding:"omitempty,dive"`
}

// UpdateTransactionRequest edits a transaction that has no money movements yet.
// Nil fields are left untouched.
type UpdateTransactionRequest struct {
	ContactID        *string                    `json:"contactID"`
	Description      *string                    `json:"description" binding:"omitempty,max=500"`
	ExchangeRate     *decimal.Decimal           `json:"exchangeRate" binding:"omitempty,dgt=0" swaggertype:"string"`
	DiscountPercent  *decimal.Decimal           `json:"discountPercent" binding:"omitempty,dgte=0,dlte=100" swaggertype:"string"`
	TaxPercent       *decimal.Decimal           `json:"taxPercent" binding:"omitempty,dgte=0" swaggertype:"string"`
	IssueDate        *time.Time                 `json:"issueDate"`
	Details          []TransactionDetailRequest `json:"details" binding:"omitempty,dive"`
	DeletedDetailIDs []string                   `json:"deletedDetailIDs"`
	Version          int64                      `json:"version"` // optional; rejects the edit when stale
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	State     string  `form:"state" binding:"omitempty,oneof=all draft approved paid due awaiting_payment"`
	Kind      string  `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE BUY LOAN_RECEIVE LOAN_GIVE"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransactionDetailResponse is one line of a transaction.
type TransactionDetailResponse struct {
	DetailID    string          `json:"detailID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Total       decimal.Decimal `json:"total" swaggertype:"string"`
}

// PayPlanResponse is one installment.
type PayPlanResponse struct {
	PayPlanID          string          `json:"payPlanID"`
	Amount             decimal.Decimal `json:"amount" swaggertype:"string"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties" swaggertype:"string"`
	DueDate            time.Time       `json:"dueDate"`
	Paid               bool            `json:"paid"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                      `json:"transactionID"`
	Kind            domain.TransactionKind      `json:"kind"`
	RefNumber       string                      `json:"refNumber"`
	State           domain.TransactionState     `json:"state"`
	Status          domain.TransactionStatus    `json:"status"`
	PayType         string                      `json:"payType"`
	ContactID       string                      `json:"contactID"`
	Description     string                      `json:"description"`
	CurrencyCode    string                      `json:"currencyCode"`
	ExchangeRate    decimal.Decimal             `json:"exchangeRate" swaggertype:"string"`
	DiscountPercent decimal.Decimal             `json:"discountPercent" swaggertype:"string"`
	TaxPercent      decimal.Decimal             `json:"taxPercent" swaggertype:"string"`
	GrossTotal      decimal.Decimal             `json:"grossTotal" swaggertype:"string"`
	TotalDiscount   decimal.Decimal             `json:"totalDiscount" swaggertype:"string"`
	TotalTaxes      decimal.Decimal             `json:"totalTaxes" swaggertype:"string"`
	Total           decimal.Decimal             `json:"total" swaggertype:"string"`
	OriginalTotal   decimal.Decimal             `json:"originalTotal" swaggertype:"string"`
	TotalCurrency   decimal.Decimal             `json:"totalCurrency" swaggertype:"string"`
	Balance         decimal.Decimal             `json:"balance" swaggertype:"string"`
	PayPlansTotal   decimal.Decimal             `json:"payPlansTotal" swaggertype:"string"`
	PayPlansBalance decimal.Decimal             `json:"payPlansBalance" swaggertype:"string"`
	IssueDate       time.Time                   `json:"issueDate"`
	PaymentDate     time.Time                   `json:"paymentDate"`
	DueDate         *time.Time                  `json:"dueDate,omitempty"`
	Cash            bool                        `json:"cash"`
	ApproverID      string                      `json:"approverID,omitempty"`
	ApprovedAt      *time.Time                  `json:"approvedAt,omitempty"`
	Details         []TransactionDetailResponse `json:"details"`
	PayPlans        []PayPlanResponse           `json:"payPlans"`
	Version         int64                       `json:"version"`
	CreatedAt       time.Time                   `json:"createdAt"`
	CreatedBy       string                      `json:"createdBy"`
	LastUpdatedAt   time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy   string                      `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// NextPaymentResponse is the payment a caller should make next.
type NextPaymentResponse struct {
	TransactionID      string          `json:"transactionID"`
	Amount             decimal.Decimal `json:"amount" swaggertype:"string"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties" swaggertype:"string"`
	Balance            decimal.Decimal `json:"balance" swaggertype:"string"`
	PayPlanID          string          `json:"payPlanID,omitempty"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO as seen on the given day.
func ToTransactionResponse(txn *domain.Transaction, today time.Time) TransactionResponse {
	totalCurrency, err := txn.TotalCurrency()
	if err != nil {
		totalCurrency = decimal.Zero
	}
	details := make([]TransactionDetailResponse, len(txn.Details))
	for i, d := range txn.Details {
		details[i] = TransactionDetailResponse{
			DetailID:    d.DetailID,
			ItemID:      d.ItemID,
			Description: d.Description,
			Quantity:    d.Quantity,
			Price:       d.Price,
			Total:       domain.RoundMoney(d.Total()),
		}
	}
	plans := make([]PayPlanResponse, len(txn.PayPlans))
	for i, p := range txn.PayPlans {
		plans[i] = PayPlanResponse{
			PayPlanID:          p.PayPlanID,
			Amount:             p.Amount,
			InterestsPenalties: p.InterestsPenalties,
			DueDate:            p.DueDate,
			Paid:               p.Paid,
		}
	}
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Kind:            txn.Kind,
		RefNumber:       txn.RefNumber,
		State:           txn.State,
		Status:          txn.Status(today),
		PayType:         txn.Kind.PayType(),
		ContactID:       txn.ContactID,
		Description:     txn.Description,
		CurrencyCode:    txn.CurrencyCode,
		ExchangeRate:    txn.ExchangeRate,
		DiscountPercent: txn.DiscountPercent,
		TaxPercent:      txn.TaxPercent,
		GrossTotal:      txn.GrossTotal,
		TotalDiscount:   domain.RoundMoney(txn.TotalDiscount()),
		TotalTaxes:      domain.RoundMoney(txn.TotalTaxes()),
		Total:           txn.Total,
		OriginalTotal:   txn.OriginalTotal,
		TotalCurrency:   totalCurrency,
		Balance:         txn.Balance,
		PayPlansTotal:   txn.PayPlansTotal(),
		PayPlansBalance: txn.PayPlansBalance(),
		IssueDate:       txn.IssueDate,
		PaymentDate:     txn.PaymentDate,
		DueDate:         txn.DueDate,
		Cash:            txn.Cash,
		ApproverID:      txn.ApproverID,
		ApprovedAt:      txn.ApprovedAt,
		Details:         details,
		PayPlans:        plans,
		Version:         txn.Version,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
		LastUpdatedAt:   txn.LastUpdatedAt,
		LastUpdatedBy:   txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction, today time.Time) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i], today)
	}
	return responses
}
