package dto

import (
	"time"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyPaymentRequest defines a payment against a transaction.
type ApplyPaymentRequest struct {
	Amount             decimal.Decimal `json:"amount" binding:"dgte=0" swaggertype:"string" example:"17.00"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties" binding:"dgte=0" swaggertype:"string" example:"0"`
	CurrencyCode       string          `json:"currencyCode" binding:"omitempty,len=3,uppercase"` // defaults to the transaction currency
	AccountToID        string          `json:"accountToID"`                                      // counter transaction funding or receiving the money
	Conciliation       bool            `json:"conciliation"`
	Reference          string          `json:"reference" binding:"max=255"`
	PaymentDate        *time.Time      `json:"paymentDate"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID          string          `json:"paymentID"`
	TransactionID      string          `json:"transactionID"`
	Amount             decimal.Decimal `json:"amount" swaggertype:"string"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties" swaggertype:"string"`
	Total              decimal.Decimal `json:"total" swaggertype:"string"`
	CurrencyCode       string          `json:"currencyCode"`
	AccountToID        string          `json:"accountToID,omitempty"`
	Conciliation       bool            `json:"conciliation"`
	Reference          string          `json:"reference"`
	PaymentDate        time.Time       `json:"paymentDate"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
}

// ListPaymentsResponse lists the payments of one transaction.
type ListPaymentsResponse struct {
	Payments          []PaymentResponse `json:"payments"`
	TotalPayments     decimal.Decimal   `json:"totalPayments" swaggertype:"string"`
	TotalWithInterest decimal.Decimal   `json:"totalWithInterest" swaggertype:"string"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          p.PaymentID,
		TransactionID:      p.TransactionID,
		Amount:             p.Amount,
		InterestsPenalties: p.InterestsPenalties,
		Total:              p.Total(),
		CurrencyCode:       p.CurrencyCode,
		AccountToID:        p.AccountToID,
		Conciliation:       p.Conciliation,
		Reference:          p.Reference,
		PaymentDate:        p.PaymentDate,
		CreatedAt:          p.CreatedAt,
		CreatedBy:          p.CreatedBy,
	}
}

// ToListPaymentsResponse converts payments and their totals.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	res := ListPaymentsResponse{
		Payments:          make([]PaymentResponse, len(payments)),
		TotalPayments:     domain.TotalPayments(payments),
		TotalWithInterest: domain.TotalPaymentsWithInterests(payments),
	}
	for i := range payments {
		res.Payments[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
