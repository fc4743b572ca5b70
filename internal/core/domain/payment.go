package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one application of money against a transaction. It is written
// together with its ledger entries and never changed afterwards.
type Payment struct {
	PaymentID          string          `json:"paymentID"`
	OrganisationID     string          `json:"organisationID"`
	TransactionID      string          `json:"transactionID"`
	Amount             decimal.Decimal `json:"amount"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties"`
	CurrencyCode       string          `json:"currencyCode"`
	AccountToID        string          `json:"accountToID,omitempty"` // counter transaction, optional
	Conciliation       bool            `json:"conciliation"`
	Reference          string          `json:"reference"`
	PaymentDate        time.Time       `json:"paymentDate"`
	AuditFields
}

// Total is principal plus interest.
func (p Payment) Total() decimal.Decimal {
	return p.Amount.Add(p.InterestsPenalties)
}

// TotalPayments sums the principal of the payments.
func TotalPayments(payments []Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// TotalPaymentsWithInterests sums principal and interest of the payments.
func TotalPaymentsWithInterests(payments []Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Total())
	}
	return sum
}
