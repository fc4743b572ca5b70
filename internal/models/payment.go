package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID          string          `json:"paymentID"`
	OrganisationID     string          `json:"organisationID"`
	TransactionID      string          `json:"transactionID"` // FK -> transactions
	Amount             decimal.Decimal `json:"amount"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties"`
	CurrencyCode       string          `json:"currencyCode"`
	AccountToID        *string         `json:"accountToID"` // Nullable; a transaction or an external account
	Conciliation       bool            `json:"conciliation"`
	Reference          string          `json:"reference"`
	PaymentDate        time.Time       `json:"paymentDate"`
	AuditFields
}
