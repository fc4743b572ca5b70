package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the append-only ledger_entries table.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"`
	OrganisationID string          `json:"organisationID"`
	TransactionID  string          `json:"transactionID"` // FK -> transactions
	AccountToID    *string         `json:"accountToID"`   // Nullable
	PaymentID      *string         `json:"paymentID"`     // Nullable; FK -> payments
	Amount         decimal.Decimal `json:"amount"`        // Signed
	Operation      string          `json:"operation"`     // PAYIN, PAYOUT, INTIN, INTOUT
	Conciliation   bool            `json:"conciliation"`
	Reference      string          `json:"reference"`
	EntryDate      time.Time       `json:"entryDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}
