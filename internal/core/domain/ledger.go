package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind classifies a ledger entry.
type OperationKind string

const (
	OpPayIn       OperationKind = "PAYIN"
	OpPayOut      OperationKind = "PAYOUT"
	OpInterestIn  OperationKind = "INTIN"
	OpInterestOut OperationKind = "INTOUT"
)

// IsOutgoing reports whether the operation moves money out; such entries are
// stored with a negative amount.
func (o OperationKind) IsOutgoing() bool {
	return o == OpPayOut || o == OpInterestOut
}

// Valid reports whether o is a known operation.
func (o OperationKind) Valid() bool {
	switch o {
	case OpPayIn, OpPayOut, OpInterestIn, OpInterestOut:
		return true
	}
	return false
}

// Signed applies the operation's sign to a non-negative magnitude.
func (o OperationKind) Signed(magnitude decimal.Decimal) decimal.Decimal {
	if o.IsOutgoing() {
		return magnitude.Neg()
	}
	return magnitude
}

// LedgerEntry is an append-only record of money that moved.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"`
	OrganisationID string          `json:"organisationID"`
	TransactionID  string          `json:"transactionID"` // account the entry posts against
	AccountToID    string          `json:"accountToID,omitempty"`
	PaymentID      string          `json:"paymentID,omitempty"`
	Amount         decimal.Decimal `json:"amount"` // signed
	Operation      OperationKind   `json:"operation"`
	Conciliation   bool            `json:"conciliation"`
	Reference      string          `json:"reference"`
	EntryDate      time.Time       `json:"entryDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// PostingRequest asks the posting engine for one entry. Amount is a magnitude;
// the operation decides the stored sign.
type PostingRequest struct {
	TransactionID string
	AccountToID   string
	PaymentID     string
	Amount        decimal.Decimal
	Operation     OperationKind
	Conciliation  bool
	Reference     string
	// SkipZero turns a zero amount into a successful no-op instead of an error.
	SkipZero bool
}

// SumLedger adds the signed amounts of entries.
func SumLedger(entries []LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
