package dto

import (
	"time"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQuickTransactionRequest creates a transaction that is settled on creation.
type CreateQuickTransactionRequest struct {
	Kind         domain.TransactionKind     `json:"kind" binding:"required,oneof=INCOME EXPENSE BUY LOAN_RECEIVE LOAN_GIVE"`
	Amount       decimal.Decimal            `json:"amount" binding:"dgt=0" swaggertype:"string" example:"100.00"`
	CurrencyCode string                     `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
	ContactID    string                     `json:"contactID"`
	Description  string                     `json:"description" binding:"max=500"`
	AccountToID  string                     `json:"accountToID"` // cash or bank reference recorded on the ledger entry
	Conciliation bool                       `json:"conciliation"`
	Reference    string                     `json:"reference" binding:"max=255"`
	IssueDate    *time.Time                 `json:"issueDate"`
	Details      []TransactionDetailRequest `json:"details" binding:"omitempty,dive"` // descriptive only; the amount is authoritative
}

// QuickTransactionResponse returns the settled transaction and its ledger entry.
type QuickTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	LedgerEntry LedgerEntryResponse `json:"ledgerEntry"`
}
