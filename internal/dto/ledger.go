package dto

import (
	"time"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerParams defines query parameters for listing ledger entries.
type ListLedgerParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string               `json:"entryID"`
	TransactionID string               `json:"transactionID"`
	AccountToID   string               `json:"accountToID,omitempty"`
	PaymentID     string               `json:"paymentID,omitempty"`
	Amount        decimal.Decimal      `json:"amount" swaggertype:"string"`
	Operation     domain.OperationKind `json:"operation"`
	Conciliation  bool                 `json:"conciliation"`
	Reference     string               `json:"reference"`
	EntryDate     time.Time            `json:"entryDate"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListLedgerResponse wraps a page of ledger entries.
type ListLedgerResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		TransactionID: e.TransactionID,
		AccountToID:   e.AccountToID,
		PaymentID:     e.PaymentID,
		Amount:        e.Amount,
		Operation:     e.Operation,
		Conciliation:  e.Conciliation,
		Reference:     e.Reference,
		EntryDate:     e.EntryDate,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}
