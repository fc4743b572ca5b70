package mapping

import (
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:        d.EntryID,
		OrganisationID: d.OrganisationID,
		TransactionID:  d.TransactionID,
		AccountToID:    optionalString(d.AccountToID),
		PaymentID:      optionalString(d.PaymentID),
		Amount:         d.Amount,
		Operation:      string(d.Operation),
		Conciliation:   d.Conciliation,
		Reference:      d.Reference,
		EntryDate:      d.EntryDate,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:        m.EntryID,
		OrganisationID: m.OrganisationID,
		TransactionID:  m.TransactionID,
		AccountToID:    derefString(m.AccountToID),
		PaymentID:      derefString(m.PaymentID),
		Amount:         m.Amount,
		Operation:      domain.OperationKind(m.Operation),
		Conciliation:   m.Conciliation,
		Reference:      m.Reference,
		EntryDate:      m.EntryDate,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to a slice of domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
