package mapping

import (
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:          d.PaymentID,
		OrganisationID:     d.OrganisationID,
		TransactionID:      d.TransactionID,
		Amount:             d.Amount,
		InterestsPenalties: d.InterestsPenalties,
		CurrencyCode:       d.CurrencyCode,
		AccountToID:        optionalString(d.AccountToID),
		Conciliation:       d.Conciliation,
		Reference:          d.Reference,
		PaymentDate:        d.PaymentDate,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:          m.PaymentID,
		OrganisationID:     m.OrganisationID,
		TransactionID:      m.TransactionID,
		Amount:             m.Amount,
		InterestsPenalties: m.InterestsPenalties,
		CurrencyCode:       m.CurrencyCode,
		AccountToID:        derefString(m.AccountToID),
		Conciliation:       m.Conciliation,
		Reference:          m.Reference,
		PaymentDate:        m.PaymentDate,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
