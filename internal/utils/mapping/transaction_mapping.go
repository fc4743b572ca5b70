package mapping

import (
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/SscSPs/erp_accounting/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Details and pay plans are mapped separately.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		OrganisationID:  d.OrganisationID,
		Kind:            string(d.Kind),
		RefNumber:       d.RefNumber,
		State:           string(d.State),
		ContactID:       d.ContactID,
		Description:     d.Description,
		CurrencyCode:    d.CurrencyCode,
		ExchangeRate:    d.ExchangeRate,
		DiscountPercent: d.DiscountPercent,
		TaxPercent:      d.TaxPercent,
		GrossTotal:      d.GrossTotal,
		Total:           d.Total,
		OriginalTotal:   d.OriginalTotal,
		Balance:         d.Balance,
		IssueDate:       d.IssueDate,
		PaymentDate:     d.PaymentDate,
		DueDate:         d.DueDate,
		Cash:            d.Cash,
		ApproverID:      optionalString(d.ApproverID),
		ApprovedAt:      d.ApprovedAt,
		Version:         d.Version,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if ref, err := domain.ParseRefNumber(d.RefNumber); err == nil {
		m.RefYear = ref.Year
		m.RefSequence = ref.Sequence
	}
	return m
}

// ToDomainTransaction converts a model Transaction and its child rows to a domain Transaction
func ToDomainTransaction(m models.Transaction, details []models.TransactionDetail, plans []models.PayPlan) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		OrganisationID:  m.OrganisationID,
		Kind:            domain.TransactionKind(m.Kind),
		RefNumber:       m.RefNumber,
		State:           domain.TransactionState(m.State),
		ContactID:       m.ContactID,
		Description:     m.Description,
		CurrencyCode:    m.CurrencyCode,
		ExchangeRate:    m.ExchangeRate,
		DiscountPercent: m.DiscountPercent,
		TaxPercent:      m.TaxPercent,
		GrossTotal:      m.GrossTotal,
		Total:           m.Total,
		OriginalTotal:   m.OriginalTotal,
		Balance:         m.Balance,
		IssueDate:       m.IssueDate,
		PaymentDate:     m.PaymentDate,
		DueDate:         m.DueDate,
		Cash:            m.Cash,
		ApproverID:      derefString(m.ApproverID),
		ApprovedAt:      m.ApprovedAt,
		Details:         ToDomainTransactionDetailSlice(details),
		PayPlans:        ToDomainPayPlanSlice(plans),
		Version:         m.Version,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionDetails converts the lines of a transaction, keeping their order in Position
func ToModelTransactionDetails(d domain.Transaction) []models.TransactionDetail {
	ms := make([]models.TransactionDetail, 0, len(d.Details))
	for i, line := range d.Details {
		ms = append(ms, models.TransactionDetail{
			DetailID:      line.DetailID,
			TransactionID: d.TransactionID,
			Position:      i,
			ItemID:        line.ItemID,
			Description:   line.Description,
			Quantity:      line.Quantity,
			Price:         line.Price,
		})
	}
	return ms
}

// ToDomainTransactionDetailSlice converts detail rows already ordered by position
func ToDomainTransactionDetailSlice(ms []models.TransactionDetail) []domain.TransactionDetail {
	ds := make([]domain.TransactionDetail, len(ms))
	for i, m := range ms {
		ds[i] = domain.TransactionDetail{
			DetailID:    m.DetailID,
			ItemID:      m.ItemID,
			Description: m.Description,
			Quantity:    m.Quantity,
			Price:       m.Price,
		}
	}
	return ds
}

// ToModelPayPlan converts a domain PayPlan to a model PayPlan
func ToModelPayPlan(d domain.PayPlan) models.PayPlan {
	return models.PayPlan{
		PayPlanID:          d.PayPlanID,
		TransactionID:      d.TransactionID,
		Amount:             d.Amount,
		InterestsPenalties: d.InterestsPenalties,
		DueDate:            d.DueDate,
		Paid:               d.Paid,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayPlanSlice converts pay plan rows already ordered by due date
func ToDomainPayPlanSlice(ms []models.PayPlan) []domain.PayPlan {
	ds := make([]domain.PayPlan, len(ms))
	for i, m := range ms {
		ds[i] = domain.PayPlan{
			PayPlanID:          m.PayPlanID,
			TransactionID:      m.TransactionID,
			Amount:             m.Amount,
			InterestsPenalties: m.InterestsPenalties,
			DueDate:            m.DueDate,
			Paid:               m.Paid,
			AuditFields:        ToDomainAuditFields(m.AuditFields),
		}
	}
	return ds
}
