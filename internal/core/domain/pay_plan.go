package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayPlan is one scheduled installment of a transaction.
type PayPlan struct {
	PayPlanID          string          `json:"payPlanID"`
	TransactionID      string          `json:"transactionID"`
	Amount             decimal.Decimal `json:"amount"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties"`
	DueDate            time.Time       `json:"dueDate"`
	Paid               bool            `json:"paid"`
	AuditFields
}
