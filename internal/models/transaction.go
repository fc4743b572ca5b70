package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (UUID)
	OrganisationID  string          `json:"organisationID"`  // Not Null
	Kind            string          `json:"kind"`            // INCOME, EXPENSE, BUY, LOAN_RECEIVE, LOAN_GIVE
	RefNumber       string          `json:"refNumber"`       // Unique per organisation and kind
	RefYear         int             `json:"refYear"`         // Two digit year parsed from RefNumber
	RefSequence     int             `json:"refSequence"`     // Sequence parsed from RefNumber
	State           string          `json:"state"`           // DRAFT, APPROVED, PAID
	ContactID       string          `json:"contactID"`       // Empty when unknown
	Description     string          `json:"description"`     // Nullable
	CurrencyCode    string          `json:"currencyCode"`    // Not Null
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`    // > 0
	DiscountPercent decimal.Decimal `json:"discountPercent"` // 0..100
	TaxPercent      decimal.Decimal `json:"taxPercent"`      // >= 0
	GrossTotal      decimal.Decimal `json:"grossTotal"`
	Total           decimal.Decimal `json:"total"`
	OriginalTotal   decimal.Decimal `json:"originalTotal"`
	Balance         decimal.Decimal `json:"balance"`
	IssueDate       time.Time       `json:"issueDate"`
	PaymentDate     time.Time       `json:"paymentDate"`
	DueDate         *time.Time      `json:"dueDate"`    // Nullable
	Cash            bool            `json:"cash"`       // No pay plan entries
	ApproverID      *string         `json:"approverID"` // Nullable
	ApprovedAt      *time.Time      `json:"approvedAt"` // Nullable
	Version         int64           `json:"version"`    // Optimistic lock
	AuditFields
}

// TransactionDetail is a row of the transaction_details table.
type TransactionDetail struct {
	DetailID      string          `json:"detailID"`
	TransactionID string          `json:"transactionID"` // FK -> transactions
	Position      int             `json:"position"`      // Keeps line order stable
	ItemID        string          `json:"itemID"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
}

// PayPlan is a row of the pay_plans table.
type PayPlan struct {
	PayPlanID          string          `json:"payPlanID"`
	TransactionID      string          `json:"transactionID"` // FK -> transactions
	Position           int             `json:"position"`      // Insertion order among equal due dates
	Amount             decimal.Decimal `json:"amount"`
	InterestsPenalties decimal.Decimal `json:"interestsPenalties"`
	DueDate            time.Time       `json:"dueDate"`
	Paid               bool            `json:"paid"`
	AuditFields
}
