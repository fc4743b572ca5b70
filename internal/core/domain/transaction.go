package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDetail is one line of a transaction.
type TransactionDetail struct {
	DetailID    string          `json:"detailID"`
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	// Deleted marks the line for removal; it stops counting immediately and is
	// dropped on the next Recalculate.
	Deleted bool `json:"-"`
}

// Total is quantity * unit price.
func (d TransactionDetail) Total() decimal.Decimal {
	return d.Quantity.Mul(d.Price)
}

// Transaction is the aggregate for an invoice, expense, purchase or loan.
// It owns its detail lines and pay plan entries.
type Transaction struct {
	TransactionID   string              `json:"transactionID"`
	OrganisationID  string              `json:"organisationID"`
	Kind            TransactionKind     `json:"kind"`
	RefNumber       string              `json:"refNumber"`
	State           TransactionState    `json:"state"`
	ContactID       string              `json:"contactID"`
	Description     string              `json:"description"`
	CurrencyCode    string              `json:"currencyCode"`
	ExchangeRate    decimal.Decimal     `json:"exchangeRate"`
	DiscountPercent decimal.Decimal     `json:"discountPercent"`
	TaxPercent      decimal.Decimal     `json:"taxPercent"`
	GrossTotal      decimal.Decimal     `json:"grossTotal"`
	Total           decimal.Decimal     `json:"total"`
	OriginalTotal   decimal.Decimal     `json:"originalTotal"`
	Balance         decimal.Decimal     `json:"balance"`
	IssueDate       time.Time           `json:"issueDate"`
	PaymentDate     time.Time           `json:"paymentDate"`
	DueDate         *time.Time          `json:"dueDate,omitempty"`
	Cash            bool                `json:"cash"`
	ApproverID      string              `json:"approverID"`
	ApprovedAt      *time.Time          `json:"approvedAt,omitempty"`
	Details         []TransactionDetail `json:"details"`
	PayPlans        []PayPlan           `json:"payPlans"`
	Version         int64               `json:"version"`
	AuditFields
}

// NewTransaction returns a draft with zero totals, no plan and rate 1.
func NewTransaction(kind TransactionKind, actor Actor, issueDate time.Time, currency string, now time.Time) *Transaction {
	return &Transaction{
		OrganisationID:  actor.OrganisationID,
		Kind:            kind,
		State:           StateDraft,
		CurrencyCode:    currency,
		ExchangeRate:    decimal.NewFromInt(1),
		DiscountPercent: decimal.Zero,
		TaxPercent:      decimal.Zero,
		GrossTotal:      decimal.Zero,
		Total:           decimal.Zero,
		OriginalTotal:   decimal.Zero,
		Balance:         decimal.Zero,
		IssueDate:       DateOf(issueDate),
		PaymentDate:     DateOf(issueDate),
		Cash:            true,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
}

// Validate checks the attributes that recalculation cannot repair.
func (t *Transaction) Validate() error {
	if _, err := t.Kind.RefPrefix(); err != nil {
		return err
	}
	if _, err := ParseState(string(t.State)); err != nil {
		return err
	}
	if t.CurrencyCode == "" {
		return fmt.Errorf("currency code is required")
	}
	if t.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidExchangeRate
	}
	if t.DiscountPercent.IsNegative() || t.DiscountPercent.GreaterThan(hundred) {
		return fmt.Errorf("discount percent must be between 0 and 100")
	}
	if t.TaxPercent.IsNegative() {
		return fmt.Errorf("tax percent must not be negative")
	}
	for i, d := range t.Details {
		if d.Quantity.Sign() <= 0 {
			return fmt.Errorf("detail %d: %w", i, ErrNonPositiveQuantity)
		}
		if d.Price.IsNegative() {
			return fmt.Errorf("detail %d: %w", i, ErrNegativeAmount)
		}
	}
	return nil
}

// Subtotal sums the totals of every line not marked deleted.
func (t *Transaction) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range t.Details {
		if !d.Deleted {
			sum = sum.Add(d.Total())
		}
	}
	return sum
}

// TotalDiscount is gross_total * discount / 100.
func (t *Transaction) TotalDiscount() decimal.Decimal {
	return Percent(t.GrossTotal, t.DiscountPercent)
}

// TotalTaxes is (gross_total - discount) * tax / 100.
func (t *Transaction) TotalTaxes() decimal.Decimal {
	return Percent(t.GrossTotal.Sub(t.TotalDiscount()), t.TaxPercent)
}

// Recalculate rebuilds gross total, total and balance from the detail lines
// and then derives the state. Run it before persisting an edit of lines or
// percentages. Payment-driven balance changes must not call it.
func (t *Transaction) Recalculate() error {
	if t.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidExchangeRate
	}

	kept := t.Details[:0]
	for _, d := range t.Details {
		if !d.Deleted {
			kept = append(kept, d)
		}
	}
	t.Details = kept

	t.GrossTotal = RoundMoney(t.Subtotal())
	t.Total = RoundMoney(t.GrossTotal.Sub(t.TotalDiscount()).Add(t.TotalTaxes()))
	t.OriginalTotal = t.Total

	balance, err := ConvertByRate(t.Total, t.ExchangeRate)
	if err != nil {
		return err
	}
	t.Balance = RoundMoney(balance)

	t.DeriveState()
	return nil
}

// DeriveState applies the balance driven state rule:
// settled -> Paid, Paid with balance -> Approved, unset -> Draft.
// Any other explicitly set state is left alone.
func (t *Transaction) DeriveState() {
	switch {
	case IsSettled(t.Balance):
		t.State = StatePaid
	case t.State == StatePaid:
		t.State = StateApproved
	case t.State == "":
		t.State = StateDraft
	}
}

// SettleState derives the state and, the first time it reaches Paid, stamps
// the actor as approver. A later revert to Approved keeps that approver.
func (t *Transaction) SettleState(actor Actor, now time.Time) {
	t.DeriveState()
	if t.State == StatePaid && t.ApproverID == "" {
		t.stampApprover(actor, now)
		due := DateOf(now)
		t.DueDate = &due
	}
}

// Approve moves a draft to Approved. It reports false and changes nothing for
// any other state.
func (t *Transaction) Approve(actor Actor, now time.Time) bool {
	if t.State != StateDraft {
		return false
	}
	t.State = StateApproved
	t.stampApprover(actor, now)
	return true
}

func (t *Transaction) stampApprover(actor Actor, now time.Time) {
	t.ApproverID = actor.UserID
	at := now
	t.ApprovedAt = &at
}

// Status is the state as seen on the given day; approved transactions whose
// payment date has passed read as Due.
func (t *Transaction) Status(today time.Time) TransactionStatus {
	switch t.State {
	case StateApproved:
		if !t.PaymentDate.IsZero() && t.PaymentDate.Before(DateOf(today)) {
			return StatusDue
		}
		return StatusApproved
	case StatePaid:
		return StatusPaid
	default:
		return StatusDraft
	}
}

// ApplyPayment lowers the balance by amount. It does not touch the state;
// call SettleState afterwards.
func (t *Transaction) ApplyPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(t.Balance) {
		return fmt.Errorf("%w: amount %s, balance %s", ErrInsufficientBalance, amount.StringFixed(MoneyScale), t.Balance.StringFixed(MoneyScale))
	}
	t.Balance = RoundMoney(t.Balance.Sub(amount))
	return nil
}

// RealTotal is the total converted by the exchange rate, unrounded.
func (t *Transaction) RealTotal() (decimal.Decimal, error) {
	return ConvertByRate(t.Total, t.ExchangeRate)
}

// TotalCurrency is RealTotal rounded to the money scale.
func (t *Transaction) TotalCurrency() (decimal.Decimal, error) {
	v, err := t.RealTotal()
	if err != nil {
		return decimal.Zero, err
	}
	return RoundMoney(v), nil
}

// UpdatePaymentDate points the payment date at the next unpaid plan entry, or
// at the issue date when nothing is scheduled.
func (t *Transaction) UpdatePaymentDate() {
	if next := t.NextDue(); next != nil {
		t.PaymentDate = next.DueDate
		return
	}
	t.PaymentDate = t.IssueDate
}

// UpdateCash marks the transaction as cash when it has no plan entries.
func (t *Transaction) UpdateCash() {
	t.Cash = len(t.PayPlans) == 0
}

// AddPayPlan inserts an installment keeping the plan ordered by due date.
// Entries sharing a due date keep their insertion order.
func (t *Transaction) AddPayPlan(p PayPlan) *PayPlan {
	p.TransactionID = t.TransactionID
	p.DueDate = DateOf(p.DueDate)
	t.PayPlans = append(t.PayPlans, p)
	sort.SliceStable(t.PayPlans, func(i, j int) bool {
		return t.PayPlans[i].DueDate.Before(t.PayPlans[j].DueDate)
	})
	t.UpdateCash()
	for i := range t.PayPlans {
		if t.PayPlans[i].PayPlanID == p.PayPlanID {
			return &t.PayPlans[i]
		}
	}
	return nil
}

// UnpaidPayPlans returns the unpaid entries, earliest due first.
func (t *Transaction) UnpaidPayPlans() []PayPlan {
	unpaid := make([]PayPlan, 0, len(t.PayPlans))
	for _, p := range t.PayPlans {
		if !p.Paid {
			unpaid = append(unpaid, p)
		}
	}
	return unpaid
}

// NextDue returns the first unpaid entry or nil.
func (t *Transaction) NextDue() *PayPlan {
	for i := range t.PayPlans {
		if !t.PayPlans[i].Paid {
			return &t.PayPlans[i]
		}
	}
	return nil
}

// MarkPayPlanPaid flags one entry as paid.
func (t *Transaction) MarkPayPlanPaid(payPlanID string) error {
	for i := range t.PayPlans {
		if t.PayPlans[i].PayPlanID == payPlanID {
			t.PayPlans[i].Paid = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPayPlanNotFound, payPlanID)
}

// CoveredPayPlans returns, in due order, the unpaid entries a principal amount
// fully pays off. Coverage stops at the first entry the remainder cannot pay.
func (t *Transaction) CoveredPayPlans(amount decimal.Decimal) []string {
	var ids []string
	remaining := amount
	for _, p := range t.PayPlans {
		if p.Paid {
			continue
		}
		if remaining.LessThan(p.Amount) {
			break
		}
		remaining = remaining.Sub(p.Amount)
		ids = append(ids, p.PayPlanID)
	}
	return ids
}

// SettlePayPlans marks as paid the unpaid entries that the money received so
// far fully covers, earliest due first, and returns their ids. Money counts
// against the unscheduled part of the balance before any entry.
func (t *Transaction) SettlePayPlans() []string {
	ids := t.CoveredPayPlans(t.PayPlansTotal().Sub(t.Balance))
	for _, id := range ids {
		_ = t.MarkPayPlanPaid(id)
	}
	return ids
}

// PayPlansTotal sums the amounts of the unpaid entries.
func (t *Transaction) PayPlansTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range t.PayPlans {
		if !p.Paid {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// PayPlansBalance is the part of the balance not yet scheduled.
func (t *Transaction) PayPlansBalance() decimal.Decimal {
	return t.Balance.Sub(t.PayPlansTotal())
}

// SuggestedPayment is what the next payment should be: the next unpaid entry
// when there is a plan, the whole balance otherwise.
func (t *Transaction) SuggestedPayment() (amount, interests decimal.Decimal) {
	if next := t.NextDue(); next != nil {
		return next.Amount, next.InterestsPenalties
	}
	return t.Balance, decimal.Zero
}
