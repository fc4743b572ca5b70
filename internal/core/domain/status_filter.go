package domain

import (
	"fmt"
	"time"
)

// StatusFilter selects transactions for listing.
type StatusFilter string

const (
	FilterAll             StatusFilter = "all"
	FilterDraft           StatusFilter = "draft"
	FilterApproved        StatusFilter = "approved"
	FilterPaid            StatusFilter = "paid"
	FilterDue             StatusFilter = "due"
	FilterAwaitingPayment StatusFilter = "awaiting_payment" // approved and paid in installments
)

// ParseStatusFilter maps a query value to a filter; empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterDraft, FilterApproved, FilterPaid, FilterDue, FilterAwaitingPayment:
		return f, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Matches reports whether t is selected by f on the given day.
func (f StatusFilter) Matches(t *Transaction, today time.Time) bool {
	switch f {
	case FilterDraft:
		return t.State == StateDraft
	case FilterApproved:
		return t.State == StateApproved
	case FilterPaid:
		return t.State == StatePaid
	case FilterDue:
		return t.Status(today) == StatusDue
	case FilterAwaitingPayment:
		return t.State == StateApproved && !t.Cash
	default:
		return true
	}
}
