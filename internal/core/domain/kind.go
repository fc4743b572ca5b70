package domain

import "fmt"

// TransactionKind is the family of a financial document.
type TransactionKind string

const (
	KindIncome      TransactionKind = "INCOME"
	KindExpense     TransactionKind = "EXPENSE"
	KindBuy         TransactionKind = "BUY"
	KindLoanReceive TransactionKind = "LOAN_RECEIVE"
	KindLoanGive    TransactionKind = "LOAN_GIVE"
)

// AllKinds lists every kind in a stable order.
var AllKinds = []TransactionKind{KindIncome, KindExpense, KindBuy, KindLoanReceive, KindLoanGive}

// ParseKind validates a raw kind string.
func ParseKind(s string) (TransactionKind, error) {
	k := TransactionKind(s)
	if _, err := k.RefPrefix(); err != nil {
		return "", err
	}
	return k, nil
}

// RefPrefix is the leading segment of the kind's reference numbers.
func (k TransactionKind) RefPrefix() (string, error) {
	switch k {
	case KindIncome:
		return "I", nil
	case KindExpense:
		return "E", nil
	case KindBuy:
		return "B", nil
	case KindLoanReceive:
		return "LR", nil
	case KindLoanGive:
		return "LG", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// IsIncoming reports whether money flows in when this kind is settled.
// Income and given loans are collected; expenses, purchases and received
// loans are paid back.
func (k TransactionKind) IsIncoming() (bool, error) {
	switch k {
	case KindIncome, KindLoanGive:
		return true, nil
	case KindExpense, KindBuy, KindLoanReceive:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}

// PrincipalOperation is the ledger operation used for principal settlements.
func (k TransactionKind) PrincipalOperation() (OperationKind, error) {
	in, err := k.IsIncoming()
	if err != nil {
		return "", err
	}
	if in {
		return OpPayIn, nil
	}
	return OpPayOut, nil
}

// InterestOperation is the ledger operation used for interest and penalties.
func (k TransactionKind) InterestOperation() (OperationKind, error) {
	in, err := k.IsIncoming()
	if err != nil {
		return "", err
	}
	if in {
		return OpInterestIn, nil
	}
	return OpInterestOut, nil
}

// PayType names the settlement direction for display.
func (k TransactionKind) PayType() string {
	if in, err := k.IsIncoming(); err == nil && in {
		return "collect"
	}
	return "pay"
}

// TransactionState is the stored lifecycle state.
type TransactionState string

const (
	StateDraft    TransactionState = "DRAFT"
	StateApproved TransactionState = "APPROVED"
	StatePaid     TransactionState = "PAID"
)

// TransactionStatus is what a reader sees: the stored state plus the derived Due.
type TransactionStatus string

const (
	StatusDraft    TransactionStatus = "DRAFT"
	StatusApproved TransactionStatus = "APPROVED"
	StatusPaid     TransactionStatus = "PAID"
	StatusDue      TransactionStatus = "DUE"
)

// ParseState validates a raw state string. The empty string is allowed and
// means "unset".
func ParseState(s string) (TransactionState, error) {
	switch st := TransactionState(s); st {
	case "", StateDraft, StateApproved, StatePaid:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
}
