package services

import "errors"

var (
	ErrCounterAccountInsufficientBalance = errors.New("counter account balance does not cover amount plus interest")
	ErrCounterAccountNotApproved         = errors.New("counter account must be approved")
	ErrLedgerPostFailed                  = errors.New("ledger post failed")
	ErrLedgerZeroOrInvalidAmount         = errors.New("ledger amount must be greater than zero")
	ErrTransactionHasPayments            = errors.New("transaction has payments or ledger entries")
	ErrTransactionLocked                 = errors.New("transaction already moved money and can no longer be edited")
	ErrTransactionAlreadyPaid            = errors.New("transaction is already paid")
	ErrCurrencyMismatch                  = errors.New("payment currency does not match the transaction currency")
	ErrSameCounterAccount                = errors.New("counter account must differ from the target")
)
