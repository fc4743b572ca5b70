package domain

import "errors"

var (
	ErrInvalidExchangeRate = errors.New("exchange rate must be greater than zero")
	ErrInsufficientBalance = errors.New("amount exceeds the remaining balance")
	ErrUnknownKind         = errors.New("unknown transaction kind")
	ErrUnknownState        = errors.New("unknown transaction state")
	ErrInvalidRefNumber    = errors.New("invalid reference number")
	ErrPayPlanNotFound     = errors.New("pay plan entry not found")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrTooManyDecimals     = errors.New("amount has more than two decimals")
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")
)
