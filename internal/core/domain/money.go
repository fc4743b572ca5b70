package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimals persisted for every amount.
const MoneyScale int32 = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to MoneyScale using half-up (half away from zero).
// Only call it where a value is persisted or compared for a state change.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// HasMoneyScale reports whether d carries no digits beyond MoneyScale.
// Trailing zeros are allowed: 5.000 fits, 5.005 does not.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// Percent returns base * pct / 100 without rounding.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// ConvertByRate divides an amount by an exchange rate without rounding.
func ConvertByRate(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidExchangeRate
	}
	return amount.Div(rate), nil
}

// IsSettled reports whether a balance counts as fully paid once rounded.
func IsSettled(balance decimal.Decimal) bool {
	return RoundMoney(balance).LessThanOrEqual(decimal.Zero)
}

// SumMoney adds a list of amounts.
func SumMoney(amounts ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum
}
