package domain_test

import (
	"testing"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"-1.005", "-1.01"},
		{"2.675", "2.68"},
		{"0.0049", "0.00"},
		{"17", "17.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assertMoney(t, tt.want, domain.RoundMoney(dec(tt.in)))
		})
	}
}

func TestConvertByRate(t *testing.T) {
	got, err := domain.ConvertByRate(dec("10"), dec("3"))
	require.NoError(t, err)
	assert.True(t, got.GreaterThan(dec("3.333")), "conversion must not round early")
	assertMoney(t, "3.33", domain.RoundMoney(got))

	_, err = domain.ConvertByRate(dec("10"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidExchangeRate)
	_, err = domain.ConvertByRate(dec("10"), dec("-0.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidExchangeRate)
}

func TestIsSettled(t *testing.T) {
	assert.True(t, domain.IsSettled(dec("0")))
	assert.True(t, domain.IsSettled(dec("-3")))
	assert.True(t, domain.IsSettled(dec("0.004")))
	assert.False(t, domain.IsSettled(dec("0.005")))
	assert.False(t, domain.IsSettled(dec("12")))
}

func TestHasMoneyScale(t *testing.T) {
	assert.True(t, domain.HasMoneyScale(dec("5")))
	assert.True(t, domain.HasMoneyScale(dec("5.01")))
	assert.True(t, domain.HasMoneyScale(dec("5.000")))
	assert.True(t, domain.HasMoneyScale(dec("-0.10")))
	assert.False(t, domain.HasMoneyScale(dec("5.005")))
	assert.False(t, domain.HasMoneyScale(dec("0.001")))
}

func TestSumHelpers(t *testing.T) {
	assertMoney(t, "6.50", domain.SumMoney(dec("1"), dec("2.5"), dec("3")))

	payments := []domain.Payment{
		{Amount: dec("5"), InterestsPenalties: dec("0.5")},
		{Amount: dec("12"), InterestsPenalties: dec("0")},
	}
	assertMoney(t, "17.00", domain.TotalPayments(payments))
	assertMoney(t, "17.50", domain.TotalPaymentsWithInterests(payments))

	entries := []domain.LedgerEntry{
		{Amount: domain.OpPayOut.Signed(dec("5")), Operation: domain.OpPayOut},
		{Amount: domain.OpPayOut.Signed(dec("12")), Operation: domain.OpPayOut},
	}
	assertMoney(t, "-17.00", domain.SumLedger(entries))
	assertMoney(t, "3.00", domain.OpPayIn.Signed(dec("3")))
}
