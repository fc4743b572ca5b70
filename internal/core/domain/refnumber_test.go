package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_accounting/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRefNumber(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		kind    domain.TransactionKind
		latest  string
		want    string
		wantErr error
	}{
		{name: "first of the year", kind: domain.KindExpense, latest: "", want: "E-26-0001"},
		{name: "increments", kind: domain.KindExpense, latest: "E-26-0001", want: "E-26-0002"},
		{name: "numeric carry", kind: domain.KindExpense, latest: "E-26-0009", want: "E-26-0010"},
		{name: "past four digits", kind: domain.KindIncome, latest: "I-26-9999", want: "I-26-10000"},
		{name: "year rollover resets", kind: domain.KindIncome, latest: "I-25-0420", want: "I-26-0001"},
		{name: "loan prefixes", kind: domain.KindLoanGive, latest: "LG-26-0003", want: "LG-26-0004"},
		{name: "garbage latest", kind: domain.KindBuy, latest: "B-2026-1", wantErr: domain.ErrInvalidRefNumber},
		{name: "unknown kind", kind: "GIFT", latest: "", wantErr: domain.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextRefNumber(tt.kind, tt.latest, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseRefNumber(t *testing.T) {
	got, err := domain.ParseRefNumber("LR-07-0012")
	require.NoError(t, err)
	assert.Equal(t, domain.RefNumber{Prefix: "LR", Year: 7, Sequence: 12}, got)
	assert.Equal(t, "LR-07-0012", got.String())

	for _, bad := range []string{"", "E", "E-26", "E-26-01", "-26-0001", "E-xx-0001", "E-26-0000", "E-26-00a1"} {
		_, err := domain.ParseRefNumber(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidRefNumber, "input %q", bad)
	}
}
