package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decimalBounds struct {
	Amount   decimal.Decimal `validate:"dgt=0"`
	Interest decimal.Decimal `validate:"dgte=0"`
	Discount decimal.Decimal `validate:"dlte=100"`
}

func TestRegisterDecimalValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerDecimalValidators(v))

	ok := decimalBounds{Amount: decimal.RequireFromString("0.01"), Discount: decimal.NewFromInt(100)}
	assert.NoError(t, v.Struct(ok))

	bad := decimalBounds{Amount: decimal.Zero, Interest: decimal.RequireFromString("-1"), Discount: decimal.RequireFromString("100.5")}
	err := v.Struct(bad)
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	assert.ElementsMatch(t, []string{"dgt", "dgte", "dlte"}, tags)
}
