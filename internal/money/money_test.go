package money_test

import (
	"encoding/json"
	"testing"

	"atelie-backend/internal/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12,50", "12.5"},
		{"1.234,56", "1234.56"},
		{"R$ 10,00", "10"},
		{"12.5", "12.5"},
		{"1.234.567", "1234567"},
		{"  7 ", "7"},
		{"", "0"},
		{"abc", "0"},
		{"12,5,0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.ParseDecimal(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 3, money.ParseQuantity("3"))
	assert.Equal(t, 2, money.ParseQuantity("2,9"))
	assert.Equal(t, 0, money.ParseQuantity("-4"))
	assert.Equal(t, 0, money.ParseQuantity("muitas"))
	assert.Equal(t, 0, money.ParseQuantity(""))
}

func TestParseQuantity_RejectsOversized(t *testing.T) {
	assert.Equal(t, money.MaxQuantity, money.ParseQuantity("1000000"))
	assert.Equal(t, 0, money.ParseQuantity("1000001"))
	assert.Equal(t, 0, money.ParseQuantity("99999999999999999999999999999"))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 50,00", money.FormatBRL(decimal.NewFromInt(50)))
	assert.Equal(t, "R$ 1.234,56", money.FormatBRL(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 1.000.000,10", money.FormatBRL(decimal.RequireFromString("1000000.1")))
	assert.Equal(t, "R$ 0,00", money.FormatBRL(decimal.Zero))
	assert.Equal(t, "-R$ 12,30", money.FormatBRL(decimal.RequireFromString("-12.3")))
}

func TestFormatInput_RoundTrip(t *testing.T) {
	d := decimal.RequireFromString("1234.56")
	assert.True(t, money.ParseDecimal(money.FormatInput(d)).Equal(d))
}

func TestInput_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Preco      money.Input  `json:"preco"`
		Quantidade money.Input  `json:"quantidade"`
		Opcional   *money.Input `json:"opcional"`
	}

	err := json.Unmarshal([]byte(`{"preco":"12,50","quantidade":3,"opcional":null}`), &payload)
	require.NoError(t, err)

	assert.True(t, payload.Preco.Decimal().Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 3, payload.Quantidade.Quantity())
	assert.Nil(t, payload.Opcional)
	assert.False(t, payload.Preco.IsBlank())
}
