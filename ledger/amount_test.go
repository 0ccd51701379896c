package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		value  string
		symbol string
		prefix bool
	}{
		{
			name:   "prefix symbol",
			input:  "$100",
			value:  "100",
			symbol: "$",
			prefix: true,
		},
		{
			name:   "suffix symbol",
			input:  "100 USD",
			value:  "100",
			symbol: "USD",
			prefix: false,
		},
		{
			name:   "negative with suffix",
			input:  "-50.25 EUR",
			value:  "-50.25",
			symbol: "EUR",
			prefix: false,
		},
		{
			name:   "symbols on both sides concatenate",
			input:  "$100USD",
			value:  "100",
			symbol: "$USD",
			prefix: true,
		},
		{
			name:   "purely numeric",
			input:  "123.45",
			value:  "123.45",
			symbol: "",
			prefix: true,
		},
		{
			name:   "whitespace around symbol is trimmed",
			input:  "  100  USD  ",
			value:  "100",
			symbol: "USD",
			prefix: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, a.Value.Equal(decimal.RequireFromString(tt.value)),
				"value %s, want %s", a.Value, tt.value)
			assert.Equal(t, tt.symbol, a.Unit.Symbol)
			assert.Equal(t, tt.prefix, a.Unit.Prefix)
			assert.Equal(t, int32(2), a.Unit.Precision)
		})
	}
}

func TestParseAmount_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no numeric token", input: "abc"},
		{name: "empty string", input: ""},
		{name: "double decimal point", input: "1.2.3"},
		{name: "bare minus", input: "-"},
		{name: "double minus", input: "--5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAmount(tt.input)
			require.Error(t, err)
			var perr ParseError
			assert.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestAmountToLedger(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		unit     Unit
		expected string
	}{
		{
			name:     "prefixed no space",
			value:    "100",
			unit:     NewUnit("$"),
			expected: "$100.00",
		},
		{
			name:     "suffixed one space",
			value:    "100",
			unit:     Unit{Symbol: "USD", Precision: 2, Prefix: false},
			expected: "100.00 USD",
		},
		{
			name:     "rounds half away from zero",
			value:    "1.005",
			unit:     EmptyUnit(),
			expected: "1.01",
		},
		{
			name:     "rounds half away from zero when negative",
			value:    "-1.005",
			unit:     EmptyUnit(),
			expected: "-1.01",
		},
		{
			name:     "pads with trailing zeros",
			value:    "1.5",
			unit:     Unit{Symbol: "BTC", Precision: 4, Prefix: false},
			expected: "1.5000 BTC",
		},
		{
			name:     "zero precision drops the point",
			value:    "1234.56",
			unit:     Unit{Symbol: "JPY", Precision: 0, Prefix: false},
			expected: "1235 JPY",
		},
		{
			name:     "empty suffixed symbol keeps its space",
			value:    "1",
			unit:     Unit{Precision: 2, Prefix: false},
			expected: "1.00 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAmount(decimal.RequireFromString(tt.value), tt.unit)
			assert.Equal(t, tt.expected, a.ToLedger())
		})
	}
}

func TestAmountToLedger_Idempotent(t *testing.T) {
	a, err := ParseAmount("$19.99")
	require.NoError(t, err)
	assert.Equal(t, a.ToLedger(), a.ToLedger())
}

func TestAmountUnitIsOwned(t *testing.T) {
	a, err := ParseAmount("100 USD")
	require.NoError(t, err)

	b := a
	b.Unit.Symbol = "EUR"
	b.Unit.Precision = 0

	assert.Equal(t, "100.00 USD", a.ToLedger())
	assert.Equal(t, "100 EUR", b.ToLedger())
}
