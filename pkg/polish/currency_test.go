package polish

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Thousands with decimals",
			amount:   1234.56,
			expected: "1 234,56 zł",
		},
		{
			name:     "Zero",
			amount:   0,
			expected: "0,00 zł",
		},
		{
			name:     "Negative keeps the minus before the first digit",
			amount:   -1234.56,
			expected: "-1 234,56 zł",
		},
		{
			name:     "Millions get two group separators",
			amount:   1234567.89,
			expected: "1 234 567,89 zł",
		},
		{
			name:     "No grouping below one thousand",
			amount:   999.99,
			expected: "999,99 zł",
		},
		{
			name:     "Exactly one thousand",
			amount:   1000,
			expected: "1 000,00 zł",
		},
		{
			name:     "Sub-złoty amount",
			amount:   0.07,
			expected: "0,07 zł",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		isNaN    bool
	}{
		{
			name:     "Formatted amount with symbol",
			input:    "1 234,56 zł",
			expected: 1234.56,
		},
		{
			name:     "Amount without symbol",
			input:    "1234,56",
			expected: 1234.56,
		},
		{
			name:     "Negative amount",
			input:    "-1 234,56 zł",
			expected: -1234.56,
		},
		{
			name:     "Empty string parses to zero",
			input:    "",
			expected: 0,
		},
		{
			name:     "Whitespace only parses to zero",
			input:    "   ",
			expected: 0,
		},
		{
			name:  "Non-numeric residue yields NaN",
			input: "abc zł",
			isNaN: true,
		},
		{
			name:  "Mixed digits and letters yield NaN",
			input: "12x34,56 zł",
			isNaN: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := ParseCurrency(tt.input)

			if tt.isNaN {
				assert.True(t, math.IsNaN(value))
				return
			}
			assert.InDelta(t, tt.expected, value, 0.0001)
		})
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 12.34, 999.99, 1000, 1234.56, 1234567.89, 50000}

	for _, amount := range amounts {
		parsed := ParseCurrency(FormatCurrency(amount))
		assert.InDelta(t, amount, parsed, 0.001, "round trip of %v", amount)
	}
}

func TestFormatCurrencyInCustomLocale(t *testing.T) {
	plain := CurrencyLocale{Decimal: '.', Group: ',', Symbol: ""}

	assert.Equal(t, "1,234.56", FormatCurrencyIn(1234.56, plain))
	assert.InDelta(t, 1234.56, ParseCurrencyIn("1,234.56", plain), 0.0001)
}
