package polish

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateREGON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "Valid 9-digit REGON",
			input:    "123456785",
			expected: true,
		},
		{
			name:     "Valid 9-digit REGON with leading zeros",
			input:    "000331501",
			expected: true,
		},
		{
			name:     "Valid 9-digit REGON with checksum mod result 10 treated as 0",
			input:    "123456740",
			expected: true,
		},
		{
			name:     "Valid 14-digit REGON",
			input:    "12345678512347",
			expected: true,
		},
		{
			name:     "Valid 14-digit REGON with zero check digit",
			input:    "00033150100000",
			expected: true,
		},
		{
			name:     "9-digit with wrong check digit",
			input:    "123456786",
			expected: false,
		},
		{
			name:     "14-digit with wrong final check digit",
			input:    "12345678512348",
			expected: false,
		},
		{
			name:     "14-digit with corrupted 9-digit prefix",
			input:    "12345678612347",
			expected: false,
		},
		{
			name:     "Wrong length",
			input:    "12345678",
			expected: false,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "Non-digit characters",
			input:    "12345678X",
			expected: false,
		},
		{
			name:     "Valid REGON with separators",
			input:    "123-456-785",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateREGON(tt.input))
		})
	}
}

func TestValidateREGONSingleDigitCorruption(t *testing.T) {
	valid := "123456785"
	assert.True(t, ValidateREGON(valid))

	for pos := 0; pos < len(valid); pos++ {
		for digit := '0'; digit <= '9'; digit++ {
			if byte(digit) == valid[pos] {
				continue
			}
			corrupted := valid[:pos] + string(digit) + valid[pos+1:]
			assert.False(t, ValidateREGON(corrupted),
				"corruption at position %d should invalidate %s", pos, corrupted)
		}
	}
}

func TestValidateREGON14PrefixMustBeValid(t *testing.T) {
	regon := "12345678512347"
	assert.True(t, ValidateREGON(regon))
	assert.True(t, ValidateREGON(regon[:9]), "embedded 9-digit prefix must validate on its own")
	assert.True(t, strings.HasPrefix(regon, "123456785"))
}
