package polish

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "15.03.2024", FormatDate(date))
	assert.Equal(t, "2024-03-15", FormatDateAs(date, "2006-01-02"))
	assert.Equal(t, "15.03.2024", FormatDateAs(date, ""))
}

func TestParseDate(t *testing.T) {
	expected := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "Polish dotted format",
			input:    "15.03.2024",
			expected: expected,
		},
		{
			name:     "Slash format",
			input:    "15/03/2024",
			expected: expected,
		},
		{
			name:     "ISO fallback",
			input:    "2024-03-15",
			expected: expected,
		},
		{
			name:     "Surrounding whitespace",
			input:    "  15.03.2024  ",
			expected: expected,
		},
		{
			name:        "American format is not accepted",
			input:       "03-15-2024",
			expectError: true,
		},
		{
			name:        "Empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "Garbage",
			input:       "piętnasty marca",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed), "expected %v, got %v", tt.expected, parsed)
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.February, 28, 0, 0, 0, 0, time.UTC),
	}

	for _, date := range dates {
		parsed, err := ParseDate(FormatDate(date))
		assert.NoError(t, err)
		assert.True(t, date.Equal(parsed))
	}
}
