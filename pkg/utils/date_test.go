package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		wantErr  bool
	}{
		{
			name:     "Formato datetime do GoAffPro",
			input:    "2024-03-05 14:30:00",
			expected: timePtr(time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)),
		},
		{
			name:     "RFC3339",
			input:    "2024-03-05T14:30:00Z",
			expected: timePtr(time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)),
		},
		{
			name:     "Somente data",
			input:    "2024-03-05",
			expected: timePtr(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "Vazio é erro",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Formato desconhecido é erro",
			input:   "05/03/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseTimestamp(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(*parsed))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", FormatDate(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 99.99, RoundWithTwoDecimalPlace(99.991))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(99.999))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
