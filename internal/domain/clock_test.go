package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ClockTime
		wantErr  bool
	}{
		{
			name:     "should parse morning time",
			input:    "08:30",
			expected: ClockTime{Hour: 8, Minute: 30},
		},
		{
			name:     "should parse midnight",
			input:    "00:00",
			expected: ClockTime{},
		},
		{
			name:     "should parse end of day",
			input:    "23:59",
			expected: ClockTime{Hour: 23, Minute: 59},
		},
		{
			name:    "should reject hour out of range",
			input:   "24:00",
			wantErr: true,
		},
		{
			name:    "should reject minute out of range",
			input:   "10:60",
			wantErr: true,
		},
		{
			name:    "should reject garbage",
			input:   "noon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseClockTime(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestClockTime_Minutes(t *testing.T) {
	assert.Equal(t, 0, ClockTime{}.Minutes())
	assert.Equal(t, 510, ClockTime{Hour: 8, Minute: 30}.Minutes())
	assert.Equal(t, 1439, ClockTime{Hour: 23, Minute: 59}.Minutes())
}

func TestClockTime_DurationUntil(t *testing.T) {
	start := ClockTime{Hour: 9, Minute: 0}
	end := ClockTime{Hour: 10, Minute: 30}

	assert.Equal(t, 90*time.Minute, start.DurationUntil(end))
}

func TestClockTime_JSONRoundTrip(t *testing.T) {
	original := ClockTime{Hour: 7, Minute: 5}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(data))

	var decoded ClockTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, time.March, 9, 22, 15, 0, 0, time.Local)
	assert.Equal(t, "2025-03-09", DateOf(ts))
	assert.True(t, IsValidDate("2025-03-09"))
	assert.False(t, IsValidDate("09/03/2025"))
}
