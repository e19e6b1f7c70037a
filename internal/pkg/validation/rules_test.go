package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCNIC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "12345-1234567-1", true},
		{"short first group", "1234-1234567-1", false},
		{"short middle group", "12345-123456-1", false},
		{"letters", "abcde-1234567-1", false},
		{"missing dashes", "1234512345671", false},
		{"empty", "", false},
		{"trailing garbage", "12345-1234567-12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCNIC(tt.input))
		})
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "+923123456789", true},
		{"local format", "03123456789", false},
		{"too short", "+92312345678", false},
		{"trailing letter", "+921234567890a", false},
		{"wrong country code", "+913123456789", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15-03-2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestIsFutureDate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsFutureDate("2025-06-02", now))
	assert.False(t, IsFutureDate("2025-05-31", now))
	assert.False(t, IsFutureDate("not-a-date", now))
}

func TestIsOneOf(t *testing.T) {
	assert.True(t, IsOneOf("M", "M", "F"))
	assert.True(t, IsOneOf("Day Scholar", "Day Scholar", "Hostel Boarder"))
	assert.False(t, IsOneOf("m", "M", "F"))
	assert.False(t, IsOneOf("", "M", "F"))
}

func TestIntInRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		min     int
		max     int
		wantN   int
		wantOK  bool
	}{
		{"in range", "25", 1, 120, 25, true},
		{"lower bound", "1", 1, 120, 1, true},
		{"upper bound", "120", 1, 120, 120, true},
		{"above range", "130", 1, 120, 130, false},
		{"below range", "0", 1, 120, 0, false},
		{"not a number", "abc", 1, 120, 0, false},
		{"empty", "", 1, 120, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := IntInRange(tt.input, tt.min, tt.max)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantN, n)
			}
		})
	}
}
