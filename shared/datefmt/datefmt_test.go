package datefmt_test

import (
	"kmc/shared/datefmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatters(t *testing.T) {
	at := time.Date(2025, 10, 5, 7, 3, 0, 0, time.UTC)

	assert.Equal(t, "20251005", datefmt.ToYMD(at))
	assert.Equal(t, "0703", datefmt.ToHHMM(at))
	assert.Equal(t, "202510", datefmt.YM(at))
}

func TestDisplayHelpers(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{name: "display date", fn: datefmt.DisplayYMD, input: "20251005", expected: "2025-10-05"},
		{name: "display malformed date unchanged", fn: datefmt.DisplayYMD, input: "2025105", expected: "2025105"},
		{name: "display time", fn: datefmt.DisplayHHMM, input: "1400", expected: "14:00"},
		{name: "display empty time unchanged", fn: datefmt.DisplayHHMM, input: "", expected: ""},
		{name: "strip dashes", fn: datefmt.StripDashes, input: " 2025-10-05 ", expected: "20251005"},
		{name: "strip dashes already compact", fn: datefmt.StripDashes, input: "20251005", expected: "20251005"},
		{name: "strip colon", fn: datefmt.StripColon, input: "11:00", expected: "1100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}

func TestValidation(t *testing.T) {
	assert.True(t, datefmt.ValidYMD("20240229"))
	assert.True(t, datefmt.ValidYMD("2025-10-05"))
	assert.False(t, datefmt.ValidYMD("20250229"))
	assert.False(t, datefmt.ValidYMD("2025105"))

	assert.True(t, datefmt.ValidHHMM("2359"))
	assert.True(t, datefmt.ValidHHMM("09:30"))
	assert.False(t, datefmt.ValidHHMM("2460"))
	assert.False(t, datefmt.ValidHHMM("930"))
}

func TestAddDays(t *testing.T) {
	next, err := datefmt.AddDays("20251230", 5)
	require.NoError(t, err)
	assert.Equal(t, "20260104", next)

	_, err = datefmt.AddDays("bad", 1)
	assert.Error(t, err)
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
		wantErr  bool
	}{
		{name: "single day", start: "20251015", end: "20251015", expected: []string{"20251015"}},
		{name: "across month end", start: "2025-10-30", end: "2025-11-02", expected: []string{"20251030", "20251031", "20251101", "20251102"}},
		{name: "reversed range", start: "20251016", end: "20251015", wantErr: true},
		{name: "malformed start", start: "2025-13-01", end: "20251015", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := datefmt.ExpandRange(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}
}

func TestWithin(t *testing.T) {
	assert.True(t, datefmt.Within("20251015", "20251015", "20251017"))
	assert.True(t, datefmt.Within("20251017", "20251015", "20251017"))
	assert.False(t, datefmt.Within("20251018", "20251015", "20251017"))
}
