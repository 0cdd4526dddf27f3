package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "empty clears", input: "  "},
		{name: "dots", input: "2025-06-01..2025-06-30", wantStart: "2025-06-01", wantEnd: "2025-06-30"},
		{name: "space", input: "2025-06-01 2025-06-30", wantStart: "2025-06-01", wantEnd: "2025-06-30"},
		{name: "comma", input: "2025-06-01, 2025-06-30", wantStart: "2025-06-01", wantEnd: "2025-06-30"},
		{name: "open end", input: "2025-06-01..", wantStart: "2025-06-01"},
		{name: "open start", input: "..2025-06-30", wantEnd: "2025-06-30"},
		{name: "single date", input: "2025-06-01", wantStart: "2025-06-01"},
		{name: "bad start", input: "june..2025-06-30", wantErr: true},
		{name: "bad end", input: "2025-06-01..2025-13-01", wantErr: true},
		{name: "reversed", input: "2025-06-30..2025-06-01", wantErr: true},
		{name: "too many fields", input: "2025-06-01 2025-06-02 2025-06-03", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseDateRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestFormatDateRangeRoundTrip(t *testing.T) {
	assert.Equal(t, "", FormatDateRange("", ""))

	start, end, err := ParseDateRange(FormatDateRange("2025-01-01", ""))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, "", end)

	start, end, err = ParseDateRange(FormatDateRange("2025-01-01", "2025-02-01"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", start)
	assert.Equal(t, "2025-02-01", end)
}
