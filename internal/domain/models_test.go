package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"", StatusAll, true},
		{"all", StatusAll, true},
		{"active", StatusActive, true},
		{"ongoing", StatusActive, true},
		{" Upcoming ", StatusUpcoming, true},
		{"ENDED", StatusEnded, true},
		{"completed", StatusEnded, true},
		{"archived", StatusAll, false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStatusAt(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	a := Activity{StartTime: start, EndTime: start.Add(96 * time.Hour)}

	assert.Equal(t, StatusUpcoming, a.StatusAt(start.Add(-time.Hour)))
	assert.Equal(t, StatusActive, a.StatusAt(start.Add(time.Hour)))
	assert.Equal(t, StatusEnded, a.StatusAt(start.Add(100*time.Hour)))

	open := Activity{StartTime: start}
	assert.Equal(t, StatusActive, open.StatusAt(start.AddDate(5, 0, 0)))
}

func TestStatusCounts(t *testing.T) {
	var c StatusCounts
	for _, s := range []Status{StatusActive, StatusActive, StatusEnded, StatusUpcoming} {
		c.Add(s)
	}
	assert.Equal(t, 4, c.For(StatusAll))
	assert.Equal(t, 2, c.For(StatusActive))
	assert.Equal(t, 1, c.For(StatusUpcoming))
	assert.Equal(t, 1, c.For(StatusEnded))
}
