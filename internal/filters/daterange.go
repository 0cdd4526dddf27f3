package filters

import (
	"fmt"
	"strings"
)

// ParseDateRange parses user input of the form "START..END". A single space or
// comma also separates the bounds, and either side may be left empty for an
// open bound. Empty input clears both bounds.
func ParseDateRange(input string) (start, end string, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", nil
	}

	var parts []string
	switch {
	case strings.Contains(input, ".."):
		parts = strings.SplitN(input, "..", 2)
	case strings.Contains(input, ","):
		parts = strings.SplitN(input, ",", 2)
	default:
		parts = strings.Fields(input)
	}
	if len(parts) == 1 {
		parts = append(parts, "")
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected START..END, got %q", input)
	}

	start = strings.TrimSpace(parts[0])
	end = strings.TrimSpace(parts[1])
	if start != "" && !validDate(start) {
		return "", "", fmt.Errorf("invalid start date %q (want %s)", start, DateLayout)
	}
	if end != "" && !validDate(end) {
		return "", "", fmt.Errorf("invalid end date %q (want %s)", end, DateLayout)
	}
	if start != "" && end != "" && end < start {
		return "", "", fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return start, end, nil
}

// FormatDateRange is the inverse of ParseDateRange
func FormatDateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return start + ".." + end
}
