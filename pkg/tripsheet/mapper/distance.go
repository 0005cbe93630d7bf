package mapper

import (
	"regexp"
	"strconv"
	"strings"
)

var distanceSuffix = regexp.MustCompile(`(?i)\s*mi(?:les?)?$`)

// ParseDistance strips a trailing "mi", "mile" or "miles" unit and returns the
// leading base-10 integer. Empty or non-numeric input yields 0.
func ParseDistance(raw string) int {
	if raw == "" {
		return 0
	}
	cleaned := strings.TrimSpace(distanceSuffix.ReplaceAllString(raw, ""))
	return leadingInt(cleaned)
}

// leadingInt parses an optional sign followed by digits, ignoring anything
// after the digits ("12.7" is 12). It returns 0 when there are no digits.
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
