package mapper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout renders dates as M/D/YYYY without leading zeros.
const DisplayLayout = "1/2/2006"

// dateLayouts are tried in order before falling back to month/day/year tokens.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Mon Jan 2 2006",
	time.RFC1123,
	time.RFC1123Z,
}

var dateSeparators = regexp.MustCompile(`[/-]`)

var shortYearDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)

// shortYearPivot splits M/D/YY years: below it they are in the 2000s,
// otherwise in the 1900s.
const shortYearPivot = 50

// ParseDate parses a trip date. The bool is false when s is empty or no
// interpretation succeeds.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, ok := parseShortYear(s); ok {
		return t, true
	}

	parts := dateSeparators.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var mdy [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		mdy[i] = n
	}

	year := mdy[2]
	if year >= 0 && year <= 99 {
		year += 1900
	}
	// time.Date normalizes out-of-range months and days.
	return time.Date(year, time.Month(mdy[0]), mdy[1], 0, 0, 0, 0, time.UTC), true
}

// parseShortYear parses M/D/YY. Month must be 1-12 and day 1-31; days past
// the end of the month roll into the next one.
func parseShortYear(s string) (time.Time, bool) {
	m := shortYearDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year < shortYearPivot {
		year += 2000
	} else {
		year += 1900
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// FormatDate renders a trip date as M/D/YYYY, or returns raw unchanged
// when it cannot be parsed.
func FormatDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format(DisplayLayout)
}
