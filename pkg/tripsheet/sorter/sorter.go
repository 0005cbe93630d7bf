// Package sorter orders mapped trip rows by passenger group and pickup time.
package sorter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

// MinutesPerDay is the largest minute-of-day value a pickup time maps to.
const MinutesPerDay = 24 * 60

// NoTimeGroup is the group time given to passengers with no parseable
// pickup time, placing them after every timed group.
const NoTimeGroup = MinutesPerDay + 1

// Minutes is an optional minute-of-day value.
type Minutes struct {
	Value int
	OK    bool
}

// ParseMinutes parses an "H:M" pickup time into minutes since midnight.
func ParseMinutes(s string) Minutes {
	if s == "" {
		return Minutes{}
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Minutes{}
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Minutes{}
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Minutes{}
	}
	return Minutes{Value: h*60 + m, OK: true}
}

// pickupOf reads the requested pickup time of a target row. Non-text cells
// carry no time.
func pickupOf(row models.Row) Minutes {
	if models.ColRequestedPickup >= len(row) {
		return Minutes{}
	}
	s, ok := row[models.ColRequestedPickup].(string)
	if !ok {
		return Minutes{}
	}
	return ParseMinutes(s)
}

func nameOf(row models.Row) string {
	if models.ColMemberName >= len(row) {
		return ""
	}
	return models.CellString(row[models.ColMemberName])
}

type keyed struct {
	row  models.Row
	name string
	time Minutes
}

// GroupTimes returns the earliest parseable pickup time per member name.
// Names without any parseable time are absent.
func GroupTimes(rows []models.Row) map[string]int {
	earliest := make(map[string]int)
	for _, row := range rows {
		t := pickupOf(row)
		if !t.OK {
			continue
		}
		name := nameOf(row)
		if cur, ok := earliest[name]; !ok || t.Value < cur {
			earliest[name] = t.Value
		}
	}
	return earliest
}

// Sort returns a new matrix with the header unchanged and the data rows
// ordered by their member's earliest pickup time, then member name, then
// each row's own pickup time. Rows without a time follow the timed rows of
// the same member. The sort is stable and m is not modified.
func Sort(m models.Matrix) models.Matrix {
	if len(m) == 0 {
		return models.Matrix{}
	}

	data := m.Data()
	earliest := GroupTimes(data)

	rows := make([]keyed, len(data))
	for i, row := range data {
		rows[i] = keyed{row: row, name: nameOf(row), time: pickupOf(row)}
	}

	groupTime := func(name string) int {
		if t, ok := earliest[name]; ok {
			return t
		}
		return NoTimeGroup
	}

	// Collator is not safe for concurrent use; one per call.
	coll := collate.New(language.English)

	slices.SortStableFunc(rows, func(a, b keyed) int {
		if c := cmp.Compare(groupTime(a.name), groupTime(b.name)); c != 0 {
			return c
		}
		if a.name != b.name {
			if c := coll.CompareString(a.name, b.name); c != 0 {
				return c
			}
			return strings.Compare(a.name, b.name)
		}
		switch {
		case a.time.OK && !b.time.OK:
			return -1
		case !a.time.OK && b.time.OK:
			return 1
		case a.time.OK && b.time.OK:
			return cmp.Compare(a.time.Value, b.time.Value)
		}
		return 0
	})

	out := make(models.Matrix, 0, len(m))
	out = append(out, m[0])
	for _, k := range rows {
		out = append(out, k.row)
	}
	return out
}
