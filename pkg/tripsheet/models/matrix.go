// Package models defines data structures for trip sheet conversion.
package models

import (
	"math"
	"strconv"
)

// Row is an ordered sequence of cell values.
// Source cells may be strings, numbers, bools or nil.
type Row []any

// Matrix is a header row followed by zero or more data rows.
type Matrix []Row

// Header returns the first row, or nil for an empty matrix.
func (m Matrix) Header() Row {
	if len(m) == 0 {
		return nil
	}
	return m[0]
}

// Data returns the rows after the header.
func (m Matrix) Data() []Row {
	if len(m) < 2 {
		return nil
	}
	return m[1:]
}

// Records returns the number of data rows.
func (m Matrix) Records() int {
	if len(m) == 0 {
		return 0
	}
	return len(m) - 1
}

// CellString renders a cell value as text. Nil renders as "".
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case []byte:
		return string(val)
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}

// Truthy reports whether a cell carries a value: a non-empty string,
// a non-zero number or true.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case bool:
		return val
	case []byte:
		return len(val) > 0
	default:
		return true
	}
}

// Blank reports whether no cell of the row is truthy.
func (r Row) Blank() bool {
	for _, v := range r {
		if Truthy(v) {
			return false
		}
	}
	return true
}

// Strings converts a slice of text cells into a Row.
func Strings(cells []string) Row {
	row := make(Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
