package parser

import (
	"path/filepath"
	"strings"
)

// Format identifies a source file encoding.
type Format string

const (
	// FormatCSV is delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatXLS is a legacy binary workbook.
	FormatXLS Format = "xls"
)

// DetectFormat picks the source format from a file name extension.
// Unknown extensions are treated as CSV.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	default:
		return FormatCSV
	}
}

// ParseFormat validates a user-supplied format name. Empty means auto-detect.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(s)) {
	case "":
		return "", true
	case FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	case FormatXLS:
		return FormatXLS, true
	}
	return "", false
}
