// Package tripsheet converts trip export files into the fixed trip sheet
// layout.
package tripsheet

import (
	"time"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/output"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/parser"
)

// DefaultTimeout bounds how long reading a source file may take.
const DefaultTimeout = 20 * time.Second

// Options configures conversion behavior.
type Options struct {
	// Timeout bounds the parse step. Zero means DefaultTimeout; a negative
	// value disables the bound.
	Timeout time.Duration
	// Format forces the source format. Empty detects it from the file name.
	Format parser.Format
	// SheetName selects the source sheet of a workbook input.
	// Empty reads the first sheet.
	SheetName string
	// OutputSheet names the sheet the result is exported to.
	OutputSheet string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Timeout:     DefaultTimeout,
		OutputSheet: output.DefaultSheetName,
	}
}

// ParseTimeout returns the effective parse timeout; zero means unbounded.
func (o Options) ParseTimeout() time.Duration {
	switch {
	case o.Timeout == 0:
		return DefaultTimeout
	case o.Timeout < 0:
		return 0
	}
	return o.Timeout
}

// SourceFormat returns the format to parse name with.
func (o Options) SourceFormat(name string) parser.Format {
	if o.Format != "" {
		return o.Format
	}
	return parser.DetectFormat(name)
}

// OutputSheetName returns the export sheet name.
func (o Options) OutputSheetName() string {
	if o.OutputSheet != "" {
		return o.OutputSheet
	}
	return output.DefaultSheetName
}
