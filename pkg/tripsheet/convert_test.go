package tripsheet

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/output"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/parser"
)

const tripsCSV = `Booking Id,Client Name,Date,Requested Time Pickup,Direct Distance
A14,Alpha One,2024-03-05,14:00,3 mi
B8,Beta Two,03/05/2024,8:00,7miles
,,,,
A9,Alpha One,3/5/2024,9:00,
N1,Aaron Zero,3/5/2024,,abc
`

func tripNos(m models.Matrix) []string {
	var out []string
	for _, row := range m.Data() {
		out = append(out, models.CellString(row[models.ColTripNo]))
	}
	return out
}

func TestConvertReaderCSV(t *testing.T) {
	c, err := ConvertReader(context.Background(), strings.NewReader(tripsCSV), "trips.csv", DefaultOptions())
	if err != nil {
		t.Fatalf("ConvertReader failed: %v", err)
	}

	if c.Name != "trips.csv" {
		t.Errorf("Expected name trips.csv, got %q", c.Name)
	}
	if c.SheetName != output.DefaultSheetName {
		t.Errorf("Expected sheet %q, got %q", output.DefaultSheetName, c.SheetName)
	}
	if c.Records != 4 {
		t.Errorf("Expected 4 records, got %d", c.Records)
	}

	expected := []string{"B8", "A9", "A14", "N1"}
	if got := tripNos(c.Matrix); !reflect.DeepEqual(got, expected) {
		t.Errorf("Trip order = %v, expected %v", got, expected)
	}

	first := c.Matrix[1]
	if first[models.ColMemberName] != "Two, Beta" {
		t.Errorf("Expected 'Two, Beta', got %v", first[models.ColMemberName])
	}
	if first[models.ColDate] != "3/5/2024" {
		t.Errorf("Expected 3/5/2024, got %v", first[models.ColDate])
	}
	if first[models.ColDirectDistance] != 7 {
		t.Errorf("Expected distance 7, got %v", first[models.ColDirectDistance])
	}
}

func TestConvertReaderXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"Booking Id", "Client Name", "Requested Time Pickup"},
		{"X2", "Pat Lee", "10:00"},
		{"X1", "Pat Lee", "9:00"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	c, err := ConvertReader(context.Background(), &buf, "trips.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("ConvertReader failed: %v", err)
	}

	expected := []string{"X1", "X2"}
	if got := tripNos(c.Matrix); !reflect.DeepEqual(got, expected) {
		t.Errorf("Trip order = %v, expected %v", got, expected)
	}
	if c.Matrix[1][models.ColMemberName] != "Lee, Pat" {
		t.Errorf("Expected 'Lee, Pat', got %v", c.Matrix[1][models.ColMemberName])
	}
}

func TestConvertReaderInvalidWorkbook(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = parser.FormatXLSX

	c, err := ConvertReader(context.Background(), strings.NewReader("not a zip"), "trips.bin", opts)
	if err == nil {
		t.Fatal("Expected error for invalid workbook")
	}
	if c != nil {
		t.Errorf("Expected nil conversion on failure, got %+v", c)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
	var convErr *ConversionError
	if !errors.As(err, &convErr) || convErr.Stage != "parse" {
		t.Errorf("Expected parse ConversionError, got %v", err)
	}
}

func TestConvertReaderInvalidXLS(t *testing.T) {
	data := []byte("Booking Id,Client Name\nB1,Jane Doe\n")

	tests := []struct {
		name   string
		reader io.Reader
		opts   Options
	}{
		{"seekable", bytes.NewReader(data), Options{Format: parser.FormatXLS}},
		{"not seekable", struct{ io.Reader }{bytes.NewReader(data)}, Options{Format: parser.FormatXLS}},
		{"detected from name", bytes.NewReader(data), DefaultOptions()},
	}

	for _, tt := range tests {
		c, err := ConvertReader(context.Background(), tt.reader, "trips.xls", tt.opts)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("%s: expected ErrInvalidFormat, got %v", tt.name, err)
		}
		if c != nil {
			t.Errorf("%s: expected nil conversion, got %+v", tt.name, c)
		}
	}
}

func TestConvertReaderTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	opts := DefaultOptions()
	opts.Timeout = 20 * time.Millisecond

	c, err := ConvertReader(context.Background(), pr, "slow.csv", opts)
	if !errors.Is(err, ErrParseTimeout) {
		t.Fatalf("Expected ErrParseTimeout, got %v", err)
	}
	if c != nil {
		t.Errorf("Expected nil conversion on timeout, got %+v", c)
	}
}

func TestConvertReaderCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertReader(ctx, pr, "slow.csv", DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestConvertFileNotFound(t *testing.T) {
	_, err := Convert(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"b.csv", "a.csv", "c.csv"} {
		path := filepath.Join(dir, name)
		content := "Booking Id\n" + strings.TrimSuffix(name, ".csv") + "1\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		paths = append(paths, path)
	}

	results, err := ConvertAll(context.Background(), paths, DefaultOptions(), 2)
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"b.csv", "a.csv", "c.csv"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, expected %q", i, results[i].Name, want)
		}
		if results[i].Records != 1 {
			t.Errorf("results[%d].Records = %d, expected 1", i, results[i].Records)
		}
	}

	paths = append(paths, filepath.Join(dir, "missing.csv"))
	if _, err := ConvertAll(context.Background(), paths, DefaultOptions(), 0); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		timeout  time.Duration
		expected time.Duration
	}{
		{0, DefaultTimeout},
		{-1, 0},
		{time.Second, time.Second},
	}
	for _, tt := range tests {
		result := Options{Timeout: tt.timeout}.ParseTimeout()
		if result != tt.expected {
			t.Errorf("ParseTimeout(%v) = %v, expected %v", tt.timeout, result, tt.expected)
		}
	}

	if got := (Options{}).SourceFormat("a.xls"); got != parser.FormatXLS {
		t.Errorf("SourceFormat(a.xls) = %q, expected xls", got)
	}
	if got := (Options{Format: parser.FormatCSV}).SourceFormat("a.xls"); got != parser.FormatCSV {
		t.Errorf("SourceFormat with forced csv = %q", got)
	}
	if got := (Options{}).OutputSheetName(); got != output.DefaultSheetName {
		t.Errorf("OutputSheetName() = %q, expected %q", got, output.DefaultSheetName)
	}
}
