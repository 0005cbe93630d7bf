// Package output serializes converted trip matrices.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultSheetName is the sheet converted trips are written to.
	DefaultSheetName = "Processed Trips"
	// DefaultFileName is the download name of a converted workbook.
	DefaultFileName = "converted-trip-file.xlsx"
	// ContentType is the MIME type of an xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	printAreaName = "_xlnm.Print_Area"
)

// wrapColumns hold multi-line address blocks.
var wrapColumns = []int{models.ColOrigins, models.ColDestination}

// UsedRange returns the cell range covering the matrix, e.g. "A1:U3".
// The width is taken from the widest row. An empty matrix yields "".
func UsedRange(m models.Matrix) string {
	width := 0
	for _, row := range m {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(m) == 0 || width == 0 {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(1, 1)
	endCell, _ := excelize.CoordinatesToCellName(width, len(m))
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// absoluteRange turns "A1:U3" into "$A$1:$U$3".
func absoluteRange(rangeStr string) (string, error) {
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid range %q", rangeStr)
	}
	var abs [2]string
	for i, cell := range parts {
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			return "", err
		}
		name, err := excelize.CoordinatesToCellName(col, row, true)
		if err != nil {
			return "", err
		}
		abs[i] = name
	}
	return abs[0] + ":" + abs[1], nil
}

// NewWorkbook builds a workbook holding m on a single sheet. The header row
// is bold and frozen, address columns wrap, and an auto-filter and print
// area cover the written range. The caller must Close the file.
func NewWorkbook(m models.Matrix, sheetName string) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet name %q: %w", sheetName, err)
	}
	if err := writeSheet(f, m, sheetName); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, m models.Matrix, sheetName string) error {
	for i, row := range m {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := []any(row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	used := UsedRange(m)
	if used == "" {
		return nil
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(m[0]), 1)
	if len(m[0]) > 0 {
		if err := f.SetCellStyle(sheetName, "A1", endHeader, headerStyle); err != nil {
			return err
		}
	}

	if len(m) > 1 {
		wrapStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		})
		if err != nil {
			return err
		}
		for _, col := range wrapColumns {
			top, _ := excelize.CoordinatesToCellName(col+1, 2)
			bottom, _ := excelize.CoordinatesToCellName(col+1, len(m))
			if err := f.SetCellStyle(sheetName, top, bottom, wrapStyle); err != nil {
				return err
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := f.AutoFilter(sheetName, used, nil); err != nil {
		return err
	}

	abs, err := absoluteRange(used)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: fmt.Sprintf("'%s'!%s", sheetName, abs),
		Scope:    sheetName,
	})
}

// WriteXLSX writes m as an xlsx workbook to w.
func WriteXLSX(w io.Writer, m models.Matrix, sheetName string) error {
	f, err := NewWorkbook(m, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveXLSX writes m as an xlsx workbook to path.
func SaveXLSX(path string, m models.Matrix, sheetName string) error {
	f, err := NewWorkbook(m, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
