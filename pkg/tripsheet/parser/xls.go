package parser

import (
	"fmt"
	"io"

	"github.com/extrame/xls"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

// maxXLSRows bounds how many rows are read from a legacy workbook.
const maxXLSRows = 100000

// ReadXLS reads the first sheet of a legacy .xls workbook. Other sheets are
// ignored.
func ReadXLS(r io.ReadSeeker) (models.Matrix, error) {
	workbook, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, err
	}
	// OpenReader returns no workbook when the container lacks a Workbook stream.
	if workbook == nil || workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no worksheet found")
	}
	return collectRows(int(sheet.MaxRow), maxXLSRows, sheetRowFunc(sheet)), nil
}

// rowFunc returns the cells of row i, or false when the sheet holds no
// record for that row.
type rowFunc func(i int) ([]string, bool)

// collectRows reads rows 0..lastRow, at most limit of them. Rows without a
// record inside the range become empty rows; trailing ones are dropped, so a
// sheet with no records yields an empty matrix.
func collectRows(lastRow, limit int, row rowFunc) models.Matrix {
	n := lastRow + 1
	if n > limit {
		n = limit
	}

	result := make(models.Matrix, 0, n)
	kept := 0
	for i := 0; i < n; i++ {
		cells, ok := row(i)
		if !ok {
			result = append(result, models.Row{})
			continue
		}
		result = append(result, models.Strings(cells))
		kept = len(result)
	}
	return result[:kept]
}

func sheetRowFunc(sheet *xls.WorkSheet) rowFunc {
	return func(i int) ([]string, bool) {
		row, ok := sheetRow(sheet, i)
		if !ok {
			return nil, false
		}
		return rowCells(row), true
	}
}

// sheetRow looks up row i. WorkSheet.Row dereferences the row without
// checking that it exists.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row, ok bool) {
	defer func() {
		if recover() != nil {
			row, ok = nil, false
		}
	}()
	row = sheet.Row(i)
	return row, row != nil
}

// rowCells reads columns 0..LastCol of row, dropping trailing empty cells.
func rowCells(row *xls.Row) []string {
	last := row.LastCol()
	cells := make([]string, 0, last+1)
	for c := 0; c <= last; c++ {
		cells = append(cells, row.Col(c))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
