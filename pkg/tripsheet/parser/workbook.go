package parser

import (
	"fmt"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads the rows of a sheet as a source matrix.
// An empty sheetName selects the first sheet.
func ReadWorkbook(f *excelize.File, sheetName string) (models.Matrix, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make(models.Matrix, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.Strings(row))
	}
	return result, nil
}
