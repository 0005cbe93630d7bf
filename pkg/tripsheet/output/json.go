package output

import (
	"encoding/json"
	"time"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

// ConversionView is the JSON shape of a conversion.
type ConversionView struct {
	Name      string           `json:"name"`
	SheetName string           `json:"sheet_name"`
	Records   int              `json:"records"`
	CreatedAt time.Time        `json:"created_at"`
	Header    []string         `json:"header"`
	Rows      []map[string]any `json:"rows"`
}

// View builds the JSON view of c, keying each row by header name.
func View(c *models.Conversion) ConversionView {
	header := make([]string, 0, len(c.Matrix.Header()))
	for _, h := range c.Matrix.Header() {
		header = append(header, models.CellString(h))
	}

	rows := make([]map[string]any, 0, c.Matrix.Records())
	for _, row := range c.Matrix.Data() {
		obj := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(row) {
				obj[name] = row[i]
			} else {
				obj[name] = ""
			}
		}
		rows = append(rows, obj)
	}

	return ConversionView{
		Name:      c.Name,
		SheetName: c.SheetName,
		Records:   c.Records,
		CreatedAt: c.CreatedAt,
		Header:    header,
		Rows:      rows,
	}
}

// ToJSON serializes a conversion to JSON.
func ToJSON(c *models.Conversion, pretty bool) ([]byte, error) {
	view := View(c)
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
