package models

import "time"

// Conversion is the result of converting one source file.
type Conversion struct {
	// Name is the display name of the source (file name, no path).
	Name string `json:"name"`
	// SheetName is the sheet the matrix is exported to.
	SheetName string `json:"sheet_name"`
	// Records is the number of data rows in Matrix.
	Records int `json:"records"`
	// CreatedAt is when the conversion finished.
	CreatedAt time.Time `json:"created_at"`
	// Matrix holds the target header and the mapped, sorted rows.
	// It must not be modified once the conversion is returned.
	Matrix Matrix `json:"-"`
}
