package models

import "time"

// HistoryEntry tracks one stored conversion.
type HistoryEntry struct {
	// ID is the opaque identifier used for lookup and download.
	ID string `json:"id"`
	// Order is the 1-based insertion order.
	Order int `json:"order"`
	// Name is the display name of the source file.
	Name string `json:"name"`
	// Date is the conversion date formatted M/D/YYYY.
	Date string `json:"date"`
	// Records is the number of data rows, header excluded.
	Records int `json:"records"`
	// CreatedAt is when the entry was stored.
	CreatedAt time.Time `json:"created_at"`
}
