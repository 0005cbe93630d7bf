// Package mapper converts trip records from the source schema to the fixed
// target layout.
package mapper

import (
	"strings"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

// Index maps source column names to their position in the header.
// Only the first occurrence of a name is kept.
type Index map[string]int

// NewIndex builds the column lookup for a source header row.
func NewIndex(header models.Row) Index {
	idx := make(Index, len(header))
	for i, cell := range header {
		name := models.CellString(cell)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	return idx
}

// Get returns the text value of the named column in row.
// Missing columns and short rows yield "".
func (idx Index) Get(row models.Row, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return models.CellString(row[i])
}

// Map converts a source matrix (header first) into the target matrix.
// Blank source rows are dropped; the remaining rows keep their order.
// Map never fails: unparseable values degrade to "" or 0.
func Map(source models.Matrix) models.Matrix {
	out := models.Matrix{models.NewTargetHeader()}
	if len(source) == 0 {
		return out
	}

	idx := NewIndex(source[0])
	for _, row := range source[1:] {
		if row.Blank() {
			continue
		}
		out = append(out, mapRow(idx, row))
	}
	return out
}

func mapRow(idx Index, row models.Row) models.Row {
	out := make(models.Row, models.TargetWidth)
	for i := range out {
		out[i] = ""
	}

	out[models.ColDate] = FormatDate(idx.Get(row, models.SrcDate))
	out[models.ColTripNo] = idx.Get(row, models.SrcBookingID)
	out[models.ColMemberName] = FormatMemberName(idx.Get(row, models.SrcClientName))
	out[models.ColRequestedPickup] = idx.Get(row, models.SrcRequestedTime)
	out[models.ColRequestedLateDropoff] = idx.Get(row, models.SrcLateDropoff)
	out[models.ColOrigins] = joinPresent(
		idx.Get(row, models.SrcSiteNameOrig),
		idx.Get(row, models.SrcOrigin),
		idx.Get(row, models.SrcPhonePickup),
	)
	out[models.ColDestination] = joinPresent(
		idx.Get(row, models.SrcSiteNameDest),
		idx.Get(row, models.SrcDestination),
		idx.Get(row, models.SrcPhoneDropoff),
	)
	out[models.ColPickupComments] = idx.Get(row, models.SrcComments)
	out[models.ColDirectDistance] = ParseDistance(idx.Get(row, models.SrcDirectDistance))
	out[models.ColPassengerTypes] = idx.Get(row, models.SrcPassengerTypes)
	out[models.ColSpaceTypes] = idx.Get(row, models.SrcSpaceTypes)
	out[models.ColPurpose] = idx.Get(row, models.SrcPurpose)

	return out
}

// joinPresent joins the non-empty values with newlines, in order.
func joinPresent(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "\n")
}
