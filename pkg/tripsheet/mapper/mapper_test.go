package mapper

import (
	"testing"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
)

func TestMapEndToEnd(t *testing.T) {
	source := models.Matrix{
		{"Booking Id", "Client Name", "Date", "Direct Distance"},
		{"B1", "Jane Doe", "03/01/2024", "5 mi"},
		{"", "", "", ""},
	}

	out := Map(source)

	if len(out) != 2 {
		t.Fatalf("Expected header and 1 data row, got %d rows", len(out))
	}
	for i, h := range models.TargetHeader {
		if out[0][i] != h {
			t.Errorf("header[%d] = %v, expected %q", i, out[0][i], h)
		}
	}

	row := out[1]
	if len(row) != models.TargetWidth {
		t.Fatalf("Expected %d cells, got %d", models.TargetWidth, len(row))
	}
	if row[models.ColTripNo] != "B1" {
		t.Errorf("Trip No. = %v, expected B1", row[models.ColTripNo])
	}
	if row[models.ColMemberName] != "Doe, Jane" {
		t.Errorf("Member's Name = %v, expected 'Doe, Jane'", row[models.ColMemberName])
	}
	if row[models.ColDate] != "3/1/2024" {
		t.Errorf("Date = %v, expected 3/1/2024", row[models.ColDate])
	}
	if row[models.ColDirectDistance] != 5 {
		t.Errorf("Direct Distance = %v (type: %T), expected int 5", row[models.ColDirectDistance], row[models.ColDirectDistance])
	}

	for i, v := range row {
		switch i {
		case models.ColTripNo, models.ColMemberName, models.ColDate, models.ColDirectDistance:
			continue
		}
		if v != "" {
			t.Errorf("%s = %v, expected empty string", models.TargetHeader[i], v)
		}
	}
}

func TestMapHeaderOnly(t *testing.T) {
	tests := []struct {
		name   string
		source models.Matrix
	}{
		{"nil", nil},
		{"header only", models.Matrix{{"Booking Id", "Client Name"}}},
		{"blank rows only", models.Matrix{{"Booking Id"}, {""}, {}, {nil, 0, false}}},
	}

	for _, tt := range tests {
		out := Map(tt.source)
		if len(out) != 1 {
			t.Errorf("%s: expected header-only output, got %d rows", tt.name, len(out))
		}
		if len(out[0]) != models.TargetWidth {
			t.Errorf("%s: expected %d header cells, got %d", tt.name, models.TargetWidth, len(out[0]))
		}
	}
}

func TestMapDropsOnlyBlankRows(t *testing.T) {
	source := models.Matrix{
		{"Booking Id", "Client Name"},
		{"B1", "A B"},
		{"", ""},
		{"B2"},
		{},
		{"", "0"},
		{nil, nil},
		{"B3", "C D", "extra", "cells"},
	}

	out := Map(source)

	// 7 data rows, 3 blank
	if got := out.Records(); got != 4 {
		t.Fatalf("Expected 4 data rows, got %d", got)
	}
	expectedTrips := []string{"B1", "B2", "", "B3"}
	for i, want := range expectedTrips {
		if got := out[i+1][models.ColTripNo]; got != want {
			t.Errorf("row %d Trip No. = %v, expected %q", i+1, got, want)
		}
	}
}

func TestMapVerbatimAndJoinedFields(t *testing.T) {
	source := models.Matrix{
		{
			"Requested Time Pickup", "Requested Late Dropoff",
			"Site Name(orig)", "Origin", "Phone Pickup",
			"Site Name(dest)", "Destination", "Phone Dropoff",
			"Comments", "Passenger Types", "Space Types", "Purpose",
		},
		{
			"9:15", "11:00",
			"Clinic", "12 Main St", "555-0100",
			"", "40 Oak Ave", "555-0199",
			"Ring bell", "Adult", "Wheelchair", "Dialysis",
		},
	}

	row := Map(source)[1]

	expected := map[int]any{
		models.ColRequestedPickup:      "9:15",
		models.ColRequestedLateDropoff: "11:00",
		models.ColOrigins:              "Clinic\n12 Main St\n555-0100",
		models.ColDestination:          "40 Oak Ave\n555-0199",
		models.ColPickupComments:       "Ring bell",
		models.ColPassengerTypes:       "Adult",
		models.ColSpaceTypes:           "Wheelchair",
		models.ColPurpose:              "Dialysis",
		models.ColDirectDistance:       0,
		models.ColDate:                 "",
		models.ColMemberName:           "",
	}
	for col, want := range expected {
		if row[col] != want {
			t.Errorf("%s = %q, expected %q", models.TargetHeader[col], row[col], want)
		}
	}
}

func TestMapNeverFailsOnBadData(t *testing.T) {
	source := models.Matrix{
		{"Booking Id", "Client Name", "Date", "Direct Distance"},
		{"B1", "", "not-a-date", "abc"},
		{"B2", "   ", "99/99/abcd", "miles"},
		{int64(7), 3.5, true},
	}

	out := Map(source)

	if out.Records() != 3 {
		t.Fatalf("Expected 3 data rows, got %d", out.Records())
	}
	if out[1][models.ColDate] != "not-a-date" {
		t.Errorf("Date = %v, expected pass-through", out[1][models.ColDate])
	}
	if out[1][models.ColDirectDistance] != 0 {
		t.Errorf("Direct Distance = %v, expected 0", out[1][models.ColDirectDistance])
	}
	if out[2][models.ColMemberName] != "   " {
		t.Errorf("Member's Name = %q, expected unchanged", out[2][models.ColMemberName])
	}
	if out[3][models.ColTripNo] != "7" {
		t.Errorf("Trip No. = %v, expected \"7\"", out[3][models.ColTripNo])
	}
	if out[3][models.ColMemberName] != "3.5" {
		t.Errorf("Member's Name = %v, expected \"3.5\"", out[3][models.ColMemberName])
	}
	if out[3][models.ColDate] != "true" {
		t.Errorf("Date = %v, expected \"true\"", out[3][models.ColDate])
	}
}

func TestIndexFirstMatchCaseSensitive(t *testing.T) {
	idx := NewIndex(models.Row{"Origin", "origin", "Origin"})
	row := models.Row{"first", "lower", "second"}

	if got := idx.Get(row, "Origin"); got != "first" {
		t.Errorf("Get(Origin) = %q, expected first", got)
	}
	if got := idx.Get(row, "origin"); got != "lower" {
		t.Errorf("Get(origin) = %q, expected lower", got)
	}
	if got := idx.Get(row, "ORIGIN"); got != "" {
		t.Errorf("Get(ORIGIN) = %q, expected empty", got)
	}
	if got := idx.Get(models.Row{"only"}, "origin"); got != "" {
		t.Errorf("Get on short row = %q, expected empty", got)
	}
}
