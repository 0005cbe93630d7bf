package models

// Target column indexes (0-based) into TargetHeader.
const (
	ColDate = iota
	ColTripNo
	ColMemberName
	ColRequestedPickup
	ColRequestedLateDropoff
	ColPickupTime
	ColOrigins
	ColDropoffTime
	ColDestination
	ColTotalMileage
	ColClientSignature
	ColUnableToSign
	ColPickupComments
	ColDirectDistance
	ColPassengerTypes
	ColSpaceTypes
	ColDriver
	ColOutcome
	ColHasNote
	ColPurpose
	ColProviderCost

	// TargetWidth is the number of target columns.
	TargetWidth
)

// TargetHeader is the fixed column layout required by downstream consumers.
var TargetHeader = [TargetWidth]string{
	"Date",
	"Trip No.",
	"Member's Name",
	"Requested Time Pickup",
	"Requested Late Dropoff",
	"Pick-up Time",
	"Origins",
	"Drop-off Time",
	"Destination",
	"Total Mileage",
	"Client Signature",
	"Member Unable to Sign UTS?",
	"Pickup Comments",
	"Direct Distance",
	"Passenger Types",
	"Space Types",
	"Driver",
	"Outcome",
	"Has Note",
	"Purpose",
	"Provider Cost",
}

// Source column names read from the uploaded trip file.
const (
	SrcBookingID      = "Booking Id"
	SrcClientName     = "Client Name"
	SrcRequestedTime  = "Requested Time Pickup"
	SrcLateDropoff    = "Requested Late Dropoff"
	SrcSiteNameOrig   = "Site Name(orig)"
	SrcOrigin         = "Origin"
	SrcPhonePickup    = "Phone Pickup"
	SrcSiteNameDest   = "Site Name(dest)"
	SrcDestination    = "Destination"
	SrcPhoneDropoff   = "Phone Dropoff"
	SrcDate           = "Date"
	SrcComments       = "Comments"
	SrcDirectDistance = "Direct Distance"
	SrcPassengerTypes = "Passenger Types"
	SrcSpaceTypes     = "Space Types"
	SrcPurpose        = "Purpose"
)

// NewTargetHeader returns a fresh copy of the target header as a Row.
func NewTargetHeader() Row {
	row := make(Row, TargetWidth)
	for i, h := range TargetHeader {
		row[i] = h
	}
	return row
}
