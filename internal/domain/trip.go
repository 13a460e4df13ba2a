// Package domain contains the core data types for the VisaMarker planner.
// This package has no dependencies on the other internal packages and is
// imported by all of them (repo, generator, service, handler, tui).
package domain

import "time"

// DateLayout is the ISO calendar date format used for travel dates on every
// boundary (JSON, CLI flags, rendered documents).
const DateLayout = "2006-01-02"

// TripRequest is the four-field input that drives every generated document.
// It is a value type: a new one is built for each form submission.
type TripRequest struct {
	Nationality string    `json:"nationality"`
	Destination string    `json:"destination"`
	TravelDate  time.Time `json:"travel_date"`
	Purpose     string    `json:"purpose"`
}

// TravelDateString returns the travel date formatted as YYYY-MM-DD, which is
// how it is substituted into document text.
func (r TripRequest) TravelDateString() string {
	return r.TravelDate.Format(DateLayout)
}

// IsTourism reports whether the trip purpose is tourism. The itinerary uses
// this to pick between its two activity wordings.
func (r TripRequest) IsTourism() bool {
	return r.Purpose == PurposeTourism
}
