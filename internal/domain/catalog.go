package domain

import (
	"slices"
	"sort"
)

// Purposes a traveller can choose from, in display order.
const (
	PurposeTourism    = "Tourism"
	PurposeBusiness   = "Business"
	PurposeFamily     = "Visiting Family/Friends"
	PurposeStudy      = "Study"
	PurposeMedical    = "Medical Treatment"
	PurposeConference = "Conference"
)

var purposes = []string{
	PurposeTourism,
	PurposeBusiness,
	PurposeFamily,
	PurposeStudy,
	PurposeMedical,
	PurposeConference,
}

var countries = []string{
	"Algeria", "Argentina", "Bangladesh", "Bolivia", "Brazil", "Cameroon",
	"Colombia", "Côte d'Ivoire", "Ecuador", "Egypt", "Ethiopia", "Ghana",
	"India", "Indonesia", "Iran", "Jamaica", "Jordan", "Kenya", "Lebanon",
	"Malaysia", "Mexico", "Morocco", "Nepal", "Nigeria", "Pakistan", "Peru",
	"Philippines", "Rwanda", "Senegal", "South Africa", "Sri Lanka", "Tanzania",
	"Tunisia", "Uganda", "Vietnam", "Zambia", "Zimbabwe",
}

var destinations = []string{
	"Australia", "Canada", "China", "France", "Germany", "Italy", "Japan",
	"Malaysia", "Netherlands", "New Zealand", "Singapore", "South Korea",
	"Spain", "Thailand", "Turkey", "United Arab Emirates", "United Kingdom",
	"United States",
}

// Countries returns the nationalities offered by the planner form, sorted.
// The returned slice is a copy; callers may modify it.
func Countries() []string { return sortedCopy(countries) }

// Destinations returns the destination countries offered by the planner form, sorted.
func Destinations() []string { return sortedCopy(destinations) }

// Purposes returns the trip purposes in display order (not sorted: tourism first).
func Purposes() []string { return slices.Clone(purposes) }

// IsCountry reports whether name is one of the offered nationalities.
func IsCountry(name string) bool { return slices.Contains(countries, name) }

// IsDestination reports whether name is one of the offered destinations.
func IsDestination(name string) bool { return slices.Contains(destinations, name) }

// IsPurpose reports whether name is one of the offered trip purposes.
func IsPurpose(name string) bool { return slices.Contains(purposes, name) }

func sortedCopy(in []string) []string {
	out := slices.Clone(in)
	sort.Strings(out)
	return out
}
