package generator

import (
	"fmt"

	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
)

// costLine is one row of the budget: a label, a USD range and a note.
// An empty note means the flights note, which names the traveller's country.
type costLine struct {
	label string
	low   int
	high  int
	unit  string
	note  string
}

var tripCosts = []costLine{
	{label: "Round-trip Flights", low: 700, high: 1600},
	{label: "Accommodation", low: 90, high: 200, unit: " per night", note: "For a mid-range hotel."},
	{label: "Daily Expenses", low: 80, high: 120, unit: " per day", note: "Covers food, local transport, and minor activities."},
	{label: "Travel Insurance", low: 50, high: 100, note: "For the entire trip."},
	{label: "Visa Application Fee", low: 60, high: 180, note: "This is a typical estimate, check the official embassy website for the exact fee."},
}

// comparison is a fixed per-day reference for a well-known city.
type comparison struct {
	city          string
	accommodation int
	daily         int
}

// The comparison cities never change with the requested destination.
var comparisons = []comparison{
	{city: "Dubai, UAE", accommodation: 120, daily: 90},
	{city: "London, UK", accommodation: 150, daily: 100},
	{city: "Tokyo, Japan", accommodation: 110, daily: 80},
}

// Budget returns a sample seven-day budget for the destination followed by
// fixed comparison figures for Dubai, London and Tokyo.
func Budget(req domain.TripRequest) document.Document {
	var d document.Document
	d.H1("Estimated Travel Budget for " + req.Destination)
	d.P("**Disclaimer:** This is a sample budget for a 7-day trip to provide a general idea of costs. " +
		"All figures are estimates in USD and can vary widely.")

	d.H3("Estimated Costs for one person")
	for _, c := range tripCosts {
		d.Item(fmt.Sprintf("%s: $%d - $%d%s", c.label, c.low, c.high, c.unit))
		note := c.note
		if note == "" {
			note = "Varies greatly depending on your departure city in " + req.Nationality + " and time of booking."
		}
		d.SubItem(note)
	}

	d.H3("Comparative Travel Costs")
	d.P("Here are some general per-day cost estimates for other destinations to give you a perspective:")
	for _, c := range comparisons {
		d.Item("**" + c.city + "**")
		d.SubItem(fmt.Sprintf("Accommodation (per night, mid-range) - $%d", c.accommodation))
		d.SubItem(fmt.Sprintf("Daily Expenses (food & transport) - $%d", c.daily))
	}

	d.H3("Final Note")
	d.P("All figures are estimates for planning purposes only. Actual costs can fluctuate based on booking time, " +
		"travel style, and specific choices. Please do your own research for precise, up-to-date pricing.")
	return d
}
