package generator

import (
	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
)

// activities holds the purpose-dependent wording for days 2 and 5.
type activities struct {
	day2Morning string
	day5        string
}

var (
	tourismActivities = activities{
		day2Morning: "Visit the National Museum and the main historical sites.",
		day5:        "Visit another historical site or take a guided city tour.",
	}
	otherActivities = activities{
		day2Morning: "Attend the first scheduled meeting or session related to your visit.",
		day5:        "Follow-up meetings, appointments or a networking event.",
	}
)

// Itinerary returns a fixed seven-day sample itinerary. Only days 2 and 5
// depend on the purpose, through a single tourism/other choice.
func Itinerary(req domain.TripRequest) document.Document {
	act := otherActivities
	if req.IsTourism() {
		act = tourismActivities
	}
	dst := req.Destination

	var d document.Document
	d.H1("Sample 7-Day Itinerary for " + dst)
	d.P("**Purpose of Trip:** " + req.Purpose + "\n**Travel Date:** " + req.TravelDateString())
	d.P("**Disclaimer:** This is a generic sample itinerary. You should customize it to reflect your actual travel plans.")

	d.Item("**Day 1: Arrival and Settling In**")
	d.SubItem("Arrive at [Main Airport in " + dst + "].")
	d.SubItem("Take a taxi/public transport to your accommodation.")
	d.SubItem("Check into [Hotel Name or Address].")
	d.SubItem("Evening: Relax and have dinner at a local restaurant.")

	d.Item("**Day 2: Exploring the Capital**")
	d.SubItem("Morning: " + act.day2Morning)
	d.SubItem("Afternoon: Walk through the historic city center.")
	d.SubItem("Evening: Enjoy a traditional dinner.")

	d.Item("**Day 3: Cultural Immersion**")
	d.SubItem("Visit a famous landmark like [Famous Landmark in " + dst + "].")
	d.SubItem("Explore a local market for souvenirs.")
	d.SubItem("Use local metro/bus for transportation.")

	d.Item("**Day 4: Day Trip**")
	d.SubItem("Take a day trip to a nearby town or natural attraction, such as [Nearby Town/Attraction].")
	d.SubItem("This shows a well-planned trip.")

	d.Item("**Day 5: Continuing with Purpose**")
	d.SubItem(act.day5)
	d.SubItem("Afternoon: Leisure time.")

	d.Item("**Day 6: Last Day of Activities**")
	d.SubItem("Morning: Last-minute souvenir shopping.")
	d.SubItem("Afternoon: Pack and prepare for departure.")
	d.SubItem("Evening: Farewell dinner.")

	d.Item("**Day 7: Departure**")
	d.SubItem("Check out from the hotel.")
	d.SubItem("Travel to the airport for your flight back home.")
	return d
}
