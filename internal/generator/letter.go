package generator

import (
	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
)

// CoverLetter drafts a formal visa application letter. Identity details the
// planner cannot know are left as bracketed placeholders for the user to fill.
func CoverLetter(req domain.TripRequest) document.Document {
	var d document.Document
	d.P("[Your Name]\n[Your Address]\n[Your Phone Number]\n[Your Email]")
	d.P("[Date]")
	d.P("The Visa Section\n[Embassy/Consulate of " + req.Destination + "]\n[Embassy Address]")
	d.P("**Subject: Visa Application for " + req.Purpose + " from a " + req.Nationality + " citizen**")
	d.P("Dear Sir/Madam,")
	d.P("I am writing to apply for a visa to visit **" + req.Destination + "** for the purpose of **" + req.Purpose +
		"**. My intended travel is planned around **" + req.TravelDateString() + "**.")
	d.P("I am a citizen of **" + req.Nationality + "** (Passport No: [Your Passport Number]), and I am very keen to " +
		"experience the culture and attractions of your country. My visit is planned for a duration of [Number of days] days.")
	d.P("During my stay, I plan to [Briefly describe your plans, e.g., visit key tourist sites, attend a conference, visit family]. " +
		"I have enclosed a detailed travel itinerary for your reference.")
	d.P("I am employed as a [Your Job Title] at [Your Company Name] and have been granted leave for this trip. " +
		"I have sufficient funds to cover all my expenses during my stay, and I have attached my bank statements as proof of my financial standing.")
	d.P("I have strong social and economic ties to my home country, " + req.Nationality +
		", and I assure you that I will return upon the completion of my visit.")
	d.P("Thank you for your time and consideration of my application. I look forward to your positive response.")
	d.P("Sincerely,")
	d.P("[Your Name]")
	return d
}
