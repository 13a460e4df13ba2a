package generator

import (
	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
)

// GenericChecklist is the destination-agnostic checklist used when there is
// no usable visa record. It always has the same five sections.
func GenericChecklist(req domain.TripRequest) document.Document {
	dst, nat := req.Destination, req.Nationality

	var d document.Document
	d.H1("Your Visa Plan for " + dst)
	d.P("Hello! Here is a general guide for your visa application from " + nat + " to " + dst + ".")
	d.P("**Disclaimer:** We could not find specific data for this route. This is a generic checklist. " +
		"You must verify all information with the official embassy or consulate of " + dst + ".")

	d.H3("1. Visa Requirements Overview")
	d.Item("Based on your travel for the purpose of **" + req.Purpose + "**, you will likely need a specific type of visitor visa. " +
		"It is crucial to check the official embassy website of " + dst + " for the exact visa category and requirements.")

	d.H3("2. Required Documents Checklist")
	d.Check("**Valid Passport:** Must be valid for at least 6 months beyond your intended stay with at least two blank pages.")
	d.Check("**Visa Application Form:** Completed and signed. Usually available for download from the official embassy website.")
	d.Check("**Passport-sized Photos:** Recent photos meeting specific requirements (e.g., size, background color).")
	d.Check("**Proof of Accommodation:** Confirmed hotel bookings or a letter of invitation from a host in " + dst + ".")
	d.Check("**Flight Itinerary:** Round-trip flight reservations. It is highly recommended not to purchase actual tickets until the visa is approved.")
	d.Check("**Proof of Financial Means:** Recent bank statements (e.g., last 3-6 months) showing sufficient funds to cover your trip.")
	d.Check("**Travel Insurance:** Health insurance valid for the entire duration of your stay in " + dst + ".")
	d.Check("**Letter from Employer (if applicable):** A letter stating your position, salary, length of employment, and approved leave for the travel period.")
	d.Check("**Proof of Ties to Home Country:** Documents like property ownership, family ties, or a stable job to demonstrate your intention to return from " + dst + ".")

	d.H3("3. Application Process")
	d.Step("**Find the Official Embassy/Consulate:** Locate the nearest embassy or consulate of " + dst + " in your country, " + nat + ".")
	d.Step("**Fill out the Application Form:** Download and complete the correct form accurately. Double-check all entries.")
	d.Step("**Gather Documents:** Collect all the necessary documents as per the checklist above.")
	d.Step("**Schedule an Appointment:** Many embassies require you to book an appointment online for application submission and biometrics.")
	d.Step("**Attend Appointment:** Submit your application and provide fingerprints and a photograph if required.")
	d.Step("**Wait for Decision:** Processing times can vary significantly. You can often track your application status online.")

	d.H3("4. Embassy/Consulate Information")
	d.Item("Please find the official website for the embassy of **" + dst + "** in your region for the most accurate and up-to-date information. " +
		`A web search for "Embassy of ` + dst + ` in ` + nat + `" is the best way to start.`)

	d.H3("5. Important Tips for Success")
	d.Item("**Apply Early:** Begin the visa application process well in advance of your intended travel date of " + req.TravelDateString() + ".")
	d.Item("**Be Honest and Consistent:** Ensure all information across your documents is accurate and consistent.")
	d.Item("**Organize Your Documents:** Present your application neatly and in the order requested by the embassy.")
	d.Item("**Keep Copies:** Make copies of every document you submit and keep them with you while travelling.")
	d.Item("**Track Your Application:** Note your reference number and check the status regularly instead of waiting by the phone.")
	return d
}
