// Package generator builds every document the planner produces. All
// generators are pure: the same input always yields the same document.
package generator

import (
	"fmt"
	"strings"

	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
)

// VisaPlan formats the destination-specific checklist from a visa record.
//
// Each of the record's fields is emitted, in domain.VisaFields order, as a
// level-3 heading followed by its content, unless the field is absent or
// blank. Content containing ";" becomes a list with one entry per piece.
// Callers are expected to have checked rec.Usable(); VisaPlan itself
// formats whatever fields are present.
func VisaPlan(req domain.TripRequest, rec domain.VisaRecord) document.Document {
	var d document.Document
	d.H1("Visa Plan for " + req.Destination)
	d.P(fmt.Sprintf("Here is your visa guide for traveling from **%s** to **%s** for the purpose of **%s**.",
		req.Nationality, req.Destination, req.Purpose))
	d.P("**Disclaimer:** This information is for guidance only. Policies can change. " +
		"Always verify all details with the official embassy or consulate of " + req.Destination + ".")

	for _, f := range domain.VisaFields {
		text := rec.Text(f)
		if text == "" {
			continue
		}
		d.H3(f.Label())
		if strings.Contains(text, ";") {
			d.Items(document.SplitList(text)...)
		} else {
			d.P(text)
		}
	}
	return d
}
