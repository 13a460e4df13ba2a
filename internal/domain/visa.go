package domain

import "strings"

// VisaField identifies one labelled text field of a VisaRecord.
// The string value is the key used in the YAML table and the database column name.
type VisaField string

const (
	FieldVisaType           VisaField = "visa_type"
	FieldApplicationChannel VisaField = "application_channel"
	FieldCoreDocuments      VisaField = "core_documents"
	FieldFinancialProof     VisaField = "financial_proof"
	FieldTravelInsurance    VisaField = "travel_insurance"
	FieldBiometrics         VisaField = "biometrics"
	FieldProcessingTime     VisaField = "processing_time"
	FieldGovernmentFee      VisaField = "government_fee"
	FieldValidity           VisaField = "validity"
	FieldOfficialSources    VisaField = "official_sources"
	FieldNotes              VisaField = "notes"
)

// VisaFields lists every field in the order the visa plan presents them.
var VisaFields = []VisaField{
	FieldVisaType,
	FieldApplicationChannel,
	FieldCoreDocuments,
	FieldFinancialProof,
	FieldTravelInsurance,
	FieldBiometrics,
	FieldProcessingTime,
	FieldGovernmentFee,
	FieldValidity,
	FieldOfficialSources,
	FieldNotes,
}

var fieldLabels = map[VisaField]string{
	FieldVisaType:           "Visa Type",
	FieldApplicationChannel: "Application Channel",
	FieldCoreDocuments:      "Core Documents Checklist",
	FieldFinancialProof:     "Financial Proof Requirement",
	FieldTravelInsurance:    "Travel Insurance Requirement",
	FieldBiometrics:         "Biometrics / Interview",
	FieldProcessingTime:     "Processing Time (Typical)",
	FieldGovernmentFee:      "Government Fee (Approximate)",
	FieldValidity:           "Validity / Max Stay",
	FieldOfficialSources:    "Official Sources",
	FieldNotes:              "Important Notes",
}

// Label returns the human-readable heading for the field.
func (f VisaField) Label() string { return fieldLabels[f] }

// Valid reports whether f is one of the eleven known fields.
func (f VisaField) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

// VisaRecord holds the visa requirements for travelling to one destination.
//
// A field missing from Fields is absent; a field present with blank text is
// present-but-blank. Both are skipped when formatting, but only a record
// whose core documents checklist has text is considered usable.
type VisaRecord struct {
	Destination string
	Fields      map[VisaField]string
}

// Field returns the raw text of f and whether the field is present at all.
func (r VisaRecord) Field(f VisaField) (string, bool) {
	v, ok := r.Fields[f]
	return v, ok
}

// Text returns the field's text with surrounding whitespace removed,
// or "" when the field is absent.
func (r VisaRecord) Text(f VisaField) string {
	return strings.TrimSpace(r.Fields[f])
}

// Usable reports whether the record carries a non-blank core documents
// checklist. Records that are not usable are replaced by the generic checklist.
func (r VisaRecord) Usable() bool {
	return r.Text(FieldCoreDocuments) != ""
}
