package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/visamarker/internal/domain"
)

func TestVisaRecord_absentVersusBlank(t *testing.T) {
	rec := domain.VisaRecord{
		Destination: "Japan",
		Fields: map[domain.VisaField]string{
			domain.FieldCoreDocuments: "  ",
		},
	}

	v, ok := rec.Field(domain.FieldCoreDocuments)
	assert.True(t, ok)
	assert.Equal(t, "  ", v)
	assert.Equal(t, "", rec.Text(domain.FieldCoreDocuments))

	_, ok = rec.Field(domain.FieldNotes)
	assert.False(t, ok)

	assert.False(t, rec.Usable(), "blank core documents")
}

func TestVisaRecord_Usable(t *testing.T) {
	rec := domain.VisaRecord{Fields: map[domain.VisaField]string{
		domain.FieldCoreDocuments: "Valid passport",
	}}
	assert.True(t, rec.Usable())
	assert.False(t, domain.VisaRecord{}.Usable())
}

func TestVisaFields_labelled(t *testing.T) {
	for _, f := range domain.VisaFields {
		assert.True(t, f.Valid(), f)
		assert.NotEmpty(t, f.Label(), f)
	}
	assert.False(t, domain.VisaField("shoe_size").Valid())
}

func TestExportFormat(t *testing.T) {
	assert.True(t, domain.ExportMarkdown.Valid())
	assert.True(t, domain.ExportHTML.Valid())
	assert.False(t, domain.ExportFormat("pdf").Valid())

	assert.Equal(t, ".html", domain.ExportHTML.Extension())
	assert.Equal(t, "text/html; charset=utf-8", domain.ExportHTML.ContentType())
	assert.Equal(t, ".md", domain.ExportMarkdown.Extension())
	assert.Equal(t, "text/markdown; charset=utf-8", domain.ExportMarkdown.ContentType())
}
