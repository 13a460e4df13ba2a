package domain

// ExportFormat is the file format of a downloaded document.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportHTML     ExportFormat = "html"
)

// Valid reports whether f is a supported export format.
func (f ExportFormat) Valid() bool {
	return f == ExportMarkdown || f == ExportHTML
}

// ContentType returns the HTTP Content-Type for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportHTML {
		return "text/html; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

// Extension returns the file extension, including the dot.
func (f ExportFormat) Extension() string {
	if f == ExportHTML {
		return ".html"
	}
	return ".md"
}

// Export is a rendered document ready to be downloaded.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
