// Package handler: export.go implements GET /plans/{id}/export.
// Returns one plan document as a file download, as markdown or as a
// standalone HTML page.
package handler

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/visamarker/internal/domain"
)

// exportFailed is the only message a client sees for an unexpected export
// failure. Nothing about the failure is stored on the plan.
const exportFailed = "could not prepare the download"

// GetExport handles GET /plans/{id}/export?document=&format=.
// document defaults to the checklist. format defaults to html when the
// Accept header prefers it, otherwise markdown.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}

	var document, format *string
	if err := runtime.BindQueryParameter("form", true, false, "document", r.URL.Query(), &document); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid document parameter"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid format parameter"))
		return
	}

	name := "checklist"
	if document != nil && *document != "" {
		name = *document
	}
	f := negotiateFormat(r.Header.Get("Accept"))
	if format != nil && *format != "" {
		f = domain.ExportFormat(*format)
	}

	out, err := s.export.Export(r.Context(), id, name, f)
	if err != nil {
		s.writeError(w, r, err, "plan not found", exportFailed)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": out.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Body)
}

// negotiateFormat picks html only when the client lists text/html ahead of
// any markdown type; everything else gets markdown.
func negotiateFormat(accept string) domain.ExportFormat {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "text/html":
			return domain.ExportHTML
		case "text/markdown", "text/plain":
			return domain.ExportMarkdown
		}
	}
	return domain.ExportMarkdown
}
