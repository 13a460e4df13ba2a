package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
	"github.com/pkordes/visamarker/internal/repo"
)

// ExportService prepares a plan document for download.
type ExportService struct {
	plans repo.PlanRepo
}

// NewExportService constructs an ExportService reading plans from plans.
func NewExportService(plans repo.PlanRepo) *ExportService {
	return &ExportService{plans: plans}
}

// Export renders one document of a plan in the requested format.
// name is "checklist" (the default when empty) or a slot kind; format is
// domain.ExportMarkdown (the default when empty) or domain.ExportHTML.
//
// Returns domain.ErrNotFound for an unknown plan, domain.ErrValidation for an
// unknown document or format, and domain.ErrConflict when the requested
// document has not been generated yet.
func (s *ExportService) Export(ctx context.Context, id uuid.UUID, name string, format domain.ExportFormat) (domain.Export, error) {
	if format == "" {
		format = domain.ExportMarkdown
	}
	if !format.Valid() {
		return domain.Export{}, fmt.Errorf("service.ExportService.Export: %w: unknown format %q", domain.ErrValidation, format)
	}

	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return domain.Export{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	text, err := plan.Document(name)
	if err != nil {
		return domain.Export{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	title := documentTitle(plan, name)
	out := domain.Export{
		Filename:    exportFilename(plan, name, format),
		ContentType: format.ContentType(),
	}
	switch format {
	case domain.ExportHTML:
		body, err := document.HTML(title, text)
		if err != nil {
			return domain.Export{}, fmt.Errorf("service.ExportService.Export: %w", err)
		}
		out.Body = body
	default:
		out.Body = []byte(text)
	}
	return out, nil
}

// documentTitle is the title of an exported page, e.g. "Cover Letter for Japan".
func documentTitle(plan domain.Plan, name string) string {
	label := "Visa Checklist"
	if k, err := domain.ParseSlotKind(name); err == nil {
		label = k.Title()
	}
	return label + " for " + plan.Request.Destination
}

// exportFilename builds e.g. "visa-plan-united-kingdom-cover-letter.html".
func exportFilename(plan domain.Plan, name string, format domain.ExportFormat) string {
	if name == "" {
		name = "checklist"
	}
	parts := []string{"visa-plan", slugify(plan.Request.Destination), slugify(name)}
	return strings.Join(parts, "-") + format.Extension()
}
