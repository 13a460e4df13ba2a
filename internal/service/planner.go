// Package service contains the business logic for the VisaMarker planner.
// Services validate inputs, choose which generator runs, and manage plan
// state. No storage details live here: services depend on repo interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/visamarker/internal/document"
	"github.com/pkordes/visamarker/internal/domain"
	"github.com/pkordes/visamarker/internal/generator"
	"github.com/pkordes/visamarker/internal/repo"
)

// DefaultDelay is the simulated generation latency applied before every
// document is returned.
const DefaultDelay = 500 * time.Millisecond

// PlannerService produces the planner's documents as markdown text.
// Every operation suspends for the configured delay before generating, and
// returns early with ctx.Err() if ctx is cancelled while waiting.
type PlannerService struct {
	visas repo.VisaRepo
	delay time.Duration
	log   *slog.Logger
}

// NewPlannerService constructs a PlannerService that reads visa records from
// visas. A nil logger discards log output.
func NewPlannerService(visas repo.VisaRepo, delay time.Duration, log *slog.Logger) *PlannerService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PlannerService{visas: visas, delay: delay, log: log}
}

// Checklist returns the visa checklist for the request: the destination's
// own visa plan when its record has a core documents checklist, otherwise
// the generic checklist. A destination missing from the table is not an
// error; a failing table is.
func (s *PlannerService) Checklist(ctx context.Context, req domain.TripRequest) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", fmt.Errorf("service.PlannerService.Checklist: %w", err)
	}

	rec, err := s.visas.Get(ctx, req.Destination)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "no visa record, using generic checklist", "destination", req.Destination)
		return document.Markdown(generator.GenericChecklist(req)), nil
	case err != nil:
		return "", fmt.Errorf("service.PlannerService.Checklist: %w", err)
	}

	if !rec.Usable() {
		// The record's other fields are dropped along with it.
		s.log.DebugContext(ctx, "visa record discarded", "destination", req.Destination,
			"reason", "core documents checklist is blank", "fields", len(rec.Fields))
		return document.Markdown(generator.GenericChecklist(req)), nil
	}
	return document.Markdown(generator.VisaPlan(req, rec)), nil
}

// CoverLetter returns a draft visa application cover letter.
func (s *PlannerService) CoverLetter(ctx context.Context, req domain.TripRequest) (string, error) {
	return s.render(ctx, "CoverLetter", generator.CoverLetter, req)
}

// Itinerary returns a sample seven-day itinerary.
func (s *PlannerService) Itinerary(ctx context.Context, req domain.TripRequest) (string, error) {
	return s.render(ctx, "Itinerary", generator.Itinerary, req)
}

// Budget returns a sample budget with fixed comparison cities.
func (s *PlannerService) Budget(ctx context.Context, req domain.TripRequest) (string, error) {
	return s.render(ctx, "Budget", generator.Budget, req)
}

// Document dispatches to the generator for a plan slot.
func (s *PlannerService) Document(ctx context.Context, kind domain.SlotKind, req domain.TripRequest) (string, error) {
	switch kind {
	case domain.SlotCoverLetter:
		return s.CoverLetter(ctx, req)
	case domain.SlotItinerary:
		return s.Itinerary(ctx, req)
	case domain.SlotBudget:
		return s.Budget(ctx, req)
	}
	return "", fmt.Errorf("service.PlannerService.Document: %w: unknown document %q", domain.ErrValidation, kind)
}

func (s *PlannerService) render(ctx context.Context, op string, gen func(domain.TripRequest) document.Document, req domain.TripRequest) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", fmt.Errorf("service.PlannerService.%s: %w", op, err)
	}
	return document.Markdown(gen(req)), nil
}

// wait suspends for the configured delay or until ctx is done.
func (s *PlannerService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
