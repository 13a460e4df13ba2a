package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/pkordes/visamarker/internal/domain"
	"github.com/pkordes/visamarker/internal/repo"
)

// Generator produces document text for a trip request.
// *PlannerService is the production implementation.
type Generator interface {
	Checklist(ctx context.Context, req domain.TripRequest) (string, error)
	Document(ctx context.Context, kind domain.SlotKind, req domain.TripRequest) (string, error)
}

// PlanService manages submitted plans: the eager checklist and the three
// lazily generated documents of each plan.
//
// A slot that succeeded is never generated again. A slot that failed keeps
// its error message until the next Generate call retries it. Concurrent
// Generate calls for the same slot share one generation.
type PlanService struct {
	plans repo.PlanRepo
	gen   Generator
	log   *slog.Logger

	// mu serialises read-modify-write cycles on stored plans.
	mu     sync.Mutex
	flight singleflight.Group

	now   func() time.Time
	newID func() uuid.UUID
}

// PlanOption customises a PlanService.
type PlanOption func(*PlanService)

// WithClock replaces time.Now, used for plan timestamps and the
// "travel date in the past" check.
func WithClock(now func() time.Time) PlanOption {
	return func(s *PlanService) { s.now = now }
}

// WithLogger sets the logger for plan lifecycle events.
func WithLogger(log *slog.Logger) PlanOption {
	return func(s *PlanService) { s.log = log }
}

// NewPlanService constructs a PlanService storing plans in plans and
// generating documents with gen.
func NewPlanService(plans repo.PlanRepo, gen Generator, opts ...PlanOption) *PlanService {
	s := &PlanService{
		plans: plans,
		gen:   gen,
		log:   slog.New(slog.DiscardHandler),
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the request, generates its checklist and stores a new
// plan whose three documents are not started.
// Returns domain.ErrValidation if the request is invalid. If the checklist
// cannot be generated no plan is stored.
func (s *PlanService) Submit(ctx context.Context, req domain.TripRequest) (domain.Plan, error) {
	req = normalizeTrip(req)
	if err := validateTrip(req, s.now()); err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Submit: %w", err)
	}

	checklist, err := s.gen.Checklist(ctx, req)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Submit: checklist: %w", err)
	}

	plan := domain.NewPlan(s.newID(), req, checklist, s.now().UTC())
	if err := s.plans.Create(ctx, plan); err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Submit: %w", err)
	}
	s.log.InfoContext(ctx, "plan submitted", "plan_id", plan.ID,
		"nationality", req.Nationality, "destination", req.Destination, "purpose", req.Purpose)
	return plan, nil
}

// Get returns a plan by ID. Returns domain.ErrNotFound if it does not exist.
func (s *PlanService) Get(ctx context.Context, id uuid.UUID) (domain.Plan, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Get: %w", err)
	}
	return plan, nil
}

// Reset discards a plan. Generations still running for it finish, but
// their results are dropped.
func (s *PlanService) Reset(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PlanService.Reset: %w", err)
	}
	s.log.InfoContext(ctx, "plan reset", "plan_id", id)
	return nil
}

// Generate returns the slot of the given kind, generating its document
// first unless it already succeeded.
//
// A generation failure is not returned as an error: it is stored in the
// slot (State failed, Error set) and the slot is returned. Errors are
// returned for an unknown plan (domain.ErrNotFound, also when the plan is
// reset mid-generation) and when ctx ends before the result is ready. The
// generation itself is not cancelled with ctx; it completes for the
// benefit of later callers.
func (s *PlanService) Generate(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("service.PlanService.Generate: %w", err)
	}
	if slot := plan.Slot(kind); slot.Done() {
		return slot, nil
	}

	key := id.String() + "/" + string(kind)
	ch := s.flight.DoChan(key, func() (any, error) {
		return s.generate(context.WithoutCancel(ctx), id, kind)
	})

	select {
	case <-ctx.Done():
		return domain.Slot{}, fmt.Errorf("service.PlanService.Generate: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.Slot{}, fmt.Errorf("service.PlanService.Generate: %w", res.Err)
		}
		return res.Val.(domain.Slot), nil
	}
}

// generate runs one generation for a slot and records the outcome.
// It re-checks the slot first: a previous flight may have succeeded between
// the caller's check and this flight starting.
func (s *PlanService) generate(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error) {
	s.mu.Lock()
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return domain.Slot{}, err
	}
	slot := plan.Slot(kind)
	if slot.Done() {
		s.mu.Unlock()
		return slot, nil
	}
	slot.State = domain.SlotInProgress
	slot.Error = ""
	slot.Attempts++
	plan.Slots[kind] = slot
	err = s.plans.Update(ctx, plan)
	s.mu.Unlock()
	if err != nil {
		return domain.Slot{}, err
	}

	start := s.now()
	content, genErr := s.gen.Document(ctx, kind, plan.Request)

	s.mu.Lock()
	defer s.mu.Unlock()
	plan, err = s.plans.Get(ctx, id)
	if err != nil {
		s.log.InfoContext(ctx, "discarding document for reset plan", "plan_id", id, "document", kind)
		return domain.Slot{}, err
	}
	slot = plan.Slot(kind)
	if genErr != nil {
		slot.State = domain.SlotFailed
		slot.Error = generationMessage(kind, genErr)
		s.log.WarnContext(ctx, "document generation failed", "plan_id", id, "document", kind,
			"attempt", slot.Attempts, "error", genErr)
	} else {
		slot.State = domain.SlotSucceeded
		slot.Content = content
		s.log.InfoContext(ctx, "document generated", "plan_id", id, "document", kind,
			"attempt", slot.Attempts, "duration_ms", s.now().Sub(start).Milliseconds())
	}
	plan.Slots[kind] = slot
	if err := s.plans.Update(ctx, plan); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

// ShareLink returns the WhatsApp share link for a plan's checklist.
func (s *PlanService) ShareLink(ctx context.Context, id uuid.UUID) (string, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.PlanService.ShareLink: %w", err)
	}
	return ShareLink(plan.Request.Destination, plan.Checklist), nil
}

// Sweep discards plans created more than ttl ago and returns how many were removed.
func (s *PlanService) Sweep(ctx context.Context, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.plans.DeleteCreatedBefore(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("service.PlanService.Sweep: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired plans swept", "count", n)
	}
	return n, nil
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *PlanService) RunSweeper(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx, ttl); err != nil {
				s.log.ErrorContext(ctx, "sweep failed", "error", err)
			}
		}
	}
}

// generationMessage is the human-readable text stored in a failed slot.
func generationMessage(kind domain.SlotKind, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "Could not generate " + strings.ToLower(kind.Title()) + ". Please try again."
	}
	return err.Error()
}

// normalizeTrip trims surrounding whitespace from the text fields and drops
// any time of day from the travel date.
func normalizeTrip(req domain.TripRequest) domain.TripRequest {
	req.Nationality = strings.TrimSpace(req.Nationality)
	req.Destination = strings.TrimSpace(req.Destination)
	req.Purpose = strings.TrimSpace(req.Purpose)
	if !req.TravelDate.IsZero() {
		y, m, d := req.TravelDate.Date()
		req.TravelDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return req
}

// validateTrip enforces the form's rules:
//   - every field is required;
//   - nationality, destination and purpose must be offered options;
//   - the travel date must not be before today (UTC).
func validateTrip(req domain.TripRequest, now time.Time) error {
	switch {
	case req.Nationality == "":
		return fmt.Errorf("%w: nationality is required", domain.ErrValidation)
	case req.Destination == "":
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	case req.TravelDate.IsZero():
		return fmt.Errorf("%w: travel_date is required", domain.ErrValidation)
	case req.Purpose == "":
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	case !domain.IsCountry(req.Nationality):
		return fmt.Errorf("%w: unknown nationality %q", domain.ErrValidation, req.Nationality)
	case !domain.IsDestination(req.Destination):
		return fmt.Errorf("%w: unknown destination %q", domain.ErrValidation, req.Destination)
	case !domain.IsPurpose(req.Purpose):
		return fmt.Errorf("%w: unknown purpose %q", domain.ErrValidation, req.Purpose)
	}

	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if req.TravelDate.Before(today) {
		return fmt.Errorf("%w: travel_date must not be in the past", domain.ErrValidation)
	}
	return nil
}
