package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SlotKind names one of the lazily generated documents of a plan.
type SlotKind string

const (
	SlotCoverLetter SlotKind = "cover_letter"
	SlotItinerary   SlotKind = "itinerary"
	SlotBudget      SlotKind = "budget"
)

// SlotKinds lists the lazily generated documents in display order.
var SlotKinds = []SlotKind{SlotCoverLetter, SlotItinerary, SlotBudget}

// ParseSlotKind accepts the snake_case form and the hyphenated URL form
// ("cover-letter") of a slot kind.
func ParseSlotKind(s string) (SlotKind, error) {
	k := SlotKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range SlotKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown document %q", ErrValidation, s)
}

// Title returns the display title used for the slot in the UI and in exports.
func (k SlotKind) Title() string {
	switch k {
	case SlotCoverLetter:
		return "Cover Letter"
	case SlotItinerary:
		return "Sample Itinerary"
	case SlotBudget:
		return "Estimated Budget"
	}
	return string(k)
}

// SlotState is the lifecycle position of a lazily generated document.
//
//	not_started → in_progress → succeeded
//	                          → failed → in_progress (retry)
//
// Only succeeded is terminal.
type SlotState string

const (
	SlotNotStarted SlotState = "not_started"
	SlotInProgress SlotState = "in_progress"
	SlotSucceeded  SlotState = "succeeded"
	SlotFailed     SlotState = "failed"
)

// Slot is one lazily generated document within a plan.
// Content is set only when State is SlotSucceeded; Error only when SlotFailed.
type Slot struct {
	Kind     SlotKind  `json:"kind"`
	State    SlotState `json:"state"`
	Content  string    `json:"content,omitempty"`
	Error    string    `json:"error,omitempty"`
	Attempts int       `json:"attempts"`
}

// Done reports whether the slot holds generated content.
func (s Slot) Done() bool { return s.State == SlotSucceeded }

// Plan is the result of one form submission: the request, the checklist
// computed eagerly at submission, and the three lazily generated slots.
type Plan struct {
	ID        uuid.UUID
	Request   TripRequest
	Checklist string
	Slots     map[SlotKind]Slot
	CreatedAt time.Time
}

// NewPlan returns a plan with every slot in the not_started state.
func NewPlan(id uuid.UUID, req TripRequest, checklist string, now time.Time) Plan {
	slots := make(map[SlotKind]Slot, len(SlotKinds))
	for _, k := range SlotKinds {
		slots[k] = Slot{Kind: k, State: SlotNotStarted}
	}
	return Plan{ID: id, Request: req, Checklist: checklist, Slots: slots, CreatedAt: now}
}

// Slot returns the slot of the given kind.
func (p Plan) Slot(k SlotKind) Slot {
	if s, ok := p.Slots[k]; ok {
		return s
	}
	return Slot{Kind: k, State: SlotNotStarted}
}

// Clone returns a deep copy, so a stored plan can be handed out without
// sharing its slot map.
func (p Plan) Clone() Plan {
	slots := make(map[SlotKind]Slot, len(p.Slots))
	for k, s := range p.Slots {
		slots[k] = s
	}
	p.Slots = slots
	return p
}

// Document returns the text of the named document: "checklist" or a slot kind.
// Returns ErrConflict if the slot has not been generated yet.
func (p Plan) Document(name string) (string, error) {
	if name == "" || name == "checklist" {
		return p.Checklist, nil
	}
	k, err := ParseSlotKind(name)
	if err != nil {
		return "", err
	}
	s := p.Slot(k)
	if !s.Done() {
		return "", fmt.Errorf("%w: %s has not been generated", ErrConflict, k.Title())
	}
	return s.Content, nil
}
