package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/visamarker/internal/domain"
)

// fakePlanner is a hand-written Planner. Set only the fields your test needs.
type fakePlanner struct {
	submit    func(ctx context.Context, req domain.TripRequest) (domain.Plan, error)
	generate  func(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error)
	shareLink func(ctx context.Context, id uuid.UUID) (string, error)

	mu     sync.Mutex
	calls  []domain.SlotKind
	resets []uuid.UUID
}

func (f *fakePlanner) Submit(ctx context.Context, req domain.TripRequest) (domain.Plan, error) {
	return f.submit(ctx, req)
}

func (f *fakePlanner) Generate(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error) {
	f.mu.Lock()
	f.calls = append(f.calls, kind)
	f.mu.Unlock()
	if f.generate == nil {
		return domain.Slot{Kind: kind, State: domain.SlotSucceeded, Content: "# " + kind.Title(), Attempts: 1}, nil
	}
	return f.generate(ctx, id, kind)
}

func (f *fakePlanner) ShareLink(ctx context.Context, id uuid.UUID) (string, error) {
	return f.shareLink(ctx, id)
}

func (f *fakePlanner) Reset(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, id)
	return nil
}

var _ Planner = (*fakePlanner)(nil)

// ---- helpers ---------------------------------------------------------------

func kenyaToJapan() domain.TripRequest {
	return domain.TripRequest{
		Nationality: "Kenya",
		Destination: "Japan",
		TravelDate:  time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		Purpose:     domain.PurposeTourism,
	}
}

// echoPlanner returns a plan for whatever request it receives.
func echoPlanner() *fakePlanner {
	return &fakePlanner{
		submit: func(_ context.Context, req domain.TripRequest) (domain.Plan, error) {
			return domain.NewPlan(uuid.New(), req, "# Visa Plan for "+req.Destination, time.Now()), nil
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and runs the resulting commands until only
// non-planner messages remain.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, cmd := m.Update(key(k))
		m = drain(next.(Model), cmd)
	}
	return m
}

// drain executes cmd and feeds planner results back into the model.
// Spinner ticks and other timer-driven messages are dropped.
func drain(m Model, cmd tea.Cmd) Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case planMsg, slotMsg, shareMsg:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		}
	}
	return m
}

func submitted(t *testing.T, p *fakePlanner) Model {
	t.Helper()
	m := New(context.Background(), p, WithTrip(kenyaToJapan()))
	m = press(m, "enter")
	require.Equal(t, screenResults, m.screen)
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ---- form ------------------------------------------------------------------

func TestForm_CycleOptions(t *testing.T) {
	m := New(context.Background(), echoPlanner())
	assert.Equal(t, "", m.form.nationality.value())

	m = press(m, "right")
	assert.Equal(t, domain.Countries()[0], m.form.nationality.value())
	m = press(m, "left", "left")
	countries := domain.Countries()
	assert.Equal(t, countries[len(countries)-2], m.form.nationality.value())

	m = press(m, "down", "right", "right")
	assert.Equal(t, domain.Destinations()[1], m.form.destination.value())
}

func TestForm_TypeDateAndSubmit(t *testing.T) {
	var got domain.TripRequest
	p := echoPlanner()
	inner := p.submit
	p.submit = func(ctx context.Context, req domain.TripRequest) (domain.Plan, error) {
		got = req
		return inner(ctx, req)
	}
	m := New(context.Background(), p)

	// Kenya is not first in the list; select it by cycling.
	m = press(m, "right")
	for m.form.nationality.value() != "Kenya" {
		m = press(m, "right")
	}
	m = press(m, "down")
	for m.form.destination.value() != "Japan" {
		m = press(m, "right")
	}
	m = press(m, "down")
	for _, r := range "2030-06-01" {
		m = press(m, string(r))
	}
	m = press(m, "down", "right", "enter")

	assert.Equal(t, kenyaToJapan(), got)
	assert.Equal(t, screenResults, m.screen)
	assert.Equal(t, "# Visa Plan for Japan", m.results.tabMarkdown())
}

func TestForm_BadDateStaysOnForm(t *testing.T) {
	p := &fakePlanner{
		submit: func(_ context.Context, _ domain.TripRequest) (domain.Plan, error) {
			t.Fatal("planner must not be called")
			return domain.Plan{}, nil
		},
	}
	req := kenyaToJapan()
	req.TravelDate = time.Time{}
	m := New(context.Background(), p, WithTrip(req))
	m.form.date.SetValue("01/06/2030")

	m = press(m, "enter")

	assert.Equal(t, screenForm, m.screen)
	assert.Contains(t, m.View(), "enter the travel date as 2006-01-02")
}

func TestForm_ValidationErrorShownInline(t *testing.T) {
	p := &fakePlanner{
		submit: func(_ context.Context, _ domain.TripRequest) (domain.Plan, error) {
			return domain.Plan{}, fmt.Errorf("service.PlanService.Submit: %w: purpose is required", domain.ErrValidation)
		},
	}
	m := New(context.Background(), p)

	m = press(m, "enter")

	assert.Equal(t, screenForm, m.screen)
	assert.Equal(t, "Purpose is required", m.form.err)
	assert.False(t, m.submitting)
}

func TestForm_ChecklistFailureIsPageError(t *testing.T) {
	p := &fakePlanner{
		submit: func(_ context.Context, _ domain.TripRequest) (domain.Plan, error) {
			return domain.Plan{}, errors.New("visa table unavailable")
		},
	}
	m := New(context.Background(), p, WithTrip(kenyaToJapan()))

	m = press(m, "enter")

	assert.Equal(t, screenForm, m.screen)
	assert.Contains(t, m.View(), "Could not generate your visa plan")
	assert.NotContains(t, m.View(), "visa table unavailable")
}

func TestForm_QuitOutsideDateField(t *testing.T) {
	m := New(context.Background(), echoPlanner())

	_, cmd := m.Update(key("q"))
	assert.True(t, isQuit(cmd))

	m = press(m, "down", "down")
	next, cmd := m.Update(key("q"))
	assert.False(t, isQuit(cmd), "q types into the date field")
	assert.Equal(t, "q", next.(Model).form.date.Value())
}

// ---- results ---------------------------------------------------------------

func TestResults_BudgetGeneratedOnActivation(t *testing.T) {
	p := echoPlanner()
	m := submitted(t, p)

	m = press(m, "tab")
	assert.Empty(t, p.calls, "documents tab generates nothing by itself")

	m = press(m, "tab")
	assert.Equal(t, tabBudget, m.results.tab)
	assert.Equal(t, []domain.SlotKind{domain.SlotBudget}, p.calls)
	assert.Equal(t, "# Estimated Budget", m.results.tabMarkdown())
}

func TestResults_MemoizedAcrossTabSwitches(t *testing.T) {
	p := echoPlanner()
	m := submitted(t, p)

	m = press(m, "tab", "tab", "tab", "tab", "tab", "tab")

	assert.Equal(t, []domain.SlotKind{domain.SlotBudget}, p.calls)
}

func TestResults_DocumentsOnKeyPress(t *testing.T) {
	p := echoPlanner()
	m := submitted(t, p)

	m = press(m, "c")
	assert.Empty(t, p.calls, "c only works on the documents tab")

	m = press(m, "tab", "c", "i", "c")

	assert.Equal(t, []domain.SlotKind{domain.SlotCoverLetter, domain.SlotItinerary}, p.calls)
	md := m.results.tabMarkdown()
	assert.Contains(t, md, "# Cover Letter")
	assert.Contains(t, md, "# Sample Itinerary")
}

func TestResults_FailureShownInSlotAndRetryable(t *testing.T) {
	p := echoPlanner()
	attempts := 0
	p.generate = func(_ context.Context, _ uuid.UUID, kind domain.SlotKind) (domain.Slot, error) {
		attempts++
		if attempts == 1 {
			return domain.Slot{Kind: kind, State: domain.SlotFailed, Error: "Could not generate cover letter.", Attempts: 1}, nil
		}
		return domain.Slot{Kind: kind, State: domain.SlotSucceeded, Content: "Dear Sir/Madam,", Attempts: 2}, nil
	}
	m := submitted(t, p)

	m = press(m, "tab", "c")
	md := m.results.tabMarkdown()
	assert.Contains(t, md, "**Error:** Could not generate cover letter.")
	assert.Contains(t, md, "Press **c** to try again.")
	assert.Contains(t, md, "Press **i** to generate your sample itinerary.", "other slots unaffected")

	m = press(m, "c")
	assert.Contains(t, m.results.tabMarkdown(), "Dear Sir/Madam,")
}

func TestResults_PlannerErrorBecomesSlotError(t *testing.T) {
	p := echoPlanner()
	p.generate = func(_ context.Context, _ uuid.UUID, _ domain.SlotKind) (domain.Slot, error) {
		return domain.Slot{}, domain.ErrNotFound
	}
	m := submitted(t, p)

	m = press(m, "tab", "tab")

	assert.Equal(t, domain.SlotFailed, m.results.slots[domain.SlotBudget].State)
	assert.Contains(t, m.results.tabMarkdown(), "Could not generate estimated budget.")
}

func TestResults_Share(t *testing.T) {
	p := echoPlanner()
	p.shareLink = func(_ context.Context, _ uuid.UUID) (string, error) {
		return "https://api.whatsapp.com/send?text=hello", nil
	}
	m := submitted(t, p)

	m = press(m, "s")

	assert.Equal(t, "https://api.whatsapp.com/send?text=hello", m.results.share)
	assert.Contains(t, m.View(), "https://api.whatsapp.com/send?text=hello")
}

func TestResults_ResetReturnsToFormAndDropsLateResults(t *testing.T) {
	p := echoPlanner()
	m := submitted(t, p)
	planID := m.results.planID()

	// Start the budget generation but do not deliver its result yet.
	next, _ := m.Update(key("tab"))
	m = next.(Model)
	next, _ = m.Update(key("tab"))
	m = next.(Model)
	require.True(t, m.results.loading[domain.SlotBudget])

	m = press(m, "r")
	assert.Equal(t, screenForm, m.screen)
	assert.Equal(t, []uuid.UUID{planID}, p.resets)
	assert.Equal(t, "Kenya", m.form.nationality.value(), "form keeps its values")

	late := slotMsg{planID: planID, kind: domain.SlotBudget,
		slot: domain.Slot{Kind: domain.SlotBudget, State: domain.SlotSucceeded, Content: "late"}}
	next, _ = m.Update(late)
	m = next.(Model)
	assert.Equal(t, screenForm, m.screen)
	assert.NotContains(t, m.View(), "late")
}

func TestResults_Quit(t *testing.T) {
	m := submitted(t, echoPlanner())

	_, cmd := m.Update(key("q"))

	assert.True(t, isQuit(cmd))
}

func TestResults_ViewShowsTabsAndTrip(t *testing.T) {
	m := submitted(t, echoPlanner())

	view := m.View()

	for _, title := range tabTitles {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Kenya → Japan (2030-06-01)")
	assert.True(t, strings.Contains(view, "Visa Plan for Japan"))
}

func TestValidationMessage(t *testing.T) {
	err := fmt.Errorf("service.PlanService.Submit: %w: unknown destination \"Mars\"", domain.ErrValidation)
	assert.Equal(t, `Unknown destination "Mars"`, validationMessage(err))
}
