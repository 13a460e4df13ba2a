// Package tui implements the VisaMarker terminal client: a form collecting
// the trip, then a tabbed results view whose documents are generated on
// demand.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/pkordes/visamarker/internal/domain"
)

type screen int

const (
	screenForm screen = iota
	screenResults
)

const (
	headerHeight = 4
	footerHeight = 3
)

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	planner Planner
	log     *slog.Logger

	screen     screen
	form       formModel
	results    resultsModel
	submitting bool
	err        string

	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
}

// Option customises a Model.
type Option func(*Model)

// WithLogger sets the logger for client-side failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithTrip pre-fills the form with any of the request's values that are
// valid options.
func WithTrip(req domain.TripRequest) Option {
	return func(m *Model) {
		m.form.nationality.selectValue(req.Nationality)
		m.form.destination.selectValue(req.Destination)
		m.form.purpose.selectValue(req.Purpose)
		if !req.TravelDate.IsZero() {
			m.form.date.SetValue(req.TravelDateString())
		}
	}
}

// New returns the root model. Planner calls run with ctx.
func New(ctx context.Context, planner Planner, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      ctx,
		planner:  planner,
		log:      slog.New(slog.DiscardHandler),
		form:     newForm(),
		spinner:  sp,
		viewport: viewport.New(80, 20),
		width:    80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenResults {
			return m.updateResults(msg)
		}
		return m.updateForm(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 3)
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-4),
		)
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		if m.submitting || m.results.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case planMsg:
		m.submitting = false
		if msg.err != nil {
			m.log.Warn("plan submission failed", "error", msg.err)
			if errors.Is(msg.err, domain.ErrValidation) {
				m.form.err = validationMessage(msg.err)
			} else {
				m.err = "Could not generate your visa plan. Please try again."
			}
			return m, nil
		}
		m.err = ""
		m.screen = screenResults
		m.results = newResults(msg.plan)
		m.refreshContent()
		return m, nil

	case slotMsg:
		return m.applySlot(msg), nil

	case shareMsg:
		if m.screen != screenResults || msg.planID != m.results.planID() {
			return m, nil
		}
		if msg.err != nil {
			m.results.notice = "Could not create a share link."
			return m, nil
		}
		m.results.notice = ""
		m.results.share = msg.url
		return m, nil
	}

	if m.screen == screenResults {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.screen == screenResults {
		return m.viewResults()
	}
	return m.viewForm()
}

// refreshContent re-renders the current tab into the viewport.
func (m *Model) refreshContent() {
	if m.screen != screenResults {
		return
	}
	m.viewport.SetContent(m.renderMarkdown(m.results.tabMarkdown()))
}

func (m Model) renderMarkdown(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// validationMessage extracts the human-readable part of a validation error,
// e.g. "...: validation error: purpose is required" → "Purpose is required".
func validationMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
