package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkordes/visamarker/internal/domain"
)

// Form fields in display order.
const (
	fieldNationality = iota
	fieldDestination
	fieldDate
	fieldPurpose
	fieldCount
)

// selectField cycles through a fixed list of options. index -1 means
// nothing has been chosen yet.
type selectField struct {
	label       string
	placeholder string
	options     []string
	index       int
}

func newSelect(label, placeholder string, options []string) selectField {
	return selectField{label: label, placeholder: placeholder, options: options, index: -1}
}

func (f *selectField) next() { f.index = (f.index + 1) % len(f.options) }

func (f *selectField) prev() {
	if f.index <= 0 {
		f.index = len(f.options) - 1
		return
	}
	f.index--
}

func (f selectField) value() string {
	if f.index < 0 {
		return ""
	}
	return f.options[f.index]
}

// selectValue moves the field to v, if v is one of its options.
func (f *selectField) selectValue(v string) {
	for i, o := range f.options {
		if o == v {
			f.index = i
			return
		}
	}
}

type formModel struct {
	nationality selectField
	destination selectField
	purpose     selectField
	date        textinput.Model
	focus       int
	err         string
}

func newForm() formModel {
	date := textinput.New()
	date.Placeholder = domain.DateLayout
	date.CharLimit = len(domain.DateLayout)
	date.Width = len(domain.DateLayout) + 1
	date.Prompt = ""
	date.Cursor.SetMode(cursor.CursorStatic)

	return formModel{
		nationality: newSelect("Nationality", "Select your country", domain.Countries()),
		destination: newSelect("Destination", "Select destination", domain.Destinations()),
		purpose:     newSelect("Purpose", "Select purpose", domain.Purposes()),
		date:        date,
	}
}

func (f *formModel) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	if f.focus == fieldDate {
		f.date.Focus()
	} else {
		f.date.Blur()
	}
}

func (f *formModel) selected() *selectField {
	switch f.focus {
	case fieldNationality:
		return &f.nationality
	case fieldDestination:
		return &f.destination
	case fieldPurpose:
		return &f.purpose
	}
	return nil
}

// request builds the trip request from the form. Only the date format is
// checked here; the planner validates everything else.
func (f formModel) request() (domain.TripRequest, error) {
	req := domain.TripRequest{
		Nationality: f.nationality.value(),
		Destination: f.destination.value(),
		Purpose:     f.purpose.value(),
	}
	if s := strings.TrimSpace(f.date.Value()); s != "" {
		d, err := time.Parse(domain.DateLayout, s)
		if err != nil {
			return req, errors.New("enter the travel date as " + domain.DateLayout)
		}
		req.TravelDate = d
	}
	return req, nil
}

// updateForm handles a key press on the form screen.
func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch msg.String() {
	case "up", "shift+tab":
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case "down", "tab":
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case "left":
		if f := m.form.selected(); f != nil {
			f.prev()
		}
		return m, nil
	case "right":
		if f := m.form.selected(); f != nil {
			f.next()
		}
		return m, nil
	case "enter":
		req, err := m.form.request()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.submitting = true
		return m, tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.planner, req))
	case "q":
		if m.form.focus != fieldDate {
			return m, tea.Quit
		}
	}

	if m.form.focus == fieldDate {
		var cmd tea.Cmd
		m.form.date, cmd = m.form.date.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VisaMarker: plan your visa"))
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
		empty bool
	}{
		{m.form.nationality.label, m.form.nationality.value(), m.form.nationality.index < 0},
		{m.form.destination.label, m.form.destination.value(), m.form.destination.index < 0},
		{"Travel date", m.form.date.View(), false},
		{m.form.purpose.label, m.form.purpose.value(), m.form.purpose.index < 0},
	}
	placeholders := []string{m.form.nationality.placeholder, m.form.destination.placeholder, "", m.form.purpose.placeholder}
	for i, row := range rows {
		label := labelStyle.Render(row.label)
		cursor := "  "
		if i == m.form.focus {
			label = focusedLabelStyle.Render(row.label)
			cursor = "> "
		}
		value := valueStyle.Render(row.value)
		if row.empty {
			value = placeholderStyle.Render(placeholders[i])
		}
		if i != fieldDate && i == m.form.focus {
			value = "‹ " + value + " ›"
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cursor, label, value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(m.spinner.View() + " Generating your visa plan...")
	case m.err != "":
		b.WriteString(errorStyle.Render(m.err))
	case m.form.err != "":
		b.WriteString(errorStyle.Render(m.form.err))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ move • ←/→ choose • enter generate plan • q quit"))
	return b.String()
}
