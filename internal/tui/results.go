package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pkordes/visamarker/internal/domain"
)

// Result tabs in display order.
const (
	tabChecklist = iota
	tabDocuments
	tabBudget
	tabCount
)

var tabTitles = [tabCount]string{"Checklist", "Documents", "Budget"}

// resultsModel is the view of one submitted plan. slots mirrors the plan's
// slots as far as this client has seen them; loading marks generations
// this client is waiting on.
type resultsModel struct {
	plan    domain.Plan
	slots   map[domain.SlotKind]domain.Slot
	loading map[domain.SlotKind]bool
	tab     int
	share   string
	notice  string
}

func newResults(plan domain.Plan) resultsModel {
	slots := make(map[domain.SlotKind]domain.Slot, len(domain.SlotKinds))
	for _, k := range domain.SlotKinds {
		slots[k] = plan.Slot(k)
	}
	return resultsModel{plan: plan, slots: slots, loading: make(map[domain.SlotKind]bool)}
}

func (r resultsModel) planID() uuid.UUID { return r.plan.ID }

func (r resultsModel) busy() bool {
	for _, v := range r.loading {
		if v {
			return true
		}
	}
	return false
}

// updateResults handles a key press on the results screen.
func (m Model) updateResults(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right":
		return m.switchTab((m.results.tab + 1) % tabCount)
	case "shift+tab", "left":
		return m.switchTab((m.results.tab + tabCount - 1) % tabCount)
	case "c":
		if m.results.tab == tabDocuments {
			return m.generate(domain.SlotCoverLetter)
		}
	case "i":
		if m.results.tab == tabDocuments {
			return m.generate(domain.SlotItinerary)
		}
	case "s":
		m.results.notice = "Preparing share link..."
		return m, shareCmd(m.ctx, m.planner, m.results.planID())
	case "r":
		id := m.results.planID()
		m.screen = screenForm
		m.results = resultsModel{}
		m.err = ""
		return m, resetCmd(m.ctx, m.planner, id)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// switchTab activates a tab. Activating the budget tab starts its
// generation unless it already succeeded.
func (m Model) switchTab(tab int) (Model, tea.Cmd) {
	m.results.tab = tab
	if tab == tabBudget {
		return m.generate(domain.SlotBudget)
	}
	m.refreshContent()
	return m, nil
}

// generate starts generating a slot unless it is done or already loading.
func (m Model) generate(kind domain.SlotKind) (Model, tea.Cmd) {
	if m.results.slots[kind].Done() || m.results.loading[kind] {
		m.refreshContent()
		return m, nil
	}
	m.results.loading[kind] = true
	slot := m.results.slots[kind]
	slot.State = domain.SlotInProgress
	slot.Error = ""
	m.results.slots[kind] = slot
	m.refreshContent()
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.planner, m.results.planID(), kind))
}

// applySlot records a finished generation. A planner error (for example
// the plan expired) is shown in the slot like a generation failure.
func (m Model) applySlot(msg slotMsg) Model {
	if m.screen != screenResults || msg.planID != m.results.planID() {
		return m
	}
	m.results.loading[msg.kind] = false
	slot := msg.slot
	if msg.err != nil {
		slot = m.results.slots[msg.kind]
		slot.State = domain.SlotFailed
		slot.Error = "Could not generate " + strings.ToLower(msg.kind.Title()) + ". Please try again."
		m.log.Warn("document generation failed", "plan_id", msg.planID, "document", msg.kind, "error", msg.err)
	}
	m.results.slots[msg.kind] = slot
	m.refreshContent()
	return m
}

// tabMarkdown is the markdown shown in the viewport for the current tab.
func (r resultsModel) tabMarkdown() string {
	switch r.tab {
	case tabDocuments:
		return r.slotMarkdown(domain.SlotCoverLetter, "c") + "\n\n---\n\n" + r.slotMarkdown(domain.SlotItinerary, "i")
	case tabBudget:
		return r.slotMarkdown(domain.SlotBudget, "")
	}
	return r.plan.Checklist
}

func (r resultsModel) slotMarkdown(kind domain.SlotKind, key string) string {
	slot := r.slots[kind]
	name := strings.ToLower(kind.Title())
	switch slot.State {
	case domain.SlotSucceeded:
		return slot.Content
	case domain.SlotInProgress:
		return "## " + kind.Title() + "\n\n_Generating your " + name + "..._"
	case domain.SlotFailed:
		retry := "Switch tabs and come back to try again."
		if key != "" {
			retry = "Press **" + key + "** to try again."
		}
		return "## " + kind.Title() + "\n\n**Error:** " + slot.Error + "\n\n" + retry
	}
	return "## " + kind.Title() + "\n\nPress **" + key + "** to generate your " + name + "."
}

func (m Model) viewResults() string {
	var b strings.Builder
	req := m.results.plan.Request
	b.WriteString(titleStyle.Render("Visa plan: " + req.Nationality + " → " + req.Destination + " (" + req.TravelDateString() + ")"))
	b.WriteString("\n")

	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if i == m.results.tab {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, tabStyle.Render(title))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case m.results.busy():
		b.WriteString(m.spinner.View() + " Working...")
	case m.results.share != "":
		b.WriteString("Share on WhatsApp: " + linkStyle.Render(m.results.share))
	case m.results.notice != "":
		b.WriteString(helpStyle.Render(m.results.notice))
	}
	b.WriteString("\n")

	help := "tab switch • ↑/↓ scroll • s share • r start over • q quit"
	if m.results.tab == tabDocuments {
		help = "c cover letter • i itinerary • " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
