package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pkordes/visamarker/internal/domain"
)

// Planner is the subset of service.PlanService the terminal client drives.
type Planner interface {
	Submit(ctx context.Context, req domain.TripRequest) (domain.Plan, error)
	Generate(ctx context.Context, id uuid.UUID, kind domain.SlotKind) (domain.Slot, error)
	ShareLink(ctx context.Context, id uuid.UUID) (string, error)
	Reset(ctx context.Context, id uuid.UUID) error
}

// Messages delivered back to Update when a planner call finishes.
// Results for a plan that is no longer shown are dropped.
type (
	planMsg struct {
		plan domain.Plan
		err  error
	}
	slotMsg struct {
		planID uuid.UUID
		kind   domain.SlotKind
		slot   domain.Slot
		err    error
	}
	shareMsg struct {
		planID uuid.UUID
		url    string
		err    error
	}
)

func submitCmd(ctx context.Context, p Planner, req domain.TripRequest) tea.Cmd {
	return func() tea.Msg {
		plan, err := p.Submit(ctx, req)
		return planMsg{plan: plan, err: err}
	}
}

func generateCmd(ctx context.Context, p Planner, id uuid.UUID, kind domain.SlotKind) tea.Cmd {
	return func() tea.Msg {
		slot, err := p.Generate(ctx, id, kind)
		return slotMsg{planID: id, kind: kind, slot: slot, err: err}
	}
}

func shareCmd(ctx context.Context, p Planner, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		url, err := p.ShareLink(ctx, id)
		return shareMsg{planID: id, url: url, err: err}
	}
}

func resetCmd(ctx context.Context, p Planner, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		_ = p.Reset(ctx, id)
		return nil
	}
}
