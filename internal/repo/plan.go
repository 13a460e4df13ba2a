package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/visamarker/internal/domain"
)

// PlanRepo stores submitted plans for the lifetime of the process.
// Plans are never written to disk: a restart forgets them.
type PlanRepo interface {
	// Create stores a new plan.
	Create(ctx context.Context, plan domain.Plan) error

	// Get returns a copy of the stored plan.
	// Returns domain.ErrNotFound if no plan with that ID exists.
	Get(ctx context.Context, id uuid.UUID) (domain.Plan, error)

	// Update replaces a stored plan. Returns domain.ErrNotFound if the plan
	// has been deleted in the meantime, so late results are discarded.
	Update(ctx context.Context, plan domain.Plan) error

	// Delete removes a plan. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteCreatedBefore removes every plan created before cutoff and
	// returns how many were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// memoryPlanRepo is the in-memory implementation of PlanRepo.
// Stored plans are cloned on the way in and out, so callers never share
// slot maps with the store.
type memoryPlanRepo struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]domain.Plan
}

// NewMemoryPlanRepo constructs an empty in-memory PlanRepo.
func NewMemoryPlanRepo() PlanRepo {
	return &memoryPlanRepo{plans: make(map[uuid.UUID]domain.Plan)}
}

func (r *memoryPlanRepo) Create(_ context.Context, plan domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plans[plan.ID]; exists {
		return fmt.Errorf("repo.PlanRepo.Create: %s: %w", plan.ID, domain.ErrConflict)
	}
	r.plans[plan.ID] = plan.Clone()
	return nil
}

func (r *memoryPlanRepo) Get(_ context.Context, id uuid.UUID) (domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return domain.Plan{}, fmt.Errorf("repo.PlanRepo.Get: %s: %w", id, domain.ErrNotFound)
	}
	return p.Clone(), nil
}

func (r *memoryPlanRepo) Update(_ context.Context, plan domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return fmt.Errorf("repo.PlanRepo.Update: %s: %w", plan.ID, domain.ErrNotFound)
	}
	r.plans[plan.ID] = plan.Clone()
	return nil
}

func (r *memoryPlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return fmt.Errorf("repo.PlanRepo.Delete: %s: %w", id, domain.ErrNotFound)
	}
	delete(r.plans, id)
	return nil
}

func (r *memoryPlanRepo) DeleteCreatedBefore(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, p := range r.plans {
		if p.CreatedAt.Before(cutoff) {
			delete(r.plans, id)
			n++
		}
	}
	return n, nil
}
