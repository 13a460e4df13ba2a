// Package repo contains the data access logic for the VisaMarker planner:
// the read-only visa table (YAML or Postgres) and the in-memory plan store.
// No business logic lives here, only lookups, storage and type mapping.
package repo

import (
	"context"

	"github.com/pkordes/visamarker/internal/domain"
)

// VisaRepo defines the read operations on the visa table.
// The service layer depends on this interface, not on a concrete source,
// which allows the planner to be unit-tested with a mock.
type VisaRepo interface {
	// Get returns the record for a destination, matched exactly by name.
	// Returns domain.ErrNotFound if the table has no entry for it.
	Get(ctx context.Context, destination string) (domain.VisaRecord, error)

	// List returns every record ordered by destination.
	List(ctx context.Context) ([]domain.VisaRecord, error)
}
