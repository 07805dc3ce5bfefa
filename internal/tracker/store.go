package tracker

import (
	"context"
	"time"
)

// Store persists application records. Implementations return ErrNotFound for
// missing ids; ownership rules live in the Service, not here.
type Store interface {
	// ListByOwner returns the owner's records in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]Application, error)

	// Get returns the record with the given id regardless of owner.
	Get(ctx context.Context, id string) (*Application, error)

	// Insert persists a new record, assigning its id in place.
	Insert(ctx context.Context, a *Application) error

	// Apply applies a partial update to the record with the given id and
	// returns the updated record. The updatedAt timestamp is set to now.
	Apply(ctx context.Context, id string, p Patch, now time.Time) (*Application, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}
