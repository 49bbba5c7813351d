package ports

import (
	"context"

	"github.com/aretw0/waypoint/pkg/domain"
)

// StateStore defines the interface for persisting back stack snapshots.
// This allows a host and its pending results to survive process death.
type StateStore interface {
	// Save persists the snapshot for a given host ID.
	Save(ctx context.Context, hostID string, snapshot *domain.BackStackSnapshot) error

	// Load retrieves the snapshot for a given host ID.
	// Returns domain.ErrSnapshotNotFound if the host ID does not exist.
	Load(ctx context.Context, hostID string) (*domain.BackStackSnapshot, error)

	// Delete removes the snapshot for a given host ID.
	Delete(ctx context.Context, hostID string) error

	// List returns the stored host IDs.
	List(ctx context.Context) ([]string, error)
}
