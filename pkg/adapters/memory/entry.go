package memory

import (
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

// entry implements ports.BackStackEntry.
type entry struct {
	id          string
	destination domain.DestinationSpec
	args        map[string]any
	lifecycle   *lifecycle
	saved       *domain.SavedState
}

func (e *entry) ID() string                          { return e.id }
func (e *entry) Destination() domain.DestinationSpec { return e.destination }
func (e *entry) Lifecycle() ports.Lifecycle          { return e.lifecycle }
func (e *entry) SavedState() *domain.SavedState      { return e.saved }

func (e *entry) Arguments() map[string]any {
	out := make(map[string]any, len(e.args))
	for k, v := range e.args {
		out[k] = v
	}
	return out
}

func (e *entry) snapshot() domain.EntrySnapshot {
	return domain.EntrySnapshot{
		ID:         e.id,
		Route:      e.destination.Route(),
		Args:       e.Arguments(),
		SavedState: e.saved.Export(),
	}
}
