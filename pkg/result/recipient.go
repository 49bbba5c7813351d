package result

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

// ResultRecipient receives results of type R sent back by destination D.
type ResultRecipient[D domain.DestinationSpec, R any] interface {
	// OnResult registers listener. It is invoked once per result, when the entry resumes.
	OnResult(listener func(R))
}

// Recipient is the ResultRecipient bound to one back stack entry.
type Recipient[D domain.DestinationSpec, R any] struct {
	entry  ports.BackStackEntry
	origin D
	typeID string
	key    string
	opts   options
}

// NewRecipient builds a recipient on entry for results of type R sent by origin.
func NewRecipient[D domain.DestinationSpec, R any](entry ports.BackStackEntry, origin D, opts ...Option) (*Recipient[D, R], error) {
	typeID, err := TypeID[R]()
	if err != nil {
		return nil, err
	}
	if entry == nil || any(origin) == nil {
		return nil, fmt.Errorf("result: entry and origin are required")
	}
	return &Recipient[D, R]{
		entry:  entry,
		origin: origin,
		typeID: typeID,
		key:    Key(origin.Route(), typeID),
		opts:   buildOptions(opts),
	}, nil
}

// Key returns the saved-state key this recipient reads from.
func (r *Recipient[D, R]) Key() string {
	return r.key
}

// OnResult registers listener for the (origin, R) pair on this entry.
// A later registration for the same pair replaces the earlier one.
// Whenever the entry reaches the resumed state, including right now if it already is,
// a pending result is removed from the mailbox and handed to the listener.
func (r *Recipient[D, R]) OnResult(listener func(R)) {
	r.entry.Lifecycle().Observe(r.key, func(state domain.LifecycleState) {
		if state != domain.StateResumed {
			return
		}
		r.consume(listener)
	})
}

func (r *Recipient[D, R]) consume(listener func(R)) {
	payload, ok := r.entry.SavedState().Remove(r.key)
	if !ok {
		return
	}

	ctx := context.Background()
	var value R
	if err := r.opts.codec.Decode(payload, &value); err != nil {
		r.opts.logger.Warn("result dropped", "origin", r.origin.Route(), "type", r.typeID, "error", err)
		if r.opts.hooks.OnResultDropped != nil {
			r.opts.hooks.OnResultDropped(ctx, r.event(domain.EventResultDropped, err.Error()))
		}
		return
	}

	r.opts.logger.Debug("result delivered", "origin", r.origin.Route(), "type", r.typeID, "entry", r.entry.ID())
	if r.opts.hooks.OnResultDelivered != nil {
		r.opts.hooks.OnResultDelivered(ctx, r.event(domain.EventResultDelivered, ""))
	}
	listener(value)
}

func (r *Recipient[D, R]) event(t domain.EventType, reason string) *domain.ResultEvent {
	return &domain.ResultEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: t},
		Origin:    r.origin.Route(),
		TypeID:    r.typeID,
		EntryID:   r.entry.ID(),
		Reason:    reason,
	}
}
