package result

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

// ResultBackNavigator navigates back while passing a result of type R.
type ResultBackNavigator[R any] interface {
	// NavigateBack writes result for the previous screen and navigates up.
	NavigateBack(result R) error
}

// BackNavigator is the ResultBackNavigator bound to one host and one producing destination.
type BackNavigator[R any] struct {
	controller ports.NavController
	origin     domain.DestinationSpec
	entryID    string
	typeID     string
	key        string
	opts       options
	done       bool
}

// NewBackNavigator builds a navigator for results of type R produced by origin.
// It is bound to the controller's current entry (or the WithEntry entry): once that entry
// is no longer on top of the stack, NavigateBack fails with ErrStaleNavigator.
func NewBackNavigator[R any](controller ports.NavController, origin domain.DestinationSpec, opts ...Option) (*BackNavigator[R], error) {
	typeID, err := TypeID[R]()
	if err != nil {
		return nil, err
	}
	if controller == nil || origin == nil {
		return nil, fmt.Errorf("result: controller and origin are required")
	}
	n := &BackNavigator[R]{
		controller: controller,
		origin:     origin,
		typeID:     typeID,
		key:        Key(origin.Route(), typeID),
		opts:       buildOptions(opts),
	}
	if n.opts.entry != nil {
		n.entryID = n.opts.entry.ID()
	} else if cur := controller.CurrentEntry(); cur != nil {
		n.entryID = cur.ID()
	}
	return n, nil
}

// Key returns the saved-state key this navigator writes to.
func (n *BackNavigator[R]) Key() string {
	return n.key
}

// NavigateBack encodes result into the previous entry's mailbox and navigates up.
// Without a previous entry the result is dropped; navigating up is then a host no-op.
// It must be called at most once.
func (n *BackNavigator[R]) NavigateBack(result R) error {
	if n.done {
		return ErrAlreadyNavigatedBack
	}
	if cur := n.controller.CurrentEntry(); cur == nil || (n.entryID != "" && cur.ID() != n.entryID) {
		return ErrStaleNavigator
	}

	payload, err := n.opts.codec.Encode(result)
	if err != nil {
		return fmt.Errorf("encode result %s: %w", n.typeID, err)
	}
	n.done = true

	ctx := context.Background()
	if prev := n.controller.PreviousEntry(); prev != nil {
		prev.SavedState().Set(n.key, payload)
		n.opts.logger.Debug("result sent", "origin", n.origin.Route(), "type", n.typeID, "entry", prev.ID())
		if n.opts.hooks.OnResultSent != nil {
			n.opts.hooks.OnResultSent(ctx, n.event(domain.EventResultSent, prev.ID(), ""))
		}
	} else {
		n.opts.logger.Debug("result dropped", "origin", n.origin.Route(), "type", n.typeID, "reason", "no previous entry")
		if n.opts.hooks.OnResultDropped != nil {
			n.opts.hooks.OnResultDropped(ctx, n.event(domain.EventResultDropped, "", "no previous entry"))
		}
	}

	n.controller.NavigateUp()
	return nil
}

func (n *BackNavigator[R]) event(t domain.EventType, entryID, reason string) *domain.ResultEvent {
	return &domain.ResultEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: t},
		Origin:    n.origin.Route(),
		TypeID:    n.typeID,
		EntryID:   entryID,
		Reason:    reason,
	}
}
