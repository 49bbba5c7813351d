package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/google/uuid"
)

// Host implements ports.NavController with an in-memory back stack.
//
// Lifecycle callbacks run synchronously on the calling goroutine, after the
// stack lock is released, so observers may navigate again from inside a callback.
type Host struct {
	mu      sync.Mutex
	graph   *domain.NavGraph
	entries []*entry

	deferResume bool
	logger      *slog.Logger
	hooks       domain.Hooks
}

// Option configures the Host.
type Option func(*Host)

// WithLogger configures a logger for the Host.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithHooks registers navigation observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(h *Host) {
		h.hooks = hooks
	}
}

// WithDeferredResume keeps a new top entry in the Started state until Settle is called.
// It models the transition window of an animated host.
func WithDeferredResume() Option {
	return func(h *Host) {
		h.deferResume = true
	}
}

// transition is a lifecycle change computed under the lock and applied after it.
type transition struct {
	entry *entry
	state domain.LifecycleState
}

func newHost(graph *domain.NavGraph, opts []Option) *Host {
	h := &Host{
		graph:  graph,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewHost creates a host over graph with the graph's start destination pushed.
func NewHost(graph *domain.NavGraph, opts ...Option) (*Host, error) {
	if graph == nil {
		return nil, fmt.Errorf("memory host: graph is required")
	}
	h := newHost(graph, opts)

	start := graph.StartDestination()
	if start == nil {
		return nil, fmt.Errorf("memory host: %w", domain.ErrMissingStart)
	}

	h.mu.Lock()
	top := h.push(start, nil)
	h.mu.Unlock()

	h.apply([]transition{{top, h.topTarget()}})
	return h, nil
}

// Restore rebuilds a host from a snapshot. Entries get fresh lifecycles and keep their saved state,
// so results written before the snapshot are delivered once the recipient registers again.
func Restore(graph *domain.NavGraph, snapshot *domain.BackStackSnapshot, opts ...Option) (*Host, error) {
	if graph == nil {
		return nil, fmt.Errorf("memory host: graph is required")
	}
	if snapshot == nil || len(snapshot.Entries) == 0 {
		return NewHost(graph, opts...)
	}
	h := newHost(graph, opts)

	h.mu.Lock()
	for _, snap := range snapshot.Entries {
		dest, err := graph.Find(snap.Route)
		if err != nil {
			h.mu.Unlock()
			return nil, fmt.Errorf("memory host: restore entry %s: %w", snap.ID, err)
		}
		h.entries = append(h.entries, &entry{
			id:          snap.ID,
			destination: dest,
			args:        copyArgs(snap.Args),
			lifecycle:   newLifecycle(),
			saved:       domain.NewSavedState(snap.SavedState),
		})
	}
	var ts []transition
	for _, e := range h.entries[:len(h.entries)-1] {
		ts = append(ts, transition{e, domain.StateCreated})
	}
	ts = append(ts, transition{h.entries[len(h.entries)-1], h.topTarget()})
	h.mu.Unlock()

	h.apply(ts)
	h.logger.Debug("host restored", "entries", len(snapshot.Entries))
	return h, nil
}

// Graph returns the graph the host navigates.
func (h *Host) Graph() *domain.NavGraph {
	return h.graph
}

// Navigate pushes the destination addressed by dir.
func (h *Host) Navigate(dir domain.Direction, opts ports.NavOptions) error {
	dest, err := h.graph.Find(dir.Route)
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", dir, err)
	}

	h.mu.Lock()
	var ts []transition
	from := h.topRoute()

	if opts.PopUpTo != "" {
		if idx := h.indexOf(opts.PopUpTo); idx >= 0 {
			if !opts.PopUpToInclusive {
				idx++
			}
			ts = append(ts, h.popAbove(idx)...)
		} else {
			h.logger.Debug("popUpTo route not on stack", "route", opts.PopUpTo)
		}
	}

	top := h.top()
	if opts.SingleTop && top != nil && top.destination.Route() == dest.Route() {
		top.args = copyArgs(dir.Args)
		ts = append(ts, transition{top, h.topTarget()})
		h.mu.Unlock()

		h.apply(ts)
		h.emitNavigate(from, dest.Route())
		return nil
	}

	if top != nil {
		ts = append(ts, transition{top, domain.StateCreated})
	}
	pushed := h.push(dest, dir.Args)
	ts = append(ts, transition{pushed, h.topTarget()})
	h.mu.Unlock()

	h.apply(ts)
	h.logger.Debug("navigated", "from", from, "to", dir.String(), "entry", pushed.id)
	h.emitNavigate(from, dest.Route())
	return nil
}

// NavigateUp pops the top entry unless it is the only one left.
func (h *Host) NavigateUp() bool {
	h.mu.Lock()
	if len(h.entries) < 2 {
		h.mu.Unlock()
		return false
	}
	h.mu.Unlock()
	return h.PopBackStack()
}

// PopBackStack pops the top entry and resumes the one below it.
func (h *Host) PopBackStack() bool {
	h.mu.Lock()
	if len(h.entries) == 0 {
		h.mu.Unlock()
		return false
	}
	from := h.topRoute()
	ts := h.popAbove(len(h.entries) - 1)
	if top := h.top(); top != nil {
		ts = append(ts, transition{top, h.topTarget()})
	}
	to := h.topRoute()
	h.mu.Unlock()

	h.apply(ts)
	h.emitPop(from, to)
	return true
}

// PopBackStackTo pops entries until route is on top, or until it is removed when inclusive.
func (h *Host) PopBackStackTo(route string, inclusive bool) bool {
	h.mu.Lock()
	idx := h.indexOf(route)
	if idx < 0 {
		h.mu.Unlock()
		return false
	}
	if !inclusive {
		idx++
	}
	from := h.topRoute()
	ts := h.popAbove(idx)
	popped := len(ts)
	if top := h.top(); top != nil {
		ts = append(ts, transition{top, h.topTarget()})
	}
	to := h.topRoute()
	h.mu.Unlock()

	h.apply(ts)
	if popped > 0 {
		h.emitPop(from, to)
	}
	return true
}

// Settle resumes the top entry if it is still mid-transition.
func (h *Host) Settle() {
	h.mu.Lock()
	top := h.top()
	h.mu.Unlock()
	if top != nil {
		h.apply([]transition{{top, domain.StateResumed}})
	}
}

// CurrentEntry returns the top entry, or nil when the stack is empty.
func (h *Host) CurrentEntry() ports.BackStackEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if top := h.top(); top != nil {
		return top
	}
	return nil
}

// PreviousEntry returns the entry below the top, or nil.
func (h *Host) PreviousEntry() ports.BackStackEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) < 2 {
		return nil
	}
	return h.entries[len(h.entries)-2]
}

// Entries returns the back stack, bottom entry first.
func (h *Host) Entries() []ports.BackStackEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]ports.BackStackEntry, len(h.entries))
	for i, e := range h.entries {
		out[i] = e
	}
	return out
}

// Snapshot captures the back stack, including every entry's saved state.
func (h *Host) Snapshot() *domain.BackStackSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	snap := &domain.BackStackSnapshot{
		Entries:    make([]domain.EntrySnapshot, len(h.entries)),
		CapturedAt: time.Now().UTC(),
	}
	for i, e := range h.entries {
		snap.Entries[i] = e.snapshot()
	}
	return snap
}

// push appends a new entry. Caller holds h.mu.
func (h *Host) push(dest domain.DestinationSpec, args map[string]any) *entry {
	e := &entry{
		id:          uuid.NewString(),
		destination: dest,
		args:        copyArgs(args),
		lifecycle:   newLifecycle(),
		saved:       domain.NewSavedState(nil),
	}
	h.entries = append(h.entries, e)
	return e
}

// popAbove removes every entry at index >= idx and returns their destroy transitions, top first.
// Caller holds h.mu.
func (h *Host) popAbove(idx int) []transition {
	if idx < 0 {
		idx = 0
	}
	var ts []transition
	for i := len(h.entries) - 1; i >= idx; i-- {
		ts = append(ts, transition{h.entries[i], domain.StateDestroyed})
	}
	if idx < len(h.entries) {
		h.entries = h.entries[:idx]
	}
	return ts
}

// indexOf finds the topmost entry showing route. Caller holds h.mu.
func (h *Host) indexOf(route string) int {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].destination.Route() == route {
			return i
		}
	}
	return -1
}

func (h *Host) top() *entry {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

func (h *Host) topRoute() string {
	if top := h.top(); top != nil {
		return top.destination.Route()
	}
	return ""
}

func (h *Host) topTarget() domain.LifecycleState {
	if h.deferResume {
		return domain.StateStarted
	}
	return domain.StateResumed
}

// apply runs lifecycle transitions in order. Must be called without h.mu held.
func (h *Host) apply(ts []transition) {
	for _, t := range ts {
		current := t.entry.lifecycle.State()
		switch {
		case t.state == domain.StateDestroyed:
			t.entry.lifecycle.moveTo(domain.StateDestroyed)
		case t.state > current:
			t.entry.lifecycle.raiseTo(t.state)
		default:
			t.entry.lifecycle.moveTo(t.state)
		}
	}
}

func (h *Host) emitNavigate(from, to string) {
	if h.hooks.OnNavigate == nil {
		return
	}
	h.hooks.OnNavigate(context.Background(), &domain.NavigationEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNavigate},
		From:      from,
		To:        to,
	})
}

func (h *Host) emitPop(from, to string) {
	if h.hooks.OnPop == nil {
		return
	}
	h.hooks.OnPop(context.Background(), &domain.NavigationEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventPop},
		From:      from,
		To:        to,
	})
}

func copyArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	return out
}
