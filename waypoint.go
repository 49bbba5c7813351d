package waypoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/manualcalls"
	"github.com/aretw0/waypoint/pkg/menu"
	"github.com/aretw0/waypoint/pkg/navigator"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/aretw0/waypoint/pkg/result"
	"github.com/aretw0/waypoint/pkg/scope"
)

// ErrSnapshotUnsupported is returned by Save when the controller cannot capture its back stack.
var ErrSnapshotUnsupported = errors.New("controller does not support snapshots")

// ErrControllerOption is returned by Restore when WithController is passed.
var ErrControllerOption = errors.New("restore rebuilds the in-memory host and cannot take a controller")

// Snapshotter is implemented by controllers that can capture their back stack.
type Snapshotter interface {
	Snapshot() *domain.BackStackSnapshot
}

// NavHost is the high-level entry point of the library.
// It binds a graph to a navigation controller and renders the current destination,
// preferring a registered override over the destination's default content.
type NavHost struct {
	graph       *domain.NavGraph
	controller  ports.NavController
	navigator   *navigator.Navigator
	calls       *manualcalls.ManualComposableCalls
	hooks       domain.Hooks
	codec       result.Codec
	scheduler   ports.Scheduler
	logger      *slog.Logger
	deferResume bool
}

// Option defines a functional option for configuring the NavHost.
type Option func(*NavHost)

// WithManualCalls registers content overrides.
func WithManualCalls(calls *manualcalls.ManualComposableCalls) Option {
	return func(h *NavHost) {
		h.calls = calls
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *NavHost) {
		h.logger = logger
	}
}

// WithHooks registers observability hooks for navigation and results.
func WithHooks(hooks domain.Hooks) Option {
	return func(h *NavHost) {
		h.hooks = hooks
	}
}

// WithCodec sets the codec used for results.
func WithCodec(codec result.Codec) Option {
	return func(h *NavHost) {
		h.codec = codec
	}
}

// WithScheduler sets where fire-and-forget work, such as closing a menu, runs.
func WithScheduler(s ports.Scheduler) Option {
	return func(h *NavHost) {
		h.scheduler = s
	}
}

// WithController injects a navigation controller, bypassing the in-memory host.
// Restore rejects it with ErrControllerOption.
func WithController(c ports.NavController) Option {
	return func(h *NavHost) {
		h.controller = c
	}
}

// WithDeferredResume makes the default in-memory host keep new entries started until Settle.
func WithDeferredResume() Option {
	return func(h *NavHost) {
		h.deferResume = true
	}
}

func build(graph *domain.NavGraph, opts []Option) (*NavHost, error) {
	if graph == nil {
		return nil, fmt.Errorf("waypoint: graph is required")
	}
	h := &NavHost{
		graph:     graph,
		scheduler: ports.GoScheduler,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logging.NewNop()
	}
	h.logger = h.logger.With("graph", graph.Route())
	return h, nil
}

func (h *NavHost) memoryOptions() []memory.Option {
	opts := []memory.Option{memory.WithLogger(h.logger), memory.WithHooks(h.hooks)}
	if h.deferResume {
		opts = append(opts, memory.WithDeferredResume())
	}
	return opts
}

func (h *NavHost) finish() *NavHost {
	h.navigator = navigator.New(h.controller)
	return h
}

// New creates a NavHost over graph. Without WithController it starts an in-memory
// host with the graph's start destination on the stack.
func New(graph *domain.NavGraph, opts ...Option) (*NavHost, error) {
	h, err := build(graph, opts)
	if err != nil {
		return nil, err
	}
	if h.controller == nil {
		host, err := memory.NewHost(graph, h.memoryOptions()...)
		if err != nil {
			return nil, fmt.Errorf("waypoint: %w", err)
		}
		h.controller = host
	}
	return h.finish(), nil
}

// Restore rebuilds a NavHost from the snapshot stored under id.
// Pending results in the snapshot are delivered once their recipients register again.
func Restore(ctx context.Context, graph *domain.NavGraph, store ports.StateStore, id string, opts ...Option) (*NavHost, error) {
	h, err := build(graph, opts)
	if err != nil {
		return nil, err
	}
	if h.controller != nil {
		return nil, fmt.Errorf("waypoint: %w", ErrControllerOption)
	}
	snapshot, err := store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("waypoint: load %s: %w", id, err)
	}
	host, err := memory.Restore(graph, snapshot, h.memoryOptions()...)
	if err != nil {
		return nil, fmt.Errorf("waypoint: %w", err)
	}
	h.controller = host
	h.logger.Info("host restored", "id", id, "entries", len(snapshot.Entries))
	return h.finish(), nil
}

// Save persists the back stack under id.
func (h *NavHost) Save(ctx context.Context, store ports.StateStore, id string) error {
	snap, ok := h.controller.(Snapshotter)
	if !ok {
		return ErrSnapshotUnsupported
	}
	if err := store.Save(ctx, id, snap.Snapshot()); err != nil {
		return fmt.Errorf("waypoint: save %s: %w", id, err)
	}
	return nil
}

// Graph returns the graph the host navigates.
func (h *NavHost) Graph() *domain.NavGraph { return h.graph }

// Controller returns the navigation controller.
func (h *NavHost) Controller() ports.NavController { return h.controller }

// Navigator returns the navigation handle over the controller.
func (h *NavHost) Navigator() *navigator.Navigator { return h.navigator }

// ManualCalls returns the registered overrides, possibly nil.
func (h *NavHost) ManualCalls() *manualcalls.ManualComposableCalls { return h.calls }

// Settle finishes the transition of the current entry when the controller models one.
func (h *NavHost) Settle() {
	if s, ok := h.controller.(interface{ Settle() }); ok {
		s.Settle()
	}
}

// Scope derives the scope of the current entry.
func (h *NavHost) Scope() (*scope.DestinationScope[any], error) {
	entry := h.controller.CurrentEntry()
	if entry == nil {
		return nil, fmt.Errorf("waypoint: %w", domain.ErrEntryNotFound)
	}
	opts := []scope.Option{
		scope.WithLogger(h.logger),
		scope.WithHooks(h.hooks),
		scope.WithNavigator(h.navigator),
	}
	if h.codec != nil {
		opts = append(opts, scope.WithCodec(h.codec))
	}
	return scope.New(entry, h.controller, opts...)
}

// Render invokes the content of the current destination: its registered override
// if any, otherwise its default content.
func (h *NavHost) Render() error {
	s, err := h.Scope()
	if err != nil {
		return err
	}
	dest := s.Destination()
	if content, ok := h.calls.Get(dest); ok {
		h.logger.Debug("rendering override", "route", dest.Route())
		return content(s)
	}
	if d, ok := dest.(scope.Destination); ok {
		return d.Content(s)
	}
	return fmt.Errorf("%s: %w", dest.Route(), domain.ErrNoContent)
}

// Menu returns the menu items of the graph with the current destination selected.
func (h *NavHost) Menu(localizer *menu.Localizer) []menu.Item {
	var current domain.DestinationSpec
	if entry := h.controller.CurrentEntry(); entry != nil {
		current = entry.Destination()
	}
	return menu.Items(h.graph, current, localizer)
}

// ClickHandler returns a menu click handler navigating this host.
func (h *NavHost) ClickHandler(opts ...menu.ClickOption) *menu.ClickHandler {
	base := []menu.ClickOption{menu.WithScheduler(h.scheduler), menu.WithLogger(h.logger)}
	return menu.NewClickHandler(h.controller, append(base, opts...)...)
}
