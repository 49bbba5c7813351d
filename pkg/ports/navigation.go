package ports

import "github.com/aretw0/waypoint/pkg/domain"

// LifecycleObserver is called with the new state every time an entry's lifecycle changes.
type LifecycleObserver func(state domain.LifecycleState)

// Lifecycle exposes the lifecycle of a back stack entry.
type Lifecycle interface {
	// State returns the current lifecycle state.
	State() domain.LifecycleState

	// Observe registers fn under key. Registering the same key again replaces the
	// previous observer. The observer is immediately called with the current state.
	// The returned function removes the observer.
	Observe(key string, fn LifecycleObserver) (cancel func())
}

// BackStackEntry is one pushed destination instance, owned by the host.
type BackStackEntry interface {
	ID() string
	Destination() domain.DestinationSpec
	// Arguments returns the raw arguments the entry was navigated with.
	Arguments() map[string]any
	Lifecycle() Lifecycle
	// SavedState returns the entry's persisted key-value container.
	SavedState() *domain.SavedState
}

// NavOptions tunes a single navigation call.
type NavOptions struct {
	// SingleTop reuses the current entry when it already shows the target destination.
	SingleTop bool
	// PopUpTo pops entries above the named route before pushing.
	PopUpTo string
	// PopUpToInclusive also pops the PopUpTo entry itself.
	PopUpToInclusive bool
}

// NavController is the navigation host capability consumed by the core.
type NavController interface {
	// Graph returns the graph the host navigates.
	Graph() *domain.NavGraph

	// Navigate pushes the destination addressed by dir.
	Navigate(dir domain.Direction, opts NavOptions) error

	// NavigateUp pops the top entry unless it is the last one. Returns whether it popped.
	NavigateUp() bool

	// PopBackStack pops the top entry. Returns false when the stack is empty.
	PopBackStack() bool

	// PopBackStackTo pops entries until route is on top (or removed, when inclusive).
	// Returns false when route is not on the stack.
	PopBackStackTo(route string, inclusive bool) bool

	// CurrentEntry returns the top entry, or nil when the stack is empty.
	CurrentEntry() BackStackEntry

	// PreviousEntry returns the entry below the top, or nil.
	PreviousEntry() BackStackEntry
}

// DestinationsNavigator is the navigation handle handed to screens.
type DestinationsNavigator interface {
	Navigate(dir domain.Direction, opts ...NavOption) error
	NavigateUp() bool
	PopBackStack() bool
	PopBackStackTo(route string, inclusive bool) bool
}

// NavOption configures a DestinationsNavigator call.
type NavOption func(*NavOptions)
