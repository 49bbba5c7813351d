// Package manualcalls holds content overrides for destinations whose default
// rendering does not fit a particular call site.
package manualcalls

import (
	"sort"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/scope"
)

// ManualComposableCalls is an immutable set of content overrides keyed by destination route.
// The zero value and nil hold no overrides.
type ManualComposableCalls struct {
	calls map[string]scope.Content
}

// Get returns the override registered for spec. Absence means the default content is used.
func (m *ManualComposableCalls) Get(spec domain.DestinationSpec) (scope.Content, bool) {
	if m == nil || spec == nil {
		return nil, false
	}
	content, ok := m.calls[spec.Route()]
	return content, ok
}

// Len returns the number of overrides.
func (m *ManualComposableCalls) Len() int {
	if m == nil {
		return 0
	}
	return len(m.calls)
}

// Routes returns the overridden routes, sorted.
func (m *ManualComposableCalls) Routes() []string {
	if m == nil {
		return nil
	}
	routes := make([]string, 0, len(m.calls))
	for route := range m.calls {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

// Builder collects overrides before they are frozen by Build.
type Builder struct {
	calls map[string]scope.Content
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{calls: make(map[string]scope.Content)}
}

// Register sets the override for spec. Registering the same destination again replaces it.
func (b *Builder) Register(spec domain.DestinationSpec, content scope.Content) *Builder {
	if spec == nil || content == nil {
		return b
	}
	b.calls[spec.Route()] = content
	return b
}

// Build freezes the registered overrides. The builder may keep being used afterwards
// without affecting the returned value.
func (b *Builder) Build() *ManualComposableCalls {
	calls := make(map[string]scope.Content, len(b.calls))
	for route, content := range b.calls {
		calls[route] = content
	}
	return &ManualComposableCalls{calls: calls}
}
