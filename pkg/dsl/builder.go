package dsl

import (
	"fmt"

	"github.com/aretw0/waypoint/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	route        string
	start        string
	destinations []domain.DestinationSpec
	nested       []*Builder
}

// New creates a new graph builder for the graph at route.
func New(route string) *Builder {
	return &Builder{route: route}
}

// Add appends destinations in declaration order.
func (b *Builder) Add(destinations ...domain.DestinationSpec) *Builder {
	b.destinations = append(b.destinations, destinations...)
	return b
}

// Start sets the start route: one of the graph's destinations or nested graphs.
func (b *Builder) Start(route string) *Builder {
	b.start = route
	return b
}

// Nest adds a nested graph.
func (b *Builder) Nest(child *Builder) *Builder {
	b.nested = append(b.nested, child)
	return b
}

// Build validates and compiles the graph.
func (b *Builder) Build() (*domain.NavGraph, error) {
	nested := make([]*domain.NavGraph, 0, len(b.nested))
	for _, child := range b.nested {
		g, err := child.Build()
		if err != nil {
			return nil, fmt.Errorf("nested graph %s: %w", child.route, err)
		}
		nested = append(nested, g)
	}

	graph, err := domain.NewNavGraph(b.route, b.start, b.destinations, nested)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	return graph, nil
}

// MustBuild is like Build but panics on error. Intended for package-level graphs.
func (b *Builder) MustBuild() *domain.NavGraph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
