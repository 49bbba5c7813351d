package domain

import "fmt"

// NavGraph is an ordered collection of destinations and nested graphs with exactly one start route.
// It is built once at startup and shared read-only afterwards.
type NavGraph struct {
	route        string
	startRoute   string
	destinations []DestinationSpec
	nested       []*NavGraph
}

// NewNavGraph validates and builds a graph.
// startRoute must name one of the graph's own destinations or nested graphs.
// Routes must be unique across the graph, its nested graphs and their destinations.
func NewNavGraph(route, startRoute string, destinations []DestinationSpec, nested []*NavGraph) (*NavGraph, error) {
	g := &NavGraph{
		route:        route,
		startRoute:   startRoute,
		destinations: append([]DestinationSpec(nil), destinations...),
		nested:       append([]*NavGraph(nil), nested...),
	}

	seen := map[string]bool{route: true}
	if err := g.collectRoutes(seen, false); err != nil {
		return nil, err
	}

	if startRoute == "" || !g.ownsDirectly(startRoute) {
		return nil, fmt.Errorf("%w: graph %q, start %q", ErrMissingStart, route, startRoute)
	}
	return g, nil
}

func (g *NavGraph) collectRoutes(seen map[string]bool, includeSelf bool) error {
	if includeSelf {
		if seen[g.route] {
			return fmt.Errorf("%w: %q", ErrDuplicateDestination, g.route)
		}
		seen[g.route] = true
	}
	for _, d := range g.destinations {
		if d == nil {
			return fmt.Errorf("graph %q: nil destination", g.route)
		}
		if seen[d.Route()] {
			return fmt.Errorf("%w: %q", ErrDuplicateDestination, d.Route())
		}
		seen[d.Route()] = true
	}
	for _, n := range g.nested {
		if err := n.collectRoutes(seen, true); err != nil {
			return err
		}
	}
	return nil
}

func (g *NavGraph) ownsDirectly(route string) bool {
	for _, d := range g.destinations {
		if d.Route() == route {
			return true
		}
	}
	for _, n := range g.nested {
		if n.route == route {
			return true
		}
	}
	return false
}

// Route returns the graph's own route.
func (g *NavGraph) Route() string { return g.route }

// StartRoute returns the route of the start destination or start nested graph.
func (g *NavGraph) StartRoute() string { return g.startRoute }

// Destinations returns the graph's own destinations in declaration order.
func (g *NavGraph) Destinations() []DestinationSpec {
	return append([]DestinationSpec(nil), g.destinations...)
}

// Nested returns the nested graphs in declaration order.
func (g *NavGraph) Nested() []*NavGraph {
	return append([]*NavGraph(nil), g.nested...)
}

// StartDestination resolves the start route down to a destination, following nested graphs.
func (g *NavGraph) StartDestination() DestinationSpec {
	for _, d := range g.destinations {
		if d.Route() == g.startRoute {
			return d
		}
	}
	for _, n := range g.nested {
		if n.route == g.startRoute {
			return n.StartDestination()
		}
	}
	return nil
}

// IsStart reports whether d is the graph's start destination.
func (g *NavGraph) IsStart(d DestinationSpec) bool {
	return SameDestination(g.StartDestination(), d)
}

// Find looks up a destination by route in this graph and its nested graphs.
// A nested graph route resolves to that graph's start destination.
func (g *NavGraph) Find(route string) (DestinationSpec, error) {
	if d := g.find(route); d != nil {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrDestinationNotFound, route)
}

func (g *NavGraph) find(route string) DestinationSpec {
	for _, d := range g.destinations {
		if d.Route() == route {
			return d
		}
	}
	for _, n := range g.nested {
		if n.route == route {
			return n.StartDestination()
		}
		if d := n.find(route); d != nil {
			return d
		}
	}
	return nil
}

// AllDestinations returns every destination of the graph, depth first, in declaration order.
func (g *NavGraph) AllDestinations() []DestinationSpec {
	out := g.Destinations()
	for _, n := range g.nested {
		out = append(out, n.AllDestinations()...)
	}
	return out
}
