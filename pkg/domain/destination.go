package domain

import (
	"fmt"
	"net/url"
	"sort"
)

// DestinationSpec is the identity of an addressable screen.
// Route is stable for the lifetime of the graph and is the key used by every lookup
// (graph search, override registry, result slots).
type DestinationSpec interface {
	// Route returns the human-stable identifier of the destination.
	Route() string

	// DecodeArgs turns the raw arguments stored on a back stack entry into the
	// destination's typed arguments. Destinations without arguments return NoArgs{}.
	DecodeArgs(raw map[string]any) (any, error)
}

// DirectionDestination is a destination that can be navigated to directly,
// without caller-supplied arguments.
type DirectionDestination interface {
	DestinationSpec
	Direction() Direction
}

// NoArgs is the argument type of destinations that take no arguments.
type NoArgs struct{}

// Direction is a concrete, navigable route: a destination route plus its encoded arguments.
type Direction struct {
	Route string         `json:"route" yaml:"route"`
	Args  map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// NewDirection creates a Direction to route with no arguments.
func NewDirection(route string) Direction {
	return Direction{Route: route}
}

// String renders the direction as "route?k=v&..." with keys sorted.
func (d Direction) String() string {
	if len(d.Args) == 0 {
		return d.Route
	}
	keys := make([]string, 0, len(d.Args))
	for k := range d.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		if v := d.Args[k]; v != nil {
			values.Add(k, fmt.Sprintf("%v", v))
		}
	}
	if len(values) == 0 {
		return d.Route
	}
	return d.Route + "?" + values.Encode()
}

// SameDestination reports whether a and b refer to the same destination identity.
// Nil values are never the same destination.
func SameDestination(a, b DestinationSpec) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Route() == b.Route()
}
