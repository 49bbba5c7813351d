package domain

import "errors"

// ErrMissingStart is returned when a graph's start route does not resolve to one of its children.
var ErrMissingStart = errors.New("graph has no start destination")

// ErrDuplicateDestination is returned when two destinations in a graph share the same route.
var ErrDuplicateDestination = errors.New("duplicate destination route")

// ErrDestinationNotFound is returned when a route cannot be resolved in the graph.
var ErrDestinationNotFound = errors.New("destination not found")

// ErrEntryNotFound is returned when a back stack entry cannot be located.
var ErrEntryNotFound = errors.New("back stack entry not found")

// ErrSnapshotNotFound is returned when a host ID cannot be found in the store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrNoContent is returned when a destination has neither an override nor a default content.
var ErrNoContent = errors.New("destination has no content")
