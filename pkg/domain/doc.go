/*
Package domain contains the core domain models of the waypoint navigation layer.

It defines the identities the rest of the module works with: destinations, the
directions used to reach them, the navigation graph that orders them, and the
per-entry saved state that carries results between screens. This package is
kept pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - DestinationSpec: The stable identity of a screen (its Route) plus argument decoding.
  - Direction: A concrete navigable route (base route + encoded arguments).
  - NavGraph: Ordered destinations, nested graphs and exactly one start route.
  - SavedState: The per-entry key-value container used as the result mailbox.
  - BackStackSnapshot: A serializable picture of a host's back stack.
*/
package domain
