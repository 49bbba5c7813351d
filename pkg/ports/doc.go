/*
Package ports defines the driven ports (interfaces) for the waypoint navigation layer.

These interfaces decouple the result protocol, the override registry and the menu
logic from the navigation host that actually owns the back stack, so the same
core works against the in-memory host or any other implementation.

# Key Interfaces

  - NavController: The navigation host capability (push, pop, current/previous entry).
  - BackStackEntry: A host-owned entry with a Lifecycle and a SavedState mailbox.
  - DestinationsNavigator: The navigation handle given to screens.
  - StateStore: Persists back stack snapshots so a host survives process death.
  - Scheduler: Launches fire-and-forget work on a caller-supplied scope.
*/
package ports
