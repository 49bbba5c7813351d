package domain

// LifecycleState is the lifecycle of a back stack entry.
// States are ordered: an entry that is Resumed is also Started and Created.
type LifecycleState int32

const (
	StateInitialized LifecycleState = iota // Constructed, not yet on screen
	StateCreated                           // On the stack but covered by another entry
	StateStarted                           // Visible, transition still in progress
	StateResumed                           // Visible and interactive
	StateDestroyed                         // Popped; never comes back
)

func (s LifecycleState) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateResumed:
		return "resumed"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// IsAtLeast reports whether s is at or past other. Destroyed is never at least anything but itself.
func (s LifecycleState) IsAtLeast(other LifecycleState) bool {
	if s == StateDestroyed {
		return other == StateDestroyed
	}
	return other != StateDestroyed && s >= other
}
