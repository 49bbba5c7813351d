package memory

import (
	"sync"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
	"go.uber.org/atomic"
)

type observerSlot struct {
	key string
	gen uint64
	fn  ports.LifecycleObserver
}

// lifecycle implements ports.Lifecycle.
// The state is atomic so it can be read off the UI thread (e.g. by a click handler);
// transitions and observer dispatch happen on the UI thread only.
type lifecycle struct {
	state atomic.Int32

	mu        sync.Mutex
	observers []observerSlot
	gen       uint64
}

func newLifecycle() *lifecycle {
	l := &lifecycle{}
	l.state.Store(int32(domain.StateInitialized))
	return l
}

func (l *lifecycle) State() domain.LifecycleState {
	return domain.LifecycleState(l.state.Load())
}

func (l *lifecycle) Observe(key string, fn ports.LifecycleObserver) func() {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	kept := l.observers[:0]
	for _, o := range l.observers {
		if o.key != key {
			kept = append(kept, o)
		}
	}
	l.observers = append(kept, observerSlot{key: key, gen: gen, fn: fn})
	l.mu.Unlock()

	fn(l.State())

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, o := range l.observers {
			if o.key == key && o.gen == gen {
				l.observers = append(l.observers[:i], l.observers[i+1:]...)
				return
			}
		}
	}
}

// moveTo sets the state and notifies observers in registration order.
// Destroyed is terminal: observers are dropped after being told.
func (l *lifecycle) moveTo(state domain.LifecycleState) {
	if l.State() == state || l.State() == domain.StateDestroyed {
		return
	}
	l.state.Store(int32(state))

	l.mu.Lock()
	snapshot := make([]observerSlot, len(l.observers))
	copy(snapshot, l.observers)
	if state == domain.StateDestroyed {
		l.observers = nil
	}
	l.mu.Unlock()

	for _, o := range snapshot {
		o.fn(state)
	}
}

// raiseTo walks the state up one step at a time so observers see every state.
func (l *lifecycle) raiseTo(target domain.LifecycleState) {
	for s := l.State() + 1; s <= target && s < domain.StateDestroyed; s++ {
		l.moveTo(s)
	}
}
