package domain

import "time"

// EntrySnapshot captures one back stack entry.
type EntrySnapshot struct {
	ID         string            `json:"id"`
	Route      string            `json:"route"`
	Args       map[string]any    `json:"args,omitempty"`
	SavedState map[string][]byte `json:"saved_state,omitempty"`
}

// BackStackSnapshot is the persisted picture of a navigation host, bottom entry first.
type BackStackSnapshot struct {
	Entries    []EntrySnapshot `json:"entries"`
	CapturedAt time.Time       `json:"captured_at"`
}

// Clone returns a deep copy of the snapshot.
func (s *BackStackSnapshot) Clone() *BackStackSnapshot {
	out := &BackStackSnapshot{
		Entries:    make([]EntrySnapshot, len(s.Entries)),
		CapturedAt: s.CapturedAt,
	}
	for i, e := range s.Entries {
		c := EntrySnapshot{ID: e.ID, Route: e.Route}
		if e.Args != nil {
			c.Args = make(map[string]any, len(e.Args))
			for k, v := range e.Args {
				c.Args[k] = v
			}
		}
		if e.SavedState != nil {
			c.SavedState = make(map[string][]byte, len(e.SavedState))
			for k, v := range e.SavedState {
				c.SavedState[k] = clone(v)
			}
		}
		out.Entries[i] = c
	}
	return out
}
