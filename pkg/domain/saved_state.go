package domain

import "sort"

// SavedState is the per-entry key-value container that survives recreation of an entry.
// It is the mailbox used to hand results back to a previous screen.
// It is not safe for concurrent use; hosts mutate it from the UI thread only.
type SavedState struct {
	values map[string][]byte
}

// NewSavedState creates an empty container, optionally seeded with values (copied).
func NewSavedState(values map[string][]byte) *SavedState {
	s := &SavedState{values: make(map[string][]byte, len(values))}
	for k, v := range values {
		s.values[k] = clone(v)
	}
	return s
}

// Set stores value under key, replacing any previous value.
func (s *SavedState) Set(key string, value []byte) {
	s.values[key] = clone(value)
}

// Get returns the value stored under key.
func (s *SavedState) Get(key string) ([]byte, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Contains reports whether key is present.
func (s *SavedState) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Remove deletes key and returns the removed value.
func (s *SavedState) Remove(key string) ([]byte, bool) {
	v, ok := s.values[key]
	if ok {
		delete(s.values, key)
	}
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (s *SavedState) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored values.
func (s *SavedState) Len() int {
	return len(s.values)
}

// Export returns a deep copy of the stored values.
func (s *SavedState) Export() map[string][]byte {
	out := make(map[string][]byte, len(s.values))
	for k, v := range s.values {
		out[k] = clone(v)
	}
	return out
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
