package layout

import (
	"slices"
	"sync"
)

// SharedSizeScope keeps auto tracks of independently laid out grids equally
// wide. Each grid registers its keyed tracks; the group width is the largest
// desired width any member reported.
type SharedSizeScope struct {
	mu     sync.Mutex
	groups map[string]map[*Track]float64
}

// NewSharedSizeScope creates an empty registry.
func NewSharedSizeScope() *SharedSizeScope {
	return &SharedSizeScope{groups: make(map[string]map[*Track]float64)}
}

// Register adds t to the group key. The returned func removes it again and
// may be called more than once.
func (s *SharedSizeScope) Register(key string, t *Track) func() {
	s.mu.Lock()
	members, ok := s.groups[key]
	if !ok {
		members = make(map[*Track]float64)
		s.groups[key] = members
	}
	members[t] = 0
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		members, ok := s.groups[key]
		if !ok {
			return
		}
		delete(members, t)
		if len(members) == 0 {
			delete(s.groups, key)
		}
	}
}

// Unregister removes t from the group named by its current key. It is a
// no-op on a nil scope or an unregistered track.
func (s *SharedSizeScope) Unregister(t *Track) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	members, ok := s.groups[t.SharedSizeGroup]
	if !ok {
		return
	}
	delete(members, t)
	if len(members) == 0 {
		delete(s.groups, t.SharedSizeGroup)
	}
}

// Report records the desired width of a registered track. Unregistered
// tracks are ignored.
func (s *SharedSizeScope) Report(t *Track, width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if members, ok := s.groups[t.SharedSizeGroup]; ok {
		if _, registered := members[t]; registered {
			members[t] = width
		}
	}
}

// Width returns the group width for key, or 0 if nothing is registered.
func (s *SharedSizeScope) Width(key string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := 0.0
	for _, desired := range s.groups[key] {
		w = max(w, desired)
	}
	return w
}

// Members returns the number of tracks registered under key.
func (s *SharedSizeScope) Members(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.groups[key])
}

// Contains reports whether t is registered under its current key.
func (s *SharedSizeScope) Contains(t *Track) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.groups[t.SharedSizeGroup][t]
	return ok
}

// Keys returns the registered group keys in sorted order.
func (s *SharedSizeScope) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.groups))
	for k := range s.groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
