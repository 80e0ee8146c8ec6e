package reactive

import "sync"

// Scope is an ordered set of live bindings and teardown actions created
// during one attach cycle. Dispose releases all of them as a unit.
type Scope struct {
	mu       sync.Mutex
	items    []Disposable
	disposed bool
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add registers d. If the scope is already disposed, d is disposed at once.
func (s *Scope) Add(d Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.items = append(s.items, d)
	s.mu.Unlock()
}

// AddFunc registers a teardown function.
func (s *Scope) AddFunc(fn func()) {
	s.Add(DisposeFunc(fn))
}

// Len returns the number of registered items.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Disposed reports whether Dispose has run.
func (s *Scope) Disposed() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Dispose releases every item in registration order. Safe to call more than
// once and on a nil scope.
func (s *Scope) Dispose() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	items := s.items
	s.items = nil
	s.mu.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}
