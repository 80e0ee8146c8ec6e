package reactive

import (
	"slices"
	"sync"
)

// ChangeType identifies the kind of modification made to a List.
type ChangeType int

const (
	ChangeAdd ChangeType = iota
	ChangeRemove
	ChangeReset // Full replacement or clear
)

func (c ChangeType) String() string {
	switch c {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes a modification to a List.
type Change[T any] struct {
	Type  ChangeType
	Index int
	Item  T // For ChangeAdd, the new value
	Old   T // For ChangeRemove, the removed value
}

// List is an ordered collection that notifies subscribers on mutation.
// A nil *List reads as empty.
type List[T any] struct {
	mu        sync.RWMutex
	items     []T
	listeners []*binding[Change[T]]
}

// NewList creates a list holding items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Items returns a copy of all items.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the item at index i, or the zero value if out of bounds.
func (l *List[T]) At(i int) T {
	var zero T
	if l == nil {
		return zero
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.items) {
		return zero
	}
	return l.items[i]
}

// IndexOf returns the index of the first item matching match, or -1.
func (l *List[T]) IndexOf(match func(T) bool) int {
	if l == nil {
		return -1
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.IndexFunc(l.items, match)
}

// Add appends an item.
func (l *List[T]) Add(item T) {
	l.mu.Lock()
	idx := len(l.items)
	l.items = append(l.items, item)
	l.mu.Unlock()
	l.notify(Change[T]{Type: ChangeAdd, Index: idx, Item: item})
}

// Insert inserts an item at index i, clamped to the list bounds.
func (l *List[T]) Insert(i int, item T) {
	l.mu.Lock()
	i = max(0, min(i, len(l.items)))
	l.items = slices.Insert(l.items, i, item)
	l.mu.Unlock()
	l.notify(Change[T]{Type: ChangeAdd, Index: i, Item: item})
}

// RemoveAt removes the item at index i. Out of range indexes are ignored.
func (l *List[T]) RemoveAt(i int) {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return
	}
	old := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.mu.Unlock()
	l.notify(Change[T]{Type: ChangeRemove, Index: i, Old: old})
}

// Remove removes the first item matching match and reports whether one was found.
func (l *List[T]) Remove(match func(T) bool) bool {
	i := l.IndexOf(match)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// Reset replaces all items.
func (l *List[T]) Reset(items []T) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.mu.Unlock()
	l.notify(Change[T]{Type: ChangeReset})
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.Reset(nil)
}

// Subscribe adds a change listener and returns its Unbind handle.
func (l *List[T]) Subscribe(fn func(Change[T])) Unbind {
	b := &binding[Change[T]]{id: globalBindingID.Add(1), fn: fn}
	b.active.Store(true)

	l.mu.Lock()
	l.listeners = append(l.listeners, b)
	l.mu.Unlock()

	return func() {
		b.active.Store(false)
	}
}

// Subscribers returns the number of active listeners.
func (l *List[T]) Subscribers() int {
	if l == nil {
		return 0
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, b := range l.listeners {
		if b.active.Load() {
			n++
		}
	}
	return n
}

func (l *List[T]) notify(c Change[T]) {
	l.mu.Lock()
	active := l.listeners[:0:0]
	for _, b := range l.listeners {
		if b.active.Load() {
			active = append(active, b)
		}
	}
	l.listeners = active
	l.mu.Unlock()

	for _, b := range active {
		if b.active.Load() {
			b.fn(c)
		}
	}
}
