// Package reactive provides the observable property, list and binding
// primitives the grid presenters are built on.
//
// Property[T] wraps a value and notifies bindings when it changes. Bindings
// return an Unbind handle; a Scope collects those handles so a whole attach
// cycle can be torn down in one call.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the UI loop
//
// Example usage:
//
//	width := reactive.NewProperty(layout.Auto())
//	unbind := width.Bind(func(v layout.Length) {
//	    track.SetWidth(v)
//	})
//	width.Set(layout.Pixel(80)) // triggers binding
//	unbind()
package reactive

import (
	"sync"
	"sync/atomic"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

var batch = batchContext{pending: make(map[uint64]func())}

// globalBindingID is a global counter for generating unique binding IDs.
var globalBindingID atomic.Uint64

// Property wraps a value and notifies bindings when it changes.
type Property[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

// binding represents a registered callback that fires when the value changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active atomic.Bool
}

// Unbind is a handle to remove a binding. Calling it more than once is a no-op.
type Unbind func()

// NewProperty creates a new property with the given initial value.
func NewProperty[T any](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set updates the value and notifies all bindings.
//
// Set always notifies, even when the value is unchanged. If called within a
// Batch(), binding execution is deferred until the batch completes. A binding
// that is unbound by an earlier callback of the same notification is skipped.
func (p *Property[T]) Set(v T) {
	p.mu.Lock()
	p.value = v
	active := make([]*binding[T], 0, len(p.bindings))
	for _, b := range p.bindings {
		if b.active.Load() {
			active = append(active, b)
		}
	}
	// drop unbound entries so long-lived properties don't accumulate them
	p.bindings = active
	p.mu.Unlock()

	batch.mu.Lock()
	isBatching := batch.depth > 0
	if isBatching {
		for _, b := range active {
			b := b
			if _, exists := batch.pending[b.id]; !exists {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() {
				if b.active.Load() {
					b.fn(v)
				}
			}
		}
	}
	batch.mu.Unlock()

	if isBatching {
		return
	}
	for _, b := range active {
		if b.active.Load() {
			b.fn(v)
		}
	}
}

// Update applies a function to the current value and sets the result.
func (p *Property[T]) Update(fn func(T) T) {
	p.Set(fn(p.Get()))
}

// Bind registers a function to be called when the value changes.
// Bindings are executed in registration order.
func (p *Property[T]) Bind(fn func(T)) Unbind {
	b := &binding[T]{id: globalBindingID.Add(1), fn: fn}
	b.active.Store(true)

	p.mu.Lock()
	p.bindings = append(p.bindings, b)
	p.mu.Unlock()

	return func() {
		b.active.Store(false)
	}
}

// Observe is Bind followed by an immediate call with the current value.
func (p *Property[T]) Observe(fn func(T)) Unbind {
	unbind := p.Bind(fn)
	fn(p.Get())
	return unbind
}

// Bindings returns the number of active bindings.
func (p *Property[T]) Bindings() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, b := range p.bindings {
		if b.active.Load() {
			n++
		}
	}
	return n
}

// Batch executes fn and defers all binding callbacks until fn returns.
//
// When the same binding is triggered multiple times during a batch, it only
// executes once with the final value. Bindings run in the order they were
// first triggered. Nested Batch calls fire only when the outermost returns.
//
//	reactive.Batch(func() {
//	    col.MinWidth.Set(4)
//	    col.MaxWidth.Set(40)
//	})
func Batch(fn func()) {
	batch.mu.Lock()
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		var callbacks []func()
		if batch.depth == 0 && len(batch.pending) > 0 {
			callbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if cb, ok := batch.pending[id]; ok {
					callbacks = append(callbacks, cb)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		// Execute callbacks outside the lock
		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}

// ResetBatch clears batch state. Only use this in test code.
func ResetBatch() {
	batch.mu.Lock()
	batch.depth = 0
	batch.pending = make(map[uint64]func())
	batch.pendingOrder = nil
	batch.mu.Unlock()
}
