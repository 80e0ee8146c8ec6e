package reactive

// Disposable releases a subscription or other resource.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to Disposable.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() { f() }

// Dispose lets an Unbind handle be stored in a Scope.
func (u Unbind) Dispose() { u() }

// OneWay copies src into dst now and on every change of src.
func OneWay[T any](src, dst *Property[T]) Disposable {
	return src.Observe(dst.Set)
}

// OneWayFunc calls apply with the current value of src and on every change.
func OneWayFunc[T any](src *Property[T], apply func(T)) Disposable {
	return src.Observe(apply)
}

// OneWayConvert copies src into dst through convert.
func OneWayConvert[S, D any](src *Property[S], dst *Property[D], convert func(S) D) Disposable {
	return src.Observe(func(v S) {
		dst.Set(convert(v))
	})
}

// TwoWay initialises target from source and keeps both in step afterwards.
// A write on either side propagates to the other exactly once.
func TwoWay[T any](target, source *Property[T]) Disposable {
	syncing := false
	forward := func(to *Property[T]) func(T) {
		return func(v T) {
			if syncing {
				return
			}
			syncing = true
			defer func() { syncing = false }()
			to.Set(v)
		}
	}

	target.Set(source.Get())
	unbindSource := source.Bind(forward(target))
	unbindTarget := target.Bind(forward(source))

	return DisposeFunc(func() {
		unbindSource()
		unbindTarget()
	})
}
