package presenter

import "github.com/grindlemire/datagrid/internal/layout"

type options struct {
	name       string
	shared     *layout.SharedSizeScope
	resizeMode ResizeMode
}

// Option configures a presenter.
type Option func(*options)

// WithName labels the presenter in debug logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithSharedSizeScope registers the presenter's keyed auto tracks in s.
func WithSharedSizeScope(s *layout.SharedSizeScope) Option {
	return func(o *options) { o.shared = s }
}

// WithResizeMode sets where header resizes land. Only the header presenter uses it.
func WithResizeMode(m ResizeMode) Option {
	return func(o *options) { o.resizeMode = m }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
