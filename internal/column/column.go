// Package column describes the logical columns of a data grid and resolves
// a possibly nested column list into ordered leaf columns.
package column

import (
	"math"

	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
)

// Column is one logical column. Presenters correlate generated tracks and
// slots with a Column by pointer identity, so a Column must stay the same
// value across rebuilds.
//
// Width, MinWidth, MaxWidth, Header and CellTemplate are authored by the
// application. ActualWidth is observed: the header row writes the arranged
// width of Star columns into it.
type Column struct {
	Name         string
	Width        *reactive.Property[layout.Length]
	MinWidth     *reactive.Property[float64]
	MaxWidth     *reactive.Property[float64]
	Header       *reactive.Property[any]
	CellTemplate *reactive.Property[Template]
	ActualWidth  *reactive.Property[float64]
	Children     *reactive.List[*Column]
}

// Option configures a Column.
type Option func(*Column)

// New creates an auto-width, unbounded column.
func New(opts ...Option) *Column {
	c := &Column{
		Width:        reactive.NewProperty(layout.Auto()),
		MinWidth:     reactive.NewProperty(0.0),
		MaxWidth:     reactive.NewProperty(math.Inf(1)),
		Header:       reactive.NewProperty[any](nil),
		CellTemplate: reactive.NewProperty[Template](nil),
		ActualWidth:  reactive.NewProperty(0.0),
		Children:     reactive.NewList[*Column](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithName sets the column name used in logs and configuration.
func WithName(name string) Option {
	return func(c *Column) { c.Name = name }
}

// WithWidth sets the width policy.
func WithWidth(l layout.Length) Option {
	return func(c *Column) { c.Width.Set(l) }
}

// WithMinWidth sets the lower width bound.
func WithMinWidth(v float64) Option {
	return func(c *Column) { c.MinWidth.Set(v) }
}

// WithMaxWidth sets the upper width bound.
func WithMaxWidth(v float64) Option {
	return func(c *Column) { c.MaxWidth.Set(v) }
}

// WithHeader sets the header content.
func WithHeader(h any) Option {
	return func(c *Column) { c.Header.Set(h) }
}

// WithCellTemplate sets the per-row cell content factory.
func WithCellTemplate(t Template) Option {
	return func(c *Column) { c.CellTemplate.Set(t) }
}

// WithChildren turns the column into a group of children.
func WithChildren(children ...*Column) Option {
	return func(c *Column) { c.Children.Reset(children) }
}

// IsLeaf reports whether the column has no children.
func (c *Column) IsLeaf() bool {
	return c.Children.Len() == 0
}

func (c *Column) String() string {
	if c.Name != "" {
		return c.Name
	}
	if h, ok := c.Header.Get().(string); ok {
		return h
	}
	return "column"
}
