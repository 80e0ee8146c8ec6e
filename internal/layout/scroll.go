package layout

import (
	"math"

	"github.com/grindlemire/datagrid/internal/reactive"
)

// Scrollable is a source of scroll offsets a header row can anchor to.
type Scrollable interface {
	Offset() Vector
	ScrollChanged(fn func(Vector)) reactive.Unbind
}

// ScrollViewer tracks a scroll offset clamped to extent minus viewport.
type ScrollViewer struct {
	offset   *reactive.Property[Vector]
	extent   Vector
	viewport Vector
}

// NewScrollViewer creates a scroll viewer at offset zero.
func NewScrollViewer() *ScrollViewer {
	return &ScrollViewer{offset: reactive.NewProperty(Vector{})}
}

// Offset returns the current offset.
func (s *ScrollViewer) Offset() Vector {
	return s.offset.Get()
}

// ScrollChanged subscribes fn to offset changes.
func (s *ScrollViewer) ScrollChanged(fn func(Vector)) reactive.Unbind {
	return s.offset.Bind(fn)
}

// Subscribers returns the number of active offset subscriptions.
func (s *ScrollViewer) Subscribers() int {
	return s.offset.Bindings()
}

// SetExtent records the content and viewport sizes and re-clamps the offset.
func (s *ScrollViewer) SetExtent(extent, viewport Vector) {
	s.extent, s.viewport = extent, viewport
	if cur := s.offset.Get(); s.clamp(cur) != cur {
		s.offset.Set(s.clamp(cur))
	}
}

// SetOffset moves to v, clamped to the scrollable range once an extent is known.
func (s *ScrollViewer) SetOffset(v Vector) {
	s.offset.Set(s.clamp(v))
}

// ScrollBy moves the offset by (dx, dy).
func (s *ScrollViewer) ScrollBy(dx, dy float64) {
	s.SetOffset(s.Offset().Add(Vector{X: dx, Y: dy}))
}

func (s *ScrollViewer) clamp(v Vector) Vector {
	if s.extent == (Vector{}) {
		return Vector{X: math.Max(0, v.X), Y: math.Max(0, v.Y)}
	}
	return Vector{
		X: math.Max(0, math.Min(v.X, s.extent.X-s.viewport.X)),
		Y: math.Max(0, math.Min(v.Y, s.extent.Y-s.viewport.Y)),
	}
}
