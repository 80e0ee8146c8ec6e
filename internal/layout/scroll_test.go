package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollViewer_Clamp(t *testing.T) {
	type tc struct {
		extent, viewport Vector
		scroll           Vector
		expected         Vector
	}

	tests := map[string]tc{
		"no extent clamps negatives only": {scroll: Vector{X: -5, Y: 40}, expected: Vector{X: 0, Y: 40}},
		"within range":                    {extent: Vector{X: 100, Y: 10}, viewport: Vector{X: 40, Y: 10}, scroll: Vector{X: 30}, expected: Vector{X: 30}},
		"past end":                        {extent: Vector{X: 100, Y: 10}, viewport: Vector{X: 40, Y: 10}, scroll: Vector{X: 90}, expected: Vector{X: 60}},
		"content narrower than viewport":  {extent: Vector{X: 20, Y: 5}, viewport: Vector{X: 40, Y: 10}, scroll: Vector{X: 7, Y: 2}, expected: Vector{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewScrollViewer()
			s.SetExtent(tt.extent, tt.viewport)
			s.SetOffset(tt.scroll)
			assert.Equal(t, tt.expected, s.Offset())
		})
	}
}

func TestScrollViewer_ScrollChanged(t *testing.T) {
	s := NewScrollViewer()
	var got []float64
	unbind := s.ScrollChanged(func(v Vector) { got = append(got, v.X) })

	s.ScrollBy(3, 0)
	s.ScrollBy(2, 0)
	unbind()
	s.ScrollBy(1, 0)

	assert.Equal(t, []float64{3, 5}, got)
	assert.Zero(t, s.Subscribers())
}

func TestScrollViewer_ExtentShrinkReclamps(t *testing.T) {
	s := NewScrollViewer()
	s.SetExtent(Vector{X: 100}, Vector{X: 20})
	s.SetOffset(Vector{X: 70})

	s.SetExtent(Vector{X: 50}, Vector{X: 20})

	assert.Equal(t, 30.0, s.Offset().X)
}
