package layout

import (
	"fmt"
	"math"
)

// TrackKind tells generated tracks apart.
type TrackKind uint8

const (
	TrackColumn    TrackKind = iota // Hosts one leaf column
	TrackSeparator                  // 1-cell spacer after a column
	TrackFiller                     // Trailing track absorbing leftover width
	TrackRow                        // Row definition
)

func (k TrackKind) String() string {
	switch k {
	case TrackColumn:
		return "column"
	case TrackSeparator:
		return "separator"
	case TrackFiller:
		return "filler"
	case TrackRow:
		return "row"
	default:
		return fmt.Sprintf("TrackKind(%d)", uint8(k))
	}
}

// Track is one row or column definition of a Grid.
type Track struct {
	Kind            TrackKind
	Width           Length
	MinWidth        float64
	MaxWidth        float64 // +Inf means unconstrained
	SharedSizeGroup string

	// ActualWidth is the resolved width from the last Arrange.
	ActualWidth float64
}

// NewTrack creates an unconstrained track.
func NewTrack(kind TrackKind, width Length) *Track {
	return &Track{Kind: kind, Width: width, MaxWidth: math.Inf(1)}
}

// NewSeparator creates the fixed 1-cell track placed after every column.
func NewSeparator() *Track {
	return NewTrack(TrackSeparator, Pixel(1))
}

// NewFiller creates the trailing flexible track.
func NewFiller() *Track {
	return NewTrack(TrackFiller, Auto())
}

// SetWidth sets the width policy.
func (t *Track) SetWidth(l Length) { t.Width = l }

// SetMinWidth sets the lower bound.
func (t *Track) SetMinWidth(v float64) { t.MinWidth = v }

// SetMaxWidth sets the upper bound. Zero or negative values mean unconstrained.
func (t *Track) SetMaxWidth(v float64) {
	if v <= 0 {
		v = math.Inf(1)
	}
	t.MaxWidth = v
}

// SetSharedSizeGroup sets or clears (with "") the width synchronization key.
func (t *Track) SetSharedSizeGroup(key string) { t.SharedSizeGroup = key }

// Clamp limits w to the track bounds.
func (t *Track) Clamp(w float64) float64 {
	if w > t.MaxWidth {
		w = t.MaxWidth
	}
	if w < t.MinWidth {
		w = t.MinWidth
	}
	return w
}

func (t *Track) String() string {
	s := t.Kind.String() + "(" + t.Width.String()
	if t.SharedSizeGroup != "" {
		s += ", group=" + t.SharedSizeGroup
	}
	return s + ")"
}
