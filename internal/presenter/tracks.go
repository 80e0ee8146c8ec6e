package presenter

import (
	"strconv"

	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
)

// SharedSizeGroupKey is the width synchronization key of the auto column at
// leaf index i. Header and data rows derive it the same way, which is what
// keeps them aligned.
func SharedSizeGroupKey(i int) string {
	return "Column" + strconv.Itoa(i)
}

// leafTrack returns the index of leaf i's column track; its separator
// follows at leafTrack(i)+1.
func leafTrack(i int) int { return 2 * i }

// generateTracks builds the 2N+1 column tracks for leaves and registers
// their bindings in scope. With starFromActual, star columns become pixel
// tracks following the column's observed ActualWidth instead of splitting
// space locally.
func generateTracks(scope *reactive.Scope, leaves []column.Node, shared *layout.SharedSizeScope, starFromActual bool) []*layout.Track {
	tracks := make([]*layout.Track, 0, 2*len(leaves)+1)
	for _, n := range leaves {
		c := n.Column
		width := c.Width.Get()
		tr := layout.NewTrack(layout.TrackColumn, width)

		scope.Add(reactive.OneWayFunc(c.MinWidth, tr.SetMinWidth))
		scope.Add(reactive.OneWayFunc(c.MaxWidth, tr.SetMaxWidth))

		if width.IsStar() && starFromActual {
			scope.Add(reactive.OneWayFunc(c.ActualWidth, func(w float64) {
				tr.SetWidth(layout.Pixel(w))
			}))
		} else {
			scope.Add(reactive.OneWayFunc(c.Width, tr.SetWidth))
		}

		if width.IsAuto() {
			key := SharedSizeGroupKey(n.Index)
			tr.SetSharedSizeGroup(key)
			if shared != nil {
				scope.AddFunc(shared.Register(key, tr))
			}
			scope.AddFunc(func() { tr.SetSharedSizeGroup("") })
		}

		tracks = append(tracks, tr, layout.NewSeparator())
	}
	return append(tracks, layout.NewFiller())
}

// watchTopology rebuilds through invalidate when anything that shaped the
// topology changes: a group's children, a leaf gaining children, or a leaf
// switching width kind (the track binding strategy depends on it).
func watchTopology(scope *reactive.Scope, topo column.Topology, invalidate func()) {
	onChildren := func(reactive.Change[*column.Column]) { invalidate() }
	for _, g := range topo.Groups {
		scope.Add(g.Column.Children.Subscribe(onChildren))
	}
	for _, n := range topo.Leaves {
		scope.Add(n.Column.Children.Subscribe(onChildren))
		unit := n.Column.Width.Get().Unit
		scope.Add(n.Column.Width.Bind(func(l layout.Length) {
			if l.Unit != unit {
				invalidate()
			}
		}))
	}
}
