package column

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/datagrid/internal/layout"
)

func leaf(header string) *Column {
	return New(WithHeader(header), WithName(header))
}

func group(header string, children ...*Column) *Column {
	return New(WithHeader(header), WithName(header), WithChildren(children...))
}

type resolved struct {
	MaxDepth int
	Names    []string
	Depths   []int
	Indexes  []int
}

func summarize(t Topology) resolved {
	r := resolved{MaxDepth: t.MaxDepth}
	for _, n := range t.Leaves {
		r.Names = append(r.Names, n.Column.Name)
		r.Depths = append(r.Depths, n.Depth)
		r.Indexes = append(r.Indexes, n.Index)
	}
	return r
}

func TestResolve(t *testing.T) {
	type tc struct {
		columns  func() []*Column
		expected resolved
	}

	tests := map[string]tc{
		"empty": {
			columns:  func() []*Column { return nil },
			expected: resolved{MaxDepth: 0},
		},
		"flat": {
			columns: func() []*Column {
				return []*Column{
					New(WithName("Name"), WithWidth(layout.Auto())),
					New(WithName("Age"), WithWidth(layout.Pixel(80))),
					New(WithName("Notes"), WithWidth(layout.Star(1))),
				}
			},
			expected: resolved{
				MaxDepth: 1,
				Names:    []string{"Name", "Age", "Notes"},
				Depths:   []int{0, 0, 0},
				Indexes:  []int{0, 1, 2},
			},
		},
		"one group": {
			columns: func() []*Column {
				return []*Column{group("Info", leaf("First"), leaf("Last")), leaf("Age")}
			},
			expected: resolved{
				MaxDepth: 2,
				Names:    []string{"First", "Last", "Age"},
				Depths:   []int{1, 1, 0},
				Indexes:  []int{0, 1, 2},
			},
		},
		"nested groups keep declaration order": {
			columns: func() []*Column {
				return []*Column{
					leaf("Id"),
					group("A", group("B", leaf("b1"), leaf("b2")), leaf("a1")),
					leaf("Z"),
				}
			},
			expected: resolved{
				MaxDepth: 3,
				Names:    []string{"Id", "b1", "b2", "a1", "Z"},
				Depths:   []int{0, 2, 2, 1, 0},
				Indexes:  []int{0, 1, 2, 3, 4},
			},
		},
		"group without children is a leaf": {
			columns: func() []*Column {
				return []*Column{group("Hollow")}
			},
			expected: resolved{
				MaxDepth: 1,
				Names:    []string{"Hollow"},
				Depths:   []int{0},
				Indexes:  []int{0},
			},
		},
		"nil entries skipped": {
			columns: func() []*Column {
				return []*Column{nil, leaf("Only")}
			},
			expected: resolved{
				MaxDepth: 1,
				Names:    []string{"Only"},
				Depths:   []int{0},
				Indexes:  []int{0},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := summarize(Resolve(tt.columns()))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Groups(t *testing.T) {
	info := group("Info", leaf("First"), leaf("Last"))
	topo := Resolve([]*Column{leaf("Id"), info, leaf("Age")})

	if len(topo.Groups) != 1 {
		t.Fatalf("Groups = %d, want 1", len(topo.Groups))
	}
	g := topo.Groups[0]
	if g.Column != info || g.Depth != 0 || g.First != 1 || g.Last != 2 {
		t.Errorf("group = %+v, want Info at depth 0 spanning leaves 1..2", g)
	}
}

func TestResolve_RecomputesFromScratch(t *testing.T) {
	info := group("Info", leaf("First"))
	cols := []*Column{info}

	first := Resolve(cols)
	info.Children.Add(leaf("Last"))
	second := Resolve(cols)

	if len(first.Leaves) != 1 || len(second.Leaves) != 2 {
		t.Errorf("leaves = %d then %d, want 1 then 2", len(first.Leaves), len(second.Leaves))
	}
	if got := second.Columns(); got[1].Name != "Last" {
		t.Errorf("Columns()[1] = %s, want Last", got[1])
	}
}

func TestResolve_SkipsCycles(t *testing.T) {
	inner := group("Inner", leaf("B"))
	outer := group("Outer", leaf("A"), inner)
	inner.Children.Add(outer)
	outer.Children.Add(outer)

	got := summarize(Resolve([]*Column{outer, leaf("C")}))
	want := resolved{
		MaxDepth: 3,
		Names:    []string{"A", "B", "C"},
		Depths:   []int{1, 2, 0},
		Indexes:  []int{0, 1, 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}

	shared := leaf("Shared")
	twice := summarize(Resolve([]*Column{group("G", shared), shared}))
	if diff := cmp.Diff([]string{"Shared", "Shared"}, twice.Names); diff != "" {
		t.Errorf("repeated column mismatch (-want +got):\n%s", diff)
	}
}
