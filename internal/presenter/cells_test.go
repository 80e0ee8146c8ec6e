package presenter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name  string
	Age   int
	Notes string
}

type fixture struct {
	name, age, notes *column.Column
	columns          *reactive.List[*column.Column]
}

func newFixture() fixture {
	f := fixture{
		name: column.New(column.WithName("Name"), column.WithHeader("Name"),
			column.WithCellTemplate(column.Field("Name"))),
		age: column.New(column.WithName("Age"), column.WithHeader("Age"),
			column.WithWidth(layout.Pixel(80)), column.WithCellTemplate(column.Field("Age"))),
		notes: column.New(column.WithName("Notes"), column.WithHeader("Notes"),
			column.WithWidth(layout.Star(1)), column.WithCellTemplate(column.Field("Notes"))),
	}
	f.columns = reactive.NewList(f.name, f.age, f.notes)
	return f
}

func attachCells(columns *reactive.List[*column.Column], opts ...Option) (*CellsPresenter, *layout.Grid) {
	root := layout.NewGrid()
	p := NewCellsPresenter(opts...)
	p.ApplyTemplate(layout.NameScope{layout.RootPartName: root})
	p.Columns.Set(columns)
	return p, root
}

func placements(children []layout.Child) []layout.Placement {
	out := make([]layout.Placement, len(children))
	for i, c := range children {
		out[i] = c.GridPlacement()
	}
	return out
}

func TestCellsPresenter_Attach(t *testing.T) {
	type tc struct {
		columns        func(f fixture) *reactive.List[*column.Column]
		expectedTracks []string
		expectedCols   []int
	}

	tests := map[string]tc{
		"nil collection": {
			columns: func(fixture) *reactive.List[*column.Column] { return nil },
		},
		"empty collection": {
			columns: func(fixture) *reactive.List[*column.Column] { return reactive.NewList[*column.Column]() },
		},
		"flat": {
			columns: func(f fixture) *reactive.List[*column.Column] { return f.columns },
			expectedTracks: []string{
				"column(auto, group=Column0)", "separator(1)",
				"column(80)", "separator(1)",
				"column(0)", "separator(1)",
				"filler(auto)",
			},
			expectedCols: []int{0, 2, 4},
		},
		"nested": {
			columns: func(f fixture) *reactive.List[*column.Column] {
				contact := column.New(column.WithHeader("Contact"), column.WithChildren(f.age, f.notes))
				return reactive.NewList(f.name, contact)
			},
			expectedTracks: []string{
				"column(auto, group=Column0)", "separator(1)",
				"column(80)", "separator(1)",
				"column(0)", "separator(1)",
				"filler(auto)",
			},
			expectedCols: []int{0, 2, 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, root := attachCells(tt.columns(newFixture()))

			got := trackStrings(root.ColumnDefinitions())
			if len(tt.expectedTracks) == 0 {
				assert.Empty(t, got)
				assert.Empty(t, root.Children())
				assert.Zero(t, p.Cells.Len())
				return
			}
			if diff := cmp.Diff(tt.expectedTracks, got); diff != "" {
				t.Errorf("tracks mismatch (-want +got):\n%s", diff)
			}

			var cols []int
			for _, pl := range placements(root.Children()) {
				cols = append(cols, pl.Column)
			}
			if diff := cmp.Diff(tt.expectedCols, cols); diff != "" {
				t.Errorf("cell columns mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.expectedCols), p.Cells.Len())
		})
	}
}

func TestCellsPresenter_NoRoot(t *testing.T) {
	f := newFixture()
	p := NewCellsPresenter()
	p.Columns.Set(f.columns)
	p.Attach()

	assert.Nil(t, p.Root())
	assert.Zero(t, p.Cells.Len())
	assert.Zero(t, f.columns.Subscribers())
}

func TestCellsPresenter_DetachAttachIsIdentical(t *testing.T) {
	f := newFixture()
	p, root := attachCells(f.columns)
	tracks := trackStrings(root.ColumnDefinitions())
	slots := placements(root.Children())

	p.DetachedFromVisualTree()
	assert.Empty(t, root.ColumnDefinitions())
	assert.Empty(t, root.Children())
	assert.Zero(t, p.Cells.Len())

	p.AttachedToVisualTree()
	assert.Equal(t, tracks, trackStrings(root.ColumnDefinitions()))
	assert.Equal(t, slots, placements(root.Children()))

	// attaching twice does not duplicate
	p.AttachedToVisualTree()
	assert.Len(t, root.Children(), 3)
}

func TestCellsPresenter_DetachReleasesBindings(t *testing.T) {
	f := newFixture()
	p, _ := attachCells(f.columns)
	require.NotZero(t, f.columns.Subscribers())

	p.Detach()
	p.Detach()

	assert.Zero(t, f.columns.Subscribers())
	assert.Zero(t, p.Content.Bindings())
	assert.Zero(t, p.SelectedItem.Bindings())
	assert.Zero(t, p.SelectedCell.Bindings())
	assert.Zero(t, f.name.Width.Bindings())
	assert.Zero(t, f.notes.ActualWidth.Bindings())
	assert.Zero(t, f.age.CellTemplate.Bindings())
}

func TestCellsPresenter_StarTrackFollowsActualWidth(t *testing.T) {
	f := newFixture()
	_, root := attachCells(f.columns)

	f.notes.ActualWidth.Set(23)
	assert.Equal(t, layout.Pixel(23), root.ColumnDefinitions()[4].Width)

	f.age.ActualWidth.Set(80)
	f.name.MaxWidth.Set(12)
	assert.Equal(t, layout.Pixel(23), root.ColumnDefinitions()[4].Width)
	assert.Equal(t, 12.0, root.ColumnDefinitions()[0].MaxWidth)
}

func TestCellsPresenter_Rebuild(t *testing.T) {
	type tc struct {
		mutate         func(f fixture)
		expectedTracks int
		expectedGroup  string
	}

	tests := map[string]tc{
		"add column": {
			mutate:         func(f fixture) { f.columns.Add(column.New()) },
			expectedTracks: 9,
			expectedGroup:  "Column0",
		},
		"remove column": {
			mutate:         func(f fixture) { f.columns.RemoveAt(0) },
			expectedTracks: 5,
		},
		"clear": {
			mutate: func(f fixture) { f.columns.Clear() },
		},
		"width kind change": {
			mutate:         func(f fixture) { f.name.Width.Set(layout.Pixel(10)) },
			expectedTracks: 7,
		},
		"leaf becomes group": {
			mutate: func(f fixture) {
				f.age.Children.Add(column.New())
				f.age.Children.Add(column.New())
			},
			expectedTracks: 9,
			expectedGroup:  "Column0",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			p, root := attachCells(f.columns)

			tt.mutate(f)

			tracks := root.ColumnDefinitions()
			require.Len(t, tracks, tt.expectedTracks)
			assert.Len(t, root.Children(), max(0, (tt.expectedTracks-1)/2))
			assert.Equal(t, len(root.Children()), p.Cells.Len())
			if tt.expectedTracks > 0 {
				assert.Equal(t, tt.expectedGroup, tracks[0].SharedSizeGroup)
			}
		})
	}
}

func TestCellsPresenter_SameKindWidthKeepsTracks(t *testing.T) {
	f := newFixture()
	_, root := attachCells(f.columns)
	before := root.ColumnDefinitions()[2]

	f.age.Width.Set(layout.Pixel(90))

	after := root.ColumnDefinitions()[2]
	assert.Same(t, before, after)
	assert.Equal(t, layout.Pixel(90), after.Width)
}

func TestCellsPresenter_Selection(t *testing.T) {
	f := newFixture()
	ada := &person{Name: "Ada", Age: 36, Notes: "math"}
	p, _ := attachCells(f.columns)
	p.Content.Set(ada)

	cells := p.Cells.Items()
	require.Len(t, cells, 3)
	assert.Equal(t, "Ada", cells[0].Text())
	assert.Equal(t, "36", cells[1].Text())
	assert.False(t, cells[0].IsSelected())

	cells[1].Select()
	assert.Same(t, ada, p.SelectedItem.Get())
	assert.Same(t, cells[1], p.SelectedCell.Get())
	for _, c := range cells {
		assert.True(t, c.IsSelected())
	}
	assert.True(t, cells[1].IsCurrent())
	assert.False(t, cells[0].IsCurrent())

	// external writes flow back into every cell
	p.SelectedItem.Set(&person{Name: "Ada"})
	for _, c := range cells {
		assert.False(t, c.IsSelected(), "identity, not equality")
	}
}

func TestCellsPresenter_TemplateChange(t *testing.T) {
	f := newFixture()
	p, _ := attachCells(f.columns)
	p.Content.Set(&person{Name: "Grace"})

	f.name.CellTemplate.Set(column.Text("<%v>"))
	assert.Equal(t, "<&{Grace 0 }>", p.Cells.At(0).Text())

	f.name.CellTemplate.Set(nil)
	assert.Equal(t, "&{Grace 0 }", p.Cells.At(0).Text())
}

func TestCellsPresenter_SharedSize(t *testing.T) {
	f := newFixture()
	shared := layout.NewSharedSizeScope()
	a, _ := attachCells(f.columns, WithSharedSizeScope(shared))
	b, _ := attachCells(f.columns, WithSharedSizeScope(shared))

	assert.Equal(t, []string{"Column0"}, shared.Keys())
	assert.Equal(t, 2, shared.Members("Column0"))

	a.Detach()
	assert.Equal(t, 1, shared.Members("Column0"))

	b.Detach()
	assert.Empty(t, shared.Keys())
}
