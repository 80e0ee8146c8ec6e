package datagrid

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/debug"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/presenter"
	"github.com/grindlemire/datagrid/internal/reactive"
	"github.com/grindlemire/datagrid/internal/render"
)

// DataGrid owns a column collection, the items shown under it, and the
// presenters generating one header row and one data row per item. All rows
// share a SharedSizeScope so auto columns line up, and the header anchors
// itself to the grid's scroll viewer.
//
// DataGrid is not safe for concurrent use; drive it from one UI loop.
type DataGrid struct {
	Columns              *reactive.List[*column.Column]
	Items                *reactive.List[any]
	SelectedItem         *reactive.Property[any]
	SelectedCell         *reactive.Property[any]
	CanUserSortColumns   *reactive.Property[bool]
	CanUserResizeColumns *reactive.Property[bool]

	name       string
	resizeMode presenter.ResizeMode
	renderer   *render.Renderer
	measure    layout.Measurer

	shared     *layout.SharedSizeScope
	scroll     *layout.ScrollViewer
	header     *presenter.ColumnHeadersPresenter
	headerRoot *layout.Grid
	rows       []*row
	scope      *reactive.Scope
	current    cellPos // where SelectedCell was last found
	width      int     // last laid out width
	body       int     // data rows visible in the last render
}

type cellPos struct {
	row, leaf int
	ok        bool
}

// row is one generated data row and the bindings tying it to the grid.
type row struct {
	presenter *presenter.CellsPresenter
	root      *layout.Grid
	scope     *reactive.Scope
}

// New creates an attached DataGrid.
func New(opts ...Option) (*DataGrid, error) {
	g := &DataGrid{
		Columns:              reactive.NewList[*column.Column](),
		Items:                reactive.NewList[any](),
		SelectedItem:         reactive.NewProperty[any](nil),
		SelectedCell:         reactive.NewProperty[any](nil),
		CanUserSortColumns:   reactive.NewProperty(true),
		CanUserResizeColumns: reactive.NewProperty(true),
		name:                 "datagrid",
		renderer:             render.New(),
		measure:              render.Measure,
		shared:               layout.NewSharedSizeScope(),
		scroll:               layout.NewScrollViewer(),
		headerRoot:           layout.NewGrid(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	g.header = presenter.NewColumnHeadersPresenter(
		presenter.WithName(g.name+"/header"),
		presenter.WithSharedSizeScope(g.shared),
		presenter.WithResizeMode(g.resizeMode),
	)
	g.header.Scroll.Set(g.scroll)

	g.Attach()
	return g, nil
}

// Header returns the header presenter.
func (g *DataGrid) Header() *presenter.ColumnHeadersPresenter { return g.header }

// Rows returns the data row presenters in item order.
func (g *DataGrid) Rows() []*presenter.CellsPresenter {
	out := make([]*presenter.CellsPresenter, len(g.rows))
	for i, r := range g.rows {
		out[i] = r.presenter
	}
	return out
}

// Scroll returns the scroll viewer the header anchors to.
func (g *DataGrid) Scroll() *layout.ScrollViewer { return g.scroll }

// SharedSizeScope returns the width synchronization registry of all rows.
func (g *DataGrid) SharedSizeScope() *layout.SharedSizeScope { return g.shared }

// Attach generates the header and data rows and starts following the
// columns, items and sort header. Attaching twice is a no-op.
func (g *DataGrid) Attach() {
	if g.scope != nil {
		return
	}
	g.scope = reactive.NewScope()

	g.scope.Add(reactive.OneWay(g.CanUserSortColumns, g.header.CanUserSortColumns))
	g.scope.Add(reactive.OneWay(g.CanUserResizeColumns, g.header.CanUserResizeColumns))
	g.header.ApplyTemplate(layout.NameScope{layout.RootPartName: g.headerRoot})
	g.header.Columns.Set(g.Columns)
	g.header.AttachedToVisualTree()

	g.scope.Add(g.SelectedCell.Bind(g.trackCurrent))
	g.scope.Add(g.Items.Subscribe(func(reactive.Change[any]) { g.rebuildRows() }))
	g.scope.Add(g.header.Sort.Bind(g.sortItems))
	g.rebuildRows()

	debug.Log("[DataGrid.Attach] %s columns=%d items=%d", g.name, g.Columns.Len(), g.Items.Len())
}

// Detach releases every presenter, row and binding. The columns and items
// are left untouched; Attach regenerates from them.
func (g *DataGrid) Detach() {
	if g.scope == nil {
		return
	}
	g.scope.Dispose()
	g.scope = nil
	g.header.DetachedFromVisualTree()
	g.releaseRows()
	debug.Log("[DataGrid.Detach] %s", g.name)
}

func (g *DataGrid) releaseRows() {
	for _, r := range g.rows {
		r.scope.Dispose()
		r.presenter.DetachedFromVisualTree()
	}
	g.rows = nil
}

// rebuildRows regenerates one row per item and moves the current cell to
// its counterpart in the new rows.
func (g *DataGrid) rebuildRows() {
	current, _ := g.SelectedCell.Get().(*presenter.Cell)
	g.releaseRows()

	items := g.Items.Items()
	g.rows = make([]*row, 0, len(items))
	for i, item := range items {
		i := i
		r := &row{
			presenter: presenter.NewCellsPresenter(
				presenter.WithName(g.name+"/row"+strconv.Itoa(i)),
				presenter.WithSharedSizeScope(g.shared),
			),
			root:  layout.NewGrid(),
			scope: reactive.NewScope(),
		}
		r.presenter.Content.Set(item)
		r.scope.Add(reactive.TwoWay(r.presenter.SelectedItem, g.SelectedItem))
		r.scope.Add(reactive.TwoWay(r.presenter.SelectedCell, g.SelectedCell))
		r.presenter.ApplyTemplate(layout.NameScope{layout.RootPartName: r.root})
		r.presenter.Columns.Set(g.Columns)
		r.scope.Add(r.presenter.Cells.Subscribe(func(reactive.Change[*presenter.Cell]) {
			g.reanchor(i, r)
		}))
		g.rows = append(g.rows, r)
	}

	g.current = cellPos{}
	if current != nil {
		for _, r := range g.rows {
			for _, c := range r.presenter.Cells.Items() {
				if c != current && c.Column == current.Column && c.IsSelected() {
					g.SelectedCell.Set(c)
				}
			}
		}
	}
}

// trackCurrent records the position of the selected cell so a column
// rebuild can find its replacement.
func (g *DataGrid) trackCurrent(v any) {
	c, _ := v.(*presenter.Cell)
	if c == nil {
		g.current = cellPos{}
		return
	}
	for i, r := range g.rows {
		if j := slices.Index(r.presenter.Cells.Items(), c); j >= 0 {
			g.current = cellPos{row: i, leaf: j, ok: true}
			return
		}
	}
}

// reanchor runs when row rowIdx regenerates its cells. If the selected cell
// was one of the discarded cells, the cell at the same leaf index takes over.
func (g *DataGrid) reanchor(rowIdx int, r *row) {
	if !g.current.ok || g.current.row != rowIdx {
		return
	}
	cells := r.presenter.Cells.Items()
	if len(cells) == 0 {
		return
	}
	cur, _ := g.SelectedCell.Get().(*presenter.Cell)
	if cur == nil || slices.Contains(cells, cur) {
		return
	}
	g.SelectedCell.Set(cells[min(g.current.leaf, len(cells)-1)])
}

// Layout measures every row into the shared scope, arranges the header,
// publishes star widths to the columns, and then arranges the data rows so
// they see those widths.
func (g *DataGrid) Layout(width int) {
	g.width = max(0, width)

	layout.Measure(g.headerRoot, g.measure, g.shared)
	for _, r := range g.rows {
		layout.Measure(r.root, g.measure, g.shared)
	}

	layout.Arrange(g.headerRoot, g.width, g.measure, g.shared)
	g.header.PublishActualWidths()
	for _, r := range g.rows {
		layout.Arrange(r.root, g.width, g.measure, g.shared)
	}
}

// ContentWidth is the arranged width of all column and separator tracks,
// the filler excluded.
func (g *DataGrid) ContentWidth() int {
	w := 0
	for _, t := range g.headerRoot.ColumnDefinitions() {
		if t.Kind != layout.TrackFiller {
			w += int(t.ActualWidth)
		}
	}
	return w
}

// HeaderHeight is the number of header lines.
func (g *DataGrid) HeaderHeight() int {
	return len(g.headerRoot.RowDefinitions())
}

// Render lays the grid out for width and returns at most height lines: the
// header followed by the rows visible at the current scroll offset.
func (g *DataGrid) Render(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	g.Layout(width)

	body := max(0, height-g.HeaderHeight())
	g.body = body
	g.scroll.SetExtent(
		layout.Vector{X: float64(g.ContentWidth()), Y: float64(len(g.rows))},
		layout.Vector{X: float64(width), Y: float64(body)},
	)

	offset := g.scroll.Offset()
	lines := g.renderer.Lines(g.headerRoot, -g.header.Margin.Get().Left, width)
	first := int(offset.Y)
	for i := first; i < len(g.rows) && i < first+body; i++ {
		lines = append(lines, g.renderer.Lines(g.rows[i].root, int(offset.X), width)...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// ScrollBy moves the viewport by (dx, dy) cells.
func (g *DataGrid) ScrollBy(dx, dy int) {
	g.scroll.ScrollBy(float64(dx), float64(dy))
}

// Select makes the cell at (rowIdx, leaf) current and scrolls it into view.
func (g *DataGrid) Select(rowIdx, leaf int) bool {
	if rowIdx < 0 || rowIdx >= len(g.rows) {
		return false
	}
	cells := g.rows[rowIdx].presenter.Cells
	if leaf < 0 || leaf >= cells.Len() {
		return false
	}
	cells.At(leaf).Select()
	g.scrollIntoView(rowIdx, leaf)
	return true
}

// Current returns the position of the selected cell.
func (g *DataGrid) Current() (rowIdx, leaf int, ok bool) {
	for i, r := range g.rows {
		for j, c := range r.presenter.Cells.Items() {
			if c.IsCurrent() {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (g *DataGrid) scrollIntoView(rowIdx, leaf int) {
	off := g.scroll.Offset()
	viewport := layout.Vector{X: float64(g.width), Y: float64(g.body)}

	if viewport.Y > 0 {
		y := float64(rowIdx)
		switch {
		case y < off.Y:
			off.Y = y
		case y >= off.Y+viewport.Y:
			off.Y = y - viewport.Y + 1
		}
	}

	tracks := g.headerRoot.ColumnDefinitions()
	if col := 2 * leaf; col < len(tracks) && viewport.X > 0 {
		x := 0.0
		for _, t := range tracks[:col] {
			x += t.ActualWidth
		}
		w := tracks[col].ActualWidth
		switch {
		case x < off.X:
			off.X = x
		case x+w > off.X+viewport.X:
			off.X = x + w - viewport.X
		}
	}
	g.scroll.SetOffset(off)
}

// Resize drags the resizer right of leaf by delta cells.
func (g *DataGrid) Resize(leaf, delta int) bool {
	resizers := g.header.Resizers()
	if leaf < 0 || leaf >= len(resizers) {
		return false
	}
	return resizers[leaf].Drag(float64(delta))
}

// SortBy advances the sort direction of leaf's header and reorders the items.
func (g *DataGrid) SortBy(leaf int) bool {
	headers := g.header.ColumnHeaders.Get()
	if leaf < 0 || leaf >= headers.Len() {
		return false
	}
	return headers.At(leaf).Sort()
}

// sortItems reorders the items by the text their cells show for the sorted
// column. Values that all parse as numbers compare numerically.
func (g *DataGrid) sortItems(desc presenter.SortDescription) {
	if desc.Column == nil || desc.Direction == presenter.SortNone {
		return
	}
	tmpl := desc.Column.CellTemplate.Get()
	key := func(item any) string {
		v := item
		if tmpl != nil {
			v = tmpl.Build(item)
		}
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}

	items := g.Items.Items()
	keys := make(map[int]string, len(items))
	numeric := true
	for i, item := range items {
		keys[i] = key(item)
		if _, err := strconv.ParseFloat(keys[i], 64); err != nil {
			numeric = false
		}
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		var c int
		if numeric {
			fa, _ := strconv.ParseFloat(keys[a], 64)
			fb, _ := strconv.ParseFloat(keys[b], 64)
			c = cmp.Compare(fa, fb)
		} else {
			c = cmp.Compare(keys[a], keys[b])
		}
		if desc.Direction == presenter.SortDescending {
			c = -c
		}
		return c
	})

	sorted := make([]any, len(items))
	for i, idx := range order {
		sorted[i] = items[idx]
	}
	debug.Log("[DataGrid.sortItems] %s by %s %s", g.name, desc.Column, desc.Direction)
	g.Items.Reset(sorted)
}
