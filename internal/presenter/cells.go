package presenter

import (
	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/debug"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
)

// CellsPresenter generates one data row: a column track per leaf column and
// a Cell per leaf bound to the row's Content.
type CellsPresenter struct {
	Columns      *reactive.Property[*reactive.List[*column.Column]]
	Content      *reactive.Property[any]
	SelectedItem *reactive.Property[any]
	SelectedCell *reactive.Property[any]

	// Cells holds the generated cells of the current attach cycle.
	Cells *reactive.List[*Cell]

	opts         options
	root         *layout.Grid
	rootChildren []layout.Child
	scope        *reactive.Scope
}

// NewCellsPresenter creates a presenter with no columns and no template.
func NewCellsPresenter(opts ...Option) *CellsPresenter {
	p := &CellsPresenter{
		Columns:      reactive.NewProperty[*reactive.List[*column.Column]](nil),
		Content:      reactive.NewProperty[any](nil),
		SelectedItem: reactive.NewProperty[any](nil),
		SelectedCell: reactive.NewProperty[any](nil),
		Cells:        reactive.NewList[*Cell](),
		opts:         buildOptions(opts),
	}
	p.Columns.Bind(func(*reactive.List[*column.Column]) { p.InvalidateRoot() })
	return p
}

// Root returns the grid resolved from the template, or nil.
func (p *CellsPresenter) Root() *layout.Grid { return p.root }

// ApplyTemplate resolves the root grid part and rebuilds into it.
func (p *CellsPresenter) ApplyTemplate(parts layout.NameScope) {
	p.root = parts.FindGrid(layout.RootPartName)
	p.InvalidateRoot()
}

// AttachedToVisualTree regenerates content dropped by a previous detach.
func (p *CellsPresenter) AttachedToVisualTree() {
	debug.Log("[CellsPresenter.Attached] %s %v", p.opts.name, p.Content.Get())
	if p.scope == nil {
		p.Attach()
	}
}

// DetachedFromVisualTree releases all generated content.
func (p *CellsPresenter) DetachedFromVisualTree() {
	debug.Log("[CellsPresenter.Detach] %s %v", p.opts.name, p.Content.Get())
	p.Detach()
}

// InvalidateRoot tears down and regenerates everything.
func (p *CellsPresenter) InvalidateRoot() {
	p.Detach()
	p.Attach()
}

// Attach generates tracks and cells for the current columns. Without a root
// grid it does nothing; with no columns it only starts watching the
// collection.
func (p *CellsPresenter) Attach() {
	if p.root == nil {
		return
	}
	if p.scope != nil {
		p.Detach()
	}

	scope := reactive.NewScope()
	p.scope = scope

	columns := p.Columns.Get()
	if columns != nil {
		scope.Add(columns.Subscribe(func(reactive.Change[*column.Column]) { p.InvalidateRoot() }))
	}

	topo := column.Resolve(columns.Items())
	watchTopology(scope, topo, p.InvalidateRoot)
	if len(topo.Leaves) == 0 {
		return
	}

	tracks := generateTracks(scope, topo.Leaves, p.opts.shared, true)

	cells := make([]*Cell, 0, len(topo.Leaves))
	for i, n := range topo.Leaves {
		cell := newCell(n.Column, layout.Placement{Column: leafTrack(i)})

		scope.Add(reactive.TwoWay(cell.SelectedItem, p.SelectedItem))
		scope.Add(reactive.TwoWay(cell.SelectedCell, p.SelectedCell))
		scope.Add(reactive.OneWay(p.Content, cell.Content))
		scope.Add(reactive.OneWay(n.Column.CellTemplate, cell.Template))

		cells = append(cells, cell)
	}

	p.root.SetColumnDefinitions(tracks)
	for _, cell := range cells {
		p.root.AddChild(cell)
		p.rootChildren = append(p.rootChildren, cell)
	}
	p.Cells.Reset(cells)

	debug.Log("[CellsPresenter.Attach] %s leaves=%d tracks=%d bindings=%d",
		p.opts.name, len(topo.Leaves), len(tracks), scope.Len())
}

// Detach disposes the binding scope and removes every generated track and
// cell. Safe to call repeatedly.
func (p *CellsPresenter) Detach() {
	p.scope.Dispose()
	p.scope = nil

	if p.root != nil {
		p.root.ClearColumnDefinitions()
		for _, child := range p.rootChildren {
			p.root.RemoveChild(child)
		}
	}
	p.rootChildren = nil

	if p.Cells.Len() > 0 {
		p.Cells.Clear()
	}
}
