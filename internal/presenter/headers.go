package presenter

import (
	"math"

	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/debug"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
)

// ColumnHeadersPresenter generates the header row: a row track per
// topology level, the column tracks, a header per leaf, a spanning header
// per group, and a grid line plus resizer in every separator track. It also
// shifts itself left by the horizontal offset of Scroll so it stays above
// a horizontally scrolled body.
type ColumnHeadersPresenter struct {
	Columns              *reactive.Property[*reactive.List[*column.Column]]
	ColumnHeaders        *reactive.Property[*reactive.List[*ColumnHeader]]
	CanUserSortColumns   *reactive.Property[bool]
	CanUserResizeColumns *reactive.Property[bool]
	Scroll               *reactive.Property[layout.Scrollable]
	Margin               *reactive.Property[layout.Edges]
	Sort                 *reactive.Property[SortDescription]

	// GroupHeaders holds the spanning headers of column groups.
	GroupHeaders *reactive.List[*ColumnHeader]

	opts         options
	root         *layout.Grid
	rootChildren []layout.Child
	resizers     []*Resizer
	gridLines    []*GridLine
	scope        *reactive.Scope
	scrollUnbind reactive.Unbind
}

// NewColumnHeadersPresenter creates a presenter with no columns and no template.
func NewColumnHeadersPresenter(opts ...Option) *ColumnHeadersPresenter {
	p := &ColumnHeadersPresenter{
		Columns:              reactive.NewProperty[*reactive.List[*column.Column]](nil),
		ColumnHeaders:        reactive.NewProperty(reactive.NewList[*ColumnHeader]()),
		CanUserSortColumns:   reactive.NewProperty(false),
		CanUserResizeColumns: reactive.NewProperty(false),
		Scroll:               reactive.NewProperty[layout.Scrollable](nil),
		Margin:               reactive.NewProperty(layout.Edges{}),
		Sort:                 reactive.NewProperty(SortDescription{}),
		GroupHeaders:         reactive.NewList[*ColumnHeader](),
		opts:                 buildOptions(opts),
	}
	p.Columns.Bind(func(*reactive.List[*column.Column]) { p.InvalidateRoot() })
	p.Scroll.Bind(p.scrollSourceChanged)
	return p
}

// Root returns the grid resolved from the template, or nil.
func (p *ColumnHeadersPresenter) Root() *layout.Grid { return p.root }

// ResizeMode returns where resizes land.
func (p *ColumnHeadersPresenter) ResizeMode() ResizeMode { return p.opts.resizeMode }

// Resizers returns the generated resizers in separator order.
func (p *ColumnHeadersPresenter) Resizers() []*Resizer { return p.resizers }

// GridLines returns the generated grid lines in separator order.
func (p *ColumnHeadersPresenter) GridLines() []*GridLine { return p.gridLines }

// ApplyTemplate resolves the root grid part and rebuilds into it.
func (p *ColumnHeadersPresenter) ApplyTemplate(parts layout.NameScope) {
	p.root = parts.FindGrid(layout.RootPartName)
	p.InvalidateRoot()
}

// DetachedFromVisualTree releases all generated content. The scroll
// subscription follows the Scroll property, not the visual tree.
func (p *ColumnHeadersPresenter) DetachedFromVisualTree() {
	p.Detach()
}

// AttachedToVisualTree regenerates content dropped by a previous detach.
func (p *ColumnHeadersPresenter) AttachedToVisualTree() {
	if p.scope == nil {
		p.Attach()
	}
}

// InvalidateRoot tears down and regenerates everything.
func (p *ColumnHeadersPresenter) InvalidateRoot() {
	p.Detach()
	p.Attach()
}

// Attach generates the header row for the current columns.
func (p *ColumnHeadersPresenter) Attach() {
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

	// Generate row definitions
	rows := make([]*layout.Track, topo.MaxDepth)
	for i := range rows {
		rows[i] = layout.NewTrack(layout.TrackRow, layout.Auto())
	}

	// Generate column definitions
	tracks := generateTracks(scope, topo.Leaves, p.opts.shared, false)

	// Generate headers
	sorted := p.Sort.Get()
	headers := make([]*ColumnHeader, 0, len(topo.Leaves))
	for i, n := range topo.Leaves {
		h := newColumnHeader(n.Column, layout.Placement{
			Row:     n.Depth,
			Column:  leafTrack(i),
			RowSpan: topo.MaxDepth - n.Depth,
		})
		p.bindHeader(scope, h)
		h.onSort = p.Sort.Set
		if sorted.Column == n.Column {
			h.SortDirection.Set(sorted.Direction)
		}
		headers = append(headers, h)
	}

	groups := make([]*ColumnHeader, 0, len(topo.Groups))
	for _, g := range topo.Groups {
		if g.Last < g.First {
			continue
		}
		h := newColumnHeader(g.Column, layout.Placement{
			Row:        g.Depth,
			Column:     leafTrack(g.First),
			ColumnSpan: leafTrack(g.Last) - leafTrack(g.First) + 1,
		})
		h.IsGroup = true
		p.bindHeader(scope, h)
		groups = append(groups, h)
	}

	// Generate vertical grid lines and resizers
	var lines []*GridLine
	var resizers []*Resizer
	for i, n := range topo.Leaves {
		at := layout.Placement{Column: leafTrack(i) + 1, RowSpan: topo.MaxDepth}
		lines = append(lines, &GridLine{Classes: []string{"vertical"}, placement: at})

		rz := newResizer(tracks[leafTrack(i)], n.Column, p.opts.resizeMode, p.opts.shared, at)
		scope.Add(reactive.OneWay(p.CanUserResizeColumns, rz.IsEnabled))
		resizers = append(resizers, rz)
	}

	p.root.SetRowDefinitions(rows)
	p.root.SetColumnDefinitions(tracks)
	for _, h := range headers {
		p.addChild(h)
	}
	for _, h := range groups {
		p.addChild(h)
	}
	for i := range lines {
		p.addChild(lines[i])
		p.addChild(resizers[i])
	}
	p.gridLines, p.resizers = lines, resizers
	p.ColumnHeaders.Get().Reset(headers)
	p.GroupHeaders.Reset(groups)

	debug.Log("[ColumnHeadersPresenter.Attach] %s leaves=%d depth=%d tracks=%d bindings=%d",
		p.opts.name, len(topo.Leaves), topo.MaxDepth, len(tracks), scope.Len())
}

func (p *ColumnHeadersPresenter) bindHeader(scope *reactive.Scope, h *ColumnHeader) {
	scope.Add(reactive.OneWay(h.Column.Header, h.Header))
	scope.Add(reactive.OneWay(p.CanUserSortColumns, h.CanUserSortColumns))
	scope.Add(reactive.OneWay(p.CanUserResizeColumns, h.CanUserResizeColumns))
	scope.Add(reactive.OneWay(p.ColumnHeaders, h.ColumnHeaders))
}

func (p *ColumnHeadersPresenter) addChild(c layout.Child) {
	p.root.AddChild(c)
	p.rootChildren = append(p.rootChildren, c)
}

// Detach disposes the binding scope and removes every generated track and
// child. Safe to call repeatedly.
func (p *ColumnHeadersPresenter) Detach() {
	p.scope.Dispose()
	p.scope = nil

	if p.root != nil {
		p.root.ClearRowDefinitions()
		p.root.ClearColumnDefinitions()
		for _, child := range p.rootChildren {
			p.root.RemoveChild(child)
		}
	}
	p.rootChildren = nil
	p.resizers, p.gridLines = nil, nil

	if headers := p.ColumnHeaders.Get(); headers.Len() > 0 {
		headers.Clear()
	}
	if p.GroupHeaders.Len() > 0 {
		p.GroupHeaders.Clear()
	}
}

// PublishActualWidths writes the arranged width of every star leaf back
// into its column's ActualWidth, which data rows size their star tracks from.
// Row tracks see the widths once, after all of them are written.
func (p *ColumnHeadersPresenter) PublishActualWidths() {
	if p.root == nil {
		return
	}
	tracks := p.root.ColumnDefinitions()
	reactive.Batch(func() {
		for _, h := range p.ColumnHeaders.Get().Items() {
			if !h.Column.Width.Get().IsStar() {
				continue
			}
			if col := h.placement.Column; col < len(tracks) {
				h.Column.ActualWidth.Set(tracks[col].ActualWidth)
			}
		}
	})
}

// scrollSourceChanged moves the offset subscription from the old source to
// the new one so swaps never stack subscriptions.
func (p *ColumnHeadersPresenter) scrollSourceChanged(s layout.Scrollable) {
	if p.scrollUnbind != nil {
		p.scrollUnbind()
		p.scrollUnbind = nil
	}
	if s == nil {
		p.Margin.Set(layout.Edges{})
		return
	}
	p.scrollUnbind = s.ScrollChanged(p.anchor)
	p.anchor(s.Offset())
}

func (p *ColumnHeadersPresenter) anchor(offset layout.Vector) {
	p.Margin.Set(layout.Edges{Left: -int(math.Round(offset.X))})
}
