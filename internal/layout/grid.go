package layout

import "slices"

// RootPartName is the template part name of the grid a presenter generates into.
const RootPartName = "PART_Root"

// Placement positions a child in a Grid. Spans of zero count as one.
type Placement struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// Rows returns the effective row span.
func (p Placement) Rows() int { return max(1, p.RowSpan) }

// Columns returns the effective column span.
func (p Placement) Columns() int { return max(1, p.ColumnSpan) }

// Covers reports whether the placement occupies the cell (row, col).
func (p Placement) Covers(row, col int) bool {
	return row >= p.Row && row < p.Row+p.Rows() &&
		col >= p.Column && col < p.Column+p.Columns()
}

// Child is anything that can be placed in a Grid.
type Child interface {
	GridPlacement() Placement
}

// Grid is a container of row definitions, column definitions and placed
// children. It performs no layout on its own; see Measure and Arrange.
type Grid struct {
	rows     []*Track
	columns  []*Track
	children []Child
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// RowDefinitions returns the row tracks.
func (g *Grid) RowDefinitions() []*Track { return slices.Clone(g.rows) }

// ColumnDefinitions returns the column tracks.
func (g *Grid) ColumnDefinitions() []*Track { return slices.Clone(g.columns) }

// Children returns the placed children in insertion order.
func (g *Grid) Children() []Child { return slices.Clone(g.children) }

// SetRowDefinitions replaces all row tracks.
func (g *Grid) SetRowDefinitions(tracks []*Track) { g.rows = slices.Clone(tracks) }

// SetColumnDefinitions replaces all column tracks.
func (g *Grid) SetColumnDefinitions(tracks []*Track) { g.columns = slices.Clone(tracks) }

// ClearRowDefinitions removes all row tracks.
func (g *Grid) ClearRowDefinitions() { g.rows = nil }

// ClearColumnDefinitions removes all column tracks.
func (g *Grid) ClearColumnDefinitions() { g.columns = nil }

// AddChild appends c.
func (g *Grid) AddChild(c Child) { g.children = append(g.children, c) }

// RemoveChild removes c by identity and reports whether it was present.
func (g *Grid) RemoveChild(c Child) bool {
	i := slices.Index(g.children, c)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	return true
}

// ChildrenAt returns the children whose placement starts at column col.
func (g *Grid) ChildrenAt(col int) []Child {
	var out []Child
	for _, c := range g.children {
		if c.GridPlacement().Column == col {
			out = append(out, c)
		}
	}
	return out
}

// NameScope resolves named template parts.
type NameScope map[string]any

// Find returns the part registered under name, or nil.
func (n NameScope) Find(name string) any {
	return n[name]
}

// FindGrid returns the part registered under name if it is a *Grid.
func (n NameScope) FindGrid(name string) *Grid {
	g, _ := n[name].(*Grid)
	return g
}
