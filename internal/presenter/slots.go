package presenter

import (
	"fmt"
	"reflect"

	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/reactive"
)

// Cell is one generated data cell: a row's item shown through a column's template.
type Cell struct {
	Content      *reactive.Property[any]
	Template     *reactive.Property[column.Template]
	SelectedItem *reactive.Property[any]
	SelectedCell *reactive.Property[any]
	Column       *column.Column

	placement layout.Placement
}

func newCell(c *column.Column, p layout.Placement) *Cell {
	return &Cell{
		Content:      reactive.NewProperty[any](nil),
		Template:     reactive.NewProperty[column.Template](nil),
		SelectedItem: reactive.NewProperty[any](nil),
		SelectedCell: reactive.NewProperty[any](nil),
		Column:       c,
		placement:    p,
	}
}

// GridPlacement implements layout.Child.
func (c *Cell) GridPlacement() layout.Placement { return c.placement }

// Value is the content built by the template, or the raw content without one.
func (c *Cell) Value() any {
	content := c.Content.Get()
	if t := c.Template.Get(); t != nil {
		return t.Build(content)
	}
	return content
}

// Text is the display string of Value.
func (c *Cell) Text() string {
	v := c.Value()
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Select makes this cell's row the selected item and this cell the selected cell.
func (c *Cell) Select() {
	c.SelectedItem.Set(c.Content.Get())
	c.SelectedCell.Set(c)
}

// IsSelected reports whether this cell's row is the selected item.
func (c *Cell) IsSelected() bool {
	content := c.Content.Get()
	return content != nil && sameItem(c.SelectedItem.Get(), content)
}

// IsCurrent reports whether this cell is the selected cell.
func (c *Cell) IsCurrent() bool {
	cur, ok := c.SelectedCell.Get().(*Cell)
	return ok && cur == c
}

// SortDirection is a header's sort indicator.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// SortDescription is published by the header presenter when a header is sorted.
type SortDescription struct {
	Column    *column.Column
	Direction SortDirection
}

// ColumnHeader is one generated header slot.
type ColumnHeader struct {
	Header               *reactive.Property[any]
	CanUserSortColumns   *reactive.Property[bool]
	CanUserResizeColumns *reactive.Property[bool]
	ColumnHeaders        *reactive.Property[*reactive.List[*ColumnHeader]]
	SortDirection        *reactive.Property[SortDirection]
	Column               *column.Column

	// IsGroup marks headers spanning the leaves of a column group.
	IsGroup bool

	placement layout.Placement
	onSort    func(SortDescription)
}

func newColumnHeader(c *column.Column, p layout.Placement) *ColumnHeader {
	return &ColumnHeader{
		Header:               reactive.NewProperty[any](nil),
		CanUserSortColumns:   reactive.NewProperty(false),
		CanUserResizeColumns: reactive.NewProperty(false),
		ColumnHeaders:        reactive.NewProperty[*reactive.List[*ColumnHeader]](nil),
		SortDirection:        reactive.NewProperty(SortNone),
		Column:               c,
		placement:            p,
	}
}

// GridPlacement implements layout.Child.
func (h *ColumnHeader) GridPlacement() layout.Placement { return h.placement }

// Text is the header content followed by the sort indicator.
func (h *ColumnHeader) Text() string {
	s := ""
	if v := h.Header.Get(); v != nil {
		s = fmt.Sprint(v)
	}
	switch h.SortDirection.Get() {
	case SortAscending:
		s += " ▲"
	case SortDescending:
		s += " ▼"
	}
	return s
}

// Sort advances the sort indicator (none, ascending, descending, ascending, ...),
// clears the indicator of every sibling header and reports whether sorting
// was allowed.
func (h *ColumnHeader) Sort() bool {
	if h.IsGroup || !h.CanUserSortColumns.Get() {
		return false
	}
	next := SortAscending
	if h.SortDirection.Get() == SortAscending {
		next = SortDescending
	}
	for _, sibling := range h.ColumnHeaders.Get().Items() {
		if sibling != h {
			sibling.SortDirection.Set(SortNone)
		}
	}
	h.SortDirection.Set(next)
	if h.onSort != nil {
		h.onSort(SortDescription{Column: h.Column, Direction: next})
	}
	return true
}

// GridLine is the non-interactive vertical line drawn in a separator track.
type GridLine struct {
	Classes []string

	placement layout.Placement
}

// GridPlacement implements layout.Child.
func (g *GridLine) GridPlacement() layout.Placement { return g.placement }

// IsHitTestVisible is always false; grid lines never take input.
func (g *GridLine) IsHitTestVisible() bool { return false }

// Text draws the line.
func (g *GridLine) Text() string { return "│" }

// ResizeMode decides where a header resize lands.
type ResizeMode int

const (
	// ResizePersist writes the new width into the column's Width, so every
	// row follows.
	ResizePersist ResizeMode = iota
	// ResizeEphemeral only changes the header's generated track.
	ResizeEphemeral
)

func (m ResizeMode) String() string {
	if m == ResizeEphemeral {
		return "ephemeral"
	}
	return "persist"
}

// ParseResizeMode reads "persist" or "ephemeral".
func ParseResizeMode(s string) (ResizeMode, error) {
	switch s {
	case "", "persist":
		return ResizePersist, nil
	case "ephemeral":
		return ResizeEphemeral, nil
	default:
		return ResizePersist, fmt.Errorf("unknown resize mode %q", s)
	}
}

// Resizer is the interactive splitter placed in a separator track. Dragging
// it changes the width of the column track to its left.
type Resizer struct {
	IsEnabled *reactive.Property[bool]
	Track     *layout.Track
	Column    *column.Column
	Mode      ResizeMode

	shared    *layout.SharedSizeScope
	placement layout.Placement
}

func newResizer(track *layout.Track, c *column.Column, mode ResizeMode, shared *layout.SharedSizeScope, p layout.Placement) *Resizer {
	return &Resizer{
		IsEnabled: reactive.NewProperty(false),
		Track:     track,
		Column:    c,
		Mode:      mode,
		shared:    shared,
		placement: p,
	}
}

// GridPlacement implements layout.Child.
func (r *Resizer) GridPlacement() layout.Placement { return r.placement }

// Text is empty; the grid line underneath is what gets drawn.
func (r *Resizer) Text() string { return "" }

// Drag widens (delta > 0) or narrows the adjacent column track, clamped to
// its bounds, and reports whether anything changed. In ephemeral mode a
// pinned auto track leaves its width group, otherwise the group width of
// the data rows would keep it from shrinking.
func (r *Resizer) Drag(delta float64) bool {
	if !r.IsEnabled.Get() || delta == 0 {
		return false
	}
	cur := r.Track.ActualWidth
	if cur == 0 && r.Track.Width.IsPixel() {
		cur = r.Track.Width.Amount
	}
	next := r.Track.Clamp(cur + delta)
	if next == cur {
		return false
	}
	r.Track.SetWidth(layout.Pixel(next))
	r.Track.ActualWidth = next
	if r.Mode == ResizePersist {
		r.Column.Width.Set(layout.Pixel(next))
		return true
	}
	if r.Track.SharedSizeGroup != "" {
		r.shared.Unregister(r.Track)
		r.Track.SetSharedSizeGroup("")
	}
	return true
}

// sameItem compares row items by identity. Reference kinds compare by
// address so non-comparable items such as maps never panic.
func sameItem(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
