// Package render draws generated grids as terminal lines.
//
// Widths come from the last layout.Arrange of each grid; the renderer never
// sizes anything itself. Text is measured, truncated and padded in display
// cells with go-runewidth so wide runes stay aligned, and styled with
// lipgloss once the visible slice of each segment is known.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/presenter"
	"github.com/mattn/go-runewidth"
)

// Styles holds the lipgloss style of each kind of slot.
type Styles struct {
	Header   lipgloss.Style
	Group    lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Current  lipgloss.Style
	GridLine lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		Group:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Background(lipgloss.Color("8")),
		Cell:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Current:  lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		GridLine: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Group: plain, Cell: plain, Selected: plain, Current: plain, GridLine: plain}
}

// Renderer turns arranged grids into lines.
type Renderer struct {
	Styles Styles
}

// New creates a renderer with the default styles.
func New() *Renderer {
	return &Renderer{Styles: DefaultStyles()}
}

type texter interface {
	Text() string
}

// Measure is the layout.Measurer for generated slots: the display width of
// their text.
func Measure(c layout.Child) int {
	t, ok := c.(texter)
	if !ok {
		return 0
	}
	return runewidth.StringWidth(t.Text())
}

// Lines renders every row of g. Content left of offset is cropped and each
// line is exactly viewport cells wide. A grid without row definitions
// renders as a single row; one without column definitions renders nothing.
func (r *Renderer) Lines(g *layout.Grid, offset, viewport int) []string {
	if g == nil || viewport <= 0 || len(g.ColumnDefinitions()) == 0 {
		return nil
	}
	rows := max(1, len(g.RowDefinitions()))
	out := make([]string, rows)
	for row := 0; row < rows; row++ {
		out[row] = r.line(g, row, offset, viewport)
	}
	return out
}

func (r *Renderer) line(g *layout.Grid, row, offset, viewport int) string {
	tracks := g.ColumnDefinitions()

	var b strings.Builder
	x, drawn := 0, 0
	for col := 0; col < len(tracks); {
		child := slotAt(g, row, col)
		span := 1
		if child != nil {
			span = min(child.GridPlacement().Columns(), len(tracks)-col)
		}
		w := 0
		for _, t := range tracks[col : col+span] {
			w += int(t.ActualWidth)
		}

		text, style := r.segment(child, row)
		if visible := crop(fit(text, w), x, offset, viewport); visible != "" {
			b.WriteString(style.Render(visible))
			drawn += runewidth.StringWidth(visible)
		}
		x += w
		col += span
	}
	if drawn < viewport {
		b.WriteString(strings.Repeat(" ", viewport-drawn))
	}
	return b.String()
}

// slotAt returns the first child starting in column col that covers row.
// Grid lines are added before resizers, so the line wins their shared cell.
func slotAt(g *layout.Grid, row, col int) layout.Child {
	for _, c := range g.ChildrenAt(col) {
		if c.GridPlacement().Covers(row, col) {
			return c
		}
	}
	return nil
}

func (r *Renderer) segment(c layout.Child, row int) (string, lipgloss.Style) {
	switch v := c.(type) {
	case nil:
		return "", r.Styles.Cell
	case *presenter.ColumnHeader:
		p := v.GridPlacement()
		style := r.Styles.Header
		if v.IsGroup {
			style = r.Styles.Group
		}
		// leaf headers spanning several levels sit on the bottom one
		if row != p.Row+p.Rows()-1 {
			return "", style
		}
		return v.Text(), style
	case *presenter.GridLine:
		return v.Text(), r.Styles.GridLine
	case *presenter.Cell:
		switch {
		case v.IsCurrent():
			return v.Text(), r.Styles.Current
		case v.IsSelected():
			return v.Text(), r.Styles.Selected
		}
		return v.Text(), r.Styles.Cell
	case texter:
		return v.Text(), r.Styles.Cell
	default:
		return "", r.Styles.Cell
	}
}

// fit truncates s to w display cells and pads it to exactly w.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

// crop returns the part of seg, drawn at x, that falls inside
// [offset, offset+viewport).
func crop(seg string, x, offset, viewport int) string {
	w := runewidth.StringWidth(seg)
	lo, hi := max(x, offset), min(x+w, offset+viewport)
	if lo >= hi {
		return ""
	}
	if lo > x {
		seg = runewidth.TruncateLeft(seg, lo-x, "")
	}
	if hi < x+w {
		seg = runewidth.Truncate(seg, hi-lo, "")
	}
	return seg
}
