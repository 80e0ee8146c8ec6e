// types.go re-exports column, layout and presenter types from internal
// packages. Any changes to those types must be mirrored here.
package datagrid

import (
	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/presenter"
	"github.com/grindlemire/datagrid/internal/render"
)

// Column is one logical column; columns with children are groups.
type Column = column.Column

// ColumnOption configures a Column.
type ColumnOption = column.Option

// Template builds a cell's content from a row item.
type Template = column.Template

// TemplateFunc adapts a function to Template.
type TemplateFunc = column.TemplateFunc

var (
	NewColumn        = column.New
	WithColumnName   = column.WithName
	WithHeader       = column.WithHeader
	WithWidth        = column.WithWidth
	WithMinWidth     = column.WithMinWidth
	WithMaxWidth     = column.WithMaxWidth
	WithCellTemplate = column.WithCellTemplate
	WithChildren     = column.WithChildren
	Field            = column.Field
	Text             = column.Text
)

// Length is a column width policy: auto, a fixed cell count or a star weight.
type Length = layout.Length

var (
	Auto        = layout.Auto
	Pixel       = layout.Pixel
	Star        = layout.Star
	ParseLength = layout.ParseLength
)

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Vector is a scroll offset.
type Vector = layout.Vector

// ResizeMode decides where a header resize lands.
type ResizeMode = presenter.ResizeMode

const (
	ResizePersist   = presenter.ResizePersist
	ResizeEphemeral = presenter.ResizeEphemeral
)

// SortDirection is a header's sort indicator.
type SortDirection = presenter.SortDirection

const (
	SortNone       = presenter.SortNone
	SortAscending  = presenter.SortAscending
	SortDescending = presenter.SortDescending
)

// Cell is a generated data cell.
type Cell = presenter.Cell

// ColumnHeader is a generated header.
type ColumnHeader = presenter.ColumnHeader

// Styles holds the render styles.
type Styles = render.Styles

var (
	DefaultStyles = render.DefaultStyles
	PlainStyles   = render.PlainStyles
)
