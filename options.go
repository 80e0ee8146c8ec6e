package datagrid

import (
	"fmt"

	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/config"
	"github.com/grindlemire/datagrid/internal/presenter"
	"github.com/grindlemire/datagrid/internal/render"
)

// Option is a functional option for configuring a DataGrid.
type Option func(*DataGrid) error

// WithColumns appends columns to the grid's column collection.
func WithColumns(cols ...*column.Column) Option {
	return func(g *DataGrid) error {
		for _, c := range cols {
			if c == nil {
				return fmt.Errorf("column must not be nil")
			}
			g.Columns.Add(c)
		}
		return nil
	}
}

// WithItems appends row items.
func WithItems(items ...any) Option {
	return func(g *DataGrid) error {
		for _, item := range items {
			g.Items.Add(item)
		}
		return nil
	}
}

// WithSortable sets whether header clicks sort the items. Default is true.
func WithSortable(v bool) Option {
	return func(g *DataGrid) error {
		g.CanUserSortColumns.Set(v)
		return nil
	}
}

// WithResizable sets whether resizers respond to drags. Default is true.
func WithResizable(v bool) Option {
	return func(g *DataGrid) error {
		g.CanUserResizeColumns.Set(v)
		return nil
	}
}

// WithResizeMode sets where resizes land. Default is ResizePersist.
func WithResizeMode(m ResizeMode) Option {
	return func(g *DataGrid) error {
		if m != presenter.ResizePersist && m != presenter.ResizeEphemeral {
			return fmt.Errorf("unknown resize mode %d", m)
		}
		g.resizeMode = m
		return nil
	}
}

// WithStyles replaces the render styles.
func WithStyles(s render.Styles) Option {
	return func(g *DataGrid) error {
		g.renderer = &render.Renderer{Styles: s}
		return nil
	}
}

// WithGridName labels the grid and its presenters in debug logs.
func WithGridName(name string) Option {
	return func(g *DataGrid) error {
		if name == "" {
			return fmt.Errorf("grid name must not be empty")
		}
		g.name = name
		return nil
	}
}

// WithConfig applies a decoded layout file: its columns, permission flags
// and resize mode.
func WithConfig(cfg *config.Config) Option {
	return func(g *DataGrid) error {
		if cfg == nil {
			return fmt.Errorf("config must not be nil")
		}
		g.CanUserSortColumns.Set(cfg.CanUserSortColumns)
		g.CanUserResizeColumns.Set(cfg.CanUserResizeColumns)
		g.resizeMode = cfg.ResizeMode
		return WithColumns(cfg.Columns...)(g)
	}
}
