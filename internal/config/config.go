package config

import (
	"context"
	"fmt"

	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/debug"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/presenter"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Config is a decoded layout file.
type Config struct {
	CanUserSortColumns   bool
	CanUserResizeColumns bool
	ResizeMode           presenter.ResizeMode
	Columns              []*column.Column
}

// Load parses and decodes the layout file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse decodes layout source; filename only labels diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Config, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := &Config{CanUserSortColumns: true, CanUserResizeColumns: true}
	if g := root.Grid; g != nil {
		if g.CanUserSortColumns != nil {
			cfg.CanUserSortColumns = *g.CanUserSortColumns
		}
		if g.CanUserResizeColumns != nil {
			cfg.CanUserResizeColumns = *g.CanUserResizeColumns
		}
		mode, err := presenter.ParseResizeMode(g.ResizeMode)
		if err != nil {
			return nil, fmt.Errorf("%s: grid: %w", filename, err)
		}
		cfg.ResizeMode = mode
	}

	ctx := evalContext()
	columns, err := translateColumns(ctx, root.Columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	cfg.Columns = columns

	debug.Log("[config.decode] %s columns=%d resize=%s", filename, len(columns), cfg.ResizeMode)
	return cfg, nil
}

func translateColumns(ctx *hcl.EvalContext, blocks []*columnBlock) ([]*column.Column, error) {
	seen := make(map[string]bool, len(blocks))
	out := make([]*column.Column, 0, len(blocks))
	for _, b := range blocks {
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicate column %q", b.Name)
		}
		seen[b.Name] = true

		c, err := translateColumn(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", b.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func translateColumn(ctx *hcl.EvalContext, b *columnBlock) (*column.Column, error) {
	width, err := evalWidth(ctx, b.Width)
	if err != nil {
		return nil, err
	}

	header := b.Name
	if b.Header != nil {
		header = *b.Header
	}
	opts := []column.Option{
		column.WithName(b.Name),
		column.WithHeader(header),
		column.WithWidth(width),
	}

	if b.MinWidth != nil {
		if *b.MinWidth < 0 {
			return nil, fmt.Errorf("min_width must not be negative")
		}
		opts = append(opts, column.WithMinWidth(*b.MinWidth))
	}
	if b.MaxWidth != nil {
		if b.MinWidth != nil && *b.MaxWidth < *b.MinWidth {
			return nil, fmt.Errorf("max_width %v is below min_width %v", *b.MaxWidth, *b.MinWidth)
		}
		opts = append(opts, column.WithMaxWidth(*b.MaxWidth))
	}

	if len(b.Columns) > 0 {
		children, err := translateColumns(ctx, b.Columns)
		if err != nil {
			return nil, err
		}
		opts = append(opts, column.WithChildren(children...))
	} else {
		opts = append(opts, column.WithCellTemplate(cellTemplate(b)))
	}
	return column.New(opts...), nil
}

// cellTemplate reads the field named by the block (its label by default),
// formatted with format when one is given.
func cellTemplate(b *columnBlock) column.Template {
	field := b.Field
	if field == "" {
		field = b.Name
	}
	base := column.Field(field)
	if b.Format == "" {
		return base
	}
	return column.TemplateFunc(func(item any) any {
		v := base.Build(item)
		if v == nil {
			return nil
		}
		return fmt.Sprintf(b.Format, v)
	})
}

// evalWidth evaluates a width expression. A missing width is auto.
func evalWidth(ctx *hcl.EvalContext, expr hcl.Expression) (layout.Length, error) {
	if expr == nil {
		return layout.Auto(), nil
	}
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return layout.Length{}, diags
	}
	if val.IsNull() {
		return layout.Auto(), nil
	}
	if !val.IsWhollyKnown() {
		return layout.Length{}, fmt.Errorf("width must be known")
	}

	switch val.Type() {
	case cty.Number:
		var cells float64
		if err := gocty.FromCtyValue(val, &cells); err != nil {
			return layout.Length{}, fmt.Errorf("width: %w", err)
		}
		if cells < 0 {
			return layout.Length{}, fmt.Errorf("width must not be negative")
		}
		return layout.Pixel(cells), nil
	case cty.String:
		l, err := layout.ParseLength(val.AsString())
		if err != nil {
			return layout.Length{}, fmt.Errorf("width: %w", err)
		}
		return l, nil
	default:
		return layout.Length{}, fmt.Errorf("width must be a number or string, got %s", val.Type().FriendlyName())
	}
}
