package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/grindlemire/datagrid/internal/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nested = `
grid {
  can_user_sort_columns   = false
  resize_mode             = "ephemeral"
}

column "name" {
  header    = "Name"
  width     = auto
  min_width = 4
  max_width = 40
}

column "age" {
  width  = px(6)
  format = "%v yrs"
}

column "contact" {
  header = "Contact"

  column "email" {
    width = star(2)
  }

  column "phone" {
    width = "*"
    field = "tel"
  }
}
`

type summary struct {
	Name     string
	Header   any
	Width    string
	MinWidth float64
	Children []summary
}

func summarize(cols []*column.Column) []summary {
	var out []summary
	for _, c := range cols {
		out = append(out, summary{
			Name:     c.Name,
			Header:   c.Header.Get(),
			Width:    c.Width.Get().String(),
			MinWidth: c.MinWidth.Get(),
			Children: summarize(c.Children.Items()),
		})
	}
	return out
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(nested), "nested.hcl")
	require.NoError(t, err)

	assert.False(t, cfg.CanUserSortColumns)
	assert.True(t, cfg.CanUserResizeColumns, "unset flags default to true")
	assert.Equal(t, presenter.ResizeEphemeral, cfg.ResizeMode)

	expected := []summary{
		{Name: "name", Header: "Name", Width: "auto", MinWidth: 4},
		{Name: "age", Header: "age", Width: "6"},
		{Name: "contact", Header: "Contact", Width: "auto", Children: []summary{
			{Name: "email", Header: "email", Width: "2*"},
			{Name: "phone", Header: "phone", Width: "*"},
		}},
	}
	if diff := cmp.Diff(expected, summarize(cfg.Columns)); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 40.0, cfg.Columns[0].MaxWidth.Get())

	topo := column.Resolve(cfg.Columns)
	assert.Equal(t, 2, topo.MaxDepth)
	require.Len(t, topo.Leaves, 4)

	row := map[string]any{"name": "Ada", "age": 36, "email": "ada@example.com", "tel": "555"}
	var cells []any
	for _, n := range topo.Leaves {
		cells = append(cells, n.Column.CellTemplate.Get().Build(row))
	}
	assert.Equal(t, []any{"Ada", "36 yrs", "ada@example.com", "555"}, cells)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`column "id" {}`), "min.hcl")
	require.NoError(t, err)

	assert.True(t, cfg.CanUserSortColumns)
	assert.True(t, cfg.CanUserResizeColumns)
	assert.Equal(t, presenter.ResizePersist, cfg.ResizeMode)
	require.Len(t, cfg.Columns, 1)
	assert.Equal(t, layout.Auto(), cfg.Columns[0].Width.Get())
}

func TestParse_Widths(t *testing.T) {
	type tc struct {
		expr     string
		expected layout.Length
	}

	tests := map[string]tc{
		"auto variable": {expr: `auto`, expected: layout.Auto()},
		"auto string":   {expr: `"auto"`, expected: layout.Auto()},
		"number":        {expr: `12`, expected: layout.Pixel(12)},
		"px":            {expr: `px(9)`, expected: layout.Pixel(9)},
		"star":          {expr: `star(3)`, expected: layout.Star(3)},
		"star string":   {expr: `"2*"`, expected: layout.Star(2)},
		"bare star":     {expr: `"*"`, expected: layout.Star(1)},
		"arithmetic":    {expr: `px(4 * 3)`, expected: layout.Pixel(12)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse([]byte(`column "c" { width = `+tt.expr+` }`), "width.hcl")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Columns[0].Width.Get())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		src      string
		contains string
	}

	tests := map[string]tc{
		"syntax": {
			src:      `column "a" {`,
			contains: "failed to parse HCL file bad.hcl",
		},
		"unknown attribute": {
			src:      `column "a" { colour = "red" }`,
			contains: "failed to decode HCL file bad.hcl",
		},
		"bad width string": {
			src:      `column "a" { width = "wide" }`,
			contains: `column "a": width`,
		},
		"zero star": {
			src:      `column "a" { width = star(0) }`,
			contains: "star weight must be positive",
		},
		"negative width": {
			src:      `column "a" { width = -3 }`,
			contains: "must not be negative",
		},
		"bool width": {
			src:      `column "a" { width = true }`,
			contains: "number or string",
		},
		"min above max": {
			src:      "column \"a\" {\n  min_width = 10\n  max_width = 5\n}",
			contains: "below min_width",
		},
		"duplicate": {
			src:      "column \"a\" {}\ncolumn \"a\" {}",
			contains: `duplicate column "a"`,
		},
		"nested error names the path": {
			src:      "column \"g\" {\n  column \"a\" {\n    width = star(-1)\n  }\n}",
			contains: `column "g": column "a"`,
		},
		"resize mode": {
			src:      `grid { resize_mode = "sticky" }`,
			contains: "unknown resize mode",
		},
		"unknown function": {
			src:      `column "a" { width = pct(5) }`,
			contains: "pct",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.hcl")
	require.NoError(t, os.WriteFile(path, []byte(nested), 0o644))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, cfg.Columns, 3)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
