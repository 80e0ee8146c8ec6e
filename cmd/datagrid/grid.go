package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/grindlemire/datagrid"
	"github.com/grindlemire/datagrid/internal/column"
	"github.com/grindlemire/datagrid/internal/config"
	"github.com/grindlemire/datagrid/internal/debug"
)

// builtinLayout is used when no -columns file is given.
const builtinLayout = `
grid {
  can_user_sort_columns   = true
  can_user_resize_columns = true
}

column "id" {
  header = "#"
  width  = px(5)
}

column "name" {
  header    = "Name"
  width     = auto
  min_width = 6
}

column "contact" {
  header = "Contact"

  column "email" {
    header = "Email"
    width  = star(2)
  }

  column "phone" {
    header = "Phone"
    width  = px(14)
  }
}

column "notes" {
  header    = "Notes"
  width     = star(1)
  min_width = 10
}
`

// gridFlags are shared by render and view.
type gridFlags struct {
	columns string
	rows    int
	width   int
	height  int
	debug   string
}

func (f *gridFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.columns, "columns", "", "HCL layout file")
	fs.IntVar(&f.rows, "rows", 20, "number of sample rows")
	fs.IntVar(&f.width, "width", 0, "frame width (default: terminal width)")
	fs.IntVar(&f.height, "height", 0, "frame height (default: terminal height)")
	fs.StringVar(&f.debug, "debug", "", "write debug logs to this file")
}

// build loads the layout, fills it with sample rows and creates the grid.
func (f *gridFlags) build(ctx context.Context) (*datagrid.DataGrid, error) {
	if f.debug != "" {
		if err := debug.Init(f.debug); err != nil {
			return nil, err
		}
	}
	if f.rows < 0 {
		return nil, fmt.Errorf("-rows must not be negative")
	}

	var (
		cfg *config.Config
		err error
	)
	if f.columns != "" {
		cfg, err = config.Load(ctx, f.columns)
	} else {
		cfg, err = config.Parse([]byte(builtinLayout), "builtin.hcl")
	}
	if err != nil {
		return nil, err
	}

	return datagrid.New(
		datagrid.WithConfig(cfg),
		datagrid.WithItems(sampleRows(cfg.Columns, f.rows)...),
	)
}

// sampleRows builds n rows keyed by leaf column name, which is the field a
// layout file reads unless it names another.
func sampleRows(cols []*column.Column, n int) []any {
	leaves := column.Resolve(cols).Columns()
	rows := make([]any, n)
	for i := range rows {
		row := make(map[string]any, len(leaves))
		for j, c := range leaves {
			if j == 0 {
				row[c.Name] = i + 1
				continue
			}
			row[c.Name] = fmt.Sprintf("%s %d", c, (i*7+j*3)%(n+1))
		}
		rows[i] = row
	}
	return rows
}
