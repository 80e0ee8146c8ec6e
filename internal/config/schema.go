package config

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a layout file.
type fileRoot struct {
	Grid    *gridBlock     `hcl:"grid,block"`
	Columns []*columnBlock `hcl:"column,block"`
}

type gridBlock struct {
	CanUserSortColumns   *bool  `hcl:"can_user_sort_columns,optional"`
	CanUserResizeColumns *bool  `hcl:"can_user_resize_columns,optional"`
	ResizeMode           string `hcl:"resize_mode,optional"`
}

// columnBlock is one column; nested column blocks make it a group.
type columnBlock struct {
	Name     string         `hcl:"name,label"`
	Header   *string        `hcl:"header,optional"`
	Width    hcl.Expression `hcl:"width,optional"`
	MinWidth *float64       `hcl:"min_width,optional"`
	MaxWidth *float64       `hcl:"max_width,optional"`
	Field    string         `hcl:"field,optional"`
	Format   string         `hcl:"format,optional"`
	Columns  []*columnBlock `hcl:"column,block"`
}
