package config

import (
	"github.com/grindlemire/datagrid/internal/layout"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// pxFunc marks a fixed width in cells. It evaluates to the plain number.
var pxFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "cells", Type: cty.Number}},
	Type:   function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var cells float64
		if err := gocty.FromCtyValue(args[0], &cells); err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		if cells < 0 {
			return cty.NilVal, function.NewArgErrorf(0, "width must not be negative")
		}
		return args[0], nil
	},
})

// starFunc marks a proportional width. It evaluates to the "w*" string form.
var starFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "weight", Type: cty.Number}},
	Type:   function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var w float64
		if err := gocty.FromCtyValue(args[0], &w); err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		if w <= 0 {
			return cty.NilVal, function.NewArgErrorf(0, "star weight must be positive")
		}
		return cty.StringVal(layout.Star(w).String()), nil
	},
})

// evalContext exposes auto, px and star to width expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"auto": cty.StringVal("auto"),
		},
		Functions: map[string]function.Function{
			"px":   pxFunc,
			"star": starFunc,
		},
	}
}
