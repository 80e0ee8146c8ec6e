// Package main provides the datagrid CLI.
//
// Usage:
//
//	datagrid render [options]    Print one frame of a grid
//	datagrid view [options]      Browse a grid interactively
//	datagrid help                Show help
//
// Examples:
//
//	datagrid render -rows 5                    Render the built-in layout
//	datagrid render -columns people.hcl       Render a layout file
//	datagrid view -columns people.hcl -rows 200
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `datagrid - column-generated terminal data grid

Usage:
  datagrid <command> [options]

Commands:
  render      Print one frame of the grid and exit
  view        Browse the grid interactively
  version     Print version information
  help        Show this help message

Options:
  -columns    HCL layout file (default: built-in layout)
  -rows       Number of sample rows (default 20)
  -width      Frame width (render; default: terminal width)
  -height     Frame height (render; default: terminal height)
  -debug      Write debug logs to this file

Examples:
  datagrid render -rows 5
  datagrid render -columns people.hcl -width 100
  datagrid view -columns people.hcl -rows 200
  datagrid view -debug /tmp/datagrid.log

Keys (view):
  left/right  Scroll horizontally
  up/down     Move the selection
  tab         Move to the next column (shift+tab: previous)
  < >         Narrow or widen the current column
  s           Sort by the current column
  q           Quit
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "view":
		if err := runView(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("datagrid version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
