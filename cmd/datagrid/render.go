package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

// runRender implements the render subcommand.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var f gridFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := f.build(context.Background())
	if err != nil {
		return err
	}
	defer g.Detach()

	width, height := f.width, f.height
	if width <= 0 || height <= 0 {
		tw, th := terminalSize(int(os.Stdout.Fd()))
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = g.HeaderHeight() + len(g.Rows())
			height = min(height, th)
		}
	}

	fmt.Println(strings.Join(g.Render(width, height), "\n"))
	return nil
}
