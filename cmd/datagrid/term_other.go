//go:build !unix

package main

// terminalSize returns the default frame size where the window size cannot
// be queried.
func terminalSize(int) (width, height int) {
	return 80, 24
}
