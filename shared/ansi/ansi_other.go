//go:build !windows

package ansi

import "os"

// Enable reports whether f accepts ANSI escape sequences. Terminals outside
// Windows support them without setup.
func Enable(f *os.File) bool {
	return IsTerminal(f)
}
