//go:build windows

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

const enableVirtualTerminalProcessing = 0x0004

// Enable turns on virtual terminal processing for the console behind f and
// reports whether escape sequences will be honoured.
func Enable(f *os.File) bool {
	if !IsTerminal(f) {
		return false
	}

	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	return windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing) == nil
}
