// Package banner prints the title shown above table output.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultWidth = 80
	titleColor   = "\x1b[38;2;255;176;0m"
	resetColor   = "\x1b[0m"
)

var titleLines = []string{
	"┏━╸┏━┓╻  ┏┳┓┏━╸╻┏━┓   ┏┓╻┏━┓╺┳╸╻╻ ╻┏━╸",
	"┃  ┃ ┃┃  ┃┃┃┣╸ ┃┣━┫╺━╸┃┗┫┣━┫ ┃ ┃┃┏┛┣╸ ",
	"┗━╸┗━┛┗━╸╹ ╹┗━╸╹╹ ╹   ╹ ╹╹ ╹ ╹ ╹┗┛ ┗━╸",
}

// TerminalWidth returns the column count of the terminal behind f, or 80.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return defaultWidth
	}

	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}

	return defaultWidth
}

// DrawBannerTitle writes the title centred within width columns.
func DrawBannerTitle(w io.Writer, width int, colored bool) {
	if colored {
		fmt.Fprint(w, titleColor)
	}

	for _, line := range titleLines {
		if pad := (width - len([]rune(line))) / 2; pad > 0 {
			fmt.Fprint(w, strings.Repeat(" ", pad))
		}
		fmt.Fprintln(w, line)
	}

	if colored {
		fmt.Fprint(w, resetColor)
	}
}
