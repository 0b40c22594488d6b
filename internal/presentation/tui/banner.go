package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the drills banner and version to w, coloured when the
// output supports it.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	lines := []struct {
		text  string
		color string
	}{
		{"     _      _ _ _     ", "#818cf8"},
		{"  __| |_ __(_) | |___ ", "#a78bfa"},
		{" / _` | '__| | | / __|", "#c084fc"},
		{"| (_| | |  | | | \\__ \\", "#e879f9"},
		{" \\__,_|_|  |_|_|_|___/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
