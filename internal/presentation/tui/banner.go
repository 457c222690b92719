package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the menuloop banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{"  _ __ ___   ___ _ __  _   _| | ___   ___  _ __  ", "#818cf8"},
		{" | '_ ` _ \\ / _ \\ '_ \\| | | | |/ _ \\ / _ \\| '_ \\ ", "#a78bfa"},
		{" | | | | | |  __/ | | | |_| | | (_) | (_) | |_) |", "#c084fc"},
		{" |_| |_| |_|\\___|_| |_|\\__,_|_|\\___/ \\___/| .__/ ", "#e879f9"},
		{"                                          |_|    ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Warn colours status messages such as "Selection required".
func Warn(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String(msg).Foreground(p.Color("#fb7185")).Bold().String()
}
