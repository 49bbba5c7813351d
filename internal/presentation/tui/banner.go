package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text, color string
	}{
		{" __      __                      _       _   ", "#818cf8"},
		{" \\ \\    / /_ _ _  _ _ __  ___ (_)_ _ | |_ ", "#a78bfa"},
		{"  \\ \\/\\/ / _` | || | '_ \\/ _ \\| | ' \\|  _|", "#c084fc"},
		{"   \\_/\\_/\\__,_|\\_, | .__/\\___/|_|_||_|\\__|", "#e879f9"},
		{"               |__/|_|                     ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
