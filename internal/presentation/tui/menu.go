package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/waypoint/pkg/menu"
	"github.com/muesli/termenv"
)

// MenuRenderer prints menu items, highlighting the selected one.
type MenuRenderer struct {
	profile termenv.Profile
}

// NewMenuRenderer uses the color profile of the terminal. Pass termenv.Ascii for plain output.
func NewMenuRenderer(profile ...termenv.Profile) *MenuRenderer {
	p := termenv.ColorProfile()
	if len(profile) > 0 {
		p = profile[0]
	}
	return &MenuRenderer{profile: p}
}

// Render writes one line per item: a marker, the label and the route.
func (r *MenuRenderer) Render(w io.Writer, items []menu.Item) {
	for i, item := range items {
		marker := "  "
		label := r.profile.String(item.Label)
		if item.Selected {
			marker = "> "
			label = label.Bold().Foreground(r.profile.Color("#fbbf24"))
		}
		route := r.profile.String("(" + item.Route() + ")").Faint()
		fmt.Fprintf(w, "%s%d. %s %s\n", marker, i+1, label, route)
	}
}
