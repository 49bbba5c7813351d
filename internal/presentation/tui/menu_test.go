package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/waypoint/internal/presentation/tui"
	"github.com/aretw0/waypoint/pkg/dsl"
	"github.com/aretw0/waypoint/pkg/menu"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMenuRenderer_Ascii(t *testing.T) {
	graph := dsl.New("root").
		Add(dsl.NewScreen("settings", nil), dsl.NewScreen("home", nil, dsl.WithTitle("Home"))).
		Start("home").
		MustBuild()
	current, _ := graph.Find("settings")

	var buf bytes.Buffer
	tui.NewMenuRenderer(termenv.Ascii).Render(&buf, menu.Items(graph, current, nil))

	assert.Equal(t, "  1. Home (home)\n> 2. Settings (settings)\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|__/|_|")
}
