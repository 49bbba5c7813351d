package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/waypoint/internal/presentation/graph"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/dsl"
	"github.com/aretw0/waypoint/pkg/scope"
	"github.com/stretchr/testify/assert"
)

func testGraph() *domain.NavGraph {
	return dsl.New("root").
		Add(
			dsl.NewScreen("home", nil, dsl.WithTitle("Home")),
			dsl.NewScreen("confirm-delete", nil, dsl.WithKind(scope.KindDialog)),
			dsl.NewScreen("share", nil, dsl.WithKind(scope.KindBottomSheet)),
			dsl.NewScreen("about.page", nil, dsl.WithTitle(`The "about" page`)),
		).
		Nest(dsl.New("settings_graph").
			Add(dsl.NewScreen("settings", nil), dsl.NewScreen("account", nil)).
			Start("settings")).
		Start("home").
		MustBuild()
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		graph    *domain.NavGraph
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name:  "Shapes",
			graph: testGraph(),
			contains: []string{
				"graph TD\n",
				"home((\"Home\"))",
				"confirm_delete{{\"confirm-delete\"}}",
				"share[/\"share\"/]",
			},
		},
		{
			name:  "Escaping",
			graph: testGraph(),
			contains: []string{
				"about_page[\"The 'about' page\"]",
			},
		},
		{
			name:  "Nested Subgraph",
			graph: testGraph(),
			contains: []string{
				"subgraph settings_graph[\"settings_graph\"]",
				"        settings((\"settings\"))",
				"        account[\"account\"]",
				"    end\n",
			},
		},
		{
			name: "Nested Start",
			graph: dsl.New("root").
				Add(dsl.NewScreen("home", nil)).
				Nest(dsl.New("inner").Add(dsl.NewScreen("x", nil)).Start("x")).
				Start("inner").
				MustBuild(),
			contains: []string{
				"start_root((\"start\")) --> inner",
				"home[\"home\"]",
			},
		},
		{
			name:  "Overlay",
			graph: testGraph(),
			overlay: &graph.GraphOverlay{
				BackStack: []string{"home", "settings", "share"},
				Current:   "share",
			},
			contains: []string{
				"home -.-> settings",
				"settings -.-> share",
				"class home stacked;",
				"class settings stacked;",
				"class share current;",
			},
			excludes: []string{
				"class share stacked;",
			},
		},
		{
			name:     "No Overlay",
			graph:    testGraph(),
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.graph, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_NilGraph(t *testing.T) {
	assert.True(t, strings.HasPrefix(graph.GenerateMermaid(nil, nil), "graph TD"))
}
