package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/scope"
)

// GraphOverlay contains back stack data to visualize on the graph.
type GraphOverlay struct {
	// BackStack lists the routes on the stack, bottom first.
	BackStack []string
	// Current is the route on top.
	Current string
}

// GenerateMermaid produces a Mermaid flowchart of a navigation graph.
// It applies semantic styling:
// - Start destination: ((Circle))
// - Dialog: {{Hexagon}}
// - Bottom sheet: [/Parallelogram/]
// - Default: [Rectangle]
// Nested graphs become subgraphs. The overlay, when given, draws the back stack
// as dotted edges and highlights the current destination.
func GenerateMermaid(g *domain.NavGraph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if g != nil {
		writeGraph(&sb, g, "    ")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef stacked fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for i := 1; i < len(overlay.BackStack); i++ {
			sb.WriteString(fmt.Sprintf("    %s -.-> %s\n",
				sanitizeMermaidID(overlay.BackStack[i-1]), sanitizeMermaidID(overlay.BackStack[i])))
		}

		styled := make(map[string]bool)
		for _, route := range overlay.BackStack {
			safeID := sanitizeMermaidID(route)
			if route == overlay.Current || styled[safeID] || safeID == "" {
				continue
			}
			styled[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s stacked;\n", safeID))
		}
		if overlay.Current != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.Current)))
		}
	}
	return sb.String()
}

func writeGraph(sb *strings.Builder, g *domain.NavGraph, indent string) {
	for _, d := range g.Destinations() {
		opener, closer := "[", "]"
		kind := scope.KindScreen
		if styled, ok := d.(scope.Styled); ok {
			kind = styled.Kind()
		}
		switch {
		case d.Route() == g.StartRoute():
			opener, closer = "((", "))"
		case kind == scope.KindDialog:
			opener, closer = "{{", "}}"
		case kind == scope.KindBottomSheet:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("%s%s%s\"%s\"%s\n", indent, sanitizeMermaidID(d.Route()), opener, escape(label(d)), closer))
	}

	for _, n := range g.Nested() {
		sb.WriteString(fmt.Sprintf("%ssubgraph %s[\"%s\"]\n", indent, sanitizeMermaidID(n.Route()), escape(n.Route())))
		writeGraph(sb, n, indent+"    ")
		sb.WriteString(indent + "end\n")
	}

	// The start of a graph whose start route is a nested graph points into it.
	for _, n := range g.Nested() {
		if n.Route() == g.StartRoute() {
			sb.WriteString(fmt.Sprintf("%sstart_%s((\"start\")) --> %s\n",
				indent, sanitizeMermaidID(g.Route()), sanitizeMermaidID(n.Route())))
		}
	}
}

func label(d domain.DestinationSpec) string {
	if titled, ok := d.(interface{ Title() string }); ok && titled.Title() != "" {
		return titled.Title()
	}
	return d.Route()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
