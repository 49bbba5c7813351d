package menu

import (
	"sort"

	"github.com/aretw0/waypoint/pkg/domain"
)

// Item is one entry of a navigation menu.
type Item struct {
	Destination domain.DirectionDestination
	Label       string
	Selected    bool
}

// Route returns the route of the item's destination.
func (i Item) Route() string {
	return i.Destination.Route()
}

// Destinations returns the graph's own destinations that support direct navigation,
// with the start destination first and the others in declaration order.
func Destinations(graph *domain.NavGraph) []domain.DirectionDestination {
	if graph == nil {
		return nil
	}
	var out []domain.DirectionDestination
	for _, d := range graph.Destinations() {
		if dd, ok := d.(domain.DirectionDestination); ok {
			out = append(out, dd)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(graph, out[i]) < rank(graph, out[j])
	})
	return out
}

func rank(graph *domain.NavGraph, d domain.DestinationSpec) int {
	if graph.IsStart(d) {
		return 0
	}
	return 1
}

// Items builds the menu for graph with current marked as selected.
// current may be nil, in which case nothing is selected. A nil localizer
// falls back to declared titles and title-cased routes.
func Items(graph *domain.NavGraph, current domain.DestinationSpec, localizer *Localizer) []Item {
	dests := Destinations(graph)
	items := make([]Item, 0, len(dests))
	for _, d := range dests {
		items = append(items, Item{
			Destination: d,
			Label:       localizer.Label(d),
			Selected:    domain.SameDestination(d, current),
		})
	}
	return items
}
