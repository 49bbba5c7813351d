/*
Package waypoint provides typed navigation between declared destinations and
type-safe result passing when navigating back.

# Concept

A navigation graph is a set of destinations with one start route. Each
destination has a stable identity (its route), knows how to decode its own
arguments and carries a default content function. A NavHost binds the graph to
a stack-based navigation controller and renders whatever is on top of the stack.

Results travel backwards through the saved state of the previous back stack
entry. A screen writes a value with a result.BackNavigator and pops itself; the
screen below receives it with a result.Recipient once it is resumed again, and
exactly once. Results survive process death when the host is saved to a
ports.StateStore and restored.

Individual call sites may replace the default content of any destination with a
manualcalls registry, for example to pass in dependencies the destination cannot
build itself.

# Usage

	home := dsl.NewScreen("home", renderHome)
	profile := dsl.NewDestination("profile", renderProfile)

	graph := dsl.New("root").Add(home, profile).Start("home").MustBuild()

	host, err := waypoint.New(graph,
		waypoint.WithManualCalls(manualcalls.NewBuilder().
			Register(profile, renderProfileWithRepo(repo)).
			Build()),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := host.Render(); err != nil {
		log.Fatal(err)
	}

Inside renderProfile, scope.ResultBackNavigator[string](s) returns the handle
used to send a string back to home; inside renderHome,
scope.ResultRecipient[*dsl.Destination[ProfileArgs], string](s, profile)
registers the listener.
*/
package waypoint
