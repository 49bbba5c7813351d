/*
Package dsl provides a Go DSL for declaring destinations and navigation graphs.

It stands in for generated destination objects: each destination has a stable
route, typed arguments decoded with mapstructure and a default content function.
Graphs are assembled with a fluent builder and validated on Build.

Example usage:

	type ProfileArgs struct {
		ID int `nav:"id"`
	}

	home := dsl.NewScreen("home", renderHome)
	profile := dsl.NewDestination("profile", renderProfile) // *Destination[ProfileArgs]

	graph, err := dsl.New("root").
		Add(home).
		Add(profile).
		Start("home").
		Build()

	dir, err := profile.Invoke(ProfileArgs{ID: 7}) // profile?id=7
*/
package dsl
