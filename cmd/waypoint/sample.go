package main

import (
	"fmt"
	"io"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/dsl"
	"github.com/aretw0/waypoint/pkg/scope"
)

// ProfileArgs are the arguments of the sample profile destination.
type ProfileArgs struct {
	ID   int    `nav:"id"`
	Name string `nav:"name"`
}

// sample is the built-in Home/Settings/Profile graph. Profile sends a string back to Home.
type sample struct {
	home     *dsl.Screen
	settings *dsl.Screen
	profile  *dsl.Destination[ProfileArgs]
	graph    *domain.NavGraph
}

func newSample(out io.Writer) *sample {
	s := &sample{}
	s.home = dsl.NewScreen("home", func(sc *scope.DestinationScope[domain.NoArgs]) error {
		fmt.Fprintln(out, "[home] rendered")
		recipient, err := scope.ResultRecipient[*dsl.Destination[ProfileArgs], string](sc, s.profile)
		if err != nil {
			return err
		}
		recipient.OnResult(func(msg string) {
			fmt.Fprintf(out, "[home] profile says %q\n", msg)
		})
		return nil
	}, dsl.WithTitle("Home"))

	s.settings = dsl.NewScreen("settings", func(*scope.DestinationScope[domain.NoArgs]) error {
		fmt.Fprintln(out, "[settings] rendered")
		return nil
	}, dsl.WithTitle("Settings"))

	s.profile = dsl.NewDestination("profile", func(sc *scope.DestinationScope[ProfileArgs]) error {
		args := sc.NavArgs()
		fmt.Fprintf(out, "[profile] editing #%d %s\n", args.ID, args.Name)
		back, err := scope.ResultBackNavigator[string](sc)
		if err != nil {
			return err
		}
		return back.NavigateBack("saved " + args.Name)
	}, dsl.WithTitle("Profile"))

	s.graph = dsl.New("root").Add(s.home, s.settings, s.profile).Start("home").MustBuild()
	return s
}
