package waypoint_test

import (
	"fmt"
	"log"

	"github.com/aretw0/waypoint"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/dsl"
	"github.com/aretw0/waypoint/pkg/scope"
)

type ProfileArgs struct {
	Name string `nav:"name"`
}

// ExampleNew shows a screen sending a value back to the screen below it.
func ExampleNew() {
	var profile *dsl.Destination[ProfileArgs]

	home := dsl.NewScreen("home", func(s *scope.DestinationScope[domain.NoArgs]) error {
		recipient, err := scope.ResultRecipient[*dsl.Destination[ProfileArgs], bool](s, profile)
		if err != nil {
			return err
		}
		recipient.OnResult(func(saved bool) {
			fmt.Println("profile saved:", saved)
		})
		return nil
	})

	profile = dsl.NewDestination("profile", func(s *scope.DestinationScope[ProfileArgs]) error {
		fmt.Println("editing", s.NavArgs().Name)
		back, err := scope.ResultBackNavigator[bool](s)
		if err != nil {
			return err
		}
		return back.NavigateBack(true)
	})

	graph := dsl.New("root").Add(home, profile).Start("home").MustBuild()
	host, err := waypoint.New(graph)
	if err != nil {
		log.Fatal(err)
	}

	if err := host.Render(); err != nil {
		log.Fatal(err)
	}
	dir, err := profile.Invoke(ProfileArgs{Name: "ada"})
	if err != nil {
		log.Fatal(err)
	}
	if err := host.Navigator().Navigate(dir); err != nil {
		log.Fatal(err)
	}
	fmt.Println("at", dir)
	if err := host.Render(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("back at", host.Controller().CurrentEntry().Destination().Route())

	// Output:
	// at profile?name=ada
	// editing ada
	// profile saved: true
	// back at home
}
