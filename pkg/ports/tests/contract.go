package tests

import (
	"testing"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

type contractDestination string

func (d contractDestination) Route() string { return string(d) }

func (d contractDestination) DecodeArgs(map[string]any) (any, error) { return domain.NoArgs{}, nil }

func (d contractDestination) Direction() domain.Direction { return domain.NewDirection(string(d)) }

// ContractGraph returns the graph NavControllerContractTest expects the host to be built from:
// start "home", plus "settings" and "profile".
func ContractGraph() *domain.NavGraph {
	g, err := domain.NewNavGraph("root", "home", []domain.DestinationSpec{
		contractDestination("home"),
		contractDestination("settings"),
		contractDestination("profile"),
	}, nil)
	if err != nil {
		panic(err)
	}
	return g
}

// NavControllerContractTest is a reusable test suite that verifies if a host complies with ports.NavController.
// newHost must return a host over ContractGraph() with the start destination pushed and resumed.
func NavControllerContractTest(t *testing.T, newHost func(t *testing.T, graph *domain.NavGraph) ports.NavController) {
	t.Helper()

	t.Run("Start_Entry", func(t *testing.T) {
		host := newHost(t, ContractGraph())
		cur := host.CurrentEntry()
		if cur == nil {
			t.Fatal("expected a current entry after start")
		}
		if cur.Destination().Route() != "home" {
			t.Errorf("start entry = %q, want home", cur.Destination().Route())
		}
		if cur.Lifecycle().State() != domain.StateResumed {
			t.Errorf("start entry state = %s, want resumed", cur.Lifecycle().State())
		}
		if host.PreviousEntry() != nil {
			t.Error("expected no previous entry on a single-entry stack")
		}
	})

	t.Run("Navigate_Push", func(t *testing.T) {
		host := newHost(t, ContractGraph())
		home := host.CurrentEntry()

		if err := host.Navigate(domain.NewDirection("profile"), ports.NavOptions{}); err != nil {
			t.Fatalf("navigate: %v", err)
		}
		if got := host.CurrentEntry().Destination().Route(); got != "profile" {
			t.Errorf("current = %q, want profile", got)
		}
		if host.PreviousEntry().ID() != home.ID() {
			t.Error("previous entry should be the former top")
		}
		if home.Lifecycle().State() != domain.StateCreated {
			t.Errorf("covered entry state = %s, want created", home.Lifecycle().State())
		}
	})

	t.Run("Navigate_Unknown", func(t *testing.T) {
		host := newHost(t, ContractGraph())
		if err := host.Navigate(domain.NewDirection("nowhere"), ports.NavOptions{}); err == nil {
			t.Error("expected error navigating to an unknown route")
		}
	})

	t.Run("NavigateUp_Resumes_Previous", func(t *testing.T) {
		host := newHost(t, ContractGraph())
		home := host.CurrentEntry()
		_ = host.Navigate(domain.NewDirection("profile"), ports.NavOptions{})
		profile := host.CurrentEntry()

		if !host.NavigateUp() {
			t.Fatal("NavigateUp should pop a two-entry stack")
		}
		if host.CurrentEntry().ID() != home.ID() {
			t.Error("home should be on top again")
		}
		if home.Lifecycle().State() != domain.StateResumed {
			t.Errorf("home state = %s, want resumed", home.Lifecycle().State())
		}
		if profile.Lifecycle().State() != domain.StateDestroyed {
			t.Errorf("popped state = %s, want destroyed", profile.Lifecycle().State())
		}
	})

	t.Run("NavigateUp_Last_Entry", func(t *testing.T) {
		host := newHost(t, ContractGraph())
		if host.NavigateUp() {
			t.Error("NavigateUp must not pop the last entry")
		}
		if host.CurrentEntry() == nil {
			t.Error("stack should still hold the start entry")
		}
	})

	t.Run("PopBackStackTo", func(t *testing.T) {
		host := newHost(t, ContractGraph())
		_ = host.Navigate(domain.NewDirection("settings"), ports.NavOptions{})
		_ = host.Navigate(domain.NewDirection("profile"), ports.NavOptions{})

		if !host.PopBackStackTo("settings", false) {
			t.Fatal("expected settings to be found")
		}
		if got := host.CurrentEntry().Destination().Route(); got != "settings" {
			t.Errorf("current = %q, want settings", got)
		}
		if host.PopBackStackTo("profile", false) {
			t.Error("profile is no longer on the stack")
		}
	})
}
