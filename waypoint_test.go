package waypoint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/waypoint"
	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/adapters/redis"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/dsl"
	"github.com/aretw0/waypoint/pkg/manualcalls"
	"github.com/aretw0/waypoint/pkg/menu"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/aretw0/waypoint/pkg/scope"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// app is the Home/Settings/Profile sample: Profile sends a string back to Home.
type app struct {
	home, settings, profile *dsl.Screen
	graph                   *domain.NavGraph

	received []string
	reply    string
	rendered []string
}

func newApp(t *testing.T) *app {
	t.Helper()
	a := &app{reply: "ok"}
	a.home = dsl.NewScreen("home", func(s *scope.DestinationScope[domain.NoArgs]) error {
		a.rendered = append(a.rendered, "home")
		recipient, err := scope.ResultRecipient[*dsl.Screen, string](s, a.profile)
		if err != nil {
			return err
		}
		recipient.OnResult(func(v string) { a.received = append(a.received, v) })
		return nil
	}, dsl.WithTitle("Home"))
	a.settings = dsl.NewScreen("settings", func(*scope.DestinationScope[domain.NoArgs]) error {
		a.rendered = append(a.rendered, "settings")
		return nil
	})
	a.profile = dsl.NewScreen("profile", func(s *scope.DestinationScope[domain.NoArgs]) error {
		a.rendered = append(a.rendered, "profile")
		back, err := scope.ResultBackNavigator[string](s)
		if err != nil {
			return err
		}
		return back.NavigateBack(a.reply)
	})

	graph, err := dsl.New("root").Add(a.home, a.settings, a.profile).Start("home").Build()
	require.NoError(t, err)
	a.graph = graph
	return a
}

func labels(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestNavHost_Scenario(t *testing.T) {
	a := newApp(t)
	host, err := waypoint.New(a.graph)
	require.NoError(t, err)

	assert.Equal(t, []string{"Home", "Settings", "Profile"}, labels(host.Menu(nil)))
	assert.True(t, host.Menu(nil)[0].Selected)

	require.NoError(t, host.Render())
	require.NoError(t, host.Navigator().NavigateTo(a.profile))
	require.NoError(t, host.Render())

	assert.Equal(t, "home", host.Controller().CurrentEntry().Destination().Route())
	assert.Equal(t, []string{"ok"}, a.received)

	// Rendering again and resuming again must not deliver twice.
	require.NoError(t, host.Render())
	require.NoError(t, host.Navigator().NavigateTo(a.settings))
	require.True(t, host.Navigator().NavigateUp())
	assert.Equal(t, []string{"ok"}, a.received)
	assert.Equal(t, []string{"home", "profile", "home"}, a.rendered)
}

func TestNavHost_OverridePrecedence(t *testing.T) {
	a := newApp(t)
	var overridden []string
	calls := manualcalls.NewBuilder().
		Register(a.settings, func(s *scope.DestinationScope[any]) error {
			overridden = append(overridden, s.Destination().Route())
			return nil
		}).
		Build()

	host, err := waypoint.New(a.graph, waypoint.WithManualCalls(calls))
	require.NoError(t, err)
	assert.Same(t, calls, host.ManualCalls())

	require.NoError(t, host.Render())
	require.NoError(t, host.Navigator().NavigateTo(a.settings))
	require.NoError(t, host.Render())

	assert.Equal(t, []string{"settings"}, overridden)
	assert.Equal(t, []string{"home"}, a.rendered, "default content of settings never ran")
}

func TestNavHost_RenderWithoutContent(t *testing.T) {
	graph := dsl.New("root").Add(dsl.NewScreen("blank", nil)).Start("blank").MustBuild()
	host, err := waypoint.New(graph)
	require.NoError(t, err)
	assert.ErrorIs(t, host.Render(), domain.ErrNoContent)
}

func TestNavHost_RenderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	graph := dsl.New("root").
		Add(dsl.NewScreen("home", func(*scope.DestinationScope[domain.NoArgs]) error { return boom })).
		Start("home").
		MustBuild()
	host, err := waypoint.New(graph)
	require.NoError(t, err)
	assert.ErrorIs(t, host.Render(), boom)
}

func TestNavHost_InjectedController(t *testing.T) {
	a := newApp(t)
	controller, err := memory.NewHost(a.graph)
	require.NoError(t, err)

	host, err := waypoint.New(a.graph, waypoint.WithController(controller))
	require.NoError(t, err)
	assert.Same(t, controller, host.Controller())

	_, err = waypoint.New(nil)
	assert.Error(t, err)
}

func TestNavHost_ClickHandler(t *testing.T) {
	a := newApp(t)
	host, err := waypoint.New(a.graph, waypoint.WithScheduler(ports.InlineScheduler), waypoint.WithDeferredResume())
	require.NoError(t, err)
	host.Settle()

	closed := 0
	click := host.ClickHandler(menu.WithAfterNavigate(func(context.Context) { closed++ }))

	assert.False(t, click.Click(context.Background(), a.home))
	assert.True(t, click.Click(context.Background(), a.settings))
	assert.False(t, click.Click(context.Background(), a.profile), "settings is still settling")
	host.Settle()
	assert.True(t, click.Click(context.Background(), a.profile))
	assert.Equal(t, 2, closed)

	items := host.Menu(nil)
	assert.True(t, items[2].Selected)
}

// sendAndSave writes a result for home and saves the host before home registers a listener,
// as if the process died right after profile popped.
func sendAndSave(t *testing.T, a *app, store ports.StateStore) {
	t.Helper()
	ctx := context.Background()
	host, err := waypoint.New(a.graph)
	require.NoError(t, err)

	require.NoError(t, host.Navigator().NavigateTo(a.profile))
	require.NoError(t, host.Render())
	require.Empty(t, a.received)

	require.NoError(t, host.Save(ctx, store, "device-1"))
}

func TestNavHost_ResultSurvivesRestore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	stores := map[string]ports.StateStore{
		"memory": memory.NewStore(),
		"redis":  redis.NewFromClient(client),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			a := newApp(t)
			sendAndSave(t, a, store)

			restored, err := waypoint.Restore(context.Background(), a.graph, store, "device-1")
			require.NoError(t, err)
			assert.Equal(t, "home", restored.Controller().CurrentEntry().Destination().Route())

			require.NoError(t, restored.Render())
			assert.Equal(t, []string{"ok"}, a.received)

			require.NoError(t, restored.Render())
			assert.Equal(t, []string{"ok"}, a.received)
		})
	}
}

func TestNavHost_RestoreMissing(t *testing.T) {
	a := newApp(t)
	_, err := waypoint.Restore(context.Background(), a.graph, memory.NewStore(), "nobody")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestNavHost_RestoreRejectsController(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	store := memory.NewStore()

	host, err := waypoint.New(a.graph)
	require.NoError(t, err)
	require.NoError(t, host.Save(ctx, store, "device-1"))

	inner, err := memory.NewHost(a.graph)
	require.NoError(t, err)
	restored, err := waypoint.Restore(ctx, a.graph, store, "device-1", waypoint.WithController(inner))
	assert.ErrorIs(t, err, waypoint.ErrControllerOption)
	assert.Nil(t, restored)

	restored, err = waypoint.Restore(ctx, a.graph, store, "device-1")
	require.NoError(t, err)
	assert.NotNil(t, restored)
}

type bareController struct {
	ports.NavController
}

func TestNavHost_SaveUnsupported(t *testing.T) {
	a := newApp(t)
	inner, err := memory.NewHost(a.graph)
	require.NoError(t, err)

	host, err := waypoint.New(a.graph, waypoint.WithController(bareController{inner}))
	require.NoError(t, err)
	assert.ErrorIs(t, host.Save(context.Background(), memory.NewStore(), "x"), waypoint.ErrSnapshotUnsupported)
}
