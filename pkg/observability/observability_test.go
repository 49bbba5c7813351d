package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/dsl"
	"github.com/aretw0/waypoint/pkg/observability"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/aretw0/waypoint/pkg/result"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := metrics.Hooks()

	home := dsl.NewScreen("home", nil)
	profile := dsl.NewScreen("profile", nil)
	graph := dsl.New("root").Add(home, profile).Start("home").MustBuild()
	host, err := memory.NewHost(graph, memory.WithHooks(hooks))
	require.NoError(t, err)

	recipient, err := result.NewRecipient[*dsl.Screen, string](host.CurrentEntry(), profile, result.WithHooks(hooks))
	require.NoError(t, err)
	recipient.OnResult(func(string) {})

	require.NoError(t, host.Navigate(profile.Direction(), ports.NavOptions{}))
	back, err := result.NewBackNavigator[string](host, profile, result.WithHooks(hooks))
	require.NoError(t, err)
	require.NoError(t, back.NavigateBack("ok"))

	// Nothing below the start destination: dropped.
	root, err := result.NewBackNavigator[string](host, profile, result.WithHooks(hooks))
	require.NoError(t, err)
	require.NoError(t, root.NavigateBack("lost"))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Navigations.WithLabelValues("profile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Pops.WithLabelValues("profile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResultsSent.WithLabelValues("profile", "string")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResultsDelivered.WithLabelValues("profile", "string")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResultsDropped.WithLabelValues("profile", "string")))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		observability.NewMetrics(nil)
	})
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	hooks := observability.LogHooks(logger)

	hooks.OnNavigate(context.Background(), &domain.NavigationEvent{
		EventBase: domain.EventBase{Type: domain.EventNavigate},
		From:      "home",
		To:        "profile",
	})
	hooks.OnResultDropped(context.Background(), &domain.ResultEvent{
		EventBase: domain.EventBase{Type: domain.EventResultDropped},
		Origin:    "profile",
		TypeID:    "string",
		Reason:    "no previous entry",
	})

	out := buf.String()
	assert.Contains(t, out, "msg=navigate from=home to=profile")
	assert.Contains(t, out, `reason="no previous entry"`)
}
