package result_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
	contract "github.com/aretw0/waypoint/pkg/ports/tests"
	"github.com/aretw0/waypoint/pkg/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Color string

type Pick struct {
	ID    int
	Label string
}

func (Pick) SerializableResult() {}

type PtrTagged struct{ N int }

func (*PtrTagged) SerializableResult() {}

type Box[T any] struct{ V T }

func (Box[T]) SerializableResult() {}

type Untagged struct{ N int }

// fixture is a host over the contract graph: home (start), settings, profile.
type fixture struct {
	host    *memory.Host
	home    domain.DestinationSpec
	profile domain.DestinationSpec
	setting domain.DestinationSpec
}

func newFixture(t *testing.T, opts ...memory.Option) *fixture {
	t.Helper()
	graph := contract.ContractGraph()
	host, err := memory.NewHost(graph, opts...)
	require.NoError(t, err)

	find := func(route string) domain.DestinationSpec {
		d, err := graph.Find(route)
		require.NoError(t, err)
		return d
	}
	return &fixture{host: host, home: find("home"), profile: find("profile"), setting: find("settings")}
}

func (f *fixture) open(t *testing.T, route string) {
	t.Helper()
	require.NoError(t, f.host.Navigate(domain.NewDirection(route), ports.NavOptions{}))
}

func TestTypeID(t *testing.T) {
	id, err := result.TypeID[string]()
	require.NoError(t, err)
	assert.Equal(t, "string", id)

	nullable, err := result.TypeID[*string]()
	require.NoError(t, err)
	assert.Equal(t, id, nullable, "nullable shares the identifier of its element")

	named, err := result.TypeID[Color]()
	require.NoError(t, err)
	assert.Equal(t, "github.com/aretw0/waypoint/pkg/result_test.Color", named)

	for name, fn := range map[string]func() (string, error){
		"int":        result.TypeID[int],
		"int32":      result.TypeID[int32],
		"int64":      result.TypeID[int64],
		"float32":    result.TypeID[float32],
		"float64":    result.TypeID[float64],
		"bool":       result.TypeID[bool],
		"*bool":      result.TypeID[*bool],
		"tagged":     result.TypeID[Pick],
		"*tagged":    result.TypeID[*Pick],
		"ptr-tagged": result.TypeID[PtrTagged],
	} {
		_, err := fn()
		assert.NoError(t, err, name)
	}
}

func TestTypeID_Rejected(t *testing.T) {
	for name, fn := range map[string]func() (string, error){
		"slice":     result.TypeID[[]string],
		"map":       result.TypeID[map[string]int],
		"array":     result.TypeID[[2]int],
		"any":       result.TypeID[any],
		"untagged":  result.TypeID[Untagged],
		"generic":   result.TypeID[Box[int]],
		"**string":  result.TypeID[**string],
		"uint8":     result.TypeID[uint8],
		"func":      result.TypeID[func()],
		"chan":      result.TypeID[chan int],
		"error":     result.TypeID[error],
		"*untagged": result.TypeID[*Untagged],
	} {
		_, err := fn()
		assert.ErrorIs(t, err, result.ErrUnsupportedResultType, name)

		var typed *result.UnsupportedResultTypeError
		assert.True(t, errors.As(err, &typed), name)
	}
}

func TestConstruction_UnsupportedType(t *testing.T) {
	f := newFixture(t)

	_, err := result.NewBackNavigator[[]string](f.host, f.profile)
	assert.ErrorIs(t, err, result.ErrUnsupportedResultType)

	_, err = result.NewRecipient[domain.DestinationSpec, map[string]int](f.host.CurrentEntry(), f.profile)
	assert.ErrorIs(t, err, result.ErrUnsupportedResultType)
}

func TestRoundTrip(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "ok", roundTrip(t, "ok"))
	})
	t.Run("int64", func(t *testing.T) {
		assert.Equal(t, int64(-42), roundTrip(t, int64(-42)))
	})
	t.Run("float64", func(t *testing.T) {
		assert.Equal(t, 3.25, roundTrip(t, 3.25))
	})
	t.Run("bool", func(t *testing.T) {
		assert.Equal(t, true, roundTrip(t, true))
	})
	t.Run("named", func(t *testing.T) {
		assert.Equal(t, Color("teal"), roundTrip(t, Color("teal")))
	})
	t.Run("nullable nil", func(t *testing.T) {
		assert.Nil(t, roundTrip[*string](t, nil))
	})
	t.Run("nullable value", func(t *testing.T) {
		v := "set"
		got := roundTrip(t, &v)
		require.NotNil(t, got)
		assert.Equal(t, "set", *got)
	})
	t.Run("serializable", func(t *testing.T) {
		assert.Equal(t, Pick{ID: 3, Label: "three"}, roundTrip(t, Pick{ID: 3, Label: "three"}))
	})
}

// roundTrip sends value from profile back to home and returns what home's recipient received.
func roundTrip[R any](t *testing.T, value R) R {
	t.Helper()
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	recipient, err := result.NewRecipient[domain.DestinationSpec, R](homeEntry, f.profile)
	require.NoError(t, err)

	var got []R
	recipient.OnResult(func(v R) { got = append(got, v) })

	f.open(t, "profile")
	nav, err := result.NewBackNavigator[R](f.host, f.profile)
	require.NoError(t, err)
	require.Equal(t, recipient.Key(), nav.Key())

	require.NoError(t, nav.NavigateBack(value))
	require.Len(t, got, 1)
	return got[0]
}

func TestConsumeOnce(t *testing.T) {
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	recipient, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile)
	require.NoError(t, err)
	calls := 0
	recipient.OnResult(func(string) { calls++ })

	f.open(t, "profile")
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("ok"))
	assert.Equal(t, 1, calls)
	assert.False(t, homeEntry.SavedState().Contains(recipient.Key()), "slot is cleared after delivery")

	// Resume again without a new write.
	f.open(t, "settings")
	require.True(t, f.host.NavigateUp())
	assert.Equal(t, domain.StateResumed, homeEntry.Lifecycle().State())
	assert.Equal(t, 1, calls)

	// Re-registering on a resumed entry replays the state but finds nothing.
	recipient.OnResult(func(string) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestTypeIsolation(t *testing.T) {
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	asInt, err := result.NewRecipient[domain.DestinationSpec, int](homeEntry, f.profile)
	require.NoError(t, err)
	asString, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile)
	require.NoError(t, err)

	intCalls := 0
	var strings []string
	asInt.OnResult(func(int) { intCalls++ })
	asString.OnResult(func(s string) { strings = append(strings, s) })

	f.open(t, "profile")
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("only-strings"))

	assert.Equal(t, 0, intCalls)
	assert.Equal(t, []string{"only-strings"}, strings)
}

func TestOriginIsolation(t *testing.T) {
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	// Declared for settings, but profile is the screen that answers.
	wrongOrigin, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.setting)
	require.NoError(t, err)
	calls := 0
	wrongOrigin.OnResult(func(string) { calls++ })

	f.open(t, "profile")
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("ok"))

	assert.Equal(t, 0, calls)
	// The value stays in the mailbox under the profile key, undelivered.
	assert.True(t, homeEntry.SavedState().Contains(nav.Key()))
}

func TestLastRegistrationWins(t *testing.T) {
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	recipient, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile)
	require.NoError(t, err)

	var first, second []string
	recipient.OnResult(func(s string) { first = append(first, s) })

	// A fresh recipient for the same pair on the same entry, as a later render pass would build.
	again, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile)
	require.NoError(t, err)
	again.OnResult(func(s string) { second = append(second, s) })

	f.open(t, "profile")
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("ok"))

	assert.Empty(t, first)
	assert.Equal(t, []string{"ok"}, second)
}

func TestWriteOverwritesPendingResult(t *testing.T) {
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	// Two answers before home ever resumes: only the last one is kept.
	f.open(t, "profile")
	homeEntry.SavedState().Set(result.Key("profile", "string"), mustEncode(t, "stale"))
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("fresh"))

	recipient, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile)
	require.NoError(t, err)
	var got []string
	recipient.OnResult(func(s string) { got = append(got, s) })
	assert.Equal(t, []string{"fresh"}, got)
}

func TestNavigateBack_NoPreviousEntry(t *testing.T) {
	var dropped []*domain.ResultEvent
	hooks := domain.Hooks{OnResultDropped: func(_ context.Context, e *domain.ResultEvent) {
		dropped = append(dropped, e)
	}}
	f := newFixture(t)

	nav, err := result.NewBackNavigator[string](f.host, f.home, result.WithHooks(hooks))
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("nobody listens"))

	require.Len(t, dropped, 1)
	assert.Equal(t, "home", dropped[0].Origin)
	assert.Equal(t, "no previous entry", dropped[0].Reason)
	assert.Equal(t, "home", f.host.CurrentEntry().Destination().Route(), "host keeps its only entry")
	assert.Equal(t, 0, f.host.CurrentEntry().SavedState().Len())
}

func TestNavigateBack_AtMostOnce(t *testing.T) {
	f := newFixture(t)
	f.open(t, "settings")
	f.open(t, "profile")

	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("first"))
	assert.ErrorIs(t, nav.NavigateBack("second"), result.ErrAlreadyNavigatedBack)
	assert.Equal(t, "settings", f.host.CurrentEntry().Destination().Route(), "only one pop happened")
}

func TestNavigateBack_StaleNavigator(t *testing.T) {
	f := newFixture(t)
	f.open(t, "profile")

	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)

	// The screen is covered before it answers.
	f.open(t, "settings")
	assert.ErrorIs(t, nav.NavigateBack("late"), result.ErrStaleNavigator)
	assert.Equal(t, "settings", f.host.CurrentEntry().Destination().Route())
}

type brokenCodec struct{ result.MsgpackCodec }

func (brokenCodec) Decode([]byte, any) error { return errors.New("corrupt payload") }

func TestRecipient_DecodeFailureDrops(t *testing.T) {
	var reasons []string
	hooks := domain.Hooks{OnResultDropped: func(_ context.Context, e *domain.ResultEvent) {
		reasons = append(reasons, e.Reason)
	}}
	f := newFixture(t)
	homeEntry := f.host.CurrentEntry()

	recipient, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile,
		result.WithCodec(brokenCodec{}), result.WithHooks(hooks))
	require.NoError(t, err)
	calls := 0
	recipient.OnResult(func(string) { calls++ })

	f.open(t, "profile")
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("ok"))

	assert.Equal(t, 0, calls)
	assert.Equal(t, []string{"corrupt payload"}, reasons)
	assert.False(t, homeEntry.SavedState().Contains(recipient.Key()))
}

func TestRecipient_DeliveredAfterRecreation(t *testing.T) {
	f := newFixture(t)
	f.open(t, "profile")
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)

	// Home is covered by profile; the snapshot is taken right after the write,
	// as if the process died before home could resume.
	f.host.PreviousEntry().SavedState().Set(nav.Key(), mustEncode(t, "survived"))
	snap := f.host.Snapshot()
	snap.Entries = snap.Entries[:1]

	restored, err := memory.Restore(f.host.Graph(), snap)
	require.NoError(t, err)

	recipient, err := result.NewRecipient[domain.DestinationSpec, string](restored.CurrentEntry(), f.profile)
	require.NoError(t, err)
	var got []string
	recipient.OnResult(func(s string) { got = append(got, s) })
	assert.Equal(t, []string{"survived"}, got)

	// A second recreation without a pending result never calls the listener.
	again, err := memory.Restore(f.host.Graph(), restored.Snapshot())
	require.NoError(t, err)
	recipient, err = result.NewRecipient[domain.DestinationSpec, string](again.CurrentEntry(), f.profile)
	require.NoError(t, err)
	recipient.OnResult(func(s string) { got = append(got, s) })
	assert.Equal(t, []string{"survived"}, got)
}

func TestRecipient_NotDeliveredWhileCovered(t *testing.T) {
	f := newFixture(t, memory.WithDeferredResume())
	f.host.Settle()
	homeEntry := f.host.CurrentEntry()

	recipient, err := result.NewRecipient[domain.DestinationSpec, string](homeEntry, f.profile)
	require.NoError(t, err)
	var got []string
	recipient.OnResult(func(s string) { got = append(got, s) })

	f.open(t, "profile")
	f.host.Settle()
	nav, err := result.NewBackNavigator[string](f.host, f.profile)
	require.NoError(t, err)
	require.NoError(t, nav.NavigateBack("ok"))

	// Popped back but still mid-transition.
	assert.Equal(t, domain.StateStarted, homeEntry.Lifecycle().State())
	assert.Empty(t, got)

	f.host.Settle()
	assert.Equal(t, []string{"ok"}, got)
}

func TestEmptyImplementations(t *testing.T) {
	var recipient result.ResultRecipient[domain.DestinationSpec, string] = result.EmptyRecipient[domain.DestinationSpec, string]{}
	recipient.OnResult(func(string) { t.Fatal("empty recipient must never deliver") })

	nav := &result.EmptyBackNavigator[int]{}
	var back result.ResultBackNavigator[int] = nav
	require.NoError(t, back.NavigateBack(9))
	assert.True(t, nav.Sent)
	assert.Equal(t, 9, nav.Last)
}

func mustEncode(t *testing.T, v any) []byte {
	t.Helper()
	b, err := result.MsgpackCodec{}.Encode(v)
	require.NoError(t, err)
	return b
}
