package scope

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/navigator"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/aretw0/waypoint/pkg/result"
)

// ErrArgsType is returned when a scope is viewed with the wrong argument type.
var ErrArgsType = errors.New("navigation arguments type mismatch")

// Kind tells how a destination is presented.
type Kind int

const (
	KindScreen Kind = iota
	KindDialog
	KindBottomSheet
)

func (k Kind) String() string {
	switch k {
	case KindDialog:
		return "dialog"
	case KindBottomSheet:
		return "bottom_sheet"
	}
	return "screen"
}

// Styled is implemented by destinations that are not plain screens.
type Styled interface {
	Kind() Kind
}

// Content renders a destination.
type Content func(s *DestinationScope[any]) error

// Destination is a DestinationSpec that carries its default content.
type Destination interface {
	domain.DestinationSpec
	Content(s *DestinationScope[any]) error
}

// Scope is the untyped view shared by every DestinationScope[T].
type Scope interface {
	BackStackEntry() ports.BackStackEntry
	Controller() ports.NavController
	Navigator() ports.DestinationsNavigator
	Destination() domain.DestinationSpec
	Kind() Kind
	resultOptions() []result.Option
}

// DestinationScope is the capability bundle given to a destination's content.
type DestinationScope[T any] struct {
	entry      ports.BackStackEntry
	controller ports.NavController
	navigator  ports.DestinationsNavigator
	kind       Kind
	navArgs    T
	opts       []result.Option
}

// Option configures the result handles derived from a scope.
type Option func(*DestinationScope[any])

// WithLogger sets the logger used by derived result handles.
func WithLogger(logger *slog.Logger) Option {
	return func(s *DestinationScope[any]) {
		s.opts = append(s.opts, result.WithLogger(logger))
	}
}

// WithHooks sets the hooks used by derived result handles.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *DestinationScope[any]) {
		s.opts = append(s.opts, result.WithHooks(hooks))
	}
}

// WithCodec sets the codec used by derived result handles.
func WithCodec(codec result.Codec) Option {
	return func(s *DestinationScope[any]) {
		s.opts = append(s.opts, result.WithCodec(codec))
	}
}

// WithNavigator replaces the default navigator built over the controller.
func WithNavigator(nav ports.DestinationsNavigator) Option {
	return func(s *DestinationScope[any]) {
		s.navigator = nav
	}
}

// New derives the scope of entry. Arguments are decoded by the entry's destination.
func New(entry ports.BackStackEntry, controller ports.NavController, opts ...Option) (*DestinationScope[any], error) {
	if entry == nil || controller == nil {
		return nil, fmt.Errorf("scope: entry and controller are required")
	}
	dest := entry.Destination()
	args, err := dest.DecodeArgs(entry.Arguments())
	if err != nil {
		return nil, fmt.Errorf("scope: decode arguments of %s: %w", dest.Route(), err)
	}

	s := &DestinationScope[any]{
		entry:      entry,
		controller: controller,
		navArgs:    args,
	}
	if styled, ok := dest.(Styled); ok {
		s.kind = styled.Kind()
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.navigator == nil {
		s.navigator = navigator.New(controller)
	}
	return s, nil
}

// As returns a view of s with arguments typed as T.
func As[T any](s *DestinationScope[any]) (*DestinationScope[T], error) {
	args, ok := s.navArgs.(T)
	if !ok {
		var want T
		return nil, fmt.Errorf("%w: %s has %T, want %T", ErrArgsType, s.Destination().Route(), s.navArgs, want)
	}
	return &DestinationScope[T]{
		entry:      s.entry,
		controller: s.controller,
		navigator:  s.navigator,
		kind:       s.kind,
		navArgs:    args,
		opts:       s.opts,
	}, nil
}

// BackStackEntry returns the entry of the destination being rendered.
func (s *DestinationScope[T]) BackStackEntry() ports.BackStackEntry { return s.entry }

// Controller returns the host controller.
func (s *DestinationScope[T]) Controller() ports.NavController { return s.controller }

// Navigator returns the navigation handle for this destination.
func (s *DestinationScope[T]) Navigator() ports.DestinationsNavigator { return s.navigator }

// Destination returns the destination being rendered.
func (s *DestinationScope[T]) Destination() domain.DestinationSpec { return s.entry.Destination() }

// Kind returns how the destination is presented.
func (s *DestinationScope[T]) Kind() Kind { return s.kind }

// NavArgs returns the decoded navigation arguments.
func (s *DestinationScope[T]) NavArgs() T { return s.navArgs }

func (s *DestinationScope[T]) resultOptions() []result.Option {
	return append([]result.Option(nil), s.opts...)
}
