package dsl

import (
	"fmt"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/scope"
	"github.com/mitchellh/mapstructure"
)

// ArgTag is the struct tag naming an argument in a route.
const ArgTag = "nav"

// Destination is a destination whose arguments decode into T.
type Destination[T any] struct {
	route   string
	title   string
	kind    scope.Kind
	content func(s *scope.DestinationScope[T]) error
}

// DestinationOption configures a Destination.
type DestinationOption func(*destinationConfig)

type destinationConfig struct {
	title string
	kind  scope.Kind
}

// WithTitle sets the human label used by menus.
func WithTitle(title string) DestinationOption {
	return func(c *destinationConfig) {
		c.title = title
	}
}

// WithKind sets how the destination is presented.
func WithKind(kind scope.Kind) DestinationOption {
	return func(c *destinationConfig) {
		c.kind = kind
	}
}

// NewDestination declares a destination at route. content may be nil when every
// call site is expected to register an override.
func NewDestination[T any](route string, content func(s *scope.DestinationScope[T]) error, opts ...DestinationOption) *Destination[T] {
	var cfg destinationConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Destination[T]{
		route:   route,
		title:   cfg.title,
		kind:    cfg.kind,
		content: content,
	}
}

// Route returns the destination identity.
func (d *Destination[T]) Route() string { return d.route }

// Title returns the human label, empty if none was declared.
func (d *Destination[T]) Title() string { return d.title }

// Kind returns how the destination is presented.
func (d *Destination[T]) Kind() scope.Kind { return d.kind }

// DecodeArgs decodes raw entry arguments into T. Strings are weakly converted ("7" -> 7).
func (d *Destination[T]) DecodeArgs(raw map[string]any) (any, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          ArgTag,
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", d.route, err)
	}
	return out, nil
}

// Invoke builds the Direction to this destination with args.
func (d *Destination[T]) Invoke(args T) (domain.Direction, error) {
	encoded := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: ArgTag,
		Result:  &encoded,
	})
	if err != nil {
		return domain.Direction{}, err
	}
	if err := decoder.Decode(args); err != nil {
		return domain.Direction{}, fmt.Errorf("%s: encode arguments: %w", d.route, err)
	}
	if len(encoded) == 0 {
		encoded = nil
	}
	return domain.Direction{Route: d.route, Args: encoded}, nil
}

// Content runs the default content with a scope typed for T.
func (d *Destination[T]) Content(s *scope.DestinationScope[any]) error {
	if d.content == nil {
		return fmt.Errorf("%s: %w", d.route, domain.ErrNoContent)
	}
	typed, err := scope.As[T](s)
	if err != nil {
		return err
	}
	return d.content(typed)
}

// Screen is a destination without arguments; it can be navigated to directly.
type Screen struct {
	*Destination[domain.NoArgs]
}

// NewScreen declares a destination without arguments.
func NewScreen(route string, content func(s *scope.DestinationScope[domain.NoArgs]) error, opts ...DestinationOption) *Screen {
	return &Screen{Destination: NewDestination(route, content, opts...)}
}

// Direction returns the route to this screen.
func (s *Screen) Direction() domain.Direction {
	return domain.NewDirection(s.route)
}
