package config

import (
	"fmt"
	"sort"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/scope"
	"github.com/mitchellh/mapstructure"
)

// Destination is a destination declared in a file. Its arguments decode into a
// map holding one typed value per declared argument.
type Destination struct {
	route   string
	title   string
	kind    scope.Kind
	args    map[string]string
	content scope.Content
}

// Route returns the destination identity.
func (d *Destination) Route() string { return d.route }

// Title returns the declared label.
func (d *Destination) Title() string { return d.title }

// Kind returns how the destination is presented.
func (d *Destination) Kind() scope.Kind { return d.kind }

// ArgNames returns the declared argument names, sorted.
func (d *Destination) ArgNames() []string {
	names := make([]string, 0, len(d.args))
	for name := range d.args {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeArgs converts raw arguments to their declared types. Every declared argument is required.
func (d *Destination) DecodeArgs(raw map[string]any) (any, error) {
	out := make(map[string]any, len(d.args))
	for _, name := range d.ArgNames() {
		v, ok := raw[name]
		if !ok || v == nil {
			return nil, fmt.Errorf("%s: missing argument %q", d.route, name)
		}
		typed, err := convert(d.args[name], v)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %q: %w", d.route, name, err)
		}
		out[name] = typed
	}
	return out, nil
}

// Content runs the content configured at load time.
func (d *Destination) Content(s *scope.DestinationScope[any]) error {
	if d.content == nil {
		return fmt.Errorf("%s: %w", d.route, domain.ErrNoContent)
	}
	return d.content(s)
}

// Screen is a declared destination without arguments.
type Screen struct {
	*Destination
}

// Direction returns the route to this screen.
func (s *Screen) Direction() domain.Direction {
	return domain.NewDirection(s.route)
}

var argTypes = map[string]bool{"string": true, "int": true, "bool": true, "float": true}

func convert(typ string, v any) (any, error) {
	var err error
	switch typ {
	case "string":
		var out string
		err = mapstructure.WeakDecode(v, &out)
		return out, err
	case "int":
		var out int
		err = mapstructure.WeakDecode(v, &out)
		return out, err
	case "bool":
		var out bool
		err = mapstructure.WeakDecode(v, &out)
		return out, err
	case "float":
		var out float64
		err = mapstructure.WeakDecode(v, &out)
		return out, err
	}
	return nil, fmt.Errorf("unknown argument type %q", typ)
}

func parseKind(kind string) (scope.Kind, error) {
	switch kind {
	case "", "screen":
		return scope.KindScreen, nil
	case "dialog":
		return scope.KindDialog, nil
	case "bottom_sheet":
		return scope.KindBottomSheet, nil
	}
	return scope.KindScreen, fmt.Errorf("unknown destination kind %q", kind)
}
