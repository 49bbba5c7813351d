package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/scope"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a declaration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf guesses the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
}

// Option configures loading.
type Option func(*options)

type options struct {
	content func(route string) scope.Content
	logger  *slog.Logger
}

// WithContent sets the default content of each declared destination.
// fn may return nil for routes that have no default.
func WithContent(fn func(route string) scope.Content) Option {
	return func(o *options) {
		o.content = fn
	}
}

// WithLogger configures a logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load reads the declaration file at path and builds its graph.
func Load(path string, opts ...Option) (*domain.NavGraph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, format, opts...)
}

// Parse builds the graph declared in data.
func Parse(data []byte, format Format, opts ...Option) (*domain.NavGraph, error) {
	o := &options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	decl, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	graph, err := build(decl, o)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	o.logger.Debug("graph loaded", "route", graph.Route(), "destinations", len(graph.AllDestinations()))
	return graph, nil
}

// Decode parses data into a declaration without building the graph.
func Decode(data []byte, format Format) (*GraphDecl, error) {
	raw := map[string]any{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}

	var decl GraphDecl
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &decl,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("config: decode declaration: %w", err)
	}
	return &decl, nil
}

func build(decl *GraphDecl, o *options) (*domain.NavGraph, error) {
	dests := make([]domain.DestinationSpec, 0, len(decl.Destinations))
	for _, d := range decl.Destinations {
		dest, err := newDestination(d, o)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", decl.Route, err)
		}
		dests = append(dests, dest)
	}

	nested := make([]*domain.NavGraph, 0, len(decl.Nested))
	for i := range decl.Nested {
		g, err := build(&decl.Nested[i], o)
		if err != nil {
			return nil, err
		}
		nested = append(nested, g)
	}
	return domain.NewNavGraph(decl.Route, decl.Start, dests, nested)
}

func newDestination(d DestinationDecl, o *options) (domain.DestinationSpec, error) {
	if d.Route == "" {
		return nil, fmt.Errorf("destination without route")
	}
	kind, err := parseKind(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("destination %q: %w", d.Route, err)
	}
	for name, typ := range d.Args {
		if !argTypes[typ] {
			return nil, fmt.Errorf("destination %q: argument %q: unknown type %q", d.Route, name, typ)
		}
	}

	dest := &Destination{
		route: d.Route,
		title: d.Title,
		kind:  kind,
		args:  d.Args,
	}
	if o.content != nil {
		dest.content = o.content(d.Route)
	}
	if len(d.Args) == 0 {
		return &Screen{Destination: dest}, nil
	}
	return dest, nil
}
