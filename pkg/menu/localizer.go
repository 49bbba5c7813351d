package menu

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// MessagePrefix prefixes the message id of a destination label.
const MessagePrefix = "destination."

// MessageID returns the message id looked up for the label of route.
func MessageID(route string) string {
	return MessagePrefix + route
}

// Titled is implemented by destinations that declare a human label.
type Titled interface {
	Title() string
}

// Localizer resolves menu labels. Lookup order: a translated message
// "destination.<route>", the destination's declared title, then the route title-cased.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	caser     cases.Caser
}

// LocalizerOption configures a Localizer.
type LocalizerOption func(*localizerConfig) error

type localizerConfig struct {
	bundle *i18n.Bundle
	langs  []string
}

// WithLanguages sets the preferred languages, most preferred first (e.g. "pt-BR", "en").
func WithLanguages(langs ...string) LocalizerOption {
	return func(c *localizerConfig) error {
		c.langs = append(c.langs, langs...)
		return nil
	}
}

// WithMessages adds labels for lang keyed by route.
func WithMessages(lang string, labels map[string]string) LocalizerOption {
	return func(c *localizerConfig) error {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("menu: language %q: %w", lang, err)
		}
		msgs := make([]*i18n.Message, 0, len(labels))
		for route, label := range labels {
			msgs = append(msgs, &i18n.Message{ID: MessageID(route), Other: label})
		}
		return c.bundle.AddMessages(tag, msgs...)
	}
}

// WithMessageFile loads a go-i18n message file. The language comes from the file name
// (e.g. "active.pt-BR.toml") and the format from its extension: toml, yaml or json.
func WithMessageFile(path string, data []byte) LocalizerOption {
	return func(c *localizerConfig) error {
		if _, err := c.bundle.ParseMessageFileBytes(data, path); err != nil {
			return fmt.Errorf("menu: message file %s: %w", path, err)
		}
		return nil
	}
}

// NewLocalizer builds a Localizer whose default language is English.
func NewLocalizer(opts ...LocalizerOption) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	cfg := &localizerConfig{bundle: bundle}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return newLocalizer(bundle, cfg.langs), nil
}

// ForLanguages returns a Localizer with the same messages and a different
// language preference. A nil l yields a Localizer without messages.
func (l *Localizer) ForLanguages(langs ...string) *Localizer {
	if l == nil {
		l, _ = NewLocalizer()
	}
	return newLocalizer(l.bundle, langs)
}

func newLocalizer(bundle *i18n.Bundle, langs []string) *Localizer {
	caser := cases.Title(language.English)
	if len(langs) > 0 {
		if tag, err := language.Parse(langs[0]); err == nil {
			caser = cases.Title(tag)
		}
	}
	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, langs...),
		caser:     caser,
	}
}

// Label returns the menu label of dest. It never fails.
func (l *Localizer) Label(dest domain.DestinationSpec) string {
	if dest == nil {
		return ""
	}
	if l != nil {
		msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: MessageID(dest.Route())})
		if err == nil && msg != "" {
			return msg
		}
	}
	if titled, ok := dest.(Titled); ok && titled.Title() != "" {
		return titled.Title()
	}
	return l.titleCase(dest.Route())
}

func (l *Localizer) titleCase(route string) string {
	words := strings.NewReplacer("_", " ", "-", " ", "/", " ").Replace(route)
	if l == nil {
		return cases.Title(language.English).String(words)
	}
	return l.caser.String(words)
}
