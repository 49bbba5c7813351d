package result

import (
	"log/slog"

	"github.com/aretw0/waypoint/internal/logging"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

type options struct {
	codec  Codec
	logger *slog.Logger
	hooks  domain.Hooks
	entry  ports.BackStackEntry
}

// Option configures a BackNavigator or a Recipient.
type Option func(*options)

// WithCodec replaces the default msgpack codec.
func WithCodec(codec Codec) Option {
	return func(o *options) {
		if codec != nil {
			o.codec = codec
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHooks registers result observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithEntry binds a BackNavigator to entry instead of the controller's current entry.
func WithEntry(entry ports.BackStackEntry) Option {
	return func(o *options) {
		o.entry = entry
	}
}

func buildOptions(opts []Option) options {
	o := options{
		codec:  MsgpackCodec{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
