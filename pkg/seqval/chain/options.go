package chain

import (
	"log/slog"

	"github.com/ib-77/seqval/pkg/seqval/core"
)

// Option configures a Chain.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

func defaultOptions() options {
	return options{logger: core.NopLogger()}
}

// WithLogger sets the structured logger for step and outcome diagnostics.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the chain in logs and contract violation errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
