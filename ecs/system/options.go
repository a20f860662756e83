package system

import "github.com/rs/zerolog"

// Option configures a system at construction time.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger a system reports through.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
