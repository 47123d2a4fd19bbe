package we

import "github.com/rs/zerolog"

type options struct {
	log *zerolog.Logger
}

type Option func(o *options)

// WithLogger makes a combined reducer log, at debug level, the slices each
// action changed.
func WithLogger(log *zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	nop := zerolog.Nop()
	o := options{log: &nop}
	for _, opt := range opts {
		opt(&o)
	}

	if o.log == nil {
		o.log = &nop
	}

	return o
}
