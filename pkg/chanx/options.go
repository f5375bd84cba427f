package chanx

import "github.com/ib-77/chanx/pkg/chanx/log"

const DefaultCapacity = 1

type options struct {
	capacity uint
	name     string
	logger   log.Logger
}

type Option func(*options)

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
	}
}

// WithCapacity sets the maximum number of queued messages. Zero means unbounded.
func WithCapacity(capacity uint) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// Unbounded lets the queue grow without limit.
func Unbounded() Option {
	return WithCapacity(0)
}

// WithName labels the channel in log entries.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
