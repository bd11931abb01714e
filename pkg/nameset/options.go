package nameset

import (
	"github.com/rs/zerolog"

	"github.com/stackb/nameset/pkg/segment"
)

// Option configures a Nameset.
type Option func(*Nameset)

// WithLogger sets the logger used to report index maintenance.
func WithLogger(logger zerolog.Logger) Option {
	return func(ns *Nameset) {
		ns.logger = logger
	}
}

// WithOrder sets the order used by AddSegment before the first Update.
func WithOrder(order segment.Order) Option {
	return func(ns *Nameset) {
		ns.order = order
	}
}
