// Package errstat: functional configuration for group-level reporting.

package errstat

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/snapfit/linsys"
)

// Option mutates internal reporting options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective reporting configuration.
type Options struct {
	testErrs bool            // emit CV train/test mask rows
	selector linsys.Selector // subsystems to score
	logger   zerolog.Logger  // verbosity sink, Nop by default
}

// DefaultOptions returns the documented default configuration: all
// subsystems, no CV rows, silent.
func DefaultOptions() Options {
	return Options{
		selector: linsys.SelectAll(),
		logger:   zerolog.Nop(),
	}
}

// WithTestErrors enables the cross-validation decomposition: every
// weighted cell gains a CVTrain_Unweight row (rows with weight > 0,
// remapped to an exact 1.0 mask) and a CVTest_Unweight row (the held-out
// complement).
func WithTestErrors() Option {
	return func(o *Options) { o.testErrs = true }
}

// WithSelector restricts scoring to the enabled subsystems. An empty
// selector is reported by GroupErrors as linsys.ErrEmptySelector.
func WithSelector(sel linsys.Selector) Option {
	return func(o *Options) { o.selector = sel }
}

// WithLogger sets the zerolog sink for per-group progress (debug level).
// Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
