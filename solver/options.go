// Package solver: functional configuration for estimators and Solve.

package solver

import (
	"math"

	"github.com/rs/zerolog"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAlpha is the regularization strength for Lasso/Ridge/Elastic.
	DefaultAlpha = 1.0

	// DefaultL1Ratio is the Elastic-Net L1/L2 mixing ratio: 1 is pure
	// Lasso, 0 is pure Ridge.
	DefaultL1Ratio = 0.5

	// DefaultMaxIter caps coordinate-descent sweeps.
	DefaultMaxIter = 1_000_000

	// DefaultSGDMaxIter caps stochastic-gradient epochs.
	DefaultSGDMaxIter = 10_000

	// DefaultTol is the convergence tolerance: coordinate descent stops
	// when no coefficient moves by more than tol in a sweep; SGD treats
	// smaller epoch-loss improvements as stalls.
	DefaultTol = 1e-4

	// DefaultEta0 is the initial SGD learning rate. The adaptive schedule
	// can only shrink it, so it must start at a rate that actually moves
	// the coefficients.
	DefaultEta0 = 0.01

	// DefaultSeed seeds the SGD shuffle; a fixed seed keeps runs
	// reproducible unless the caller opts out via WithSeed.
	DefaultSeed = 1

	// sgdStallLimit is the number of non-improving epochs tolerated before
	// the adaptive schedule divides the learning rate by 5.
	sgdStallLimit = 5

	// sgdMinEta is the learning-rate floor; reaching it stops the run.
	sgdMinEta = 1e-15
)

// Internal panic messages (no magic strings).
const (
	panicAlphaInvalid   = "solver: WithAlpha: alpha must be finite and >= 0"
	panicL1RatioInvalid = "solver: WithL1Ratio: ratio must be in [0, 1]"
	panicMaxIterInvalid = "solver: WithMaxIter: limit must be > 0"
	panicTolInvalid     = "solver: WithTol: tolerance must be finite and > 0"
	panicEta0Invalid    = "solver: WithEta0: rate must be finite and > 0"
)

// Option mutates internal solver options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	alpha   float64   // regularization strength, ≥ 0
	l1Ratio float64   // Elastic-Net mixing ratio, [0, 1]
	maxIter int       // iteration/epoch cap (0 ⇒ per-kind default)
	tol     float64   // convergence tolerance, > 0
	eta0    float64   // initial SGD learning rate, > 0
	seed    int64     // SGD shuffle seed
	prior   []float64 // SGD warm-start coefficients (nil ⇒ zeros)

	offsetFitted bool           // Solve: system carries the offset column
	logger       zerolog.Logger // diagnostics sink, Nop by default
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		alpha:   DefaultAlpha,
		l1Ratio: DefaultL1Ratio,
		maxIter: 0, // resolved per estimator kind
		tol:     DefaultTol,
		eta0:    DefaultEta0,
		seed:    DefaultSeed,
		logger:  zerolog.Nop(),
	}
}

// WithAlpha sets the regularization strength. Zero disables
// the penalty. Panics when a is negative or non-finite.
func WithAlpha(a float64) Option {
	if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
		panic(panicAlphaInvalid)
	}

	return func(o *Options) { o.alpha = a }
}

// WithL1Ratio sets the Elastic-Net mixing ratio.
// Panics when r is outside [0, 1].
func WithL1Ratio(r float64) Option {
	if math.IsNaN(r) || r < 0 || r > 1 {
		panic(panicL1RatioInvalid)
	}

	return func(o *Options) { o.l1Ratio = r }
}

// WithMaxIter caps the iterative estimators' sweeps/epochs.
// Panics when n is not positive.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTol sets the convergence tolerance for the iterative estimators.
// Panics when tol is non-finite or not positive.
func WithTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithEta0 sets the initial SGD learning rate.
// Panics when eta is non-finite or not positive.
func WithEta0(eta float64) Option {
	if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0 {
		panic(panicEta0Invalid)
	}

	return func(o *Options) { o.eta0 = eta }
}

// WithSeed sets the SGD shuffle seed. Any value is valid; fits with equal
// seeds and inputs are bit-identical.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithPrior seeds the SGD estimator with prior coefficients as a warm
// start. The slice is copied. Its length must
// match the flattened column count of the system being fit; the mismatch is
// reported at fit time as ErrPriorLength, because the width is unknown
// until then. A nil prior means a zero start.
func WithPrior(beta []float64) Option {
	cp := append([]float64(nil), beta...)

	return func(o *Options) { o.prior = cp }
}

// WithOffsetFitted tells Solve that the system was assembled with the
// offset column, so the solution already carries the per-type constant and
// no zero column is reinserted.
func WithOffsetFitted() Option {
	return func(o *Options) { o.offsetFitted = true }
}

// WithLogger sets the zerolog sink for data-quality diagnostics and
// estimator verbosity. Defaults to zerolog.Nop().
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

// iterCap resolves the effective iteration budget for a kind.
func (o Options) iterCap(sgd bool) int {
	if o.maxIter > 0 {
		return o.maxIter
	}
	if sgd {
		return DefaultSGDMaxIter
	}

	return DefaultMaxIter
}
