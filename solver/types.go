// Package solver: estimator kinds, the Estimator capability, run
// diagnostics, and sentinel errors.

package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the solver package.
var (
	// ErrUnknownEstimator indicates an unrecognized estimator Kind passed
	// to New. Reported at configuration time, before any data is touched.
	ErrUnknownEstimator = errors.New("solver: unknown estimator kind")

	// ErrNilEstimator indicates a nil Estimator passed to Solve.
	ErrNilEstimator = errors.New("solver: nil estimator")

	// ErrEmptySystem indicates a subsystem without a design matrix or with
	// zero rows.
	ErrEmptySystem = errors.New("solver: empty system")

	// ErrShapeMismatch indicates b/w vectors that disagree with the design
	// matrix row count, or an estimator solution whose length disagrees
	// with the flattened column count.
	ErrShapeMismatch = errors.New("solver: shape mismatch")

	// ErrSingular indicates that a direct solve failed on a singular
	// system (distinct from a near-singular one, which is demoted to a
	// condition-number diagnostic).
	ErrSingular = errors.New("solver: singular system")

	// ErrPriorLength indicates prior coefficients whose length does not
	// match the flattened design-matrix column count.
	ErrPriorLength = errors.New("solver: prior coefficient length mismatch")
)

// wrapOp wraps err with an operation tag, preserving sentinel matching.
func wrapOp(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Kind names a supported regression estimator family.
type Kind string

// Supported estimator kinds. All are configured with no intercept: the
// constant offset, when fitted, is an explicit column of the design matrix.
const (
	// KindOLS is ordinary least squares via a direct QR solve.
	KindOLS Kind = "OLS"

	// KindLasso is L1-regularized regression by cyclic coordinate descent.
	KindLasso Kind = "LASSO"

	// KindRidge is L2-regularized regression via the normal equations.
	KindRidge Kind = "RIDGE"

	// KindElastic is combined L1/L2 regression by coordinate descent.
	KindElastic Kind = "ELASTIC"

	// KindSGD is an incremental stochastic-gradient regressor with an
	// adaptive learning rate and optional prior-coefficient warm start.
	KindSGD Kind = "SGD"
)

// Estimator solves the already-weighted system a·x ≈ b and returns the flat
// coefficient vector together with run diagnostics. Implementations must
// not mutate a or b.
type Estimator func(a *mat.Dense, b *mat.VecDense) ([]float64, Diagnostics, error)

// Diagnostics describes one estimator run.
type Diagnostics struct {
	// Iterations is the number of passes the estimator performed
	// (0 for closed-form solves).
	Iterations int

	// Converged reports whether the stopping criterion was met within the
	// iteration budget (always true for closed-form solves that succeed).
	Converged bool

	// Condition is the condition number reported by a direct solve when
	// the system was near-singular, 0 otherwise.
	Condition float64
}

// Report describes one Solve call: the data-quality scan plus the
// estimator's own diagnostics. Non-finite findings are non-fatal.
type Report struct {
	NonFiniteA bool // NaN/Inf found in the design matrix
	NonFiniteB bool // NaN/Inf found in the target vector
	NonFiniteW bool // NaN/Inf found in the weight vector

	Estimator Diagnostics
}
