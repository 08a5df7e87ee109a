// Package solver: the weighted solve entry point.

package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snapfit/linsys"
)

// Operation name constant for unified error wrapping.
const opSolve = "Solve"

// Solve fits coefficients to one weighted subsystem.
//
// Stage 1 (Validate): est non-nil; the subsystem has rows and conformal
// b/w vectors. Fail fast with ErrNilEstimator / ErrEmptySystem /
// ErrShapeMismatch.
// Stage 2 (Scan): non-finite values in A, b, w are logged per array and
// recorded in the Report — a data-quality diagnostic, not a failure; the
// system is still submitted to the estimator.
// Stage 3 (Weight): multiply every row of the flattened design matrix and
// every target element by its weight, into fresh storage. The caller's
// subsystem is never mutated. This is the weighted normal-equation form
// (wA)x = (wb); no √w whitening is applied.
// Stage 4 (Fit): run the estimator, reshape the flat solution into
// (types × coeffs), and — unless WithOffsetFitted was given — reinsert a
// zero offset column so the result is uniformly (n_types, n_coeff+1).
//
// The returned coefficient matrix is owned solely by the caller.
// Complexity: O(rows·types·coeffs) plus the estimator's own cost.
func Solve(sub linsys.Subsystem, est Estimator, opts ...Option) (*mat.Dense, Report, error) {
	o := gatherOptions(opts...)

	// 1) Validation.
	if est == nil {
		return nil, Report{}, wrapOp(opSolve, ErrNilEstimator)
	}
	if sub.A == nil || sub.Rows() == 0 {
		return nil, Report{}, wrapOp(opSolve, ErrEmptySystem)
	}
	rows := sub.Rows()
	if len(sub.B) != rows || len(sub.W) != rows {
		return nil, Report{}, wrapOp(opSolve, ErrShapeMismatch)
	}

	// 2) Data-quality scan (non-fatal).
	rep := Report{
		NonFiniteA: hasNonFinite(sub.A.Flat().RawMatrix().Data),
		NonFiniteB: hasNonFinite(sub.B),
		NonFiniteW: hasNonFinite(sub.W),
	}
	if rep.NonFiniteA {
		o.logger.Warn().Str("array", "A").Msg("non-finite values in descriptor matrix")
	}
	if rep.NonFiniteB {
		o.logger.Warn().Str("array", "b").Msg("non-finite values in training reference data")
	}
	if rep.NonFiniteW {
		o.logger.Warn().Str("array", "w").Msg("non-finite values in weighting vector")
	}

	// 3) Row weighting into fresh storage.
	types, coeffs := sub.A.Types(), sub.A.Coeffs()
	cols := types * coeffs
	flat := sub.A.Flat()
	aw := mat.NewDense(rows, cols, nil)
	bw := make([]float64, rows)
	var (
		i, j int
		wi   float64
		src  []float64
		dst  []float64
	)
	for i = 0; i < rows; i++ {
		wi = sub.W[i]
		src = flat.RawRowView(i)
		dst = aw.RawRowView(i)
		for j = 0; j < cols; j++ {
			dst[j] = wi * src[j]
		}
		bw[i] = wi * sub.B[i]
	}

	// 4) Fit and reshape.
	xFlat, diag, err := est(aw, mat.NewVecDense(rows, bw))
	rep.Estimator = diag
	if err != nil {
		return nil, rep, wrapOp(opSolve, err)
	}
	if len(xFlat) != cols {
		return nil, rep, wrapOp(opSolve, ErrShapeMismatch)
	}

	x := mat.NewDense(types, coeffs, append([]float64(nil), xFlat...))
	if !o.offsetFitted {
		if x, err = linsys.ReinsertZeroCoefficient(x); err != nil {
			return nil, rep, wrapOp(opSolve, err)
		}
	}

	return x, rep, nil
}

// hasNonFinite reports whether v contains a NaN or ±Inf entry.
func hasNonFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}

	return false
}
