// Package solver: closed-form estimators (OLS, Ridge).
// OLS delegates to gonum's QR-based least-squares solve. Ridge assembles
// the penalized normal equations (AᵀA + αI)x = Aᵀb and solves them with a
// Cholesky factorization, falling back to a dense solve when the penalized
// Gram matrix is not numerically positive definite.

package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opOLS   = "OLS"
	opRidge = "Ridge"
)

// olsEstimator returns the ordinary-least-squares estimator.
// A near-singular system is not a failure: gonum reports it through a
// mat.Condition error while still producing the minimum-norm solution, and
// that condition number is surfaced in Diagnostics.
func olsEstimator(o Options) Estimator {
	return func(a *mat.Dense, b *mat.VecDense) ([]float64, Diagnostics, error) {
		_, cols := a.Dims()

		var x mat.VecDense
		d := Diagnostics{Converged: true}
		if err := x.SolveVec(a, b); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) {
				return nil, Diagnostics{}, wrapOp(opOLS, ErrSingular)
			}
			// Solution produced; record the conditioning and continue.
			d.Condition = float64(cond)
			o.logger.Warn().Float64("condition", d.Condition).
				Msg("least-squares system is near-singular")
		}

		out := make([]float64, cols)
		for i := 0; i < cols; i++ {
			out[i] = x.AtVec(i)
		}

		return out, d, nil
	}
}

// ridgeEstimator returns the L2-penalized estimator.
// The penalty is alpha on the squared-norm of the coefficients, matching
// the objective ||b − Ax||² + α‖x‖² with no intercept.
func ridgeEstimator(o Options) Estimator {
	return func(a *mat.Dense, b *mat.VecDense) ([]float64, Diagnostics, error) {
		_, cols := a.Dims()

		// Penalized Gram matrix G = AᵀA + αI, assembled symmetric.
		var xtx mat.Dense
		xtx.Mul(a.T(), a)
		gram := mat.NewSymDense(cols, nil)
		var i, j int
		for i = 0; i < cols; i++ {
			for j = i; j < cols; j++ {
				gram.SetSym(i, j, xtx.At(i, j))
			}
			gram.SetSym(i, i, xtx.At(i, i)+o.alpha)
		}

		// Right-hand side Aᵀb.
		var rhs mat.VecDense
		rhs.MulVec(a.T(), b)

		// Cholesky is the fast path for the SPD penalized Gram matrix.
		var x mat.VecDense
		var chol mat.Cholesky
		if chol.Factorize(gram) {
			if err := chol.SolveVecTo(&x, &rhs); err != nil {
				return nil, Diagnostics{}, wrapOp(opRidge, ErrSingular)
			}
		} else {
			// Fallback: dense solve of the same normal equations. With
			// α > 0 this only triggers under severe ill-conditioning.
			if err := x.SolveVec(gram, &rhs); err != nil {
				var cond mat.Condition
				if !errors.As(err, &cond) {
					return nil, Diagnostics{}, wrapOp(opRidge, ErrSingular)
				}
			}
		}

		out := make([]float64, cols)
		for i = 0; i < cols; i++ {
			out[i] = x.AtVec(i)
		}

		return out, Diagnostics{Converged: true}, nil
	}
}
