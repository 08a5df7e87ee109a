// Package solver: iterative estimators (coordinate descent, SGD).
// The coordinate-descent kernel minimizes the Elastic-Net objective
//
//	(1/2n)·‖b − Ax‖² + α·l1·‖x‖₁ + (α·(1−l1)/2)·‖x‖²
//
// by cyclic soft-thresholding updates over a maintained residual (Lasso is
// the l1=1 corner). The SGD kernel is an incremental squared-loss regressor with a
// shuffled visit order, an adaptive learning-rate schedule, and early
// stopping on stalled epoch loss.

package solver

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opCoordinate = "CoordinateDescent"
	opSGD        = "SGD"
)

// softThreshold is the proximal operator of the L1 penalty:
// sign(z)·max(|z|−γ, 0).
func softThreshold(z, gamma float64) float64 {
	switch {
	case z > gamma:
		return z - gamma
	case z < -gamma:
		return z + gamma
	default:
		return 0
	}
}

// coordinateEstimator returns the cyclic coordinate-descent estimator for
// the Elastic-Net objective with the given L1 ratio (1 ⇒ Lasso).
//
// Stage 1 (Prepare): precompute per-column squared norms; start from x = 0
// with residual r = b.
// Stage 2 (Sweep): visit coordinates in fixed 0..p−1 order; for each,
// compute ρ = (1/n)·aⱼ·(r + aⱼxⱼ), soft-threshold by α·l1, divide by the
// penalized curvature, and update the residual incrementally.
// Stage 3 (Stop): converged when no coordinate moved by more than tol in a
// sweep, or the iteration cap is reached (Converged=false, solution still
// returned).
//
// Determinism: fixed sweep order, no randomness.
// Complexity: O(sweeps·n·p) time, O(n+p) extra space.
func coordinateEstimator(o Options, l1Ratio float64) Estimator {
	return func(a *mat.Dense, b *mat.VecDense) ([]float64, Diagnostics, error) {
		rows, cols := a.Dims()
		n := float64(rows)
		raw := a.RawMatrix()

		// Per-column squared norms (fixed over the run).
		colNorm := make([]float64, cols)
		var i, j int
		var v float64
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				v = raw.Data[i*raw.Stride+j]
				colNorm[j] += v * v
			}
		}

		// Residual r = b − Ax starts at b for x = 0.
		r := make([]float64, rows)
		for i = 0; i < rows; i++ {
			r[i] = b.AtVec(i)
		}

		x := make([]float64, cols)
		gamma := o.alpha * l1Ratio           // L1 threshold
		l2 := o.alpha * (1 - l1Ratio)        // L2 curvature addition
		maxIter := o.iterCap(false)

		var (
			iter          int
			rho, xNew, dx float64
			maxDelta      float64
		)
		for iter = 0; iter < maxIter; iter++ {
			maxDelta = 0
			for j = 0; j < cols; j++ {
				if colNorm[j] == 0 {
					// A zero column cannot move the objective; its
					// coefficient stays at the penalized optimum 0.
					continue
				}
				// ρ = (1/n)·aⱼᵀ(r + aⱼxⱼ), accumulated in one pass.
				rho = 0
				for i = 0; i < rows; i++ {
					rho += raw.Data[i*raw.Stride+j] * r[i]
				}
				rho = rho/n + colNorm[j]/n*x[j]

				xNew = softThreshold(rho, gamma) / (colNorm[j]/n + l2)
				dx = xNew - x[j]
				if dx != 0 {
					// Incremental residual update r -= aⱼ·dx.
					for i = 0; i < rows; i++ {
						r[i] -= raw.Data[i*raw.Stride+j] * dx
					}
					x[j] = xNew
				}
				if math.Abs(dx) > maxDelta {
					maxDelta = math.Abs(dx)
				}
			}
			if maxDelta <= o.tol {
				return x, Diagnostics{Iterations: iter + 1, Converged: true}, nil
			}
		}

		o.logger.Warn().Int("iterations", maxIter).
			Msg("coordinate descent hit the iteration cap before converging")

		return x, Diagnostics{Iterations: maxIter, Converged: false}, nil
	}
}

// sgdEstimator returns the incremental stochastic-gradient estimator.
//
// Each epoch visits every row once in an order shuffled by a seeded local
// source and applies the plain squared-loss update x ← x − η·(aᵢ·x − bᵢ)·aᵢ
// (no penalty, no intercept). The learning rate follows an adaptive
// schedule: after sgdStallLimit consecutive epochs without an epoch-loss
// improvement of at least tol, η is divided by 5; the run stops early once
// η underflows sgdMinEta or the loss improvement criterion marks
// convergence. An optional prior (WithPrior) warm-starts the coefficients
// and must match the column count (ErrPriorLength).
//
// Determinism: the seeded rand.Source makes runs reproducible.
// Complexity: O(epochs·n·p) time, O(n+p) extra space.
func sgdEstimator(o Options) Estimator {
	return func(a *mat.Dense, b *mat.VecDense) ([]float64, Diagnostics, error) {
		rows, cols := a.Dims()
		raw := a.RawMatrix()

		// Warm start: prior coefficients or zeros.
		x := make([]float64, cols)
		if o.prior != nil {
			if len(o.prior) != cols {
				return nil, Diagnostics{}, wrapOp(opSGD, ErrPriorLength)
			}
			copy(x, o.prior)
		}

		rng := rand.New(rand.NewSource(o.seed))
		order := make([]int, rows)
		var i int
		for i = range order {
			order[i] = i
		}

		eta := o.eta0
		maxIter := o.iterCap(true)
		bestLoss := math.Inf(1)
		var (
			epoch, j, row, stall int
			pred, diff, loss     float64
			rowData              []float64
		)
		for epoch = 0; epoch < maxIter; epoch++ {
			rng.Shuffle(rows, func(p, q int) { order[p], order[q] = order[q], order[p] })

			loss = 0
			for _, row = range order {
				rowData = raw.Data[row*raw.Stride : row*raw.Stride+cols]
				pred = 0
				for j = 0; j < cols; j++ {
					pred += rowData[j] * x[j]
				}
				diff = pred - b.AtVec(row)
				loss += diff * diff
				for j = 0; j < cols; j++ {
					x[j] -= eta * diff * rowData[j]
				}
			}
			loss /= float64(rows)

			if loss < bestLoss-o.tol {
				bestLoss = loss
				stall = 0
				continue
			}
			stall++
			if stall >= sgdStallLimit {
				eta /= 5
				stall = 0
				if eta < sgdMinEta {
					return x, Diagnostics{Iterations: epoch + 1, Converged: true}, nil
				}
			}
		}

		o.logger.Warn().Int("epochs", maxIter).
			Msg("stochastic gradient descent hit the epoch cap before converging")

		return x, Diagnostics{Iterations: maxIter, Converged: false}, nil
	}
}
