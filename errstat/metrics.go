// Package errstat: the error-metric kernel.

package errstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/snapfit/linsys"
)

// Operation name constant for unified error wrapping.
const opCompute = "Compute"

// MetricOption configures one Compute call.
type MetricOption func(*metricOptions)

type metricOptions struct {
	weights  []float64 // nil ⇒ unweighted
	residual bool
}

// WithWeights scores the weighted system: both targets and predictions are
// multiplied elementwise by w before any statistic, and NCount becomes the
// number of strictly-positive entries of w. A nil w is the unweighted case.
func WithWeights(w []float64) MetricOption {
	return func(o *metricOptions) { o.weights = w }
}

// WithResidual attaches the raw residual vector to the returned Record.
func WithResidual() MetricOption {
	return func(o *metricOptions) { o.residual = true }
}

// Compute scores a fitted coefficient matrix against one subsystem's
// (A, b) pair, optionally weighted.
//
// Stage 1 (Validate): x and a non-nil; flattened x matches A's block width;
// b (and w, when given) match A's row count.
// Stage 2 (Predict): pred = Flat(A)·flat(x); with weights, true and pred
// are both multiplied elementwise by w.
// Stage 3 (Count): NCount is the strictly-positive-weight count (weighted)
// or the row count (unweighted). A weighted call with no positive weight
// fails with ErrAllZeroWeights — defined behavior, never a division crash.
// Stage 4 (Score): mae, rmae, ssr, mse, rmse, rrmse, rsq as documented on
// Record. Degenerate denominators (constant targets) propagate as ±Inf/NaN
// in the affected ratio only.
//
// The inputs are never mutated. Complexity: O(rows·types·coeffs) for the
// prediction, O(rows log rows) for the median.
func Compute(x mat.Matrix, a *linsys.BlockMatrix, b []float64, opts ...MetricOption) (Record, error) {
	var o metricOptions
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Validation.
	if x == nil {
		return Record{}, wrapOp(opCompute, ErrNilCoefficients)
	}
	if a == nil {
		return Record{}, wrapOp(opCompute, linsys.ErrNilMatrix)
	}
	rows := a.Rows()
	xr, xc := x.Dims()
	if xr*xc != a.Types()*a.Coeffs() || len(b) != rows {
		return Record{}, wrapOp(opCompute, ErrShapeMismatch)
	}
	if o.weights != nil && len(o.weights) != rows {
		return Record{}, wrapOp(opCompute, ErrShapeMismatch)
	}

	// 2) Prediction: pred = Flat(A) · flat(x), row-major flattening of x.
	xFlat := make([]float64, 0, xr*xc)
	var i, j int
	for i = 0; i < xr; i++ {
		for j = 0; j < xc; j++ {
			xFlat = append(xFlat, x.At(i, j))
		}
	}
	var predVec mat.VecDense
	predVec.MulVec(a.Flat(), mat.NewVecDense(len(xFlat), xFlat))

	truth := make([]float64, rows)
	pred := make([]float64, rows)
	copy(truth, b)
	for i = 0; i < rows; i++ {
		pred[i] = predVec.AtVec(i)
	}

	// 3) Weighting and sample count.
	ncount := rows
	if o.weights != nil {
		ncount = 0
		for i = 0; i < rows; i++ {
			truth[i] *= o.weights[i]
			pred[i] *= o.weights[i]
			if o.weights[i] > 0 {
				ncount++
			}
		}
		if ncount == 0 {
			return Record{}, wrapOp(opCompute, ErrAllZeroWeights)
		}
	}
	n := float64(ncount)

	// 4) Statistics.
	res := make([]float64, rows)
	var absSum, ssr float64
	for i = 0; i < rows; i++ {
		res[i] = truth[i] - pred[i]
		absSum += math.Abs(res[i])
		ssr += res[i] * res[i]
	}
	mae := absSum / n
	mse := ssr / n
	rmse := math.Sqrt(mse)

	// Mean absolute deviation of targets from their median.
	med := median(truth)
	var devSum float64
	for i = 0; i < rows; i++ {
		devSum += math.Abs(truth[i] - med)
	}
	meanDev := devSum / n

	// Total sum of squares about the (NCount-divided) target mean.
	mean := floats.Sum(truth) / n
	var tss float64
	for i = 0; i < rows; i++ {
		tss += (truth[i] - mean) * (truth[i] - mean)
	}

	rec := Record{
		NCount: ncount,
		MAE:    mae,
		RMAE:   mae / meanDev,
		SSR:    ssr,
		MSE:    mse,
		RMSE:   rmse,
		RRMSE:  rmse / stat.PopStdDev(truth, nil),
		RSq:    1 - ssr/tss,
	}
	if o.residual {
		rec.Residual = res
	}

	return rec, nil
}

// median returns the middle value of v (average of the two middles for even
// lengths), without mutating v.
func median(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}

	return (s[mid-1] + s[mid]) / 2
}
