// Package errstat: result records, table rows, weighting kinds, and
// sentinel errors.

package errstat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snapfit/linsys"
)

// AllGroups is the reserved label of the synthetic group spanning the full
// dataset. A real group may not use it.
const AllGroups = "*ALL"

// Sentinel errors returned by the errstat package.
var (
	// ErrNilCoefficients indicates a nil coefficient matrix.
	ErrNilCoefficients = errors.New("errstat: nil coefficient matrix")

	// ErrShapeMismatch indicates a coefficient matrix, target vector, or
	// weight vector that does not conform to the design matrix.
	ErrShapeMismatch = errors.New("errstat: shape mismatch")

	// ErrAllZeroWeights indicates a weighted computation whose weight
	// vector has no strictly-positive entry: the sample count is zero and
	// no mean statistic is defined. GroupErrors converts this case into a
	// NaN-valued table row instead of failing the whole table.
	ErrAllZeroWeights = errors.New("errstat: weight vector has no positive entries")

	// ErrReservedGroup indicates a dataset whose real group labels collide
	// with the synthetic AllGroups name.
	ErrReservedGroup = errors.New("errstat: group name '*ALL' is reserved")
)

// wrapOp wraps err with an operation tag, preserving sentinel matching.
func wrapOp(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Weighting names the weighting scheme of one table row.
type Weighting string

// Weighting kinds. The CV kinds exist only when test-error reporting is
// enabled: CVTrainUnweight scores the rows that participated in fitting
// (original weight > 0, remapped to an exact 1.0 mask), CVTestUnweight the
// held-out complement.
const (
	Weighted        Weighting = "Weighted"
	Unweighted      Weighting = "Unweighted"
	CVTrainUnweight Weighting = "CVTrain_Unweight"
	CVTestUnweight  Weighting = "CVTest_Unweight"
)

// Record is one set of error statistics. The mean-based statistics divide
// by NCount; see the package documentation for the weighted-count caveat.
type Record struct {
	// NCount is the sample count used as the divisor: the number of
	// strictly-positive weights for weighted records, the row count
	// otherwise.
	NCount int

	MAE   float64 // mean absolute residual
	RMAE  float64 // MAE / mean absolute deviation of targets from their median
	SSR   float64 // sum of squared residuals
	MSE   float64 // SSR / NCount
	RMSE  float64 // √MSE
	RRMSE float64 // RMSE / population std of targets
	RSq   float64 // 1 − SSR / total sum of squares about the target mean

	// Residual holds the raw (weighted, if weights were given) residual
	// vector when requested via WithResidual; nil otherwise.
	Residual []float64
}

// Row is one table cell: the error record of one (group, weighting,
// subsystem) combination.
type Row struct {
	Group     string
	Weighting Weighting
	Subsystem linsys.Kind
	Record    Record
}

// Table is the sorted list of rows produced by GroupErrors. Rows are
// ordered by the composite (Group, Weighting, Subsystem) key, all three
// components compared as strings.
type Table []Row

// key returns the composite sort key of a row.
func (r Row) key() [3]string {
	return [3]string{r.Group, string(r.Weighting), r.Subsystem.String()}
}

// less orders rows by the composite key.
func (r Row) less(other Row) bool {
	a, b := r.key(), other.key()
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
