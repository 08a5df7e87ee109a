// Shared fixtures for the solver test suite.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapfit/linsys"
)

// newSubsystem builds a subsystem from row-major design-matrix data with
// unit weights. rows × types·coeffs values are expected in data.
func newSubsystem(t *testing.T, rows, types, coeffs int, data, b []float64) linsys.Subsystem {
	t.Helper()

	a, err := linsys.NewBlockMatrix(rows, types, coeffs)
	require.NoError(t, err)
	var r, tt, c, k int
	for r = 0; r < rows; r++ {
		for tt = 0; tt < types; tt++ {
			for c = 0; c < coeffs; c++ {
				require.NoError(t, a.Set(r, tt, c, data[k]))
				k++
			}
		}
	}

	w := make([]float64, rows)
	for r = range w {
		w[r] = 1
	}

	return linsys.Subsystem{Kind: linsys.KindEnergy, A: a, B: b, W: w}
}
