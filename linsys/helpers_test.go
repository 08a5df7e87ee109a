// SPDX-License-Identifier: MIT

// Shared fixtures for the linsys test suite.
package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snapfit/dataset"
	"github.com/katalvlaran/snapfit/linsys"
)

const (
	fixtureTypes = 2
	fixtureCoeff = 3
	fixtureWidth = fixtureTypes * fixtureCoeff
)

// ramp returns a rows×cols dense matrix filled with start, start+1, ...
// in row-major order.
func ramp(rows, cols int, start float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = start + float64(i)
	}

	return mat.NewDense(rows, cols, data)
}

// newTestSet builds the canonical valid fixture: two configurations with
// NumAtoms = [2, 3], two atom types, three coefficients per type. Expected
// subsystem row counts are 2 (energy), 15 (force), 12 (virial).
func newTestSet(t *testing.T) *dataset.ConfigSet {
	t.Helper()

	cs := &dataset.ConfigSet{
		NumAtoms:  []int{2, 3},
		AtomTypes: [][]int{{1, 2}, {1, 1, 2}},
		Energy:    []float64{-3.1, -4.5},
		RefEnergy: []float64{-0.1, -0.5},
		Volume:    []float64{20, 30},
		Stress:    make([][3][3]float64, 2),
		RefStress: make([][6]float64, 2),
		Forces: dataset.NewRagged(
			[]float64{1, 2, 3, 4, 5, 6},
			[]float64{7, 8, 9, 10, 11, 12, 13, 14, 15},
		),
		RefForces: dataset.NewRagged(
			make([]float64, 6),
			make([]float64, 9),
		),
		BSum:    []*mat.Dense{ramp(fixtureTypes, fixtureCoeff, 1), ramp(fixtureTypes, fixtureCoeff, 10)},
		DBAtom:  []*mat.Dense{ramp(6, fixtureWidth, 0.5), ramp(9, fixtureWidth, 2.5)},
		VBSum:   []*mat.Dense{ramp(6, fixtureWidth, 100), ramp(6, fixtureWidth, 200)},
		EWeight: []float64{1, 2},
		FWeight: []float64{0.5, 0.25},
		VWeight: []float64{3, 0.75},
		Group:   []string{"bulk", "surface"},
		NTypes:  fixtureTypes,
		NCoeff:  fixtureCoeff,
	}
	require.NoError(t, cs.Validate())

	return cs
}

// flatRow reads one full row of a block matrix through the public API.
func flatRow(t *testing.T, a *linsys.BlockMatrix, row int) []float64 {
	t.Helper()

	out := make([]float64, a.Types()*a.Coeffs())
	var tt, c, k int
	for tt = 0; tt < a.Types(); tt++ {
		for c = 0; c < a.Coeffs(); c++ {
			v, err := a.At(row, tt, c)
			require.NoError(t, err)
			out[k] = v
			k++
		}
	}

	return out
}
