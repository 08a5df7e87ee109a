// Shared fixtures for the errstat test suite.
package errstat_test

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

// ramp returns a rows×cols dense matrix filled with start, start+step·k in
// row-major order.
func ramp(rows, cols int, start, step float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = start + step*float64(i)
	}

	return mat.NewDense(rows, cols, data)
}

// predictions evaluates Flat(A)·flat(x) for one assembled subsystem.
func predictions(sub linsys.Subsystem, x *mat.Dense) []float64 {
	xr, xc := x.Dims()
	flat := make([]float64, 0, xr*xc)
	for i := 0; i < xr; i++ {
		flat = append(flat, x.RawRowView(i)...)
	}

	var pred mat.VecDense
	pred.MulVec(sub.A.Flat(), mat.NewVecDense(len(flat), flat))
	out := make([]float64, sub.Rows())
	for i := range out {
		out[i] = pred.AtVec(i)
	}

	return out
}

// newConsistentSet builds a ConfigSet whose energies, forces and stresses
// are generated exactly from xTrue (shape types × coeffs+1, column 0 the
// per-type constant), one configuration per entry of groups. Scoring xTrue
// against any subsystem of the set therefore yields near-zero residuals.
func newConsistentSet(t *testing.T, groups []string) (*dataset.ConfigSet, *mat.Dense) {
	t.Helper()

	n := len(groups)
	xTrue := mat.NewDense(fixtureTypes, fixtureCoeff+1, []float64{
		0.5, 1.0, -2.0, 0.3,
		-1.0, 0.2, 0.7, -0.4,
	})

	cs := &dataset.ConfigSet{
		NumAtoms:  make([]int, n),
		AtomTypes: make([][]int, n),
		Energy:    make([]float64, n),
		RefEnergy: make([]float64, n),
		Volume:    make([]float64, n),
		Stress:    make([][3][3]float64, n),
		RefStress: make([][6]float64, n),
		BSum:      make([]*mat.Dense, n),
		DBAtom:    make([]*mat.Dense, n),
		VBSum:     make([]*mat.Dense, n),
		EWeight:   make([]float64, n),
		FWeight:   make([]float64, n),
		VWeight:   make([]float64, n),
		Group:     append([]string(nil), groups...),
		NTypes:    fixtureTypes,
		NCoeff:    fixtureCoeff,
	}

	fchunks := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		if i%2 == 0 {
			cs.NumAtoms[i] = 2
			cs.AtomTypes[i] = []int{1, 2}
		} else {
			cs.NumAtoms[i] = 3
			cs.AtomTypes[i] = []int{1, 1, 2}
		}
		cs.Volume[i] = 20 + 5*float64(i)
		cs.EWeight[i] = 1 + 0.5*float64(i)
		cs.FWeight[i] = 0.5
		cs.VWeight[i] = 2

		start := 1 + 3*float64(i)
		cs.BSum[i] = ramp(fixtureTypes, fixtureCoeff, start, 1)
		cs.DBAtom[i] = ramp(3*cs.NumAtoms[i], fixtureWidth, start+0.5, 0.7)
		cs.VBSum[i] = ramp(6, fixtureWidth, 10*start, 1.3)
		fchunks[i] = make([]float64, 3*cs.NumAtoms[i])
	}
	cs.Forces = dataset.NewRagged(fchunks...)
	cs.RefForces = dataset.NewRagged(fchunks...)
	require.NoError(t, cs.Validate())

	// Back-fill the targets from xTrue so the set is exactly consistent.
	eSub, err := linsys.EnergySystem(cs, linsys.WithOffset())
	require.NoError(t, err)
	for i, p := range predictions(eSub, xTrue) {
		cs.Energy[i] = p * float64(cs.NumAtoms[i])
	}

	fSub, err := linsys.ForceSystem(cs, linsys.WithOffset())
	require.NoError(t, err)
	fres, err := cs.Forces.Unflatten(predictions(fSub, xTrue))
	require.NoError(t, err)
	cs.Forces = fres

	// Voigt component positions in the 3×3 tensor.
	vr := [6]int{0, 1, 2, 1, 0, 0}
	vc := [6]int{0, 1, 2, 2, 2, 1}
	vSub, err := linsys.VirialSystem(cs, linsys.WithOffset())
	require.NoError(t, err)
	vpred := predictions(vSub, xTrue)
	var v int
	for i = 0; i < n; i++ {
		for v = 0; v < 6; v++ {
			cs.Stress[i][vr[v]][vc[v]] = vpred[6*i+v]
			cs.Stress[i][vc[v]][vr[v]] = vpred[6*i+v]
		}
	}
	require.NoError(t, cs.Validate())

	return cs, xTrue
}
