package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snapfit/dataset"
)

// newTestSet builds a valid two-configuration set: two atom types, three
// coefficients per type, NumAtoms = [2, 3], two distinct groups.
// Descriptor entries are a deterministic ramp so assertions can address
// individual values.
func newTestSet(t *testing.T) *dataset.ConfigSet {
	t.Helper()

	const (
		nTypes = 2
		nCoeff = 3
		width  = nTypes * nCoeff
	)

	ramp := func(rows, cols int, start float64) *mat.Dense {
		data := make([]float64, rows*cols)
		for i := range data {
			data[i] = start + float64(i)
		}

		return mat.NewDense(rows, cols, data)
	}

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
		BSum:    []*mat.Dense{ramp(nTypes, nCoeff, 1), ramp(nTypes, nCoeff, 10)},
		DBAtom:  []*mat.Dense{ramp(6, width, 0.5), ramp(9, width, 2.5)},
		VBSum:   []*mat.Dense{ramp(6, width, 100), ramp(6, width, 200)},
		EWeight: []float64{1, 2},
		FWeight: []float64{0.5, 0.25},
		VWeight: []float64{3, 0},
		Group:   []string{"bulk", "surface"},
		NTypes:  nTypes,
		NCoeff:  nCoeff,
	}
	require.NoError(t, cs.Validate())

	return cs
}

// ------------------------------------------------------------------------
// Validate
// ------------------------------------------------------------------------

func TestConfigSet_ValidateSentinels(t *testing.T) {
	t.Parallel()

	var nilSet *dataset.ConfigSet
	require.ErrorIs(t, nilSet.Validate(), dataset.ErrNilConfigSet)
	require.ErrorIs(t, (&dataset.ConfigSet{}).Validate(), dataset.ErrEmptyConfigSet)

	// Each mutation below violates exactly one invariant.
	cases := []struct {
		name   string
		mutate func(cs *dataset.ConfigSet)
		want   error
	}{
		{"short column", func(cs *dataset.ConfigSet) { cs.Energy = cs.Energy[:1] }, dataset.ErrColumnLength},
		{"atom count", func(cs *dataset.ConfigSet) { cs.AtomTypes[0] = []int{1} }, dataset.ErrAtomCount},
		{"zero atoms", func(cs *dataset.ConfigSet) { cs.NumAtoms[1] = 0 }, dataset.ErrAtomCount},
		{"type id", func(cs *dataset.ConfigSet) { cs.AtomTypes[0][1] = 3 }, dataset.ErrBadTypeID},
		{"volume", func(cs *dataset.ConfigSet) { cs.Volume[0] = 0 }, dataset.ErrBadVolume},
		{"weight", func(cs *dataset.ConfigSet) { cs.FWeight[1] = -1 }, dataset.ErrNegativeWeight},
		{"descriptor", func(cs *dataset.ConfigSet) { cs.BSum[0] = mat.NewDense(1, 1, nil) }, dataset.ErrDescriptorShape},
		{"nil descriptor", func(cs *dataset.ConfigSet) { cs.VBSum[1] = nil }, dataset.ErrDescriptorShape},
		{"shape params", func(cs *dataset.ConfigSet) { cs.NCoeff = 0 }, dataset.ErrDescriptorShape},
		{"force chunk", func(cs *dataset.ConfigSet) { cs.Forces = dataset.NewRagged([]float64{1}, []float64{2}) }, dataset.ErrChunkMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cs := newTestSet(t)
			tc.mutate(cs)
			require.ErrorIs(t, cs.Validate(), tc.want)
		})
	}
}

func TestConfigSet_Totals(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	require.Equal(t, 2, cs.Len())
	require.Equal(t, 5, cs.TotalAtoms())
}

// ------------------------------------------------------------------------
// Select / Groups / ByGroup
// ------------------------------------------------------------------------

func TestConfigSet_SelectCopiesScalarsSharesDescriptors(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	sub, err := cs.Select([]int{1})
	require.NoError(t, err)
	require.NoError(t, sub.Validate())
	require.Equal(t, 1, sub.Len())
	require.Equal(t, cs.Energy[1], sub.Energy[0])
	require.Equal(t, "surface", sub.Group[0])

	// Descriptor blocks are shared by pointer, everything else is fresh.
	require.Same(t, cs.BSum[1], sub.BSum[0])
	sub.Energy[0] = 0
	require.Equal(t, -4.5, cs.Energy[1])

	_, err = cs.Select([]int{2})
	require.ErrorIs(t, err, dataset.ErrIndexRange)
}

func TestConfigSet_GroupsSorted(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	cs.Group = []string{"zzz", "aaa"}
	require.Equal(t, []string{"aaa", "zzz"}, cs.Groups())
}

func TestConfigSet_ByGroupPartition(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	parts, err := cs.ByGroup()
	require.NoError(t, err)
	require.Len(t, parts, 2)
	require.Equal(t, 1, parts["bulk"].Len())
	require.Equal(t, 1, parts["surface"].Len())
	require.Equal(t, []int{3}, parts["surface"].NumAtoms)
	require.NoError(t, parts["bulk"].Validate())
	require.NoError(t, parts["surface"].Validate())
}
