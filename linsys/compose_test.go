// SPDX-License-Identifier: MIT

package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapfit/linsys"
)

func TestCompose_AllSubsystems(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	subs, err := linsys.Compose(cs)
	require.NoError(t, err)
	require.Len(t, subs, 4)

	// Combined first, then the fixed presentation order.
	require.Equal(t, linsys.KindCombined, subs[0].Kind)
	require.Equal(t, linsys.KindEnergy, subs[1].Kind)
	require.Equal(t, linsys.KindForce, subs[2].Kind)
	require.Equal(t, linsys.KindVirial, subs[3].Kind)

	require.Equal(t, 2, subs[1].Rows())
	require.Equal(t, 15, subs[2].Rows())
	require.Equal(t, 12, subs[3].Rows())
	require.Equal(t, 29, subs[0].Rows())

	// The combined system is the row-wise concatenation in that order.
	require.Equal(t, flatRow(t, subs[1].A, 0), flatRow(t, subs[0].A, 0))
	require.Equal(t, flatRow(t, subs[2].A, 0), flatRow(t, subs[0].A, 2))
	require.Equal(t, flatRow(t, subs[3].A, 0), flatRow(t, subs[0].A, 17))
	require.Equal(t, subs[1].B[0], subs[0].B[0])
	require.Equal(t, subs[2].B[0], subs[0].B[2])
	require.Equal(t, subs[3].W[0], subs[0].W[17])
}

func TestCompose_FullIndexSelectionIsBitIdentical(t *testing.T) {
	t.Parallel()

	// Selecting every configuration index yields a set that assembles to
	// exactly the same systems as the original: same kinds, same row
	// order, and bit-identical A, b, w values. Select copies the scalar
	// columns and shares the descriptor blocks, so any drift here would
	// point at that copy/share contract.
	cs := newTestSet(t)
	sel, err := cs.Select([]int{0, 1})
	require.NoError(t, err)

	want, err := linsys.Compose(cs, linsys.WithOffset())
	require.NoError(t, err)
	got, err := linsys.Compose(sel, linsys.WithOffset())
	require.NoError(t, err)

	require.Len(t, got, len(want))
	var i, r int
	for i = range want {
		require.Equal(t, want[i].Kind, got[i].Kind)
		require.Equal(t, want[i].B, got[i].B)
		require.Equal(t, want[i].W, got[i].W)
		require.Equal(t, want[i].A.Rows(), got[i].A.Rows())
		require.Equal(t, want[i].A.Coeffs(), got[i].A.Coeffs())
		for r = 0; r < want[i].A.Rows(); r++ {
			require.Equal(t, flatRow(t, want[i].A, r), flatRow(t, got[i].A, r))
		}
	}
}

func TestCompose_SingleSubsystemDoublesAsCombined(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	subs, err := linsys.Compose(cs, linsys.WithSelector(linsys.Selector{Energy: true}))
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, linsys.KindEnergy, subs[0].Kind)
}

func TestCompose_EmptySelector(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	_, err := linsys.Compose(cs, linsys.WithSelector(linsys.Selector{}))
	require.ErrorIs(t, err, linsys.ErrEmptySelector)
}

func TestCompose_OffsetWidensEverySubsystem(t *testing.T) {
	t.Parallel()

	cs := newTestSet(t)
	subs, err := linsys.Compose(cs, linsys.WithOffset())
	require.NoError(t, err)
	for _, sub := range subs {
		require.Equal(t, fixtureCoeff+1, sub.A.Coeffs())
	}
}

func TestStack_Errors(t *testing.T) {
	t.Parallel()

	_, err := linsys.Stack()
	require.ErrorIs(t, err, linsys.ErrEmptySelector)

	_, err = linsys.Stack(linsys.Subsystem{})
	require.ErrorIs(t, err, linsys.ErrNilMatrix)

	// A zero-value design matrix carries no backing storage and is
	// rejected like a nil one, not dereferenced.
	_, err = linsys.Stack(linsys.Subsystem{A: &linsys.BlockMatrix{}})
	require.ErrorIs(t, err, linsys.ErrNilMatrix)

	a1, err := linsys.NewBlockMatrix(1, 2, 3)
	require.NoError(t, err)
	a2, err := linsys.NewBlockMatrix(1, 2, 4)
	require.NoError(t, err)

	s1 := linsys.Subsystem{Kind: linsys.KindEnergy, A: a1, B: []float64{1}, W: []float64{1}}
	s2 := linsys.Subsystem{Kind: linsys.KindForce, A: a2, B: []float64{1}, W: []float64{1}}
	_, err = linsys.Stack(s1, s2)
	require.ErrorIs(t, err, linsys.ErrShapeMismatch)

	// Conformal b/w vectors are part of the contract too.
	s1.B = nil
	_, err = linsys.Stack(s1)
	require.ErrorIs(t, err, linsys.ErrShapeMismatch)
}

func TestSelector_CountAndValidate(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, linsys.SelectAll().Count())
	require.NoError(t, linsys.SelectAll().Validate())
	require.ErrorIs(t, (linsys.Selector{}).Validate(), linsys.ErrEmptySelector)
	require.Equal(t, 1, linsys.Selector{Virial: true}.Count())
}

func TestKind_Strings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Combined", linsys.KindCombined.String())
	require.Equal(t, "Energy", linsys.KindEnergy.String())
	require.Equal(t, "Forces", linsys.KindForce.String())
	require.Equal(t, "Stress", linsys.KindVirial.String())
	require.Equal(t, "?", linsys.Kind(99).String())
}
