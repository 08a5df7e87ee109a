package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snapfit/solver"
)

func TestNew_KnownKinds(t *testing.T) {
	t.Parallel()

	for _, k := range []solver.Kind{
		solver.KindOLS, solver.KindLasso, solver.KindRidge,
		solver.KindElastic, solver.KindSGD,
	} {
		est, err := solver.New(k)
		require.NoError(t, err, "kind %s", k)
		require.NotNil(t, est)
	}
}

func TestNew_UnknownKindFailsEagerly(t *testing.T) {
	t.Parallel()

	// The misconfiguration surfaces at construction, before any data.
	_, err := solver.New(solver.Kind("BAYES"))
	require.ErrorIs(t, err, solver.ErrUnknownEstimator)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { solver.WithAlpha(-1) })
	require.Panics(t, func() { solver.WithL1Ratio(1.5) })
	require.Panics(t, func() { solver.WithMaxIter(0) })
	require.Panics(t, func() { solver.WithTol(0) })
	require.Panics(t, func() { solver.WithEta0(-0.1) })
}
