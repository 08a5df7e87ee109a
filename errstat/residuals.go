package errstat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snapfit/dataset"
	"github.com/katalvlaran/snapfit/linsys"
)

const opResiduals = "Residuals"

// ResidualSet carries per-row weighted residuals (prediction minus truth,
// both scaled by the row weight), regrouped into the shapes of the source
// quantities. Fields for unselected subsystems stay nil.
type ResidualSet struct {
	// Energy holds one residual per configuration.
	Energy []float64

	// Forces holds 3·NumAtoms residual components per configuration, in
	// the same ragged layout as the reference forces.
	Forces *dataset.Ragged

	// Stress holds six Voigt-ordered residuals per configuration.
	Stress [][6]float64
}

// Residuals evaluates a fitted coefficient matrix against the selected
// subsystems of cs and returns the weighted residual vectors, shaped back
// into their natural per-configuration layouts.
//
// The systems are re-assembled with the offset column, matching the shape
// of coefficients produced by solver.Solve. The combined system is never
// materialised here; residuals are inherently per-subsystem.
func Residuals(x mat.Matrix, cs *dataset.ConfigSet, opts ...Option) (*ResidualSet, error) {
	o := gatherOptions(opts...)

	if err := o.selector.Validate(); err != nil {
		return nil, wrapOp(opResiduals, err)
	}
	if err := cs.Validate(); err != nil {
		return nil, wrapOp(opResiduals, err)
	}

	var (
		rs  ResidualSet
		rec Record
		err error
	)

	if o.selector.Energy {
		sub, serr := linsys.EnergySystem(cs, linsys.WithOffset())
		if serr != nil {
			return nil, wrapOp(opResiduals, serr)
		}
		if rec, err = Compute(x, sub.A, sub.B, WithWeights(sub.W), WithResidual()); err != nil {
			return nil, wrapOp(opResiduals, err)
		}
		rs.Energy = rec.Residual
	}

	if o.selector.Force {
		sub, serr := linsys.ForceSystem(cs, linsys.WithOffset())
		if serr != nil {
			return nil, wrapOp(opResiduals, serr)
		}
		if rec, err = Compute(x, sub.A, sub.B, WithWeights(sub.W), WithResidual()); err != nil {
			return nil, wrapOp(opResiduals, err)
		}
		// Regroup the flat residual vector into per-configuration chunks
		// mirroring the reference force layout.
		if rs.Forces, err = cs.RefForces.Unflatten(rec.Residual); err != nil {
			return nil, wrapOp(opResiduals, err)
		}
	}

	if o.selector.Virial {
		sub, serr := linsys.VirialSystem(cs, linsys.WithOffset())
		if serr != nil {
			return nil, wrapOp(opResiduals, serr)
		}
		if rec, err = Compute(x, sub.A, sub.B, WithWeights(sub.W), WithResidual()); err != nil {
			return nil, wrapOp(opResiduals, err)
		}
		rs.Stress = make([][6]float64, cs.Len())
		for i := 0; i < cs.Len(); i++ {
			copy(rs.Stress[i][:], rec.Residual[i*6:(i+1)*6])
		}
	}

	return &rs, nil
}
