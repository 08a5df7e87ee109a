// SPDX-License-Identifier: MIT
// Package linsys: the system composer.
// Compose assembles the selected subsystems and stacks them row-wise into
// the combined system, preserving the fixed (Energy, Force, Virial)
// presentation order.

package linsys

import (
	"github.com/katalvlaran/snapfit/dataset"
)

// Operation name constant for unified error wrapping.
const opCompose = "Compose"

// Compose builds the selected subsystems of cs and returns them with the
// combined system prefixed.
//
// Result shape:
//
//   - one subsystem selected:  [that subsystem] — it doubles as the
//     combined system, no stacking occurs;
//   - k > 1 subsystems selected: [Combined, sub₁, ..., sub_k] where the
//     subsystems appear in (Energy, Force, Virial) order filtered by the
//     selector and Combined is their row-wise concatenation in that order.
//
// Stage 1 (Validate): selector non-empty; ConfigSet valid (fail fast).
// Stage 2 (Assemble): run only the selected assemblers, in fixed order.
// Stage 3 (Stack): concatenate (A, b, w) row-wise into the combined triple.
//
// Errors: ErrEmptySelector, dataset validation sentinels, ErrShapeMismatch
// (all wrapped with the Compose tag). The ConfigSet is never mutated and
// every returned subsystem owns fresh storage.
// Complexity: O(total rows · types·coeffs) time and memory.
func Compose(cs *dataset.ConfigSet, opts ...Option) ([]Subsystem, error) {
	o := gatherOptions(opts...)

	// Validate selector before touching data.
	if err := o.selector.Validate(); err != nil {
		return nil, wrapOp(opCompose, err)
	}
	// Validate the set once; builders below assume it.
	if err := cs.Validate(); err != nil {
		return nil, wrapOp(opCompose, err)
	}

	// Assemble selected subsystems in fixed presentation order.
	subs := make([]Subsystem, 0, 1+o.selector.Count())
	var (
		sub Subsystem
		err error
	)
	if o.selector.Energy {
		if sub, err = buildEnergy(cs, o); err != nil {
			return nil, wrapOp(opCompose, err)
		}
		subs = append(subs, sub)
	}
	if o.selector.Force {
		if sub, err = buildForce(cs, o); err != nil {
			return nil, wrapOp(opCompose, err)
		}
		subs = append(subs, sub)
	}
	if o.selector.Virial {
		if sub, err = buildVirial(cs, o); err != nil {
			return nil, wrapOp(opCompose, err)
		}
		subs = append(subs, sub)
	}

	// A single selected subsystem doubles as the combined system.
	if len(subs) == 1 {
		return subs, nil
	}

	combined, err := Stack(subs...)
	if err != nil {
		return nil, wrapOp(opCompose, err)
	}

	return append([]Subsystem{combined}, subs...), nil
}

// Stack concatenates subsystems row-wise into one Combined subsystem.
// Every input must agree on Types and Coeffs (ErrShapeMismatch otherwise);
// at least one non-empty input is required (ErrEmptySelector when none,
// ErrNilMatrix when an input has no design matrix).
// Complexity: O(total rows · types·coeffs) time and memory.
func Stack(subs ...Subsystem) (Subsystem, error) {
	if len(subs) == 0 {
		return Subsystem{}, ErrEmptySelector
	}

	// Validate conformance and total the row count.
	var rows int
	for _, s := range subs {
		// A zero-value BlockMatrix has no backing storage; reject it the
		// same way as a missing design matrix.
		if s.A == nil || s.A.Flat() == nil {
			return Subsystem{}, ErrNilMatrix
		}
		if s.A.Types() != subs[0].A.Types() || s.A.Coeffs() != subs[0].A.Coeffs() {
			return Subsystem{}, ErrShapeMismatch
		}
		if len(s.B) != s.A.Rows() || len(s.W) != s.A.Rows() {
			return Subsystem{}, ErrShapeMismatch
		}
		rows += s.A.Rows()
	}

	a, err := NewBlockMatrix(rows, subs[0].A.Types(), subs[0].A.Coeffs())
	if err != nil {
		return Subsystem{}, err
	}
	b := make([]float64, rows)
	w := make([]float64, rows)

	var row, r int
	for _, s := range subs {
		for r = 0; r < s.A.Rows(); r++ {
			copy(a.rawRow(row), s.A.rawRow(r))
			row++
		}
		copy(b[row-s.A.Rows():row], s.B)
		copy(w[row-s.A.Rows():row], s.W)
	}

	return Subsystem{Kind: KindCombined, A: a, B: b, W: w}, nil
}
