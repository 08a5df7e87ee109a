// SPDX-License-Identifier: MIT
// Package linsys: per-quantity subsystem assemblers.
// Each assembler is a pure function from a validated ConfigSet to one
// (A, b, w) Subsystem. Row orders are fixed: configuration order for energy,
// atom-major then x/y/z per configuration for force, Voigt order per
// configuration for virial.

package linsys

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/snapfit/dataset"
)

// Operation name constants for unified error wrapping.
const (
	opEnergySystem = "EnergySystem"
	opForceSystem  = "ForceSystem"
	opVirialSystem = "VirialSystem"
)

// Voigt component index pairs into the 3×3 stress tensor, in the fixed
// (xx, yy, zz, yz, xz, xy) ordering.
var (
	voigtRow = [6]int{0, 1, 2, 1, 0, 0}
	voigtCol = [6]int{0, 1, 2, 2, 2, 1}
)

// EnergySystem builds the energy subsystem: one row per configuration with
// A = BSum/NumAtoms (× energy conversion), b = (Energy − RefEnergy)/NumAtoms
// and w = EWeight. With WithOffset, the fractional one-hot offset column is
// prepended.
//
// Stage 1 (Validate): full ConfigSet validation, fail fast.
// Stage 2 (Execute): fill fresh storage in configuration order.
// Complexity: O(configs·types·coeffs) time and memory.
func EnergySystem(cs *dataset.ConfigSet, opts ...Option) (Subsystem, error) {
	o := gatherOptions(opts...)
	if err := cs.Validate(); err != nil {
		return Subsystem{}, wrapOp(opEnergySystem, err)
	}

	sub, err := buildEnergy(cs, o)
	if err != nil {
		return Subsystem{}, wrapOp(opEnergySystem, err)
	}

	return sub, nil
}

// ForceSystem builds the force subsystem: 3·NumAtoms rows per configuration
// stacked in configuration order, b = Forces − RefForces, w = the
// configuration's FWeight broadcast to each of its component rows. With
// WithOffset, the exactly-zero offset column is prepended.
//
// Complexity: O(total force rows · types·coeffs) time and memory.
func ForceSystem(cs *dataset.ConfigSet, opts ...Option) (Subsystem, error) {
	o := gatherOptions(opts...)
	if err := cs.Validate(); err != nil {
		return Subsystem{}, wrapOp(opForceSystem, err)
	}

	sub, err := buildForce(cs, o)
	if err != nil {
		return Subsystem{}, wrapOp(opForceSystem, err)
	}

	return sub, nil
}

// VirialSystem builds the virial subsystem: six Voigt rows per
// configuration with A = VBSum/Volume (× virial conversion, NKTV2P by
// default), b = Voigt(Stress) − RefStress and w = VWeight repeated six
// times. With WithOffset, the exactly-zero offset column is prepended.
//
// Complexity: O(configs·6·types·coeffs) time and memory.
func VirialSystem(cs *dataset.ConfigSet, opts ...Option) (Subsystem, error) {
	o := gatherOptions(opts...)
	if err := cs.Validate(); err != nil {
		return Subsystem{}, wrapOp(opVirialSystem, err)
	}

	sub, err := buildVirial(cs, o)
	if err != nil {
		return Subsystem{}, wrapOp(opVirialSystem, err)
	}

	return sub, nil
}

// buildEnergy assembles the energy triple from an already-validated set.
func buildEnergy(cs *dataset.ConfigSet, o Options) (Subsystem, error) {
	n := cs.Len()
	coeffs := cs.NCoeff

	a, err := NewBlockMatrix(n, cs.NTypes, coeffs)
	if err != nil {
		return Subsystem{}, err
	}
	b := make([]float64, n)
	w := make([]float64, n)

	var (
		i, t  int
		na    float64
		scale float64
		dst   []float64
	)
	for i = 0; i < n; i++ {
		na = float64(cs.NumAtoms[i])
		scale = o.energyConv / na
		dst = a.rawRow(i)
		// Copy the NTypes×NCoeff block row-major; scaling folds the
		// per-atom normalization and the unit conversion into one pass.
		for t = 0; t < cs.NTypes; t++ {
			copy(dst[t*coeffs:(t+1)*coeffs], cs.BSum[i].RawRowView(t))
		}
		floats.Scale(scale, dst)

		b[i] = (cs.Energy[i] - cs.RefEnergy[i]) / na
		w[i] = cs.EWeight[i]
	}

	if o.offset {
		if a, err = AddEnergyOffset(a, cs.AtomTypes); err != nil {
			return Subsystem{}, err
		}
	}

	return Subsystem{Kind: KindEnergy, A: a, B: b, W: w}, nil
}

// buildForce assembles the force triple from an already-validated set.
func buildForce(cs *dataset.ConfigSet, o Options) (Subsystem, error) {
	n := cs.Len()
	rows := 3 * cs.TotalAtoms()

	a, err := NewBlockMatrix(rows, cs.NTypes, cs.NCoeff)
	if err != nil {
		return Subsystem{}, err
	}
	b := make([]float64, rows)
	w := make([]float64, rows)

	var (
		i, rr, row int
		dst        []float64
		fc, rc     []float64
	)
	for i = 0; i < n; i++ {
		// fc/rc are this configuration's 3·NumAtoms force components.
		if fc, err = cs.Forces.Chunk(i); err != nil {
			return Subsystem{}, err
		}
		if rc, err = cs.RefForces.Chunk(i); err != nil {
			return Subsystem{}, err
		}
		for rr = 0; rr < 3*cs.NumAtoms[i]; rr++ {
			dst = a.rawRow(row)
			copy(dst, cs.DBAtom[i].RawRowView(rr))
			if o.forceConv != 1 {
				floats.Scale(o.forceConv, dst)
			}
			b[row] = fc[rr] - rc[rr]
			w[row] = cs.FWeight[i]
			row++
		}
	}

	if o.offset {
		if a, err = AddZeroOffset(a); err != nil {
			return Subsystem{}, err
		}
	}

	return Subsystem{Kind: KindForce, A: a, B: b, W: w}, nil
}

// buildVirial assembles the virial triple from an already-validated set.
func buildVirial(cs *dataset.ConfigSet, o Options) (Subsystem, error) {
	n := cs.Len()
	rows := 6 * n

	a, err := NewBlockMatrix(rows, cs.NTypes, cs.NCoeff)
	if err != nil {
		return Subsystem{}, err
	}
	b := make([]float64, rows)
	w := make([]float64, rows)

	var (
		i, v, row int
		dst       []float64
	)
	for i = 0; i < n; i++ {
		for v = 0; v < 6; v++ {
			row = 6*i + v
			dst = a.rawRow(row)
			copy(dst, cs.VBSum[i].RawRowView(v))
			floats.Scale(o.virialConv/cs.Volume[i], dst)

			// Reindex the 3×3 tensor into flat Voigt stress, then subtract
			// the reference (already stored in Voigt order).
			b[row] = cs.Stress[i][voigtRow[v]][voigtCol[v]] - cs.RefStress[i][v]
			w[row] = cs.VWeight[i]
		}
	}

	if o.offset {
		if a, err = AddZeroOffset(a); err != nil {
			return Subsystem{}, err
		}
	}

	return Subsystem{Kind: KindVirial, A: a, B: b, W: w}, nil
}
