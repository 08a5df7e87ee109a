// SPDX-License-Identifier: MIT

// Package linsys assembles weighted linear subsystems (A, b, w) from a
// dataset.ConfigSet, one subsystem per physical quantity:
//
//   - Energy: one row per configuration, A = BSum/NumAtoms,
//     b = (Energy − RefEnergy)/NumAtoms, w = EWeight.
//   - Force:  3·NumAtoms rows per configuration, A = stacked DBAtom,
//     b = Forces − RefForces, w = FWeight broadcast to every component row.
//   - Virial: six rows per configuration in Voigt order, A = VBSum/Volume,
//     b = Voigt(Stress) − RefStress, w = VWeight repeated six times.
//
// The design matrix is block-typed: each row carries one NTypes×NCoeff
// coefficient block, stored flattened row-major inside a gonum mat.Dense so
// the solver-facing view (BlockMatrix.Flat) is zero-copy.
//
// Offset columns: when the per-type constant offset is requested, the energy
// subsystem gains a leading fractional one-hot column per type (rows sum to
// one), while force and virial subsystems gain an exactly-zero leading
// column — a constant energy shift produces no force and no virial.
// ReinsertZeroCoefficient is the inverse convention on fitted coefficients.
//
// Compose stacks the selected subsystems row-wise in the fixed
// (Energy, Force, Virial) order. With more than one subsystem selected the
// combined system is prefixed to the result; with exactly one, that
// subsystem doubles as the combined result and no stacking occurs.
//
// Determinism & immutability:
//
//   - Fixed row orders everywhere: configuration order, atom-major then
//     x/y/z for force rows, Voigt order for virial rows.
//   - Assemblers never mutate the ConfigSet; every subsystem owns freshly
//     allocated storage (unit conversions are applied while filling).
//
// All shape violations fail fast with package sentinels matched via
// errors.Is; option constructors panic only on programmer error.
package linsys
