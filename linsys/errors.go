// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// linsys package. All kernels MUST return these sentinels (optionally
// wrapped with an operation tag) and tests MUST check them via errors.Is.

package linsys

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil input -> bad shape -> index range -> cross-subsystem mismatch
// -> type-id violations -> selector violations.

var (
	// ErrNilMatrix indicates a nil *BlockMatrix (receiver or argument).
	ErrNilMatrix = errors.New("linsys: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows, types, or coeffs ≤ 0).
	ErrBadShape = errors.New("linsys: invalid shape")

	// ErrIndexRange indicates a (row, type, coeff) index outside bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexRange = errors.New("linsys: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands:
	// subsystems with different NTypes/NCoeff, an offset encoder applied to
	// a matrix whose row count disagrees with the configuration count, or
	// b/w vectors that do not match the design-matrix row count.
	ErrShapeMismatch = errors.New("linsys: shape mismatch")

	// ErrBadTypeID indicates an atom type id outside [1, Types] passed to
	// the energy offset encoder. Type ids are 1-indexed.
	ErrBadTypeID = errors.New("linsys: atom type id out of range")

	// ErrEmptySelector indicates that no subsystem was selected;
	// at least one of energy, force, virial must be enabled.
	ErrEmptySelector = errors.New("linsys: empty subsystem selector")
)

// wrapOp wraps err with an operation tag, preserving the original error via
// %w so callers can still match sentinels with errors.Is. Use only when
// err != nil to avoid wrapping a nil cause.
func wrapOp(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
