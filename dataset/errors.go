// Package dataset: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// dataset package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package dataset

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dataset: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match with errors.Is.

var (
	// ErrNilConfigSet indicates that a nil *ConfigSet was passed where a
	// populated set is required.
	ErrNilConfigSet = errors.New("dataset: nil ConfigSet")

	// ErrEmptyConfigSet indicates a set with zero configurations.
	ErrEmptyConfigSet = errors.New("dataset: empty ConfigSet")

	// ErrColumnLength indicates that two columns disagree on the number of
	// configurations (every column must have exactly Len entries).
	ErrColumnLength = errors.New("dataset: column length mismatch")

	// ErrAtomCount indicates len(AtomTypes[i]) != NumAtoms[i], or a
	// non-positive NumAtoms entry.
	ErrAtomCount = errors.New("dataset: atom count mismatch")

	// ErrNegativeWeight indicates a weight column entry below zero.
	// Weights are importance factors and must be ≥ 0.
	ErrNegativeWeight = errors.New("dataset: negative weight")

	// ErrBadVolume indicates a non-positive cell volume.
	ErrBadVolume = errors.New("dataset: volume must be > 0")

	// ErrDescriptorShape indicates that a descriptor block does not match
	// the declared NTypes·NCoeff width or its expected row count.
	ErrDescriptorShape = errors.New("dataset: descriptor shape mismatch")

	// ErrChunkMismatch indicates that a ragged column's chunk length does
	// not match the expected per-configuration size, or that a flat vector
	// cannot be unflattened into the receiver's chunk layout.
	ErrChunkMismatch = errors.New("dataset: ragged chunk length mismatch")

	// ErrBadTypeID indicates an atom type id outside [1, NTypes].
	// Type ids are 1-indexed by convention.
	ErrBadTypeID = errors.New("dataset: atom type id out of range")

	// ErrIndexRange indicates a configuration index outside [0, Len).
	ErrIndexRange = errors.New("dataset: configuration index out of range")
)
