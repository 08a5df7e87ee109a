// SPDX-License-Identifier: MIT
// Package linsys: subsystem kinds, the (A, b, w) triple, and the 3-flag
// subsystem selector.

package linsys

// Kind identifies a physical subsystem of the combined linear system.
type Kind uint8

// Subsystem kinds in fixed presentation order. Combined sorts first and is
// only produced by Compose when more than one subsystem is selected.
const (
	KindCombined Kind = iota
	KindEnergy
	KindForce
	KindVirial
)

// kindNames are the presentation names used in error tables and reports.
// Force and virial rows report as "Forces" and "Stress" because that is
// what their b vectors physically are.
var kindNames = [...]string{"Combined", "Energy", "Forces", "Stress"}

// String returns the presentation name of the kind ("?" when unknown).
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}

	return kindNames[k]
}

// Subsystem is one weighted linear system (A, b, w): a block-typed design
// matrix plus target and weight vectors of length A.Rows(). A fitted
// coefficient matrix x satisfies, in the weighted least-squares sense,
// (w·A_flat)·x_flat ≈ w·b.
//
// A Subsystem owns its storage: assemblers allocate fresh A, B, W for every
// call and never alias the source ConfigSet.
type Subsystem struct {
	Kind Kind
	A    *BlockMatrix
	B    []float64
	W    []float64
}

// Rows returns the row count of the subsystem (0 for an empty one).
func (s Subsystem) Rows() int {
	if s.A == nil {
		return 0
	}

	return s.A.Rows()
}

// Selector chooses which physical subsystems participate in assembly.
// The zero value selects nothing and fails validation; use SelectAll for
// the common all-three case.
type Selector struct {
	Energy bool
	Force  bool
	Virial bool
}

// SelectAll returns a selector with all three subsystems enabled.
func SelectAll() Selector { return Selector{Energy: true, Force: true, Virial: true} }

// Count returns the number of enabled subsystems.
func (s Selector) Count() int {
	var n int
	if s.Energy {
		n++
	}
	if s.Force {
		n++
	}
	if s.Virial {
		n++
	}

	return n
}

// Validate returns ErrEmptySelector when no subsystem is enabled.
func (s Selector) Validate() error {
	if s.Count() == 0 {
		return ErrEmptySelector
	}

	return nil
}
