// SPDX-License-Identifier: MIT
// Package linsys: offset-column encoders.
// A per-type constant offset is carried as an explicit extra descriptor
// column, not as a model intercept: the energy subsystem gets the fraction
// of each type present in the configuration, force and virial subsystems
// get exact zeros (a constant energy shift produces no force or virial),
// and coefficient matrices fitted without the column get a zero column
// reinserted so downstream consumers always see (types × coeffs+1).

package linsys

import "gonum.org/v1/gonum/mat"

// Operation name constants for unified error wrapping.
const (
	opEnergyOffset = "AddEnergyOffset"
	opZeroOffset   = "AddZeroOffset"
	opReinsert     = "ReinsertZeroCoefficient"
)

// AddEnergyOffset prepends one column per type block, equal to the fraction
// of atoms of that type in the row's configuration (a fractional one-hot
// over atomTypes; each row's offset columns sum to exactly 1).
//
// Stage 1 (Validate): a non-nil; len(atomTypes) == a.Rows(); every type id
// in [1, a.Types()] (ids are 1-indexed).
// Stage 2 (Execute): allocate (rows × types × coeffs+1); write the type
// fraction into block column 0 and shift the descriptor columns right.
//
// Returns ErrNilMatrix, ErrShapeMismatch, ErrBadTypeID (wrapped with the
// operation tag). The input matrix is never mutated.
// Complexity: O(rows·types·coeffs) time and memory.
//
// AI-Hints:
//   - Row r of atomTypes must describe the same configuration as row r of a;
//     the energy assembler guarantees this pairing.
func AddEnergyOffset(a *BlockMatrix, atomTypes [][]int) (*BlockMatrix, error) {
	// Validate presence and row pairing.
	if a == nil {
		return nil, wrapOp(opEnergyOffset, ErrNilMatrix)
	}
	rows, types, coeffs := a.Rows(), a.Types(), a.Coeffs()
	if len(atomTypes) != rows {
		return nil, wrapOp(opEnergyOffset, ErrShapeMismatch)
	}

	out, err := NewBlockMatrix(rows, types, coeffs+1)
	if err != nil {
		return nil, wrapOp(opEnergyOffset, err)
	}

	counts := make([]float64, types) // per-type atom counts, reused per row
	var (
		r, t, c int
		total   float64
		src     []float64
		dst     []float64
	)
	for r = 0; r < rows; r++ {
		// Count atoms of each type; ids are 1-indexed.
		for t = 0; t < types; t++ {
			counts[t] = 0
		}
		for _, id := range atomTypes[r] {
			if id < 1 || id > types {
				return nil, wrapOp(opEnergyOffset, ErrBadTypeID)
			}
			counts[id-1]++
		}
		total = float64(len(atomTypes[r]))

		// Write fraction into block column 0, descriptors into columns 1..coeffs.
		src = a.rawRow(r)
		dst = out.rawRow(r)
		for t = 0; t < types; t++ {
			if total > 0 {
				dst[t*(coeffs+1)] = counts[t] / total
			}
			for c = 0; c < coeffs; c++ {
				dst[t*(coeffs+1)+1+c] = src[t*coeffs+c]
			}
		}
	}

	return out, nil
}

// AddZeroOffset prepends an exactly-zero column to every type block. Used
// for force and virial subsystems, whose rows receive no contribution from
// a constant energy offset.
//
// Returns ErrNilMatrix (wrapped). The input matrix is never mutated.
// Complexity: O(rows·types·coeffs) time and memory.
func AddZeroOffset(a *BlockMatrix) (*BlockMatrix, error) {
	if a == nil {
		return nil, wrapOp(opZeroOffset, ErrNilMatrix)
	}
	rows, types, coeffs := a.Rows(), a.Types(), a.Coeffs()

	out, err := NewBlockMatrix(rows, types, coeffs+1)
	if err != nil {
		return nil, wrapOp(opZeroOffset, err)
	}

	var (
		r, t, c int
		src     []float64
		dst     []float64
	)
	for r = 0; r < rows; r++ {
		src = a.rawRow(r)
		dst = out.rawRow(r)
		// Block column 0 stays zero from allocation.
		for t = 0; t < types; t++ {
			for c = 0; c < coeffs; c++ {
				dst[t*(coeffs+1)+1+c] = src[t*coeffs+c]
			}
		}
	}

	return out, nil
}

// ReinsertZeroCoefficient prepends a zero column to a fitted coefficient
// matrix that was fit without the offset column, so consumers always see
// the uniform (types × coeffs+1) shape with column 0 as the per-type
// constant. Extracting columns 1..coeffs reproduces the input exactly.
//
// Returns ErrNilMatrix (wrapped) for a nil input; the input is not mutated.
// Complexity: O(types·coeffs) time and memory.
func ReinsertZeroCoefficient(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, wrapOp(opReinsert, ErrNilMatrix)
	}
	types, coeffs := x.Dims()

	out := mat.NewDense(types, coeffs+1, nil)
	var t, c int
	for t = 0; t < types; t++ {
		// Column 0 stays zero from allocation.
		for c = 0; c < coeffs; c++ {
			out.Set(t, c+1, x.At(t, c))
		}
	}

	return out, nil
}
