// SPDX-License-Identifier: MIT
// Package linsys: BlockMatrix, the block-typed design matrix.
// A BlockMatrix is logically (rows × types × coeffs); physically it is a
// row-major gonum mat.Dense of shape rows × types·coeffs, so flattening the
// (type, coeff) axes for the solver is a zero-copy view.

package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// blockErrorf wraps an underlying error with BlockMatrix method context.
func blockErrorf(method string, row, t, c int, err error) error {
	return fmt.Errorf("BlockMatrix.%s(%d,%d,%d): %w", method, row, t, c, err)
}

// BlockMatrix is a design matrix whose rows each carry one types×coeffs
// coefficient block. Storage is a dense rows × types·coeffs matrix with the
// block laid out type-major (all coefficients of type 1, then type 2, ...).
type BlockMatrix struct {
	types, coeffs int
	m             *mat.Dense // rows × types*coeffs, row-major
}

// NewBlockMatrix creates a zeroed (rows × types × coeffs) matrix.
// Stage 1 (Validate): all three dimensions must be > 0.
// Stage 2 (Prepare): allocate the backing dense matrix.
// Complexity: O(rows·types·coeffs) time and memory.
func NewBlockMatrix(rows, types, coeffs int) (*BlockMatrix, error) {
	if rows <= 0 || types <= 0 || coeffs <= 0 {
		return nil, ErrBadShape
	}

	return &BlockMatrix{types: types, coeffs: coeffs, m: mat.NewDense(rows, types*coeffs, nil)}, nil
}

// Rows returns the number of rows (0 for a nil or zero-value receiver).
// Complexity: O(1).
func (b *BlockMatrix) Rows() int {
	if b == nil || b.m == nil {
		return 0
	}
	r, _ := b.m.Dims()

	return r
}

// Types returns the number of atom types per block. Complexity: O(1).
func (b *BlockMatrix) Types() int { return b.types }

// Coeffs returns the number of coefficients per type. Complexity: O(1).
func (b *BlockMatrix) Coeffs() int { return b.coeffs }

// indexOf validates (row, t, c) and computes the flat column index.
func (b *BlockMatrix) indexOf(method string, row, t, c int) (int, error) {
	if row < 0 || row >= b.Rows() || t < 0 || t >= b.types || c < 0 || c >= b.coeffs {
		return 0, blockErrorf(method, row, t, c, ErrIndexRange)
	}

	return t*b.coeffs + c, nil
}

// At retrieves the element at (row, type, coeff).
// Returns ErrIndexRange (wrapped) on out-of-bounds indices.
// Complexity: O(1).
func (b *BlockMatrix) At(row, t, c int) (float64, error) {
	col, err := b.indexOf("At", row, t, c)
	if err != nil {
		return 0, err
	}

	return b.m.At(row, col), nil
}

// Set assigns v at (row, type, coeff).
// Returns ErrIndexRange (wrapped) on out-of-bounds indices.
// Complexity: O(1).
func (b *BlockMatrix) Set(row, t, c int, v float64) error {
	col, err := b.indexOf("Set", row, t, c)
	if err != nil {
		return err
	}
	b.m.Set(row, col, v)

	return nil
}

// Flat returns the rows × types·coeffs dense view backing the matrix.
// The view shares storage with the receiver: callers treat it as read-only
// and copy before weighting or any other mutation.
// Complexity: O(1).
func (b *BlockMatrix) Flat() *mat.Dense { return b.m }

// rawRow returns the backing slice of one row (types·coeffs values).
// Internal fast path for assembly/stacking; no bounds re-check.
func (b *BlockMatrix) rawRow(row int) []float64 { return b.m.RawRowView(row) }

// Clone returns a deep copy of the matrix.
// Complexity: O(rows·types·coeffs) time and memory.
func (b *BlockMatrix) Clone() *BlockMatrix {
	if b == nil {
		return nil
	}
	if b.m == nil {
		return &BlockMatrix{types: b.types, coeffs: b.coeffs}
	}
	out := mat.NewDense(b.Rows(), b.types*b.coeffs, nil)
	out.Copy(b.m)

	return &BlockMatrix{types: b.types, coeffs: b.coeffs, m: out}
}
