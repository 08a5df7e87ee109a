// SPDX-License-Identifier: MIT

package linsys_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snapfit/linsys"
)

// ExampleAddEnergyOffset demonstrates the fractional one-hot offset column:
// each type block gains a leading column equal to the fraction of atoms of
// that type, and the per-row fractions always sum to one.
func ExampleAddEnergyOffset() {
	// One row, two types, one descriptor coefficient per type.
	a, _ := linsys.NewBlockMatrix(1, 2, 1)
	_ = a.Set(0, 0, 0, 10)
	_ = a.Set(0, 1, 0, 20)

	// Three atoms of type 1, one atom of type 2.
	out, _ := linsys.AddEnergyOffset(a, [][]int{{1, 1, 1, 2}})

	f1, _ := out.At(0, 0, 0)
	f2, _ := out.At(0, 1, 0)
	d1, _ := out.At(0, 0, 1)
	d2, _ := out.At(0, 1, 1)
	fmt.Printf("fractions: %.2f %.2f\n", f1, f2)
	fmt.Printf("descriptors: %.0f %.0f\n", d1, d2)
	// Output:
	// fractions: 0.75 0.25
	// descriptors: 10 20
}

// ExampleReinsertZeroCoefficient shows how a coefficient matrix fitted
// without the offset column is widened to the uniform shape.
func ExampleReinsertZeroCoefficient() {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out, _ := linsys.ReinsertZeroCoefficient(x)

	fmt.Println(mat.Formatted(out))
	// Output:
	// ⎡0  1  2⎤
	// ⎣0  3  4⎦
}
