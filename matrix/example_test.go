// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/xalmath/matrix"
)

// ExampleRealSquareMatrix_ConjugateTrans rotates a matrix by a quarter turn.
func ExampleRealSquareMatrix_ConjugateTrans() {
	A, _ := matrix.ParseRealSquareMatrix(2, "{ {1 2}{3 4} }")
	phi, _ := matrix.ParseRealSquareMatrix(2, "{ {0 -1}{1 0} }")

	out, _ := A.ConjugateTrans(phi)
	fmt.Println(out)
	fmt.Println(A.Det() < 0)

	// Output:
	// { { 4 -3 }{ -2 1 } }
	// true
}

// ExampleSolve solves a 2×2 system into a vector of the right-hand side's type.
func ExampleSolve() {
	A, _ := matrix.NewRealSquareMatrixFrom([][]float64{{2, 1}, {1, 1}})
	b, _ := matrix.NewRealVectorFrom([]float64{3, 2})

	x, _ := matrix.Solve(A, b)
	fmt.Printf("%.3f %.3f\n", mustAt(x, 0), mustAt(x, 1))

	// Output:
	// 1.000 1.000
}

func mustAt(v *matrix.RealVector, i int) float64 {
	x, err := v.At(i)
	if err != nil {
		panic(err)
	}

	return x
}
