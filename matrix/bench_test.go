// SPDX-License-Identifier: MIT
// Benchmarks for the kernels on the beam-transport hot path. n=7 is the
// homogeneous phase-space size; the larger sizes show the scaling.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/xalmath/matrix"
)

var benchSizes = []int{7, 64, 256}

// sinks keep results alive past dead-code elimination.
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

// forSizes runs one sub-benchmark per size; setup returns the timed body.
func forSizes(b *testing.B, setup func(b *testing.B, n int) func() error) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			body := setup(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := body(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	forSizes(b, func(b *testing.B, n int) func() error {
		x, y := MustDense(b, n, n), MustDense(b, n, n)
		fillDenseRand(b, x, 1337)
		fillDenseRand(b, y, 4242)

		return func() (err error) { sinkM, err = matrix.Add(x, y); return err }
	})
}

func BenchmarkMul(b *testing.B) {
	forSizes(b, func(b *testing.B, n int) func() error {
		x, y := MustDense(b, n, n), MustDense(b, n, n)
		fillDenseRand(b, x, 101)
		fillDenseRand(b, y, 202)

		return func() (err error) { sinkM, err = matrix.Mul(x, y); return err }
	})
}

func BenchmarkMatVec(b *testing.B) {
	forSizes(b, func(b *testing.B, n int) func() error {
		a := MustDense(b, n, n)
		fillDenseRand(b, a, 99)
		v := make([]float64, n)
		for i := range v {
			v[i] = float64(i)
		}

		return func() (err error) { sinkV, err = matrix.MatVec(a, v); return err }
	})
}

func BenchmarkInverse(b *testing.B) {
	forSizes(b, func(b *testing.B, n int) func() error {
		a := diagDominant(b, n, 7)

		return func() (err error) { sinkM, err = matrix.Inverse(a); return err }
	})
}

func BenchmarkDet(b *testing.B) {
	forSizes(b, func(b *testing.B, n int) func() error {
		a := diagDominant(b, n, 8)

		return func() (err error) { sinkF, err = matrix.Det(a); return err }
	})
}

// BenchmarkConjugateTrans measures Φ·A·Φᵀ on the generic square type.
func BenchmarkConjugateTrans(b *testing.B) {
	forSizes(b, func(b *testing.B, n int) func() error {
		a, err := matrix.NewRealSquareMatrixFrom(diagDominant(b, n, 1).Array())
		if err != nil {
			b.Fatal(err)
		}
		phi, err := matrix.NewRealSquareMatrixFrom(diagDominant(b, n, 2).Array())
		if err != nil {
			b.Fatal(err)
		}

		return func() (err error) { sinkM, err = a.ConjugateTrans(phi); return err }
	})
}
