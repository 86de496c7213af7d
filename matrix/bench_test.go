// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkV *vector.Vector[float64]
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := mustNew[float64](b, n), mustNew[float64](b, n)
			randomFill(A, 1337)
			randomFill(B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := mustNew[float64](b, n), mustNew[float64](b, n)
			randomFill(A, 11)
			randomFill(B, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustNew[float64](b, n)
			randomFill(A, 5)
			x := A.Index(0).Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustNew[float64](b, n)
			randomFill(A, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Clone()
			}
		})
	}
}
