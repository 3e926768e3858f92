// Package linalg_test provides benchmarks for the per-frame linalg operations,
// using deterministic random fill for general matrices.
package linalg_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/uvncam/linalg"
)

// benchSizes are the general matrix sizes to benchmark.
var benchSizes = []int{4, 16, 64}

// sinks to defeat dead-code elimination
var (
	sinkM  *linalg.Matrix
	sinkA  []float64
	sinkV3 linalg.Vector3
	sinkQ  linalg.Quaternion
)

// randMatrix fills an n×n matrix from a fixed seed.
func randMatrix(b *testing.B, n int, seed int64) *linalg.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return mustNew(b, rows)
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 1337)
			B := randMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Mul(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRotate(b *testing.B) {
	b.ReportAllocs()
	axis := linalg.Vector3{0.3, -1, 0.7}
	for i := 0; i < b.N; i++ {
		m, err := linalg.Rotate(float64(i%360), axis)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkVector3Rotate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := linalg.UnitZ().Rotate(float64(i%360), linalg.UnitY())
		if err != nil {
			b.Fatal(err)
		}
		sinkV3 = v
	}
}

func BenchmarkQuaternionMul(b *testing.B) {
	q, _ := linalg.FromRotation(30, linalg.UnitX())
	p, _ := linalg.FromRotation(45, linalg.UnitY())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkQ = q.Mul(p)
	}
}

func BenchmarkComposeModel(b *testing.B) {
	b.ReportAllocs()
	tr := linalg.Transform{
		Position: linalg.Vector3{1, 2, 3},
		Rotation: linalg.Vector3{10, 20, 30},
		Scale:    linalg.Vector3{1, 2, 1},
	}
	for i := 0; i < b.N; i++ {
		m, err := linalg.ComposeModel(tr, linalg.OrderTRS)
		if err != nil {
			b.Fatal(err)
		}
		sinkA = m.ToArray()
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randMatrix(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Inverse()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
