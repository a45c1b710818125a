package rsvd_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/projection"
	"github.com/rishirelan/lightonml/rsvd"
)

// benchmarkSVD runs the full assembler on an m×n matrix with rank k.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkSVD(b *testing.B, m, n, k int) {
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, m*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x := mat.NewDense(m, n, data)

	g, err := projection.New(k, projection.WithSeed(1))
	if err != nil {
		b.Fatalf("projector: %v", err)
	}
	if err = g.Fit(n); err != nil {
		b.Fatalf("fit: %v", err)
	}
	y, err := g.Transform(x)
	if err != nil {
		b.Fatalf("sketch: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = rsvd.SVD(x, y, k); err != nil {
			b.Fatalf("SVD failed: %v", err)
		}
	}
}

// BenchmarkSVD_Small benchmarks a 50×40 matrix at rank 5.
func BenchmarkSVD_Small(b *testing.B) { benchmarkSVD(b, 50, 40, 5) }

// BenchmarkSVD_Medium benchmarks a 300×200 matrix at rank 10.
func BenchmarkSVD_Medium(b *testing.B) { benchmarkSVD(b, 300, 200, 10) }

// BenchmarkSVD_Wide benchmarks a 100×500 matrix at rank 8.
func BenchmarkSVD_Wide(b *testing.B) { benchmarkSVD(b, 100, 500, 8) }
