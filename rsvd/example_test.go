package rsvd_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/projection"
	"github.com/rishirelan/lightonml/rsvd"
)

// ExampleSVD assembles a rank-2 approximation of a rank-2 matrix from a
// seeded Gaussian sketch and checks the reconstruction is exact to
// roundoff.
//
// Scenario:
//
//	x is 4×4 with two independent directions; any k=2 sketch captures it.
func ExampleSVD() {
	x := mat.NewDense(4, 4, []float64{
		2, 4, 6, 8,
		1, 0, 1, 0,
		3, 4, 7, 8,
		1, 4, 5, 8,
	})

	g, _ := projection.New(2, projection.WithSeed(42))
	_ = g.Fit(4)
	y, _ := g.Transform(x)

	f, err := rsvd.SVD(x, y, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var diff mat.Dense
	diff.Sub(x, f.Reconstruct())

	fmt.Printf("rank=%d\n", f.Rank())
	fmt.Printf("exact=%t\n", mat.Norm(&diff, 2) < 1e-8)
	// Output:
	// rank=2
	// exact=true
}
