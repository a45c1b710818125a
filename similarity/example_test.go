package similarity_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/similarity"
)

// ExampleTopN ranks latent-factor rows against item 0. Row 1 points the
// same way (best match), row 2 is orthogonal, row 3 points the other way.
func ExampleTopN() {
	d := mat.NewDense(4, 2, []float64{
		1, 0,
		4, 0,
		0, 2,
		-1, 0,
	})

	matches, err := similarity.TopN(d, 0, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, m := range matches {
		fmt.Printf("item %d score %.1f\n", m.Index, m.Score)
	}
	// Output:
	// item 1 score 1.0
	// item 2 score 0.0
	// item 3 score -1.0
}
