package recommend_test

import (
	"fmt"

	"github.com/rishirelan/lightonml/dataset"
	"github.com/rishirelan/lightonml/recommend"
)

// ExampleRecommender runs the full pipeline on a two-cluster rating
// matrix: three sci-fi items loved by the first user group, two romance
// items loved by the second. With rank 2 the recommender pairs every
// item with a cluster-mate.
func ExampleRecommender() {
	ratings, err := dataset.New(5, 5, []float64{
		5, 4, 5, 1, 1,
		4, 5, 4, 1, 2,
		5, 5, 4, 2, 1,
		1, 1, 2, 5, 4,
		2, 1, 1, 4, 5,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rec, _ := recommend.New(2, recommend.WithSeed(7))
	if err = rec.Fit(ratings); err != nil {
		fmt.Println("error:", err)

		return
	}

	for item := 0; item < 5; item++ {
		top, err := rec.TopN(item, 1)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		sameCluster := (item < 3) == (top[0].Index < 3)
		fmt.Printf("item %d -> cluster mate: %t\n", item, sameCluster)
	}
	// Output:
	// item 0 -> cluster mate: true
	// item 1 -> cluster mate: true
	// item 2 -> cluster mate: true
	// item 3 -> cluster mate: true
	// item 4 -> cluster mate: true
}
