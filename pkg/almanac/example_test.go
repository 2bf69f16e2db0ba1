package almanac_test

import (
	"context"
	"fmt"

	"github.com/ib-77/almanac/pkg/almanac"
)

func ExamplePipeline_ClosestDestination() {
	r1, _ := almanac.NewRule(50, 98, 2)
	r2, _ := almanac.NewRule(52, 50, 48)
	soil, _ := almanac.NewStage("seed-to-soil", r1, r2)
	p, _ := almanac.NewPipeline(soil)

	seeds := []int64{79, 14, 55, 13}

	points, _ := almanac.FromScalars(seeds)
	closest, _ := p.ClosestDestination(points)
	fmt.Println("scalar:", closest)

	spans, _ := almanac.FromPairs(seeds)
	closest, _ = p.ClosestDestinationParallel(context.Background(), spans, 2)
	fmt.Println("ranges:", closest)
	// Output:
	// scalar: 13
	// ranges: 57
}

func ExampleStage_Apply() {
	r, _ := almanac.NewRule(100, 10, 5)
	s, _ := almanac.NewStage("a-to-b", r)

	out, _ := s.Apply([]almanac.Interval{{Start: 8, End: 20}})
	fmt.Println(out)
	// Output: [[8, 10) [100, 105) [15, 20)]
}
