package core_test

import (
	"fmt"

	"github.com/katalvlaran/greenwave/core"
)

// ExampleNetwork_TotalPenalty builds a three-light corridor and evaluates two
// timing plans: everyone green at 0, and a green wave following travel times.
//
//	0 ──3── 1 ──2── 2
func ExampleNetwork_TotalPenalty() {
	n, _ := core.NewNetwork(3, core.WithCycle(10))
	_ = n.AddEdge(0, 1, 3)
	_ = n.AddEdge(1, 2, 2)

	flat := core.NewSolution(3)
	wave := core.SolutionFromTimings([]core.TimeUnit{0, 3, 5})

	fmt.Println("flat:", n.TotalPenalty(flat))
	fmt.Println("wave:", n.TotalPenalty(wave))
	// Output:
	// flat: 10
	// wave: 8
}
