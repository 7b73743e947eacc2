package core_test

import (
	"fmt"

	"github.com/katalvlaran/companion/core"
)

// ExampleGraph demonstrates basic creation, labeled edges, and two-way lookups.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge auto-adds vertices
	_, _ = g.AddEdge("Basil", "Tomato", core.WithLabel("repels pests"))
	_, _ = g.AddEdge("Marigold", "Tomato")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Helpers of Tomato:", g.Predecessors("Tomato"))
	fmt.Println("Basil helps:", g.Successors("Basil"))

	e, _ := g.EdgeBetween("Basil", "Tomato")
	fmt.Println("Label:", e.Label)

	// Output:
	// Vertices: [Basil Marigold Tomato]
	// Helpers of Tomato: [Basil Marigold]
	// Basil helps: [Tomato]
	// Label: repels pests
}
