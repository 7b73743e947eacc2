package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/planner"
)

// ExamplePlan plans a bed for Basil and Tomato; Marigold is recommended
// because it also helps Tomato.
func ExamplePlan() {
	b, _ := benefit.NewBuilder()
	_ = b.Add("Basil", "Tomato", "repels pests")
	_ = b.Add("Marigold", "Tomato", "deters nematodes")
	g := b.Build()

	res, _ := planner.Plan(context.Background(), g, planner.Request{Preferred: []string{"Tomato", "Basil", "Okra"}})
	for i, bed := range res.Beds {
		fmt.Printf("bed %d (score %d)\n", i+1, bed.Score)
		for _, p := range bed.Plants {
			fmt.Printf("  %s [%s]\n", p.Name, p.Role)
		}
	}
	fmt.Println("unknown:", res.Unknown)
	// Output:
	// bed 1 (score 2)
	//   Basil [preferred]
	//   Marigold [recommended]
	//   Tomato [preferred]
	// unknown: [Okra]
}

// ExampleTopHelpers suggests plants to add to a selection.
func ExampleTopHelpers() {
	b, _ := benefit.NewBuilder()
	_ = b.Add("Basil", "Tomato", "")
	_ = b.Add("Basil", "Pepper", "")
	_ = b.Add("Marigold", "Tomato", "")
	g := b.Build()

	for _, h := range planner.TopHelpers(g, []string{"Tomato", "Pepper"}, 10) {
		fmt.Println(h.Plant, "helps", h.Helps)
	}
	// Output:
	// Basil helps [Pepper Tomato]
	// Marigold helps [Tomato]
}
