package benefit

import (
	"sort"

	"github.com/katalvlaran/companion/core"
)

// Graph is the immutable BenefitGraph. All methods are pure queries and
// safe for concurrent use.
type Graph struct {
	g *core.Graph
}

// HelpersOf returns the plants that help plant, sorted.
// Unknown plants, or plants nobody helps, yield an empty slice.
// Complexity: O(d log d).
func (bg *Graph) HelpersOf(plant string) []string {
	return bg.g.Predecessors(plant)
}

// HelpedBy returns the plants that plant helps, sorted.
// Complexity: O(d log d).
func (bg *Graph) HelpedBy(plant string) []string {
	return bg.g.Successors(plant)
}

// Helps reports whether helper helps helped. Complexity: O(1).
func (bg *Graph) Helps(helper, helped string) bool {
	return bg.g.HasEdge(helper, helped)
}

// Effect returns the effect description of helper→helped and whether the
// relationship exists at all.
func (bg *Graph) Effect(helper, helped string) (string, bool) {
	e, err := bg.g.EdgeBetween(helper, helped)
	if err != nil {
		return "", false
	}

	return e.Label, true
}

// AllPlants returns every known plant sorted by name.
func (bg *Graph) AllPlants() []string {
	return bg.g.Vertices()
}

// Has reports whether plant is known to the graph.
func (bg *Graph) Has(plant string) bool {
	return bg.g.HasVertex(plant)
}

// PlantCount returns the number of known plants.
func (bg *Graph) PlantCount() int {
	return bg.g.VertexCount()
}

// EdgeCount returns the number of relationships.
func (bg *Graph) EdgeCount() int {
	return bg.g.EdgeCount()
}

// Edges returns every relationship sorted by (Helper, Helped).
// Complexity: O(E log E).
func (bg *Graph) Edges() []Edge {
	raw := bg.g.Edges()
	out := make([]Edge, 0, len(raw))
	for _, e := range raw {
		out = append(out, Edge{Helper: e.From, Helped: e.To, Effect: e.Label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
