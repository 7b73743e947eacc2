package planner

import (
	"sort"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/candidate"
	"github.com/katalvlaran/companion/combo"
)

// DefaultHelperLimit is the TopHelpers limit used when limit <= 0.
const DefaultHelperLimit = 10

// Companion says which other selected plants Plant helps.
type Companion struct {
	Plant string   `json:"plant" yaml:"plant"`
	Helps []string `json:"helps" yaml:"helps"`
}

// HelperSuggestion is an unselected plant that helps Count selected plants.
type HelperSuggestion struct {
	Plant string   `json:"plant" yaml:"plant"`
	Count int      `json:"count" yaml:"count"`
	Helps []string `json:"helps" yaml:"helps"`
}

// Companions returns, for each known selected plant in name order, the
// selected plants it helps. Plants that help no other selected plant are
// omitted.
func Companions(g *benefit.Graph, selected []string) []Companion {
	out := []Companion{}
	if g == nil {
		return out
	}
	known, _ := candidate.Split(g, selected)
	for _, p := range known {
		helps := within(g.HelpedBy(p), known)
		if len(helps) > 0 {
			out = append(out, Companion{Plant: p, Helps: helps})
		}
	}

	return out
}

// TopHelpers ranks plants outside the selection by how many selected plants
// they help (descending, then name). At most limit entries are returned;
// limit <= 0 selects DefaultHelperLimit.
func TopHelpers(g *benefit.Graph, selected []string, limit int) []HelperSuggestion {
	out := []HelperSuggestion{}
	if g == nil {
		return out
	}
	if limit <= 0 {
		limit = DefaultHelperLimit
	}
	known, _ := candidate.Split(g, selected)

	seen := make(map[string]struct{})
	for _, p := range known {
		for _, h := range g.HelpersOf(p) {
			if known.Contains(h) {
				continue
			}
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			helps := within(g.HelpedBy(h), known)
			out = append(out, HelperSuggestion{Plant: h, Count: len(helps), Helps: helps})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Plant < out[j].Plant
	})
	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// within returns the members of plants contained in set, keeping order.
func within(plants []string, set combo.Combination) []string {
	out := []string{}
	for _, p := range plants {
		if set.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}
