package bed

import (
	"sort"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/candidate"
	"github.com/katalvlaran/companion/combo"
)

// Role tags why a plant is in a bed.
type Role string

const (
	// Preferred plants were selected by the user.
	Preferred Role = "preferred"

	// Recommended plants were added because they help the bed.
	Recommended Role = "recommended"
)

// Member is one plant of a GardenBed.
type Member struct {
	Plant string
	Role  Role
}

// GardenBed is one selected grouping. Its plants are never shared with any
// other bed of the same Partition result.
type GardenBed struct {
	// Members sorted by plant name.
	Members []Member

	// Recommendation is the recommended plant, "" when the bed has none.
	// A preferred plant that joined a base is a member, not a recommendation.
	Recommendation string

	// Score = base score + extension score.
	Score int

	// Effects explain Score, sorted by (Helper, Helped).
	Effects []benefit.Edge
}

// Plants returns every plant in the bed as a Combination.
func (b GardenBed) Plants() combo.Combination {
	names := make([]string, 0, len(b.Members))
	for _, m := range b.Members {
		names = append(names, m.Plant)
	}

	return combo.New(names...)
}

// Preferred returns the names of the bed's preferred plants, sorted.
func (b GardenBed) Preferred() []string { return b.byRole(Preferred) }

// Recommended returns the names of the bed's recommended plants, sorted.
func (b GardenBed) Recommended() []string { return b.byRole(Recommended) }

func (b GardenBed) byRole(r Role) []string {
	out := []string{}
	for _, m := range b.Members {
		if m.Role == r {
			out = append(out, m.Plant)
		}
	}

	return out
}

// Partition greedily selects disjoint beds from ranked (first-fit).
// ranked must already be in preference order (see candidate.Rank); it is
// not modified.
func Partition(ranked []candidate.Candidate) []GardenBed {
	claimed := make(map[string]struct{})
	beds := []GardenBed{}

	for _, c := range ranked {
		plants := c.Plants()
		if plants.Len() == 0 || anyClaimed(claimed, plants) {
			continue
		}
		for _, p := range plants {
			claimed[p] = struct{}{}
		}
		beds = append(beds, fromCandidate(c))
	}

	return beds
}

func anyClaimed(claimed map[string]struct{}, plants combo.Combination) bool {
	for _, p := range plants {
		if _, ok := claimed[p]; ok {
			return true
		}
	}

	return false
}

func fromCandidate(c candidate.Candidate) GardenBed {
	members := make([]Member, 0, c.Size())
	for _, p := range c.Base.Combination {
		members = append(members, Member{Plant: p, Role: Preferred})
	}
	var rec string
	switch {
	case c.Extension.Empty():
	case c.ExtensionPreferred():
		members = append(members, Member{Plant: c.Extension.Plant, Role: Preferred})
	default:
		rec = c.Extension.Plant
		members = append(members, Member{Plant: rec, Role: Recommended})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Plant < members[j].Plant })

	effects := make([]benefit.Edge, 0, len(c.Base.Effects)+len(c.Extension.Effects))
	effects = append(effects, c.Base.Effects...)
	effects = append(effects, c.Extension.Effects...)
	sort.Slice(effects, func(i, j int) bool { return effects[i].Less(effects[j]) })

	return GardenBed{
		Members:        members,
		Recommendation: rec,
		Score:          c.TotalScore(),
		Effects:        effects,
	}
}
