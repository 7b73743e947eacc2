package combo

import (
	"errors"

	"github.com/katalvlaran/companion/benefit"
)

// ErrGraphNil is returned when a nil *benefit.Graph is passed to NewScorer.
var ErrGraphNil = errors.New("combo: graph is nil")

// Scored is a Combination together with its Effects and Score.
// Score == len(Effects) always holds.
type Scored struct {
	Combination Combination
	Score       int
	Effects     []benefit.Edge
}

// Extension is the incremental value of adding Plant to a base combination.
// The zero value means "no extension".
type Extension struct {
	Plant   string
	Score   int
	Effects []benefit.Edge
}

// Empty reports whether x carries no plant.
func (x Extension) Empty() bool { return x.Plant == "" }

// Scorer scores combinations against one BenefitGraph.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	g *benefit.Graph
}

// NewScorer returns a Scorer backed by g.
func NewScorer(g *benefit.Graph) (*Scorer, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Scorer{g: g}, nil
}

// Score computes the Effects realized inside c: every edge (h, d) with both
// h and d in c. Effects come out sorted by (Helper, Helped) because c and
// HelpedBy are both sorted.
func (s *Scorer) Score(c Combination) Scored {
	var effects []benefit.Edge
	for _, helper := range c {
		for _, helped := range s.g.HelpedBy(helper) {
			if !c.Contains(helped) {
				continue
			}
			effect, _ := s.g.Effect(helper, helped)
			effects = append(effects, benefit.Edge{Helper: helper, Helped: helped, Effect: effect})
		}
	}

	return Scored{Combination: c, Score: len(effects), Effects: effects}
}

// Extend computes the Extension gained by adding plant to base. Only edges
// where plant is the helper count; edges already present in base.Effects are
// excluded. A plant already in base yields the zero Extension.
func (s *Scorer) Extend(base Scored, plant string) Extension {
	if plant == "" || base.Combination.Contains(plant) {
		return Extension{}
	}

	counted := make(map[benefit.Edge]struct{}, len(base.Effects))
	for _, e := range base.Effects {
		counted[benefit.Edge{Helper: e.Helper, Helped: e.Helped}] = struct{}{}
	}

	var effects []benefit.Edge
	for _, helped := range s.g.HelpedBy(plant) {
		if !base.Combination.Contains(helped) {
			continue
		}
		if _, dup := counted[benefit.Edge{Helper: plant, Helped: helped}]; dup {
			continue
		}
		effect, _ := s.g.Effect(plant, helped)
		effects = append(effects, benefit.Edge{Helper: plant, Helped: helped, Effect: effect})
	}

	return Extension{Plant: plant, Score: len(effects), Effects: effects}
}

// Join computes the Extension gained when plant joins base as a full member
// rather than as a recommendation: every edge between plant and base counts,
// in either direction. A plant already in base yields the zero Extension.
// Score(base ∪ {plant}) == base.Score + Join(base, plant).Score.
func (s *Scorer) Join(base Scored, plant string) Extension {
	if plant == "" || base.Combination.Contains(plant) {
		return Extension{}
	}

	all := s.Score(base.Combination.With(plant))
	var effects []benefit.Edge
	for _, e := range all.Effects {
		if e.Helper == plant || e.Helped == plant {
			effects = append(effects, e)
		}
	}

	return Extension{Plant: plant, Score: len(effects), Effects: effects}
}
