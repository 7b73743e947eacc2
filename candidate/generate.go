package candidate

import (
	"sort"

	"github.com/katalvlaran/companion/benefit"
	"github.com/katalvlaran/companion/combo"
)

// Split separates the selection into plants known to g (canonical,
// de-duplicated) and unknown names (sorted, de-duplicated). Empty names are
// ignored.
func Split(g *benefit.Graph, selection []string) (known combo.Combination, unknown []string) {
	var in, out []string
	for _, name := range selection {
		if name == "" {
			continue
		}
		if g.Has(name) {
			in = append(in, name)
		} else {
			out = append(out, name)
		}
	}

	return combo.New(in...), combo.New(out...).Plants()
}

// Generate enumerates and ranks candidate groupings for preferred.
//
// Unknown plant names are dropped (logged at debug level); an empty or fully
// unknown selection yields an empty result without error.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrOptionViolation for invalid options.
func Generate(g *benefit.Graph, preferred []string, opts ...Option) ([]Candidate, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	scorer, err := combo.NewScorer(g)
	if err != nil {
		return nil, err
	}

	known, unknown := Split(g, preferred)
	if len(unknown) > 0 {
		o.Logger.Debug("dropping unknown plants", "plants", unknown)
	}
	if known.Len() == 0 {
		return []Candidate{}, nil
	}

	maxBase := o.MaxGroupSize - 1

	seen := make(map[string]struct{})
	var out []Candidate
	emit := func(c Candidate) {
		k := c.Base.Combination.Key() + "|" + c.Extension.Plant
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}

	for _, base := range combo.Subsets(known, 1, maxBase) {
		scored := scorer.Score(base)
		emit(Candidate{Base: scored, Preferred: base.Len()})
		if !o.Extensions {
			continue
		}
		for _, plant := range helpersOutside(g, base) {
			if known.Contains(plant) {
				// a preferred plant joins as a member, so edges toward it count too
				emit(Candidate{Base: scored, Extension: scorer.Join(scored, plant), Preferred: base.Len() + 1})
				continue
			}
			emit(Candidate{Base: scored, Extension: scorer.Extend(scored, plant), Preferred: base.Len()})
		}
	}

	Rank(out)
	o.Logger.Debug("generated candidates",
		"preferred", known.Len(), "max_group_size", o.MaxGroupSize, "candidates", len(out))

	return out, nil
}

// helpersOutside returns the sorted union of HelpersOf(p) for p in base,
// excluding base members.
func helpersOutside(g *benefit.Graph, base combo.Combination) []string {
	set := make(map[string]struct{})
	for _, p := range base {
		for _, h := range g.HelpersOf(p) {
			if !base.Contains(h) {
				set[h] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Strings(out)

	return out
}

// Less reports whether a ranks strictly before b. See the package
// documentation for the key order.
func Less(a, b Candidate) bool {
	if a.Base.Score != b.Base.Score {
		return a.Base.Score > b.Base.Score
	}
	if a.Extension.Score != b.Extension.Score {
		return a.Extension.Score > b.Extension.Score
	}
	if as, bs := a.Size(), b.Size(); as != bs {
		return as < bs
	}
	if a.Preferred != b.Preferred {
		return a.Preferred > b.Preferred
	}
	if c := a.Base.Combination.Compare(b.Base.Combination); c != 0 {
		return c < 0
	}

	return a.Extension.Plant < b.Extension.Plant
}

// Rank sorts cs in place by Less. The sort is stable, so records equal under
// Less keep their input order.
func Rank(cs []Candidate) {
	sort.SliceStable(cs, func(i, j int) bool { return Less(cs[i], cs[j]) })
}
