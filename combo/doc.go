// Package combo provides canonical plant Combinations and the scoring
// primitive every higher-level recommendation step reuses.
//
// Combination
//
//	A Combination is an order-irrelevant, duplicate-free set of plant names
//	stored as a sorted slice. New() canonicalizes any input, so two
//	combinations built from the same plants in different orders are equal
//	and share the same Key().
//
// Scoring
//
//	Scorer.Score(c) returns the Effects of c (every benefit edge whose
//	helper AND helped endpoint are both in c) and Score = len(Effects).
//	Effects are sorted by (Helper, Helped), so scoring is deterministic and
//	invariant under reordering of c's members.
//
//	Scorer.Extend(base, plant) computes the incremental value of adding one
//	plant to a scored base: only edges where the added plant is the helper
//	and the helped endpoint is in base ∪ {plant}, minus anything already in
//	base.Effects. A plant that is merely helped BY the group adds nothing.
//
//	Scorer.Join(base, plant) is the variant for a plant the user selected
//	anyway: every edge between plant and base counts, in both directions.
//
// Enumeration
//
//	Subsets(plants, min, max) lists every k-combination for min ≤ k ≤ max,
//	ordered by size then lexicographically.
//
// Complexity (n = |c|, d = max out-degree)
//
//   - Score:  O(n·d·log n)
//   - Extend: O(d·log n)
//   - Join:   O(n·d·log n)
package combo
