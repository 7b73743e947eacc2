// Package candidate enumerates and ranks candidate plant groupings built
// from a user's preferred plants.
//
// What
//
//   - Bases: every subset of the (known, de-duplicated) preferred plants of
//     size 1..MaxGroupSize-1, leaving one slot for a recommendation.
//   - Extensions: for each base, every plant outside the base that helps at
//     least one member is tried as a single addition; the Extension keeps
//     only the edges where the added plant is the helper (see combo.Extend).
//     When the added plant is itself preferred it is not a recommendation:
//     it joins as a member and every edge between it and the base counts
//     (see combo.Join), so the grouping scores as if it were a base.
//   - One Candidate per (base, extension) pair. Each base is also emitted
//     once with an empty extension, so a preferred plant is never left
//     without an eligible grouping when its helpers are claimed elsewhere.
//   - WithoutExtensions() keeps the same bases but never augments them, so
//     no grouping holds more than MaxGroupSize-1 plants.
//
// Ranking (Less, applied by Generate)
//
//  1. Base.Score        descending
//  2. Extension.Score   descending
//  3. Size              ascending  (no zero-value padding at equal score)
//  4. Preferred count   descending (favor the user's own plants)
//  5. Base combination  lexicographic ascending
//  6. Extension plant   ascending ("" first)
//
// The key is total over distinct records, so the output order is fully
// reproducible for identical inputs regardless of dataset record order.
//
// Options
//
//   - WithMaxGroupSize(n): 2 ≤ n ≤ 5, default 4; otherwise ErrOptionViolation.
//   - WithoutExtensions(): disable augmentation.
//   - WithLogger(l):       structured debug logging (default: discard).
//
// Complexity
//
//	With p preferred plants and bound m there are Σ_{k<m} C(p,k) bases; each
//	tries at most H extensions (H = distinct helpers of its members).
package candidate
