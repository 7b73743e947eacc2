// Package bed partitions ranked candidate groupings into disjoint garden beds.
//
// Algorithm
//
//	Partition performs a single first-fit scan over an already ranked
//	candidate list: a candidate is accepted iff none of its plants has been
//	claimed by a previously accepted bed, in which case all its plants are
//	claimed. The scan terminates after len(ranked) steps.
//
//	This is a greedy heuristic. There is no backtracking and the result is
//	NOT guaranteed to be the best possible set packing; it only guarantees
//	that higher-ranked candidates are preferred and that beds never share a
//	plant.
//
// Guarantees
//
//   - Beds are pairwise plant-disjoint.
//   - Re-running Partition on the same ranked input yields the same beds.
//   - Every plant of every bed is tagged Preferred or Recommended, and each
//     bed carries its Score and the Effects that explain it.
//   - A bed holding only preferred plants scores exactly like its plant set
//     scored directly; only a Recommended plant limits Effects to the edges
//     where it is the helper.
//
// Complexity: O(N·m) for N candidates of at most m plants.
package bed
