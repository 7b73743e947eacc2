// Package benefit provides the companion-planting BenefitGraph: an immutable,
// directed graph of "helper helps helped" relationships between plants,
// stored on a core.Graph with a reverse index so both directions are O(1)
// lookups.
//
// What
//
//   - Builder accumulates relationships (helper, helped, effect) and
//     validates them: no empty names, no self-loops, at most one edge per
//     ordered pair.
//   - Build() freezes the result into a Graph that is safe to share across
//     goroutines; no mutating method is exposed on Graph.
//   - Graph answers:
//   - HelpersOf(p): plants that help p
//   - HelpedBy(p):  plants that p helps
//   - AllPlants():  every known plant, sorted
//   - Effect(h, d): the effect description of h→d, if any
//
// Duplicates
//
//	A dataset defines at most one relationship per ordered pair. When the
//	same pair is added twice the Builder applies its DuplicatePolicy:
//	  - LastWriteWins (default): the later effect replaces the earlier one;
//	    the OnDuplicate hook is told about the replacement.
//	  - RejectDuplicates: Add returns ErrDuplicateEdge.
//
// Determinism
//
//	Every enumeration is sorted (plants by name, edges by (Helper, Helped)),
//	so two graphs built from the same records in any order answer every
//	query identically.
//
// Usage
//
//	b, err := benefit.NewBuilder()
//	if err != nil { ... }
//	_ = b.Add("Basil", "Tomato", "repels pests")
//	g := b.Build()
//	g.HelpersOf("Tomato") // [Basil]
package benefit
