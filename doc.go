// Package companion turns a list of plants you want to grow into garden
// beds where neighbors help each other.
//
// 🌱 What is companion?
//
//	A small, deterministic recommendation engine built on a directed
//	"helps" graph between plants:
//		• Relationship datasets: CSV, JSON/YAML catalogs, XLSX, SQLite
//		• Benefit graph: who helps whom, and how ("repels aphids")
//		• Scoring: every helpful pair inside a group counts once
//		• Candidates: ranked groupings of your plants, plus one suggested helper
//		• Beds: a greedy, plant-disjoint selection of the best candidates
//
// ✨ Guarantees
//
//   - Deterministic: identical inputs always yield identical beds
//   - Disjoint: no plant is placed in two beds
//   - Complete: every known preferred plant ends up in some bed
//   - Honest: beds are a greedy heuristic, not a proven optimum
//
// Packages:
//
//	core/         thread-safe directed labeled graph primitives
//	benefit/      immutable BenefitGraph and its Builder
//	relstore/     dataset loaders producing a BenefitGraph
//	combo/        canonical plant combinations and their scores
//	candidate/    candidate generation and ranking
//	bed/          first-fit partitioning into garden beds
//	planner/      end-to-end pipeline and companion reports
//	cmd/companion command-line interface
//
// Quick ASCII example:
//
//	Basil ──repels pests──► Tomato ◄──deters nematodes── Marigold
//
//	preferred {Basil, Tomato} ⇒ one bed {Basil, Tomato, +Marigold}, score 2.
//
//	go install github.com/katalvlaran/companion/cmd/companion@latest
package companion
