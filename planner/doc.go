// Package planner wires the recommendation pipeline together and produces
// presentation-ready results.
//
//	selection ─► candidate.Generate ─► bed.Partition ─► Result
//
// Plan is safe for concurrent use over one shared *benefit.Graph: the graph
// is read-only and every call works on its own copy of the selection.
//
// Two lighter reports complement Plan:
//
//   - Companions lists, for each selected plant, the other selected plants
//     it helps.
//   - TopHelpers suggests unselected plants that help the most selected
//     plants.
package planner
