// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors).
// Determinism:
//   - Successors()/Predecessors() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold the muEdgeAdj read lock.

package core

import "sort"

// Successors returns the unique IDs reachable from id by one edge
// (id is the From endpoint), sorted ascending.
//
// Unknown or empty id yields an empty, non-nil slice; this is a pure lookup,
// never an error.
//
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Successors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.adjacencyList[id])
}

// Predecessors returns the unique IDs that have an edge into id
// (id is the To endpoint), sorted ascending.
//
// Complexity: O(d log d), d = in-degree.
func (g *Graph) Predecessors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.reverseList[id])
}

// sortedKeys returns the keys of non-empty buckets, sorted.
func sortedKeys(m map[string]map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k, bucket := range m {
		if len(bucket) == 0 {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
