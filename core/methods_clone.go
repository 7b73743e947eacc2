// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: vertices, edges, and both
// adjacency indexes.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
		clone.reverseList[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		link(clone.adjacencyList, e.From, e.To, eid)
		link(clone.reverseList, e.To, e.From, eid)
	}

	return clone
}
