// Package core provides a thread-safe in-memory Graph with string vertex IDs
// and optionally labeled edges, used as the storage layer for companion
// relationship graphs.
//
// The Graph G = (V,E) supports:
//
//   - Directed edges, at most one per ordered pair, no self-loops
//   - Free-text edge labels (WithLabel), e.g. "repels aphids"
//   - Constant-time neighbor lookup in both directions via two nested maps:
//     adjacencyList[from][to][edgeID] and reverseList[to][from][edgeID]
//   - Monotonic edge IDs ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), Successors() and
// Predecessors() all return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V·log V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error      // O(1)
//	HasEdge(from, to string) bool        // O(1)
//	EdgeBetween(from, to string) (*Edge, error)
//	Edges() []*Edge                      // O(E·log E)
//
//	// Neighborhoods
//	Successors(id string) []string       // O(d·log d), "from id"
//	Predecessors(id string) []string     // O(d·log d), "to id"
//
//	// Cloning
//	Clone() *Graph                       // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
package core
