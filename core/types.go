// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types, and provides
// thread-safe primitives for building, querying, and cloning directed graphs.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop from a vertex to itself.
//	ErrMultiEdgeNotAllowed - attempt to add a second edge for the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a one-way connection between two vertices.
//
// Label is free text attached at creation time (empty when not set).
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Label is an optional human-readable annotation.
	Label string
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithLabel attaches a text label to the edge.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// adjacency is a nested map: outer vertex → other vertex → edge IDs.
type adjacency map[string]map[string]map[string]struct{}

// Graph is the core in-memory directed graph.
//
// muVert protects the vertices set; muEdgeAdj protects edges and both
// adjacency indexes. Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacencyList, reverseList

	// Storage
	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacencyList[from][to][edgeID]; reverseList[to][from][edgeID].
	adjacencyList adjacency
	reverseList   adjacency
}

// NewGraph creates an empty directed Graph. Self-loops and parallel edges
// for the same ordered pair are rejected.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:      make(map[string]struct{}),
		edges:         make(map[string]*Edge),
		adjacencyList: make(adjacency),
		reverseList:   make(adjacency),
	}
}
