// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface. It is the generic graph the routing packages compose;
// it carries no domain roles of its own.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 lengths
//   - Parallel edges / multi-graphs (WithMultiEdges), each independently weighted
//   - Self-loops (WithLoops)
//   - Constant-time edge insertion via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	HasVertex(id string) bool                               // O(1)
//	Vertices() []string                                     // O(V log V), sorted
//	AddEdge(from, to string, weight float64) (string, error) // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	GetEdge(id string) (*Edge, error)                       // O(1)
//	Edges() []*Edge                                         // O(E log E), insertion order
//	Neighbors(id string) ([]*Edge, error)                   // O(d log d)
//	NeighborIDs(id string) ([]string, error)                // O(d log d)
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, NaN or ±Inf.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// The graph is safe for concurrent use, but algorithms that cache results
// derived from it (see package spcache) assume it is not mutated while they run.
package core
