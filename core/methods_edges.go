// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by insertion sequence (e1, e2, ...).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between from and to and returns its ID.
// Missing endpoints are added as vertices.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Generate the edge ID, store the edge and link adjacency.
//  5. Mirror adjacency for undirected, non-loop edges.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}
	directed := g.Directed()
	multi := g.Multigraph()

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !multi && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed}
	g.edges[eid] = e
	link(g, from, to, eid)

	// 5) Mirror undirected
	if !directed && from != to {
		link(g, to, from, eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// link records eid in adjacency[from][to]. Caller holds muEdgeAdj.
func link(g *Graph, from, to, eid string) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacency[from] = inner
	}
	set, ok := inner[to]
	if !ok {
		set = make(map[string]struct{})
		inner[to] = set
	}
	set[eid] = struct{}{}
}

// nextEdgeID returns the next textual edge ID without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of an edge ID produced by nextEdgeID.
func edgeSeq(id string) uint64 {
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}

// sortEdges orders edges by insertion sequence, so "e2" precedes "e10".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeSeq(es[i].ID) < edgeSeq(es[j].ID) })
}
