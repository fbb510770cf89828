// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors (incident edges) and NeighborIDs.
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - NeighborIDs() returns unique IDs sorted ascending.
// Concurrency:
//   - Read locks in the order muVert -> muEdgeAdj.

package core

import "sort"

// Neighbors returns the edges leaving id.
//
// Adjacency policy:
//   - Undirected edges are returned for both endpoints.
//   - Directed edges are returned only for their From endpoint.
//   - A self-loop is returned once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e, ok := g.edges[eid]
			if !ok {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs of vertices reachable from id over one edge,
// sorted ascending. Errors are propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}
