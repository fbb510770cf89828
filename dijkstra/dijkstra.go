// SPDX-License-Identifier: MIT
//
// dijkstra.go implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Predecessors are recorded as edges, so parallel edges resolve to the one actually used.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlroute/core"
)

// Dijkstra computes shortest distances from Options.Source to all other
// vertices in the weighted graph g.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare data structures for the algorithm.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]*core.Edge, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}

	// 5) Initialize algorithm state and run main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph           // read-only within Dijkstra
	options Options               // Source
	dist    map[string]float64    // vertex ID → current best distance from Source
	prev    map[string]*core.Edge // vertex ID → edge used to reach it
	visited map[string]bool       // vertex ID → distance finalized
	pq      nodePQ                // lazy min-heap
}

// init sets dist[v] = +Inf for every vertex, dist[Source] = 0 and seeds the heap.
func (r *runner) init(vertices []string) {
	inf := math.Inf(1)
	for _, v := range vertices {
		r.dist[v] = inf
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unsettled vertex and relaxes its edges,
// until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
// Only strictly shorter paths replace a recorded predecessor, so the first
// discovered shortest path wins among ties.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
