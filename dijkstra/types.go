// SPDX-License-Identifier: MIT
//
// types.go defines the result type, configuration options and sentinel
// errors for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source: ID of the starting vertex (must be non-empty and present in the graph).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source string // The ID of the source vertex
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// DefaultOptions returns Options for the given source.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// Result is the shortest-path tree rooted at Source.
//
// Dist maps every vertex of the graph to its distance from Source
// (+Inf when unreachable). Prev maps every reached vertex except Source to the
// edge through which it was reached on one shortest path.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]*core.Edge
}

// Reachable reports whether v was settled with a finite distance.
func (r *Result) Reachable(v string) bool {
	d, ok := r.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the edges of the shortest path Source → target,
// in travel order. It returns (nil, false) if target is unreachable and an
// empty, non-nil slice when target == Source.
//
// Complexity: O(path length).
func (r *Result) PathTo(target string) ([]*core.Edge, bool) {
	if !r.Reachable(target) {
		return nil, false
	}

	var rev []*core.Edge
	for v := target; v != r.Source; {
		e := r.Prev[v]
		if e == nil {
			// A reached vertex always has a predecessor edge; a gap means the
			// tree is inconsistent with its own distances.
			return nil, false
		}
		rev = append(rev, e)
		v = e.Other(v)
	}

	path := make([]*core.Edge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path, true
}
