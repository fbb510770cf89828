// SPDX-License-Identifier: MIT

package spcache

import (
	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/dijkstra"
)

// Tree is the immutable shortest-path tree of one source.
type Tree struct {
	source string
	res    *dijkstra.Result
}

// Source returns the vertex the tree is rooted at.
func (t *Tree) Source() string { return t.source }

// Reachable reports whether to has a finite distance from the source.
func (t *Tree) Reachable(to string) bool { return t.res.Reachable(to) }

// Distance returns the shortest distance to `to`, or false if unreachable.
func (t *Tree) Distance(to string) (float64, bool) {
	if !t.res.Reachable(to) {
		return 0, false
	}

	return t.res.Dist[to], true
}

// PathEdges returns a fresh slice with the edges of one shortest path
// source → to in travel order.
func (t *Tree) PathEdges(to string) ([]*core.Edge, bool) {
	return t.res.PathTo(to)
}

// ReachableCount returns the number of vertices with a finite distance,
// the source included.
func (t *Tree) ReachableCount() int {
	n := 0
	for v := range t.res.Dist {
		if t.res.Reachable(v) {
			n++
		}
	}

	return n
}
