// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The result is a shortest-path tree: a distance per vertex and, for every
//     reached vertex, the predecessor edge. Recording edges rather than vertices
//     keeps path reconstruction exact on multigraphs with parallel edges.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - opts:
//	      • Source(string): required, the starting vertex ID.
//	  - Result.Dist:   map[v] = distance from Source, +Inf if unreachable.
//	  - Result.Prev:   map[v] = edge entering v on one shortest path.
//	  - Result.PathTo: edges Source → target in travel order.
//
// Ties:
//
//	Among equally short paths, the one whose last edge was relaxed first wins.
//	Edges are relaxed in insertion order, so the choice is deterministic for a
//	given graph, but it is not canonical across graphs.
//
// Thread safety:
//
//   - Dijkstra only reads the graph. Concurrent mutation of the graph while it
//     runs produces an undefined (though memory-safe) tree.
//   - Results are never mutated after return and may be shared freely.
//
// See also package spcache, which memoizes one Result per source.
package dijkstra
