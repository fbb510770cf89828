// Package spcache memoizes single-source shortest-path trees over a
// weighted *core.Graph.
//
// The first query for a source runs Dijkstra once and keeps the whole tree:
// every later Distance, PathEdges or Path call from that source is answered
// from memory (O(1) for distances, O(path length) for reconstruction).
//
// Entries never expire on their own. The graph is assumed static while a
// Cache is in use; after mutating it the owner must call Invalidate or Reset.
//
// Concurrency:
//
//   - Lookups of populated sources take a read lock only.
//   - Concurrent first queries for the same source share one computation
//     (golang.org/x/sync/singleflight).
//   - A tree computed before Reset or Invalidate is returned to its callers
//     but never stored.
//
// Errors:
//
//	ErrUnknownNode      a node is not in the graph.
//	ErrUnreachableNode  no path connects the two nodes.
package spcache
