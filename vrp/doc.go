// Package vrp models a capacitated Vehicle Routing Problem instance over a
// weighted, undirected *core.Graph.
//
// An Instance composes a graph with:
//
//   - one depot, the start and end of every route (SetDepot);
//   - an ordered list of clients (AddClient), whose insertion order is the
//     index used by Client(i);
//   - a vehicle capacity, the maximum number of clients per route,
//     settable once (SetCapacity).
//
// Querying the depot or the capacity before they are set fails with
// ErrUninitialized; Clients on an instance without clients returns an empty
// slice.
//
// Shortest distances between nodes come from Distances, a per-instance
// spcache.Cache created on first use. The graph is assumed static while an
// instance is being solved; after mutating it call ResetDistances.
//
// Solution is the report contract implemented by route-construction
// algorithms (see package greedy); Summarize turns any Solution into a
// serializable Report. RandomInstance and Assign generate reproducible random
// instances.
package vrp
