// Package lvlroute builds capacitated vehicle routes on road networks with a
// greedy nearest-client heuristic.
//
// 🚚 What is lvlroute?
//
//	A small, thread-safe library and CLI that brings together:
//		• Core primitives: weighted undirected multigraphs, safe under locks
//		• Shortest paths: Dijkstra with predecessor edges
//		• A memoized per-source shortest-path cache
//		• A VRP instance model: one depot, ordered clients, vehicle capacity
//		• Greedy route construction and a read-only solution report
//		• Random and YAML instances, Prometheus metrics, logr logging
//
// ✨ How a solve runs
//
//   - Each vehicle leaves the depot and repeatedly drives to the closest
//     unserved client by road distance.
//   - It heads home when it is full, or when the closest client is farther
//     from it than the depot is.
//   - Vehicles are dispatched until every client is served.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — Graph, Edge and thread-safe primitives
//	dijkstra/   — single-source shortest-path trees
//	spcache/    — memoized trees keyed by source node
//	builder/    — deterministic random and regular graph constructors
//	vrp/        — Instance, Solution contract, Report, random instances
//	greedy/     — the route-construction heuristic
//	instance/   — YAML instance documents
//	metrics/    — Prometheus collectors
//	cmd/vrpsolve — command-line driver
//
// Quick start:
//
//	in, _ := instance.LoadFile("city.yaml")
//	sol := greedy.New(in)
//	if err := sol.Compute(); err != nil {
//		// errors.Is(err, vrp.ErrNoFeasibleRoute) when a client is unreachable
//	}
//	fmt.Println(sol.VehicleCount(), sol.TotalPathLength())
//
//	go install github.com/katalvlaran/lvlroute/cmd/vrpsolve@latest
package lvlroute
