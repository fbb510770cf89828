// Package greedy builds feasible VRP solutions with a nearest-neighbor
// construction heuristic.
//
// Algorithm, repeated until every client is served:
//
//  1. A new vehicle starts at the depot.
//  2. While the vehicle has room, pick the remaining client with the smallest
//     shortest-path distance from the vehicle's position. Clients unreachable
//     from there are never candidates.
//  3. Away from the depot, if that client is strictly farther than the depot,
//     the vehicle returns instead; the client opens a later route.
//  4. Otherwise serve it and move there.
//
// A vehicle also returns when no remaining client is reachable. If a vehicle
// leaving the depot cannot serve anyone, Compute fails with an
// *InfeasibleError (errors.Is(err, vrp.ErrNoFeasibleRoute)) listing the
// stranded clients, and no routes are published.
//
// The heuristic makes no attempt at optimality and never backtracks. Distances
// come from the instance's shared spcache.Cache, so each source is run through
// Dijkstra at most once per solve.
//
// After a successful Compute, Solution serves as the report: VehicleCount,
// ClientCount, Client, Route(s), VehiclePathLength, TotalPathLength, Vehicle
// and RouteEdges.
package greedy
