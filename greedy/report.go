// SPDX-License-Identifier: MIT

package greedy

import (
	"fmt"

	"github.com/katalvlaran/lvlroute/core"
)

// Computed reports whether Compute has succeeded at least once.
func (s *Solution) Computed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.computed
}

// VehicleCount returns the number of routes, 0 before Compute.
func (s *Solution) VehicleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.routes)
}

// ClientCount returns the number of clients served by vehicle.
func (s *Solution) ClientCount(vehicle int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkVehicle(vehicle); err != nil {
		return 0, err
	}

	return len(s.routes[vehicle]), nil
}

// Client returns the i-th client served by vehicle.
func (s *Solution) Client(vehicle, i int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkVehicle(vehicle); err != nil {
		return "", err
	}
	route := s.routes[vehicle]
	if i < 0 || i >= len(route) {
		return "", fmt.Errorf("%w: %d not in [0,%d) for vehicle %d", ErrClientIndex, i, len(route), vehicle)
	}

	return route[i], nil
}

// Route returns a copy of the clients served by vehicle, in visiting order.
func (s *Solution) Route(vehicle int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkVehicle(vehicle); err != nil {
		return nil, err
	}

	return append([]string(nil), s.routes[vehicle]...), nil
}

// Routes returns a copy of every route.
func (s *Solution) Routes() [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]string, len(s.routes))
	for v, r := range s.routes {
		out[v] = append([]string(nil), r...)
	}

	return out
}

// VehiclePathLength returns the length of the closed tour
// depot → first client → … → last client → depot.
func (s *Solution) VehiclePathLength(vehicle int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkVehicle(vehicle); err != nil {
		return 0, err
	}

	return s.lengths[vehicle], nil
}

// TotalPathLength returns the sum of every vehicle path length, 0 before Compute.
func (s *Solution) TotalPathLength() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, l := range s.lengths {
		total += l
	}

	return total
}

// Vehicle returns the index of the route serving client, or -1 when the
// solution is not computed or client is not served.
func (s *Solution) Vehicle(client string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for v, route := range s.routes {
		for _, c := range route {
			if c == client {
				return v
			}
		}
	}

	return -1
}

// RouteEdges returns the graph edges a vehicle drives along, in order: the
// shortest paths depot → first client, between consecutive clients and
// last client → depot, concatenated.
func (s *Solution) RouteEdges(vehicle int) ([]*core.Edge, error) {
	s.mu.RLock()
	if err := s.checkVehicle(vehicle); err != nil {
		s.mu.RUnlock()
		return nil, err
	}
	stops := make([]string, 0, len(s.routes[vehicle])+2)
	stops = append(stops, s.depot)
	stops = append(stops, s.routes[vehicle]...)
	stops = append(stops, s.depot)
	s.mu.RUnlock()

	dist := s.inst.Distances()
	var edges []*core.Edge
	for i := 1; i < len(stops); i++ {
		leg, err := dist.PathEdges(stops[i-1], stops[i])
		if err != nil {
			return nil, fmt.Errorf("greedy: vehicle %d leg %s→%s: %w", vehicle, stops[i-1], stops[i], err)
		}
		edges = append(edges, leg...)
	}

	return edges, nil
}

// checkVehicle must be called with s.mu held.
func (s *Solution) checkVehicle(vehicle int) error {
	if !s.computed {
		return ErrNotComputed
	}
	if vehicle < 0 || vehicle >= len(s.routes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVehicleIndex, vehicle, len(s.routes))
	}

	return nil
}
