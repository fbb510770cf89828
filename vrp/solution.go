// SPDX-License-Identifier: MIT

package vrp

import "fmt"

// Solution is the read-only report of a route-construction run. Vehicles and
// clients are addressed by index; vehicle v serves clients
// Client(v, 0) … Client(v, ClientCount(v)-1) in that order, starting and
// ending at the depot.
type Solution interface {
	// Instance returns the solved instance.
	Instance() *Instance
	// Compute builds the routes.
	Compute() error
	// VehicleCount returns the number of routes.
	VehicleCount() int
	// ClientCount returns the number of clients served by a vehicle.
	ClientCount(vehicle int) (int, error)
	// Client returns the i-th client served by a vehicle.
	Client(vehicle, i int) (string, error)
	// Vehicle returns the index of the vehicle serving client, or -1.
	Vehicle(client string) int
	// VehiclePathLength returns the closed-tour length of a vehicle.
	VehiclePathLength(vehicle int) (float64, error)
	// TotalPathLength returns the sum of all vehicle path lengths.
	TotalPathLength() float64
}

// RouteReport describes one vehicle of a Report.
type RouteReport struct {
	Vehicle int      `json:"vehicle" yaml:"vehicle"`
	Clients []string `json:"clients" yaml:"clients"`
	Length  float64  `json:"length" yaml:"length"`
}

// Report is a serializable snapshot of a Solution.
type Report struct {
	Instance    string        `json:"instance" yaml:"instance"`
	Depot       string        `json:"depot" yaml:"depot"`
	Capacity    int           `json:"capacity" yaml:"capacity"`
	Vehicles    int           `json:"vehicles" yaml:"vehicles"`
	TotalLength float64       `json:"total_length" yaml:"total_length"`
	Routes      []RouteReport `json:"routes" yaml:"routes"`
}

// Summarize walks s through its accessors and returns a Report.
func Summarize(s Solution) (*Report, error) {
	in := s.Instance()
	depot, err := in.Depot()
	if err != nil {
		return nil, fmt.Errorf("vrp: summarize: %w", err)
	}
	capacity, err := in.Capacity()
	if err != nil {
		return nil, fmt.Errorf("vrp: summarize: %w", err)
	}

	rep := &Report{
		Instance:    in.Name(),
		Depot:       depot,
		Capacity:    capacity,
		Vehicles:    s.VehicleCount(),
		TotalLength: s.TotalPathLength(),
		Routes:      make([]RouteReport, 0, s.VehicleCount()),
	}
	for v := 0; v < s.VehicleCount(); v++ {
		n, err := s.ClientCount(v)
		if err != nil {
			return nil, fmt.Errorf("vrp: summarize vehicle %d: %w", v, err)
		}
		length, err := s.VehiclePathLength(v)
		if err != nil {
			return nil, fmt.Errorf("vrp: summarize vehicle %d: %w", v, err)
		}
		route := RouteReport{Vehicle: v, Clients: make([]string, n), Length: length}
		for i := 0; i < n; i++ {
			if route.Clients[i], err = s.Client(v, i); err != nil {
				return nil, fmt.Errorf("vrp: summarize vehicle %d: %w", v, err)
			}
		}
		rep.Routes = append(rep.Routes, route)
	}

	return rep, nil
}
