// SPDX-License-Identifier: MIT
//
// greedy.go implements nearest-unserved-client route construction.
//
// Each vehicle leaves the depot and repeatedly drives to the closest client
// not yet served. It returns to the depot when it is full, when the closest
// client is farther than the depot, or when no remaining client is reachable.

package greedy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlroute/metrics"
	"github.com/katalvlaran/lvlroute/spcache"
	"github.com/katalvlaran/lvlroute/vrp"
)

var _ vrp.Solution = (*Solution)(nil)

// Solution is a greedy solution of a VRP instance and its report.
type Solution struct {
	inst *vrp.Instance
	log  logr.Logger
	rec  *metrics.Recorder

	mu       sync.RWMutex
	computed bool
	depot    string
	routes   [][]string
	lengths  []float64
}

// New returns an uncomputed solution for inst.
func New(inst *vrp.Instance, opts ...Option) *Solution {
	s := &Solution{
		inst: inst,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Instance returns the instance being solved.
func (s *Solution) Instance() *vrp.Instance { return s.inst }

// Compute builds the routes. It is all-or-nothing: on error the previously
// published routes, if any, are left untouched.
//
// Errors:
//   - vrp.ErrUninitialized when the depot or the capacity is unset.
//   - vrp.ErrNoFeasibleRoute (as *InfeasibleError) when clients are
//     unreachable from the depot.
//   - vrp.ErrUnknownNode from the distance cache.
func (s *Solution) Compute() error {
	start := time.Now()
	depot, routes, lengths, err := s.construct()
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, vrp.ErrNoFeasibleRoute) {
			outcome = metrics.OutcomeInfeasible
		}
		s.rec.Solved(outcome, elapsed, 0)
		s.log.Error(err, "route construction failed", "instance", s.inst.Name())

		return err
	}

	var total float64
	for _, l := range lengths {
		total += l
	}
	s.rec.Solved(metrics.OutcomeOK, elapsed, len(routes))
	s.log.Info("routes built", "instance", s.inst.Name(), "vehicles", len(routes), "total", total, "elapsed", elapsed)

	s.mu.Lock()
	s.computed = true
	s.depot = depot
	s.routes = routes
	s.lengths = lengths
	s.mu.Unlock()

	return nil
}

// construct returns the depot it routed from along with the routes.
func (s *Solution) construct() (string, [][]string, []float64, error) {
	if err := s.inst.Validate(); err != nil {
		return "", nil, nil, fmt.Errorf("greedy: %w", err)
	}
	depot, err := s.inst.Depot()
	if err != nil {
		return "", nil, nil, fmt.Errorf("greedy: %w", err)
	}
	capacity, err := s.inst.Capacity()
	if err != nil {
		return "", nil, nil, fmt.Errorf("greedy: %w", err)
	}

	dist := s.inst.Distances()
	left := s.inst.Clients()
	total := len(left)
	// total/capacity rounded up; capacity may be as large as math.MaxInt.
	vehicles := total / capacity
	if total%capacity != 0 {
		vehicles++
	}
	routes := make([][]string, 0, vehicles)

	for len(left) > 0 {
		route := make([]string, 0, min(capacity, len(left)))
		current := depot

		for len(route) < capacity && len(left) > 0 {
			idx, d, err := closest(dist, current, left)
			if err != nil {
				return "", nil, nil, err
			}
			if idx < 0 {
				s.log.V(1).Info("no reachable client left, returning to depot", "vehicle", len(routes), "at", current)
				break
			}
			if current != depot {
				back, err := dist.Distance(current, depot)
				if err != nil {
					return "", nil, nil, fmt.Errorf("greedy: distance back to depot: %w", err)
				}
				if d > back {
					s.log.V(1).Info("closest client farther than depot, returning", "vehicle", len(routes), "at", current, "closest", left[idx], "distance", d, "depot", back)
					break
				}
			}

			route = append(route, left[idx])
			current = left[idx]
			left[idx] = left[len(left)-1]
			left = left[:len(left)-1]
		}

		if len(route) == 0 {
			unreachable := append([]string(nil), left...)
			sort.Strings(unreachable)

			return "", nil, nil, &InfeasibleError{Depot: depot, Unreachable: unreachable, Routed: total - len(left)}
		}
		s.log.V(1).Info("route closed", "vehicle", len(routes), "clients", route)
		routes = append(routes, route)
	}

	lengths := make([]float64, len(routes))
	for v, route := range routes {
		l, err := tourLength(dist, depot, route)
		if err != nil {
			return "", nil, nil, fmt.Errorf("greedy: length of vehicle %d: %w", v, err)
		}
		lengths[v] = l
	}

	return depot, routes, lengths, nil
}

// closest returns the index of the remaining client nearest to from and its
// distance. Unreachable clients are skipped; -1 means none is reachable.
// The first client encountered wins exact ties.
func closest(dist *spcache.Cache, from string, left []string) (int, float64, error) {
	best, bestD := -1, math.Inf(1)
	for i, c := range left {
		d, err := dist.Distance(from, c)
		if errors.Is(err, vrp.ErrUnreachableNode) {
			continue
		}
		if err != nil {
			return -1, 0, fmt.Errorf("greedy: closest client to %q: %w", from, err)
		}
		if d < bestD {
			best, bestD = i, d
		}
	}

	return best, bestD, nil
}

// tourLength sums depot → route[0] → … → route[n-1] → depot.
func tourLength(dist *spcache.Cache, depot string, route []string) (float64, error) {
	var total float64
	prev := depot
	for _, c := range route {
		d, err := dist.Distance(prev, c)
		if err != nil {
			return 0, err
		}
		total += d
		prev = c
	}
	back, err := dist.Distance(prev, depot)
	if err != nil {
		return 0, err
	}

	return total + back, nil
}
