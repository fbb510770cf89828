// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors shared by the shortest-path
// cache and the route-construction heuristic.
//
// A *Recorder is optional everywhere it is accepted: every method is safe to
// call on a nil receiver and then does nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "lvlroute"

// Solve outcomes used as the "outcome" label of SolvesTotal.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

// Recorder owns one set of collectors.
type Recorder struct {
	CacheLookups  *prometheus.CounterVec
	TreeBuild     prometheus.Histogram
	SolveDuration prometheus.Histogram
	RoutesBuilt   prometheus.Counter
	SolvesTotal   *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: "cache_lookups_total", Help: "Shortest-path cache lookups by result."},
			[]string{"result"},
		),
		TreeBuild: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: Namespace, Name: "tree_build_seconds", Help: "Time spent computing one shortest-path tree.", Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10)},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: Namespace, Name: "solve_duration_seconds", Help: "Greedy route construction duration in seconds.", Buckets: prometheus.DefBuckets},
		),
		RoutesBuilt: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: Namespace, Name: "routes_built_total", Help: "Vehicle routes produced by successful solves."},
		),
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: "solves_total", Help: "Route construction runs by outcome."},
			[]string{"outcome"},
		),
	}
	if reg == nil {
		return r, nil
	}

	for _, c := range r.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{r.CacheLookups, r.TreeBuild, r.SolveDuration, r.RoutesBuilt, r.SolvesTotal}
}

// CacheLookup counts one cache query.
func (r *Recorder) CacheLookup(hit bool) {
	if r == nil {
		return
	}
	if hit {
		r.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	r.CacheLookups.WithLabelValues("miss").Inc()
}

// TreeBuilt observes the duration of one shortest-path tree computation.
func (r *Recorder) TreeBuilt(d time.Duration) {
	if r == nil {
		return
	}
	r.TreeBuild.Observe(d.Seconds())
}

// Solved records one finished solve. routes is only counted for OutcomeOK.
func (r *Recorder) Solved(outcome string, d time.Duration, routes int) {
	if r == nil {
		return
	}
	r.SolvesTotal.WithLabelValues(outcome).Inc()
	r.SolveDuration.Observe(d.Seconds())
	if outcome == OutcomeOK {
		r.RoutesBuilt.Add(float64(routes))
	}
}
