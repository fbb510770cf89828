// SPDX-License-Identifier: MIT

package greedy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlroute/metrics"
	"github.com/katalvlaran/lvlroute/vrp"
)

// Sentinel errors returned by report accessors.
var (
	// ErrNotComputed indicates an accessor called before a successful Compute.
	ErrNotComputed = errors.New("greedy: solution not computed")

	// ErrVehicleIndex indicates an out-of-range vehicle index.
	ErrVehicleIndex = errors.New("greedy: vehicle index out of range")

	// ErrClientIndex indicates an out-of-range client index within a route.
	ErrClientIndex = errors.New("greedy: client index out of range")
)

// InfeasibleError reports clients that no vehicle can reach from the depot.
// It matches vrp.ErrNoFeasibleRoute under errors.Is.
type InfeasibleError struct {
	Depot       string
	Unreachable []string // sorted
	Routed      int      // clients placed on routes before construction stopped
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("greedy: %d client(s) unreachable from depot %q after routing %d: %s",
		len(e.Unreachable), e.Depot, e.Routed, strings.Join(e.Unreachable, ", "))
}

// Unwrap returns vrp.ErrNoFeasibleRoute.
func (e *InfeasibleError) Unwrap() error { return vrp.ErrNoFeasibleRoute }

// Option configures a Solution.
type Option func(*Solution)

// WithLogger sets the logger. Route decisions are logged at V(1), the solve
// summary at V(0).
func WithLogger(log logr.Logger) Option {
	return func(s *Solution) { s.log = log }
}

// WithRecorder sets the metrics recorder. nil disables metrics.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Solution) { s.rec = rec }
}
