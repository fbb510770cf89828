// SPDX-License-Identifier: MIT

package greedy_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/greedy"
	"github.com/katalvlaran/lvlroute/metrics"
	"github.com/katalvlaran/lvlroute/vrp"
)

type edge struct {
	from, to string
	w        float64
}

// newInstance builds an instance over a multigraph with the given edges.
func newInstance(t *testing.T, depot string, clients []string, capacity int, edges []edge, isolated ...string) *vrp.Instance {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	for _, id := range isolated {
		require.NoError(t, g.AddVertex(id))
	}

	in, err := vrp.NewInstance(t.Name(), g)
	require.NoError(t, err)
	if depot != "" {
		require.NoError(t, in.SetDepot(depot))
	}
	for _, c := range clients {
		require.NoError(t, in.AddClient(c))
	}
	if capacity > 0 {
		require.NoError(t, in.SetCapacity(capacity))
	}

	return in
}

var scenario = []edge{
	{"D", "A", 1}, {"D", "B", 5}, {"D", "C", 2},
	{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 1},
}

func TestCompute_Scenario(t *testing.T) {
	// With shortest paths d(D,B)=2 (via A) and d(A,C)=2 (via B):
	// route 1: D→A (1), A→B (1 ≤ d(A,D)=1), full → [A B], length 1+1+2.
	// route 2: D→C (2) → [C], length 2+2.
	s := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, 2, scenario))
	require.NoError(t, s.Compute())
	require.True(t, s.Computed())

	require.Equal(t, [][]string{{"A", "B"}, {"C"}}, s.Routes())
	require.Equal(t, 2, s.VehicleCount())
	require.Equal(t, 8.0, s.TotalPathLength())

	l0, err := s.VehiclePathLength(0)
	require.NoError(t, err)
	require.Equal(t, 4.0, l0)
	l1, err := s.VehiclePathLength(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, l1)

	n, err := s.ClientCount(0)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	c, err := s.Client(0, 1)
	require.NoError(t, err)
	require.Equal(t, "B", c)

	require.Equal(t, 1, s.Vehicle("C"))
	require.Equal(t, 0, s.Vehicle("A"))
	require.Equal(t, -1, s.Vehicle("D"))
	require.Equal(t, -1, s.Vehicle("nope"))
}

func TestCompute_ReturnsToDepotWhenClientIsFarther(t *testing.T) {
	// From X, Y is 3 away (via D) but the depot only 1: the vehicle goes home.
	s := greedy.New(newInstance(t, "D", []string{"X", "Y"}, 5, []edge{
		{"D", "X", 1}, {"D", "Y", 2}, {"X", "Y", 5},
	}))
	require.NoError(t, s.Compute())
	require.Equal(t, [][]string{{"X"}, {"Y"}}, s.Routes())
	require.Equal(t, 6.0, s.TotalPathLength())
}

func TestCompute_EqualDistanceKeepsGoing(t *testing.T) {
	// d(X,Y) == d(X,D): not strictly farther, so Y joins the route.
	s := greedy.New(newInstance(t, "D", []string{"X", "Y"}, 5, []edge{
		{"D", "X", 1}, {"X", "Y", 1}, {"D", "Y", 5},
	}))
	require.NoError(t, s.Compute())
	require.Equal(t, [][]string{{"X", "Y"}}, s.Routes())
	require.Equal(t, 4.0, s.TotalPathLength())
}

func TestCompute_CapacityEqualsClientCount(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"C", "A", "B"}, 3, []edge{
		{"D", "A", 1}, {"A", "B", 1}, {"B", "C", 1},
	}))
	require.NoError(t, s.Compute())
	require.Equal(t, [][]string{{"A", "B", "C"}}, s.Routes())
	require.Equal(t, 6.0, s.TotalPathLength())
}

func TestCompute_UnboundedCapacity(t *testing.T) {
	// D→A (1), A→B (1 ≤ d(A,D)=1), B→C (1 ≤ d(B,D)=2), C→D (2).
	s := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, math.MaxInt, scenario))
	require.NotPanics(t, func() { require.NoError(t, s.Compute()) })
	require.Equal(t, [][]string{{"A", "B", "C"}}, s.Routes())
	require.Equal(t, 5.0, s.TotalPathLength())
}

func TestCompute_CapacityOne(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, 1, scenario))
	require.NoError(t, s.Compute())
	require.Equal(t, 3, s.VehicleCount())
	for v := 0; v < 3; v++ {
		n, err := s.ClientCount(v)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	// Round trips: 2*1 + 2*2 + 2*2.
	require.Equal(t, 10.0, s.TotalPathLength())
}

func TestCompute_ZeroDistanceClient(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A"}, 2, []edge{{"D", "A", 0}}))
	require.NoError(t, s.Compute())
	require.Equal(t, [][]string{{"A"}}, s.Routes())
	require.Zero(t, s.TotalPathLength())
}

func TestCompute_ParallelEdgesUseLighter(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A"}, 1, []edge{{"D", "A", 5}, {"A", "D", 2}}))
	require.NoError(t, s.Compute())
	require.Equal(t, 4.0, s.TotalPathLength())

	edges, err := s.RouteEdges(0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	for _, e := range edges {
		require.Equal(t, 2.0, e.Weight)
	}
}

func TestCompute_NoClients(t *testing.T) {
	s := greedy.New(newInstance(t, "D", nil, 2, scenario))
	require.NoError(t, s.Compute())
	require.True(t, s.Computed())
	require.Zero(t, s.VehicleCount())
	require.Zero(t, s.TotalPathLength())
	require.Empty(t, s.Routes())
}

func TestCompute_IsolatedClient(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A", "Z"}, 3, []edge{{"D", "A", 1}}, "Z"))

	err := s.Compute()
	require.ErrorIs(t, err, vrp.ErrNoFeasibleRoute)

	var inf *greedy.InfeasibleError
	require.True(t, errors.As(err, &inf))
	require.Equal(t, "D", inf.Depot)
	require.Equal(t, []string{"Z"}, inf.Unreachable)
	require.Equal(t, 1, inf.Routed)
	require.Contains(t, err.Error(), `"D"`)

	// Nothing is published.
	require.False(t, s.Computed())
	require.Zero(t, s.VehicleCount())
	_, err = s.ClientCount(0)
	require.ErrorIs(t, err, greedy.ErrNotComputed)
	require.Equal(t, -1, s.Vehicle("A"))
}

func TestCompute_OnlyIsolatedClients(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"Y", "X"}, 3, []edge{{"D", "A", 1}}, "X", "Y"))

	var inf *greedy.InfeasibleError
	require.ErrorAs(t, s.Compute(), &inf)
	require.Equal(t, []string{"X", "Y"}, inf.Unreachable)
	require.Zero(t, inf.Routed)
}

func TestCompute_Uninitialized(t *testing.T) {
	noDepot := greedy.New(newInstance(t, "", []string{"A"}, 2, scenario))
	require.ErrorIs(t, noDepot.Compute(), vrp.ErrUninitialized)

	noCapacity := greedy.New(newInstance(t, "D", []string{"A"}, 0, scenario))
	require.ErrorIs(t, noCapacity.Compute(), vrp.ErrUninitialized)
	require.False(t, noCapacity.Computed())
}

func TestCompute_NegativeLength(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A"}, 2, []edge{{"D", "A", -1}}))
	require.ErrorContains(t, s.Compute(), "negative length")
}

func TestReport_IndexErrors(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, 2, scenario))
	_, err := s.VehiclePathLength(0)
	require.ErrorIs(t, err, greedy.ErrNotComputed)
	_, err = s.RouteEdges(0)
	require.ErrorIs(t, err, greedy.ErrNotComputed)

	require.NoError(t, s.Compute())

	_, err = s.ClientCount(2)
	require.ErrorIs(t, err, greedy.ErrVehicleIndex)
	_, err = s.Route(-1)
	require.ErrorIs(t, err, greedy.ErrVehicleIndex)
	_, err = s.VehiclePathLength(5)
	require.ErrorIs(t, err, greedy.ErrVehicleIndex)
	_, err = s.Client(1, 1)
	require.ErrorIs(t, err, greedy.ErrClientIndex)

	r, err := s.Route(0)
	require.NoError(t, err)
	r[0] = "mutated"
	again, err := s.Route(0)
	require.NoError(t, err)
	require.Equal(t, "A", again[0])
}

func TestRouteEdges_ClosedWalk(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, 2, scenario))
	require.NoError(t, s.Compute())

	for v := 0; v < s.VehicleCount(); v++ {
		edges, err := s.RouteEdges(v)
		require.NoError(t, err)
		length, err := s.VehiclePathLength(v)
		require.NoError(t, err)
		require.Equal(t, length, closedWalk(t, "D", edges))
	}
}

func TestRouteEdges_KeepsDepotOfCompute(t *testing.T) {
	in := newInstance(t, "D", []string{"A", "B", "C"}, 2, scenario, "E")
	s := greedy.New(in)
	require.NoError(t, s.Compute())

	// Moving the depot afterwards does not rewrite the published tours.
	require.NoError(t, in.SetDepot("E"))
	for v := 0; v < s.VehicleCount(); v++ {
		edges, err := s.RouteEdges(v)
		require.NoError(t, err)
		length, err := s.VehiclePathLength(v)
		require.NoError(t, err)
		require.Equal(t, length, closedWalk(t, "D", edges))
	}
}

func TestCompute_RecorderAndLogger(t *testing.T) {
	rec, err := metrics.NewRecorder(nil)
	require.NoError(t, err)
	log := testr.NewWithOptions(t, testr.Options{Verbosity: 1})

	ok := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, 2, scenario),
		greedy.WithRecorder(rec), greedy.WithLogger(log))
	require.NoError(t, ok.Compute())

	bad := greedy.New(newInstance(t, "D", []string{"Z"}, 2, scenario, "Z"),
		greedy.WithRecorder(rec), greedy.WithLogger(log))
	require.Error(t, bad.Compute())

	require.Equal(t, 1.0, testutil.ToFloat64(rec.SolvesTotal.WithLabelValues(metrics.OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.SolvesTotal.WithLabelValues(metrics.OutcomeInfeasible)))
	require.Equal(t, 2.0, testutil.ToFloat64(rec.RoutesBuilt))
}

func TestCompute_Recompute(t *testing.T) {
	s := greedy.New(newInstance(t, "D", []string{"A", "B", "C"}, 2, scenario))
	require.NoError(t, s.Compute())
	first := s.Routes()
	require.NoError(t, s.Compute())
	require.Equal(t, first, s.Routes())
	require.Equal(t, 8.0, s.TotalPathLength())
}

// closedWalk follows edges from start, checks the walk ends at start and
// returns its total weight.
func closedWalk(t *testing.T, start string, edges []*core.Edge) float64 {
	t.Helper()
	cur := start
	var total float64
	for _, e := range edges {
		next := e.Other(cur)
		require.NotEmpty(t, next, "edge %s does not touch %s", e.ID, cur)
		cur = next
		total += e.Weight
	}
	require.Equal(t, start, cur)

	return total
}
