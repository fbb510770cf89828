// SPDX-License-Identifier: MIT

package vrp_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlroute/vrp"
)

func TestRandomInstance(t *testing.T) {
	cfg := vrp.RandomConfig{Name: "rnd", Nodes: 40, Density: 0.1, Clients: 12, Capacity: 4, Seed: 11}
	in, err := vrp.RandomInstance(cfg)
	require.NoError(t, err)
	require.NoError(t, in.Validate())

	require.Equal(t, "rnd", in.Name())
	require.Equal(t, 40, in.Graph().VertexCount())
	require.Equal(t, 12, in.ClientCount())
	capacity, err := in.Capacity()
	require.NoError(t, err)
	require.Equal(t, 4, capacity)

	depot, err := in.Depot()
	require.NoError(t, err)
	seen := map[string]bool{depot: true}
	for _, c := range in.Clients() {
		require.False(t, seen[c], "client %s repeated or equal to depot", c)
		seen[c] = true
		require.True(t, in.Graph().HasVertex(c))
	}

	for _, e := range in.Graph().Edges() {
		require.GreaterOrEqual(t, e.Weight, 1.0)
		require.Less(t, e.Weight, 100.0)
	}

	// Same config, same instance.
	again, err := vrp.RandomInstance(cfg)
	require.NoError(t, err)
	require.Equal(t, in.Clients(), again.Clients())
	againDepot, err := again.Depot()
	require.NoError(t, err)
	require.Equal(t, depot, againDepot)
}

func TestRandomInstance_Errors(t *testing.T) {
	_, err := vrp.RandomInstance(vrp.RandomConfig{Nodes: 3, Clients: 3, Capacity: 1})
	require.ErrorIs(t, err, vrp.ErrTooFewNodes)

	_, err = vrp.RandomInstance(vrp.RandomConfig{Nodes: 5, Clients: 2, Capacity: 0, Seed: 1})
	require.ErrorIs(t, err, vrp.ErrInvalidCapacity)

	for name, cfg := range map[string]vrp.RandomConfig{
		"inverted range":   {MinLength: 5, MaxLength: 2},
		"negative min":     {MinLength: -1, MaxLength: 2},
		"infinite max":     {MinLength: 1, MaxLength: math.Inf(1)},
		"unknown weights":  {Weights: "pareto"},
		"unknown topology": {Topology: "ring"},
		"unknown IDs":      {IDs: "roman"},
	} {
		t.Run(name, func(t *testing.T) {
			cfg.Nodes, cfg.Clients, cfg.Capacity, cfg.Seed = 5, 2, 1, 1
			_, err := vrp.RandomInstance(cfg)
			require.ErrorIs(t, err, vrp.ErrRandomConfig)
		})
	}
}

func TestRandomInstance_Weights(t *testing.T) {
	for _, weights := range []string{vrp.WeightsUniform, vrp.WeightsInteger, vrp.WeightsNormal, vrp.WeightsExponential} {
		t.Run(weights, func(t *testing.T) {
			in, err := vrp.RandomInstance(vrp.RandomConfig{
				Nodes: 30, Density: 0.2, Clients: 8, Capacity: 3, Seed: 4,
				MinLength: 2, MaxLength: 20, Weights: weights,
			})
			require.NoError(t, err)
			require.NoError(t, in.Validate())

			for _, e := range in.Graph().Edges() {
				require.GreaterOrEqual(t, e.Weight, 0.0)
				switch weights {
				case vrp.WeightsUniform:
					require.GreaterOrEqual(t, e.Weight, 2.0)
					require.Less(t, e.Weight, 20.0)
				case vrp.WeightsInteger:
					require.Equal(t, math.Trunc(e.Weight), e.Weight)
					require.GreaterOrEqual(t, e.Weight, 2.0)
					require.LessOrEqual(t, e.Weight, 20.0)
				case vrp.WeightsNormal:
					require.Equal(t, math.Round(e.Weight), e.Weight)
				}
			}
		})
	}
}

func TestRandomInstance_Topologies(t *testing.T) {
	grid, err := vrp.RandomInstance(vrp.RandomConfig{Nodes: 10, Clients: 4, Capacity: 2, Seed: 3, Topology: vrp.TopologyGrid})
	require.NoError(t, err)
	// 10 nodes → 3×4 grid: 3·3 + 4·2 roads.
	require.Equal(t, 12, grid.Graph().VertexCount())
	require.Equal(t, 17, grid.Graph().EdgeCount())
	depot, err := grid.Depot()
	require.NoError(t, err)
	require.True(t, strings.Contains(depot, ","), "grid IDs are r,c: %s", depot)

	complete, err := vrp.RandomInstance(vrp.RandomConfig{Nodes: 6, Clients: 3, Capacity: 2, Seed: 3, Topology: vrp.TopologyComplete, IDs: vrp.IDsLetters})
	require.NoError(t, err)
	require.Equal(t, 15, complete.Graph().EdgeCount())
	require.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, complete.Graph().Vertices())

	numbered, err := vrp.RandomInstance(vrp.RandomConfig{Nodes: 6, Clients: 3, Capacity: 2, Seed: 3})
	require.NoError(t, err)
	require.True(t, numbered.Graph().HasVertex("n0"))
}

func TestAssign_ReplacesRoles(t *testing.T) {
	in, err := vrp.NewInstance("line", lineGraph(t))
	require.NoError(t, err)
	require.NoError(t, in.SetDepot("D"))
	require.NoError(t, in.AddClient("A"))
	require.NoError(t, in.SetCapacity(1))

	require.NoError(t, vrp.Assign(in, rand.New(rand.NewSource(5)), 3, 2))
	require.Equal(t, 3, in.ClientCount())
	capacity, err := in.Capacity()
	require.NoError(t, err)
	require.Equal(t, 2, capacity)

	depot, err := in.Depot()
	require.NoError(t, err)
	require.Equal(t, vrp.RoleDepot, in.Role(depot))
	require.NotContains(t, in.Clients(), depot)

	require.ErrorIs(t, vrp.Assign(in, rand.New(rand.NewSource(5)), 4, 2), vrp.ErrTooFewNodes)
	require.Error(t, vrp.Assign(in, nil, 1, 1))
}
