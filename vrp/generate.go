// SPDX-License-Identifier: MIT

package vrp

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlroute/builder"
	"github.com/katalvlaran/lvlroute/core"
)

// Edge-length distributions of RandomConfig.Weights. Each is derived from
// the [MinLength, MaxLength) range.
const (
	WeightsUniform     = "uniform"     // U[min, max)
	WeightsInteger     = "integer"     // integers in [⌊min⌋, ⌊max⌋]
	WeightsNormal      = "normal"      // N((min+max)/2, (max-min)/6), rounded, clipped at 0
	WeightsExponential = "exponential" // Exp with mean (min+max)/2
)

// Road network shapes of RandomConfig.Topology.
const (
	TopologyConnected = "connected" // random spanning tree plus Density overlay
	TopologyGrid      = "grid"      // smallest near-square grid with ≥ Nodes cells, IDs "r,c"
	TopologyComplete  = "complete"  // every pair of nodes linked
)

// Node ID schemes of RandomConfig.IDs. Grids always use "r,c".
const (
	IDsNumbered = "numbered" // n0, n1, ...
	IDsLetters  = "letters"  // A … Z, AA, AB, ...
)

// RandomConfig describes a random instance. Empty Weights, Topology and IDs
// select uniform, connected and numbered.
type RandomConfig struct {
	Name      string
	Nodes     int     // graph size, ≥ Clients+1
	Density   float64 // probability of each extra edge beyond the spanning tree
	Clients   int
	Capacity  int
	Seed      int64
	MinLength float64 // edge length range; both zero means [1,100)
	MaxLength float64
	Weights   string
	Topology  string
	IDs       string
	Options   []Option // passed to NewInstance
}

// RandomInstance builds a random road network with the builder package and
// draws the depot and clients from the same seeded RNG, so equal configs
// produce equal instances.
func RandomInstance(cfg RandomConfig) (*Instance, error) {
	if cfg.Nodes < cfg.Clients+1 {
		return nil, fmt.Errorf("%w: %d nodes for 1 depot and %d clients", ErrTooFewNodes, cfg.Nodes, cfg.Clients)
	}
	weights, err := weightOption(cfg)
	if err != nil {
		return nil, err
	}
	ids, err := idOption(cfg.IDs)
	if err != nil {
		return nil, err
	}
	topology, err := topologyConstructor(cfg)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithRand(rng), weights, ids},
		topology,
	)
	if err != nil {
		return nil, fmt.Errorf("vrp: random instance: %w", err)
	}

	in, err := NewInstance(cfg.Name, g, cfg.Options...)
	if err != nil {
		return nil, err
	}
	if err = Assign(in, rng, cfg.Clients, cfg.Capacity); err != nil {
		return nil, err
	}

	return in, nil
}

func weightOption(cfg RandomConfig) (builder.BuilderOption, error) {
	minLen, maxLen := cfg.MinLength, cfg.MaxLength
	if minLen == 0 && maxLen == 0 {
		minLen, maxLen = 1, 100
	}
	if minLen < 0 || maxLen < minLen || math.IsInf(maxLen, 0) || math.IsNaN(minLen) || math.IsNaN(maxLen) {
		return nil, fmt.Errorf("%w: length range [%g,%g)", ErrRandomConfig, minLen, maxLen)
	}

	switch cfg.Weights {
	case "", WeightsUniform:
		return builder.WithUniformWeight(minLen, maxLen), nil
	case WeightsInteger:
		if maxLen > math.MaxInt32 {
			return nil, fmt.Errorf("%w: integer lengths up to %g", ErrRandomConfig, maxLen)
		}
		return builder.WithIntegerWeight(int(minLen), int(maxLen)), nil
	case WeightsNormal:
		return builder.WithNormalWeight((minLen+maxLen)/2, (maxLen-minLen)/6), nil
	case WeightsExponential:
		mean := (minLen + maxLen) / 2
		if mean == 0 {
			return nil, fmt.Errorf("%w: exponential lengths need a positive mean", ErrRandomConfig)
		}
		return builder.WithExponentialWeight(1 / mean), nil
	default:
		return nil, fmt.Errorf("%w: unknown weights %q", ErrRandomConfig, cfg.Weights)
	}
}

func idOption(scheme string) (builder.BuilderOption, error) {
	switch scheme {
	case "", IDsNumbered:
		return builder.WithSymbNumb("n"), nil
	case IDsLetters:
		return builder.WithExcelColumnIDs(), nil
	default:
		return nil, fmt.Errorf("%w: unknown ID scheme %q", ErrRandomConfig, scheme)
	}
}

func topologyConstructor(cfg RandomConfig) (builder.Constructor, error) {
	switch cfg.Topology {
	case "", TopologyConnected:
		return builder.RandomConnected(cfg.Nodes, cfg.Density), nil
	case TopologyGrid:
		rows := int(math.Sqrt(float64(cfg.Nodes)))
		if rows < 1 {
			rows = 1
		}
		cols := (cfg.Nodes + rows - 1) / rows
		return builder.Grid(rows, cols), nil
	case TopologyComplete:
		return builder.Complete(cfg.Nodes), nil
	default:
		return nil, fmt.Errorf("%w: unknown topology %q", ErrRandomConfig, cfg.Topology)
	}
}

// Assign re-rolls the roles of an existing instance: a random depot, then
// clientCount distinct clients other than the depot, and the given capacity.
// Previous roles and capacity are discarded.
func Assign(in *Instance, rng *rand.Rand, clientCount, capacity int) error {
	if rng == nil {
		return errors.New("vrp: assign: rng is nil")
	}
	if capacity < 1 {
		return fmt.Errorf("vrp: assign: %w: got %d", ErrInvalidCapacity, capacity)
	}
	nodes := in.g.Vertices()
	if clientCount < 0 || len(nodes) < clientCount+1 {
		return fmt.Errorf("vrp: assign: %w: %d nodes for 1 depot and %d clients", ErrTooFewNodes, len(nodes), clientCount)
	}

	depot := nodes[rng.Intn(len(nodes))]
	taken := map[string]bool{depot: true}
	clients := make([]string, 0, clientCount)
	for len(clients) < clientCount {
		c := nodes[rng.Intn(len(nodes))]
		if taken[c] {
			continue
		}
		taken[c] = true
		clients = append(clients, c)
	}
	in.assign(depot, clients, capacity)

	return nil
}
