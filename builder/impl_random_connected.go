// SPDX-License-Identifier: MIT
// Package: lvlroute/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, p).
//
// Model:
//   - A random recursive spanning tree guarantees connectivity: vertices are
//     visited in a shuffled order and each one attaches to a uniformly chosen
//     earlier vertex.
//   - Every remaining unordered pair {i,j}, i<j, is then added independently
//     with probability p (Erdős–Rényi overlay).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when n > 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Never emits parallel edges or loops.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(n + E) for the pair set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlroute/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomConnected    = 1
)

// RandomConnected returns a Constructor that builds a connected random graph
// over n vertices: a random spanning tree plus extra edges with probability p.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnected {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomConnected, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomConnected, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && n > 1 {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomConnected, n)
		if err != nil {
			return err
		}
		if n == 1 {
			return nil
		}

		type pair struct{ i, j int }
		linked := make(map[pair]struct{}, 2*n)
		link := func(i, j int) error {
			if i > j {
				i, j = j, i
			}
			linked[pair{i, j}] = struct{}{}

			return addEdge(g, cfg, methodRandomConnected, ids[i], ids[j])
		}

		// 1) Spanning tree over a shuffled visiting order.
		order := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			if err = link(order[k], order[cfg.rng.Intn(k)]); err != nil {
				return err
			}
		}

		// 2) Overlay: stable trial order i asc, j asc.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, ok := linked[pair{i, j}]; ok {
					continue
				}
				if cfg.rng.Float64() < p {
					if err = link(i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
