// Package builder provides deterministic graph constructors used to generate
// road networks for routing instances and test fixtures.
//
// The package offers:
//
//   - BuildGraph: the single orchestrator. It creates a *core.Graph, resolves
//     BuilderOptions into an immutable configuration and applies Constructors
//     in order.
//   - Constructors:
//     – RandomConnected(n, p): random spanning tree plus an Erdős–Rényi overlay;
//     always connected, so every vertex is reachable from every other.
//     – Grid(rows, cols):      4-neighborhood grid with IDs "r,c".
//     – Complete(n):           K_n.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge-length distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order produce the
//     same graph, edge IDs included.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
//   - Weights are finite and non-negative.
package builder
