// Package builder provides deterministic generators of similarity
// matrices for tests, benchmarks and examples of the severo clustering
// engine.
//
// Overview:
//
//   - ReferenceTriangles: the fixed 9-node ring of three weighted
//     triangles whose singleton and ground-truth modularity values anchor
//     the engine's numeric tests (≈ −0.123 and ≈ 0.530).
//   - RingOfCliques: the parametrized family generalizing it — c cliques
//     of s nodes, ring-bridged; planted communities with tunable contrast.
//   - RandomSimilarity: seeded Erdős–Rényi-like symmetric weighted
//     matrices with a fixed trial order, for property tests and benches.
//
// Determinism:
//
//   - Same parameters and seed ⇒ byte-identical matrix. No global
//     randomness; stochastic generators take an explicit seed.
//
// Error handling (sentinel errors, errors.Is-matchable):
//
//   - ErrTooFewNodes, ErrInvalidProbability, ErrInvalidWeight.
//
// Generators return *sparse.Matrix ready for louvain.Louvain or
// louvain.NewNetwork.
package builder
