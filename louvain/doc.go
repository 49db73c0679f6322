// Package louvain provides a precise, allocation-conscious implementation
// of Louvain-style community detection (modularity optimization) on
// weighted, undirected similarity graphs.
//
// Overview:
//
//   - Network is an immutable adjacency arena built once per level from a
//     sparse.Matrix; every undirected edge is stored twice (once per
//     endpoint), giving the doubled accounting the gain formulas rely on.
//   - Clustering is the mutable partition state: a node→cluster array and
//     per-cluster (WIn, WTot) aggregates kept exact under every move.
//   - Local moving greedily reassigns nodes to the neighboring cluster
//     with the strictly largest modularity gain, visiting nodes in a
//     seeded shuffled order each pass, until a pass accepts no moves.
//   - Coarsening contracts each cluster into a supernode and recurses the
//     procedure on the reduced network; labelings compose across levels
//     into one flat assignment over the original nodes.
//
// When to use:
//
//   - Flat clustering of samples (cells) from a shared-nearest-neighbor
//     similarity graph — the role this package plays in its pipeline.
//   - Any community-detection task over a non-negative symmetric weighted
//     graph where reproducibility under an explicit seed matters.
//
// Key properties (enforced by tests):
//
//   - Weight conservation: Σ_c WTot(c) equals the network total weight
//     after any sequence of moves.
//   - Gain exactness: the accumulated gain of accepted moves equals the
//     modularity delta; every accepted move strictly increases Q.
//   - Idempotence: optimizing an already-stable clustering accepts zero
//     moves and leaves modularity unchanged.
//   - Coarsening preserves modularity: the singleton clustering of the
//     reduced network scores exactly like the pre-coarsening partition.
//   - First-encountered tie-breaking: equal-gain candidates resolve to
//     the first cluster met in the edge scan, for bit-reproducibility
//     against reference outputs.
//
// Performance and complexity:
//
//   - Network construction: O(n + nnz); local moving: O(n + nnz) per
//     pass; coarsening: O(n + nnz) per level.
//   - Inner loops are allocation-free: neighbor-cluster accumulation uses
//     dense scratch arrays reused across passes of one run.
//
// Concurrency:
//
//   - A Network is read-only after construction and safe to share across
//     concurrent runs; a Clustering and its scratch buffers are owned by
//     exactly one run. MultiStart parallelizes over seeds on this basis.
//
// Error handling (sentinel errors, errors.Is-matchable):
//
//   - ErrNilMatrix, ErrNonSquare, ErrEmptyGraph, ErrAssignmentLength,
//     ErrClusterRange, ErrBadRestarts.
//
// API reference:
//
//	func Louvain(m *sparse.Matrix, opts ...Option) (*Result, error)
//	func MultiStart(m *sparse.Matrix, restarts int, opts ...Option) (*Result, error)
//	func NewNetwork(m *sparse.Matrix, opts ...Option) (*Network, error)
//	func NewClustering(net *Network) *Clustering
//	func NewClusteringFromAssignment(net *Network, nodeCluster []int) (*Clustering, error)
//	func Optimize(clus *Clustering, opts ...Option) (gain float64, moves int)
//
// See also:
//
//   - sparse.Builder / sparse.Matrix: the validated input boundary.
//   - builder package: deterministic fixture graphs for tests and benches.
package louvain
