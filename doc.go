// Package severo is a modularity-optimization clustering engine for
// weighted, undirected similarity graphs — the community-detection core
// of a single-cell analysis pipeline, usable on any sparse symmetric
// similarity matrix.
//
// 🚀 What is severo?
//
//	A focused, deterministic library that brings together:
//		• Sparse input: column-compressed symmetric matrices with strict validation
//		• Network: an immutable edge-arena adjacency built once per level
//		• Local moving: greedy modularity-gain optimization with exact bookkeeping
//		• Coarsening: multi-level aggregation of clusters into supernodes
//		• Labeling: composition across levels into one dense flat labeling
//		• Multi-start: parallel best-of-N restarts over independent seeds
//
// ✨ Why choose severo?
//
//   - Reproducible – every stochastic choice is driven by an explicit seed
//   - Exact bookkeeping – accepted gains sum to the modularity delta
//   - Pure Go hot path – no cgo, allocation-free inner loops
//   - Observable – optional structured progress logging per level
//
// Everything is organized under three subpackages:
//
//	sparse/  — symmetric sparse matrix type + coordinate builder (the input boundary)
//	louvain/ — Network, Clustering, local-move optimizer, coarsening, multilevel driver
//	builder/ — deterministic similarity-matrix generators for tests and benchmarks
//
// Quick ASCII example:
//
//	    1───2       4───5
//	     ╲ ╱    ─    ╲ ╱
//	      3           6
//
//	two tight triangles joined by one weak bridge cluster into two
//	communities; the bridge edge stays external.
//
// Construction of the similarity graph itself (k-NN search, SNN/Jaccard
// weighting) is deliberately out of scope: severo consumes the finished
// matrix and returns one cluster label per node plus the achieved
// modularity.
//
//	go get github.com/rseurinc/severo
package severo
