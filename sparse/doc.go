// Package sparse provides the compressed, immutable sparse-matrix input
// boundary of the severo clustering engine.
//
// Overview:
//
//   - Matrix is a compressed-sparse-column (CSC) matrix of float64 entries,
//     built once and never mutated; concurrent readers need no locking.
//   - Builder accumulates (row, col, value) triplets with fail-fast
//     validation and compiles them into a Matrix, summing duplicates.
//   - Similarity graphs are symmetric by contract; AddSym mirrors
//     off-diagonal entries so both (i,j) and (j,i) are stored, and
//     CheckSymmetric() verifies the contract at Build time.
//
// When to use:
//
//   - As the handoff type between SNN-graph construction (external to this
//     module) and louvain.NewNetwork.
//   - Anywhere a small, read-optimized weighted adjacency is needed with
//     per-column iteration.
//
// Numeric policy:
//
//   - Entries must be finite (no NaN/±Inf: ErrNaNInf) and non-negative
//     (ErrNegativeWeight); explicit zeros are dropped during compilation.
//   - The symmetry check uses a configurable epsilon (DefaultEpsilon).
//
// Performance and complexity:
//
//   - Build: O(nnz log nnz) time, O(nnz) space.
//   - Column: O(1); At: O(log nnz(col)); Sum/NNZ: O(nnz)/O(1).
//
// Error handling (sentinel errors, errors.Is-matchable):
//
//   - ErrBadShape, ErrOutOfRange, ErrNaNInf, ErrNegativeWeight,
//     ErrAsymmetry, ErrNilMatrix.
package sparse
