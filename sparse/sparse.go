// SPDX-License-Identifier: MIT
// Package sparse: compressed-column matrix representation.
//
// sparse.go — the immutable Matrix type and its read-only accessors.
//
// Design contract (strict):
//   - Matrix is immutable after Build; safe for concurrent readers.
//   - Column storage (CSC): entries of column j live in
//     rowIdx[colPtr[j]:colPtr[j+1]] / values[colPtr[j]:colPtr[j+1]],
//     rows strictly ascending within a column, duplicates pre-merged.
//   - Explicit zeros are not stored; Build drops merged entries equal to 0.
//   - Accessors never allocate; Column returns sub-slices of the arenas
//     which callers MUST treat as read-only.

package sparse

import "sort"

// Matrix is an immutable compressed-sparse-column matrix with float64
// entries. Construct via Builder.Build; the zero value is an empty 0×0
// matrix.
type Matrix struct {
	rows, cols int
	colPtr     []int
	rowIdx     []int
	values     []float64
}

// Dims returns the (rows, cols) shape of the matrix.
// Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (structurally non-zero) entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.values) }

// Column returns the stored entries of column j as parallel slices of row
// indices (strictly ascending) and values. The returned slices alias the
// matrix arenas and must not be mutated.
// Complexity: O(1).
func (m *Matrix) Column(j int) (rows []int, vals []float64) {
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowIdx[lo:hi], m.values[lo:hi]
}

// At returns the entry at (i, j), or 0 if it is not stored.
// Complexity: O(log nnz(j)) via binary search within the column.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	// Binary search for row i within column j (rows are ascending).
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], i)
	if k < hi && m.rowIdx[k] == i {
		return m.values[k]
	}

	return 0
}

// Sum returns the sum of all stored entries.
// Complexity: O(nnz).
func (m *Matrix) Sum() float64 {
	var s float64
	for _, v := range m.values {
		s += v
	}

	return s
}
