// SPDX-License-Identifier: MIT
// Package sparse: coordinate builder for compressed-column matrices.
//
// builder.go — triplet accumulation with strict fail-fast validation.
//
// Design contract (strict):
//   - Fail fast: Add/AddSym validate shape, range and value finiteness on
//     ingestion and return sentinel errors; nothing is recorded on error.
//   - Duplicate coordinates are legal and sum during Build (standard COO
//     semantics), mirroring repeated observations of the same edge.
//   - Determinism: Build output depends only on the multiset of triplets,
//     never on insertion order.
//   - Symmetry is the caller's contract; CheckSymmetric() verifies it
//     within an epsilon during Build (O(nnz log nnz)).

package sparse

import (
	"fmt"
	"math"
	"sort"
)

// DefaultEpsilon is the non-negative tolerance used by the symmetry check.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "sparse: WithEpsilon: eps must be finite, non-negative"

// BuildOption customizes Build behavior. Constructors panic only on
// nonsensical values (programmer error), never at Build time.
type BuildOption func(*buildConfig)

type buildConfig struct {
	checkSymmetric bool
	eps            float64
}

// CheckSymmetric verifies during Build that the compiled matrix is square
// and symmetric within the configured epsilon; violations surface as
// ErrBadShape and ErrAsymmetry respectively.
func CheckSymmetric() BuildOption {
	return func(c *buildConfig) { c.checkSymmetric = true }
}

// WithEpsilon overrides the symmetry tolerance (default DefaultEpsilon).
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) BuildOption {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(c *buildConfig) { c.eps = eps }
}

// Builder accumulates (row, col, value) triplets and compiles them into an
// immutable Matrix. A Builder is single-goroutine; the compiled Matrix is
// safe to share.
type Builder struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	values     []float64
}

// NewBuilder returns a Builder for a rows×cols matrix.
// Returns ErrBadShape if either dimension is non-positive.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewBuilder: %dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Builder{rows: rows, cols: cols}, nil
}

// Add records a single triplet (i, j, v).
// Validation order: range → finiteness → sign.
func (b *Builder) Add(i, j int, v float64) error {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return fmt.Errorf("Add(%d,%d): shape %dx%d: %w", i, j, b.rows, b.cols, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Add(%d,%d): %w", i, j, ErrNaNInf)
	}
	if v < 0 {
		return fmt.Errorf("Add(%d,%d): v=%g: %w", i, j, v, ErrNegativeWeight)
	}
	b.rowIdx = append(b.rowIdx, i)
	b.colIdx = append(b.colIdx, j)
	b.values = append(b.values, v)

	return nil
}

// AddSym records (i, j, v) and, when i != j, the mirrored (j, i, v).
// The convenience keeps undirected similarity graphs symmetric by
// construction; diagonal entries are recorded once.
func (b *Builder) AddSym(i, j int, v float64) error {
	if err := b.Add(i, j, v); err != nil {
		return err
	}
	if i != j {
		// Mirror cannot fail: range and value were just validated.
		b.rowIdx = append(b.rowIdx, j)
		b.colIdx = append(b.colIdx, i)
		b.values = append(b.values, v)
	}

	return nil
}

// Build compiles the accumulated triplets into an immutable Matrix:
//  1. sort triplets by (col, row);
//  2. merge duplicates by summation, dropping exact-zero results;
//  3. assemble the CSC arenas;
//  4. optionally verify symmetry (CheckSymmetric).
//
// Complexity: O(nnz log nnz) time, O(nnz) space.
// The Builder remains reusable after Build (subsequent Adds extend the
// same triplet set).
func (b *Builder) Build(opts ...BuildOption) (*Matrix, error) {
	cfg := buildConfig{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(b.values)
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(x, y int) bool {
		kx, ky := order[x], order[y]
		if b.colIdx[kx] != b.colIdx[ky] {
			return b.colIdx[kx] < b.colIdx[ky]
		}

		return b.rowIdx[kx] < b.rowIdx[ky]
	})

	m := &Matrix{
		rows:   b.rows,
		cols:   b.cols,
		colPtr: make([]int, b.cols+1),
	}
	m.rowIdx = make([]int, 0, n)
	m.values = make([]float64, 0, n)

	col := 0
	for idx := 0; idx < n; {
		k := order[idx]
		i, j := b.rowIdx[k], b.colIdx[k]
		// Merge the run of duplicates at (i, j).
		sum := b.values[k]
		idx++
		for idx < n {
			k2 := order[idx]
			if b.rowIdx[k2] != i || b.colIdx[k2] != j {
				break
			}
			sum += b.values[k2]
			idx++
		}
		if sum == 0 {
			continue // explicit zeros are not stored
		}
		for col < j {
			col++
			m.colPtr[col] = len(m.rowIdx)
		}
		m.rowIdx = append(m.rowIdx, i)
		m.values = append(m.values, sum)
	}
	for col < b.cols {
		col++
		m.colPtr[col] = len(m.rowIdx)
	}

	if cfg.checkSymmetric {
		if err := checkSymmetric(m, cfg.eps); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// checkSymmetric verifies rows == cols and |a_ij - a_ji| <= eps for every
// stored entry. Complexity: O(nnz log nnz) via per-entry At lookups.
func checkSymmetric(m *Matrix, eps float64) error {
	if m.rows != m.cols {
		return fmt.Errorf("Build: %dx%d: %w", m.rows, m.cols, ErrBadShape)
	}
	for j := 0; j < m.cols; j++ {
		rows, vals := m.Column(j)
		for k, i := range rows {
			if math.Abs(vals[k]-m.At(j, i)) > eps {
				return fmt.Errorf("Build: a[%d,%d]=%g vs a[%d,%d]=%g: %w",
					i, j, vals[k], j, i, m.At(j, i), ErrAsymmetry)
			}
		}
	}

	return nil
}
