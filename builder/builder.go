// SPDX-License-Identifier: MIT
// Package: severo/builder
//
// builder.go — deterministic similarity-matrix generators.
//
// Canonical models:
//   - RingOfCliques: c cliques of s nodes each, consecutive cliques joined
//     by one bridge edge in a ring (last clique bridges back to the first).
//   - ReferenceTriangles: the fixed 9-node ring of three triangles used as
//     the reference scenario for modularity values.
//   - RandomSimilarity: Erdős–Rényi-like symmetric weighted matrix —
//     include each unordered pair {i, j} independently with probability p,
//     uniform weight in (0, maxW].
//
// Determinism:
//   - Stable trial order: for each i asc, j > i asc.
//   - A fixed seed yields an identical matrix; no global randomness.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rseurinc/severo/sparse"
)

// File-local constants (no magic literals; stable method tags and domains).
const (
	methodRingOfCliques    = "RingOfCliques"
	methodRandomSimilarity = "RandomSimilarity"

	minCliques    = 2
	minCliqueSize = 2
	minRandomSize = 1
	probMin       = 0.0
	probMax       = 1.0
)

// Reference graph weights: three triangles {0,1,2}, {3,4,5}, {6,7,8},
// per-triangle edges (first–second, first–third, second–third) weighted
// (5, 11, 3), ring bridges 2–3, 5–6, 8–0 weighted 3. The singleton
// partition scores Q ≈ −0.122934; the triangle partition Q ≈ 0.530303.
const (
	refTriangles      = 3
	refTriangleSize   = 3
	refWeightAB       = 5.0
	refWeightAC       = 11.0
	refWeightBC       = 3.0
	refBridgeWeight   = 3.0
	ReferenceNodes    = 9 // node count of ReferenceTriangles
	ReferenceClusters = 3 // ground-truth community count
)

// validWeight reports whether w is a legal similarity weight.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}

// ReferenceTriangles returns the fixed 9-node reference similarity
// matrix: three tight triangles bridged into a ring. Ground truth is the
// three-way triangle partition.
// Complexity: O(1) edges (12 undirected, 24 stored entries).
func ReferenceTriangles() *sparse.Matrix {
	b, err := sparse.NewBuilder(ReferenceNodes, ReferenceNodes)
	if err != nil {
		// Shape is a compile-time constant; failure is unreachable.
		panic(err)
	}
	add := func(i, j int, w float64) {
		if addErr := b.AddSym(i, j, w); addErr != nil {
			panic(addErr) // constant coordinates and weights; unreachable
		}
	}
	for t := 0; t < refTriangles; t++ {
		a, bb, c := 3*t, 3*t+1, 3*t+2
		add(a, bb, refWeightAB)
		add(a, c, refWeightAC)
		add(bb, c, refWeightBC)
		// Bridge this triangle's last node to the next triangle's first.
		add(c, (3*t+3)%ReferenceNodes, refBridgeWeight)
	}
	m, err := b.Build(sparse.CheckSymmetric())
	if err != nil {
		panic(err) // constant input; unreachable
	}

	return m
}

// ReferenceGroundTruth returns the hand-labeled three-way partition of
// ReferenceTriangles: {0,1,2}, {3,4,5}, {6,7,8} as 0-based cluster ids.
func ReferenceGroundTruth() []int {
	labels := make([]int, ReferenceNodes)
	for i := range labels {
		labels[i] = i / refTriangleSize
	}

	return labels
}

// RingOfCliques builds a similarity matrix of `cliques` cliques with
// `size` nodes each; intra-clique edges carry weight intra, and one
// bridge of weight bridge joins consecutive cliques in a ring.
//
// Contract:
//   - cliques ≥ 2, size ≥ 2 (else ErrTooFewNodes).
//   - intra and bridge finite, non-negative (else ErrInvalidWeight).
//
// Complexity: O(cliques · size²).
func RingOfCliques(cliques, size int, intra, bridge float64) (*sparse.Matrix, error) {
	if cliques < minCliques || size < minCliqueSize {
		return nil, fmt.Errorf("%s: cliques=%d size=%d: %w",
			methodRingOfCliques, cliques, size, ErrTooFewNodes)
	}
	if !validWeight(intra) || !validWeight(bridge) {
		return nil, fmt.Errorf("%s: intra=%g bridge=%g: %w",
			methodRingOfCliques, intra, bridge, ErrInvalidWeight)
	}

	n := cliques * size
	b, err := sparse.NewBuilder(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRingOfCliques, err)
	}
	for c := 0; c < cliques; c++ {
		base := c * size
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				if err = b.AddSym(base+i, base+j, intra); err != nil {
					return nil, fmt.Errorf("%s: %w", methodRingOfCliques, err)
				}
			}
		}
		// Bridge: last node of this clique to first node of the next.
		next := ((c + 1) % cliques) * size
		if err = b.AddSym(base+size-1, next, bridge); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRingOfCliques, err)
		}
	}

	return b.Build()
}

// RandomSimilarity samples an Erdős–Rényi-like symmetric weighted matrix
// over n nodes: each unordered pair {i, j} (i < j) is included
// independently with probability p, with weight drawn uniformly from
// (0, maxW]. The trial order is fixed (i asc, then j asc), so a given
// seed always produces the same matrix.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - maxW finite, positive (else ErrInvalidWeight).
//
// Complexity: O(n²) Bernoulli trials.
func RandomSimilarity(n int, p, maxW float64, seed uint64) (*sparse.Matrix, error) {
	if n < minRandomSize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSimilarity, n, minRandomSize, ErrTooFewNodes)
	}
	if p < probMin || p > probMax || math.IsNaN(p) {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSimilarity, p, probMin, probMax, ErrInvalidProbability)
	}
	if !validWeight(maxW) || maxW == 0 {
		return nil, fmt.Errorf("%s: maxW=%g: %w", methodRandomSimilarity, maxW, ErrInvalidWeight)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	b, err := sparse.NewBuilder(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSimilarity, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			// Uniform in (0, maxW]: flip the half-open interval so zero
			// weights (which Build would drop) cannot occur.
			w := maxW * (1 - rng.Float64())
			if err = b.AddSym(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomSimilarity, err)
			}
		}
	}

	return b.Build()
}
