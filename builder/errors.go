// SPDX-License-Identifier: MIT
// Package: severo/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` at the call site.
//   • Generators never panic at runtime; validation failures return errors.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, cliques, clique size)
// is smaller than the allowed minimum for the requested generator.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. Covers RandomSimilarity(p).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeight indicates a weight parameter that is negative, NaN or
// ±Inf; similarity weights are finite and non-negative by contract.
var ErrInvalidWeight = errors.New("builder: invalid weight")
