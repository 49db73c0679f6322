// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No constructor panics on user-triggered error
// conditions; panics are reserved for programmer errors in option setters.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Builders must validate shape before any allocation.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a coordinate (row or column) lies outside
	// the declared shape. Add/AddSym MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (ingestion via Add/AddSym).
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry; similarity weights are
	// non-negative by contract.
	ErrNegativeWeight = errors.New("sparse: negative weight")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance (epsilon).
	ErrAsymmetry = errors.New("sparse: matrix is not symmetric within eps")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
