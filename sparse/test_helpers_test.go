// Shared helpers for the sparse test files.
package sparse_test

import "math"

// nan returns a quiet NaN for ingestion-policy tests.
func nan() float64 { return math.NaN() }

// inf returns +Inf for ingestion-policy tests.
func inf() float64 { return math.Inf(1) }
