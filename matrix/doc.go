// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major square matrices consumed by the
// parallel multiplication engine.
//
// What & Why:
//
//	Dense[T] stores T (int32 or float32) in one flat slice so a kernel walks
//	memory in row order. Accessors are bounds-checked and return sentinel
//	errors; Row exposes a capped, aliasing slice for hot loops.
//
// The package also hosts the supporting collaborators of the benchmark:
//
//   - Random:  reproducible generator (values in [0,100)).
//   - String:  10×10 debug preview.
//   - Validate*: centralized nil/shape guards.
//
// Complexity:
//
//	Rows/Cols/At/Set/Row run in O(1); Clone/Equal/Random in O(r*c).
package matrix
