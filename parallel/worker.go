// SPDX-License-Identifier: MIT
// Package: parallel
//
// worker.go - the per-worker naive kernel.
//
// Contract:
//   - a, b are size×size; r ⊆ [0,size).
//   - dst row (i - r.Start), column j receives Σ_k a[i,k]*b[k,j], k ascending.
//   - The accumulator has type T: int32 wraps on overflow, float32 rounds
//     after every multiply and every add (no wider accumulator, no FMA).
//   - Only the triple loop is timed.

package parallel

import (
	"fmt"
	"time"

	"github.com/IngvarV8/matrix-mul/matrix"
)

// PartialResult is the block of product rows r.Start..r.End-1 computed by one worker.
// Data is row-major with len == Range.Len()*size.
type PartialResult[T matrix.Element] struct {
	Range RowRange
	Data  []T
}

// Compute multiplies rows r of a by b with the naive i-j-k kernel.
//
// Implementation:
//   - Stage 1: validate shapes and range.
//   - Stage 2: allocate the private output block.
//   - Stage 3: time the kernel only.
//
// Returns:
//   - PartialResult for r, elapsed compute time.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch (matrix validators).
//   - ErrRangeOutOfBounds.
//
// Complexity:
//   - Time O(len(r)*size²), Space O(len(r)*size).
//
// AI-Hints:
//   - The kernel reads a and b only; concurrent callers may share them read-only.
func Compute[T matrix.Element](a, b *matrix.Dense[T], r RowRange, size int) (PartialResult[T], time.Duration, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return PartialResult[T]{}, 0, parallelErrorf(opCompute, err)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return PartialResult[T]{}, 0, parallelErrorf(opCompute, err)
	}
	if err := matrix.ValidateSquareOf(a, size); err != nil {
		return PartialResult[T]{}, 0, parallelErrorf(opCompute, err)
	}
	if !r.within(size) {
		return PartialResult[T]{}, 0, parallelErrorf(opCompute, fmt.Errorf("%s size=%d: %w", r, size, ErrRangeOutOfBounds))
	}

	out := make([]T, r.Len()*size)

	start := time.Now()
	kernel(a.Data(), b.Data(), out, r.Start, r.End, size)
	elapsed := time.Since(start)

	return PartialResult[T]{Range: r, Data: out}, elapsed, nil
}

// kernel writes rows [start,end) of a×b into dst (row 0 of dst == row start).
// a and b are flat n×n row-major buffers.
func kernel[T matrix.Element](a, b, dst []T, start, end, n int) {
	var (
		i, j, k int
		acc     T
	)
	for i = start; i < end; i++ {
		rowA := a[i*n : (i+1)*n]
		rowD := dst[(i-start)*n : (i-start+1)*n]
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				// explicit conversion forbids fusing into an FMA
				acc += T(rowA[k] * b[k*n+j])
			}
			rowD[j] = acc
		}
	}
}
