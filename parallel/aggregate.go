// SPDX-License-Identifier: MIT
// Package: parallel
//
// aggregate.go - join-point merge of partial results.
//
// Contract:
//   - parts are in partition order and tile [0,size) exactly (no gaps, no overlaps).
//   - Row positions come from each part's Range, never from arrival order.
//   - Runs sequentially after every worker has joined; no partial result is
//     ever exposed.

package parallel

import (
	"fmt"

	"github.com/IngvarV8/matrix-mul/matrix"
)

// Merge copies each partial block into a freshly allocated size×size result.
//
// Errors:
//   - ErrPartialMismatch if a part starts where the previous one did not end,
//     exceeds size, or carries a block whose length is not Range.Len()*size;
//     also if the parts do not reach size.
//   - ErrInvalidDimensions (wrapped) if size < 0.
//
// Complexity:
//   - Time O(size²), Space O(size²).
func Merge[T matrix.Element](size int, parts []PartialResult[T]) (*matrix.Dense[T], error) {
	out, err := matrix.NewSquare[T](size)
	if err != nil {
		return nil, parallelErrorf(opMerge, err)
	}
	dst := out.Data()
	next := 0 // first row not yet covered
	for idx, p := range parts {
		if p.Range.Start != next || !p.Range.within(size) {
			return nil, parallelErrorf(opMerge, fmt.Errorf("part %d %s, want start %d: %w", idx, p.Range, next, ErrPartialMismatch))
		}
		if len(p.Data) != p.Range.Len()*size {
			return nil, parallelErrorf(opMerge, fmt.Errorf("part %d %s has %d elements, want %d: %w",
				idx, p.Range, len(p.Data), p.Range.Len()*size, ErrPartialMismatch))
		}
		copy(dst[p.Range.Start*size:p.Range.End*size], p.Data)
		next = p.Range.End
	}
	if next != size {
		return nil, parallelErrorf(opMerge, fmt.Errorf("rows [%d,%d) not covered: %w", next, size, ErrPartialMismatch))
	}

	return out, nil
}
