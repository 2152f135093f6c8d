// SPDX-License-Identifier: MIT
// Package: parallel
//
// partition.go - static row partitioning.
//
// Policy:
//   - base = size / workers, extra = size % workers.
//   - Worker i < workers-1 owns [i*base, (i+1)*base).
//   - The last worker owns [(workers-1)*base, size), i.e. base+extra rows.
//
// Known limitation: the whole remainder lands on the last worker, so for
// sizes not divisible by workers that worker does up to workers-1 extra rows.
// Spreading the remainder over the first size%workers ranges would balance
// better but moves range boundaries, which shows up in per-worker timings.

package parallel

import "fmt"

// RowRange is the half-open row span [Start, End) owned by one worker.
type RowRange struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r RowRange) Len() int { return r.End - r.Start }

// String renders the range as "[start,end)".
func (r RowRange) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// within reports whether r is a well-formed sub-range of [0,size).
func (r RowRange) within(size int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= size
}

// ValidateConfiguration checks the multiplication preconditions:
// size >= 1 and 1 <= workers <= size.
// Errors: ErrInvalidConfiguration (wrapped with the offending values).
func ValidateConfiguration(size, workers int) error {
	if size < 1 || workers < 1 || workers > size {
		return fmt.Errorf("size=%d workers=%d: %w", size, workers, ErrInvalidConfiguration)
	}

	return nil
}

// Partition splits [0,size) into workers contiguous, disjoint ranges in
// ascending order; the last range absorbs size%workers extra rows.
//
// Errors:
//   - ErrInvalidConfiguration when size < 1, workers < 1 or workers > size.
//
// Complexity:
//   - Time O(workers), Space O(workers). Pure; no side effects.
func Partition(size, workers int) ([]RowRange, error) {
	if err := ValidateConfiguration(size, workers); err != nil {
		return nil, parallelErrorf(opPartition, err)
	}
	base := size / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * base, End: (i + 1) * base}
	}
	ranges[workers-1].End = size // remainder to the last worker

	return ranges, nil
}
