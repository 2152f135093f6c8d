// SPDX-License-Identifier: MIT
// Package parallel: sentinel error set.
// Every algorithm returns these sentinels, wrapped with an operation tag via
// parallelErrorf; tests match them with errors.Is.

package parallel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when size < 1, workers < 1 or workers > size.
	// Multiply recovers locally: it still returns an all-zero size×size matrix.
	ErrInvalidConfiguration = errors.New("parallel: invalid configuration")

	// ErrRangeOutOfBounds indicates a row range that does not lie within [0,size).
	ErrRangeOutOfBounds = errors.New("parallel: row range out of bounds")

	// ErrPartialMismatch indicates partial results that do not tile [0,size)
	// in order, or whose block length disagrees with their range.
	ErrPartialMismatch = errors.New("parallel: partial results do not tile the result")

	// ErrLogSink is returned only under WithStrictLogging, when a sink append fails.
	ErrLogSink = errors.New("parallel: log sink failure")
)

// Operation tags for uniform error wrapping.
const (
	opPartition  = "Partition"
	opCompute    = "Compute"
	opMerge      = "Merge"
	opMultiply   = "Multiply"
	opSequential = "Sequential"
	opReport     = "Report"
)

// parallelErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with err != nil.
func parallelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
