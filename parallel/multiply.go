// SPDX-License-Identifier: MIT
// Package: parallel
//
// multiply.go - fan-out / join / merge over a fixed set of workers.
//
// Flow:
//  1. Start the global timer, then partition [0,size) into workers ranges.
//  2. Spawn one goroutine per range; each gets its own input clones (or
//     read-only shared views under WithSharedInputs) and its own output block.
//  3. Join: receive exactly one result per worker, in completion order,
//     reporting each worker's time as it arrives.
//  4. Merge the blocks in partition order and report the total.
//
// No cancellation: a worker that never returns blocks Multiply forever.

package parallel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/IngvarV8/matrix-mul/matrix"
)

// workerResult is what a worker hands to the joining goroutine.
type workerResult[T matrix.Element] struct {
	id      int
	part    PartialResult[T]
	elapsed time.Duration
	err     error
}

// Multiply computes a×b for size×size operands using exactly workers goroutines.
//
// Behavior highlights:
//   - Invalid configuration (size < 1, workers < 1, workers > size): one
//     diagnostic line is written, no worker is started, and the result is an
//     all-zero max(size,0)×max(size,0) matrix returned TOGETHER with an
//     error matching ErrInvalidConfiguration.
//   - Success: workers per-worker lines (join order) then one summary line.
//   - The result is independent of scheduling; float32 results are
//     bit-identical for every worker count.
//   - a and b are never mutated.
//
// Errors:
//   - ErrInvalidConfiguration (with zero result, see above).
//   - ErrNilMatrix / ErrDimensionMismatch when a or b is not size×size (nil result).
//   - ErrLogSink only under WithStrictLogging (nil result; workers are still joined).
//
// Complexity:
//   - Time O(size³/workers) wall-clock ideal, O(size³) total work.
//   - Space O(workers*size²) with copied inputs, O(size²) with shared inputs.
func Multiply[T matrix.Element](a, b *matrix.Dense[T], size, workers int, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts)
	rep := o.newReporter()
	opID := uuid.New()

	globalStart := time.Now()

	ranges, err := Partition(size, workers)
	if err != nil {
		return degraded[T](rep, opID, size, workers, err)
	}
	if err = matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}
	if err = matrix.ValidateSquareOf(a, size); err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}
	if err = matrix.ValidateSquareOf(b, size); err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}

	rep.logger.Debug("multiplication started",
		slog.String("op", opID.String()),
		slog.Int("size", size),
		slog.Int("workers", workers),
		slog.Bool("copy_inputs", o.copyInputs))

	// Buffered: a send never blocks.
	results := make(chan workerResult[T], len(ranges))
	for id, rr := range ranges {
		wa, wb := a, b
		if o.copyInputs {
			wa, wb = a.Clone(), b.Clone() // outside the worker's timer
		}
		go func() {
			part, elapsed, cerr := Compute(wa, wb, rr, size)
			results <- workerResult[T]{id: id, part: part, elapsed: elapsed, err: cerr}
		}()
	}

	// Join point: one receive per worker, whatever fails along the way.
	parts := make([]PartialResult[T], len(ranges))
	var errs []error
	for range ranges {
		res := <-results
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		parts[res.id] = res.part
		if rerr := rep.Worker(TimingRecord{OperationID: opID, WorkerID: res.id, Duration: res.elapsed}); rerr != nil {
			errs = append(errs, rerr)
		}
	}
	if len(errs) > 0 {
		return nil, parallelErrorf(opMultiply, errors.Join(errs...))
	}

	out, err := Merge(size, parts)
	if err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}
	total := time.Since(globalStart)

	if err = rep.Summary(TimingRecord{
		OperationID: opID,
		Duration:    total,
		Size:        size,
		Kind:        matrix.KindOf[T](),
		Workers:     workers,
	}); err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}

	return out, nil
}

// degraded is the InvalidConfiguration fallback: diagnostic line + zero matrix.
func degraded[T matrix.Element](rep *Reporter, opID uuid.UUID, size, workers int, cause error) (*matrix.Dense[T], error) {
	rep.logger.Warn("invalid multiplication configuration",
		slog.String("op", opID.String()),
		slog.Int("size", size),
		slog.Int("workers", workers))

	errs := []error{cause}
	if lerr := rep.Line(InvalidConfigurationLine); lerr != nil {
		errs = append(errs, lerr)
	}
	zero, _ := matrix.NewSquare[T](max(size, 0))

	return zero, parallelErrorf(opMultiply, errors.Join(errs...))
}

// Sequential computes a×b on the calling goroutine with the same kernel and
// reports "Total time taken for NxN <kind> matrix multiplication: D".
// It is the single-threaded baseline the parallel timings are compared to.
//
// Errors:
//   - ErrInvalidConfiguration when size < 1 (zero result, no line written).
//   - ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch (nil result).
//   - ErrLogSink only under WithStrictLogging.
func Sequential[T matrix.Element](a, b *matrix.Dense[T], size int, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts)
	rep := o.newReporter()

	if err := ValidateConfiguration(size, 1); err != nil {
		zero, _ := matrix.NewSquare[T](max(size, 0))
		return zero, parallelErrorf(opSequential, err)
	}
	full := RowRange{Start: 0, End: size}
	part, elapsed, err := Compute(a, b, full, size)
	if err != nil {
		return nil, parallelErrorf(opSequential, err)
	}
	out, err := Merge(size, []PartialResult[T]{part})
	if err != nil {
		return nil, parallelErrorf(opSequential, err)
	}
	if err = rep.Sequential(TimingRecord{
		OperationID: uuid.New(),
		Duration:    elapsed,
		Size:        size,
		Kind:        matrix.KindOf[T](),
		Workers:     1,
	}); err != nil {
		return nil, parallelErrorf(opSequential, err)
	}

	return out, nil
}
