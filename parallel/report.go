// SPDX-License-Identifier: MIT
// Package: parallel
//
// report.go - timing records and their delivery to a log sink.
//
// Policy:
//   - A failed sink append never aborts a multiplication by default. The line
//     is dropped, counted, logged through slog at Warn and kept in Err().
//   - Under strict logging the first failure is returned wrapped in ErrLogSink
//     and the caller aborts the operation.
//   - Reporter is safe for concurrent use and may be shared across calls.

package parallel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IngvarV8/matrix-mul/logsink"
	"github.com/IngvarV8/matrix-mul/matrix"
)

// SummaryWorkerID marks the whole-operation TimingRecord.
const SummaryWorkerID = -1

// Line formats written to the sink.
const (
	fmtWorkerLine     = "Worker %d took %s to complete."
	fmtSummaryLine    = "Took %s to calculate %dx%d %s matrix using %d workers."
	fmtSequentialLine = "Total time taken for %dx%d %s matrix multiplication: %s"

	// InvalidConfigurationLine is the diagnostic written when Multiply short-circuits.
	InvalidConfigurationLine = "Error: size is either < 1 or less than worker count"
)

// maxKeptSinkErrors bounds the errors retained for Err(); Dropped keeps counting.
const maxKeptSinkErrors = 16

// TimingRecord is one measurement: a worker's compute time, or the whole
// operation's time when WorkerID == SummaryWorkerID.
type TimingRecord struct {
	OperationID uuid.UUID
	WorkerID    int
	Duration    time.Duration

	// Filled on summary records only.
	Size    int
	Kind    matrix.Kind
	Workers int
}

// IsSummary reports whether rec times the whole operation.
func (rec TimingRecord) IsSummary() bool { return rec.WorkerID == SummaryWorkerID }

// Reporter turns timing records into log lines.
type Reporter struct {
	sink   logsink.Sink
	logger *slog.Logger
	strict bool
	hook   func(TimingRecord)

	mu      sync.Mutex
	dropped int
	errs    []error
}

// NewReporter builds a Reporter from the sink, logger, strictness and hook
// options; other options are ignored.
func NewReporter(opts ...Option) *Reporter {
	o := gatherOptions(opts)

	return o.newReporter()
}

// Worker reports one worker's compute duration.
func (r *Reporter) Worker(rec TimingRecord) error {
	r.logger.Debug("worker completed",
		slog.String("op", rec.OperationID.String()),
		slog.Int("worker", rec.WorkerID),
		slog.Duration("elapsed", rec.Duration))

	return r.record(rec, fmt.Sprintf(fmtWorkerLine, rec.WorkerID, rec.Duration))
}

// Summary reports the whole multiplication.
func (r *Reporter) Summary(rec TimingRecord) error {
	rec.WorkerID = SummaryWorkerID
	r.logger.Info("multiplication completed",
		slog.String("op", rec.OperationID.String()),
		slog.Int("size", rec.Size),
		slog.String("kind", rec.Kind.String()),
		slog.Int("workers", rec.Workers),
		slog.Duration("elapsed", rec.Duration))

	return r.record(rec, fmt.Sprintf(fmtSummaryLine, rec.Duration, rec.Size, rec.Size, rec.Kind, rec.Workers))
}

// Sequential reports the single-threaded baseline.
func (r *Reporter) Sequential(rec TimingRecord) error {
	rec.WorkerID = SummaryWorkerID
	r.logger.Info("sequential multiplication completed",
		slog.String("op", rec.OperationID.String()),
		slog.Int("size", rec.Size),
		slog.String("kind", rec.Kind.String()),
		slog.Duration("elapsed", rec.Duration))

	return r.record(rec, fmt.Sprintf(fmtSequentialLine, rec.Size, rec.Size, rec.Kind, rec.Duration))
}

// Line appends an arbitrary line (headers, diagnostics) under the same failure policy.
func (r *Reporter) Line(line string) error {
	return r.append(line)
}

// Dropped returns how many lines failed to reach the sink.
func (r *Reporter) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dropped
}

// Err returns the retained sink failures joined, or nil.
func (r *Reporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return errors.Join(r.errs...)
}

func (r *Reporter) record(rec TimingRecord, line string) error {
	if r.hook != nil {
		r.hook(rec)
	}

	return r.append(line)
}

// append delivers line to the sink and applies the failure policy.
func (r *Reporter) append(line string) error {
	err := r.sink.Append(line)
	if err == nil {
		return nil
	}
	r.mu.Lock()
	r.dropped++
	if len(r.errs) < maxKeptSinkErrors {
		r.errs = append(r.errs, err)
	}
	r.mu.Unlock()
	r.logger.Warn("log sink append failed", slog.String("line", line), slog.Any("error", err))
	if r.strict {
		return parallelErrorf(opReport, errors.Join(ErrLogSink, err))
	}

	return nil
}
