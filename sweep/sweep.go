// SPDX-License-Identifier: MIT

// Package sweep drives the benchmark: for every matrix size and element kind
// it generates a pair of seeded random operands and multiplies them with
// every configured worker count (optionally after a sequential baseline),
// logging all timings to one sink.
//
// Determinism:
//   - Operands depend only on (Seed, size, kind), never on worker count.
//   - Every worker count must reproduce the first worker count's product
//     bit for bit; a difference aborts the sweep with ErrResultMismatch.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/IngvarV8/matrix-mul/logsink"
	"github.com/IngvarV8/matrix-mul/matrix"
	"github.com/IngvarV8/matrix-mul/parallel"
)

const fmtSizeHeader = "\nMultiplying matrices of size %dx%d..."

// Result is one completed multiplication.
type Result struct {
	OperationID uuid.UUID
	Size        int
	Kind        matrix.Kind
	Workers     int // 0 for the sequential baseline
	Total       time.Duration
	WorkerTimes []time.Duration // indexed by worker id; empty for the baseline
}

// Summary is what a sweep produced.
type Summary struct {
	RunID   uuid.UUID
	CPU     CPUInfo
	Results []Result

	// Skipped counts (size, workers) pairs rejected as invalid configurations.
	Skipped int

	// Dropped counts lines that never reached the sink; SinkErr holds the first failures.
	Dropped int
	SinkErr error
}

// collector assembles Results from the engine's timing records.
type collector struct {
	mu      sync.Mutex
	pending map[uuid.UUID][]time.Duration
	results []Result
}

func newCollector() *collector {
	return &collector{pending: make(map[uuid.UUID][]time.Duration)}
}

func (c *collector) record(rec parallel.TimingRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !rec.IsSummary() {
		times := c.pending[rec.OperationID]
		for len(times) <= rec.WorkerID {
			times = append(times, 0)
		}
		times[rec.WorkerID] = rec.Duration
		c.pending[rec.OperationID] = times
		return
	}
	workers := rec.Workers
	times := c.pending[rec.OperationID]
	if len(times) == 0 {
		workers = 0 // sequential baseline reports no worker records
	}
	delete(c.pending, rec.OperationID)
	c.results = append(c.results, Result{
		OperationID: rec.OperationID,
		Size:        rec.Size,
		Kind:        rec.Kind,
		Workers:     workers,
		Total:       rec.Duration,
		WorkerTimes: times,
	})
}

// discardPending forgets worker records of operations that never reported a summary.
func (c *collector) discardPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.pending)
}

func (c *collector) snapshot() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Result(nil), c.results...)
}

// runner carries the per-sweep state shared by every size and kind.
type runner struct {
	cfg     Config
	rep     *parallel.Reporter
	col     *collector
	logger  *slog.Logger
	opts    []parallel.Option
	skipped int
}

// Run executes the sweep described by cfg, writing lines to sink.
// ctx is checked between multiplications; a multiplication in progress is
// never interrupted. On cancellation the partial Summary is returned with ctx.Err().
//
// Errors:
//   - ErrNoSizes / ErrNoWorkers / ErrNoKinds / matrix.ErrUnknownKind (config).
//   - ErrResultMismatch.
//   - parallel.ErrLogSink under StrictLogging.
func Run(ctx context.Context, cfg Config, sink logsink.Sink, logger *slog.Logger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if sink == nil {
		sink = logsink.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}

	sum := Summary{RunID: uuid.New(), CPU: DetectCPU()}
	logger = logger.With(slog.String("run", sum.RunID.String()))
	r := newRunner(cfg, sink, logger)

	finish := func(err error) (Summary, error) {
		sum.Results = r.col.snapshot()
		sum.Skipped = r.skipped
		sum.Dropped = r.rep.Dropped()
		sum.SinkErr = r.rep.Err()
		return sum, err
	}

	logger.Info("sweep started",
		slog.Any("sizes", cfg.Sizes),
		slog.Any("workers", cfg.Workers),
		slog.Int64("seed", cfg.Seed),
		slog.String("cpu", sum.CPU.String()))
	if err := r.rep.Line(sum.CPU.String()); err != nil {
		return finish(err)
	}

	for _, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if err := r.rep.Line(fmt.Sprintf(fmtSizeHeader, n, n)); err != nil {
			return finish(err)
		}
		for _, kind := range cfg.Kinds {
			var err error
			switch kind {
			case matrix.KindInt32:
				err = runKind[int32](ctx, r, n)
			case matrix.KindFloat32:
				err = runKind[float32](ctx, r, n)
			}
			if err != nil {
				return finish(err)
			}
		}
	}
	logger.Info("sweep finished", slog.Int("results", len(r.col.snapshot())), slog.Int("skipped", r.skipped))

	return finish(nil)
}

func newRunner(cfg Config, sink logsink.Sink, logger *slog.Logger) *runner {
	col := newCollector()
	repOpts := []parallel.Option{
		parallel.WithSink(sink),
		parallel.WithLogger(logger),
		parallel.WithTimingHook(col.record),
	}
	if cfg.StrictLogging {
		repOpts = append(repOpts, parallel.WithStrictLogging())
	}
	r := &runner{cfg: cfg, rep: parallel.NewReporter(repOpts...), col: col, logger: logger}
	r.opts = []parallel.Option{parallel.WithReporter(r.rep)}
	if cfg.SharedInputs {
		r.opts = append(r.opts, parallel.WithSharedInputs())
	}

	return r
}

// runKind benchmarks one (size, kind) cell of the sweep.
func runKind[T matrix.Element](ctx context.Context, r *runner, n int) error {
	err := runKindOnce[T](ctx, r, n)
	if err != nil {
		r.col.discardPending()
	}

	return err
}

func runKindOnce[T matrix.Element](ctx context.Context, r *runner, n int) error {
	kind := matrix.KindOf[T]()
	debug := r.cfg.Preview && r.logger.Enabled(ctx, slog.LevelDebug)
	a, b, err := generatePair[T](n, r.cfg.Seed)
	if err != nil {
		// Sizes < 1 cannot be generated; hand zero operands to the engine so
		// it reports the invalid configuration the usual way.
		if !errors.Is(err, matrix.ErrInvalidDimensions) {
			return err
		}
		a, b = nil, nil
	}
	if debug && a != nil {
		r.logger.Debug("operands", slog.Int("size", n), slog.String("kind", kind.String()),
			slog.String("a", a.String()), slog.String("b", b.String()))
	}

	var first *matrix.Dense[T]
	firstWorkers := 0
	if r.cfg.Sequential {
		c, serr := parallel.Sequential(a, b, n, r.opts...)
		switch {
		case errors.Is(serr, parallel.ErrInvalidConfiguration):
			// the parallel runs below report this size
		case serr != nil:
			return serr
		default:
			first = c
		}
	}

	for _, w := range r.cfg.Workers {
		if err = ctx.Err(); err != nil {
			return err
		}
		c, merr := parallel.Multiply(a, b, n, w, r.opts...)
		if errors.Is(merr, parallel.ErrInvalidConfiguration) && !errors.Is(merr, parallel.ErrLogSink) {
			r.skipped++
			r.logger.Warn("skipping invalid configuration",
				slog.Int("size", n), slog.Int("workers", w), slog.Any("error", merr))
			continue
		}
		if merr != nil {
			return merr
		}
		if first == nil {
			first, firstWorkers = c, w
			continue
		}
		if !first.Equal(c) {
			return fmt.Errorf("size=%d kind=%s workers=%d vs %d: %w", n, kind, w, firstWorkers, ErrResultMismatch)
		}
	}
	if debug && first != nil {
		r.logger.Debug("product", slog.Int("size", n), slog.String("kind", kind.String()),
			slog.String("c", first.String()))
	}

	return nil
}

// generatePair builds both operands concurrently from independent seeds.
func generatePair[T matrix.Element](n int, seed int64) (a, b *matrix.Dense[T], err error) {
	var g errgroup.Group
	kind := matrix.KindOf[T]()
	g.Go(func() error {
		var gerr error
		a, gerr = matrix.Random[T](n, matrix.NewRand(operandSeed(seed, n, kind, 0)))
		return gerr
	})
	g.Go(func() error {
		var gerr error
		b, gerr = matrix.Random[T](n, matrix.NewRand(operandSeed(seed, n, kind, 1)))
		return gerr
	})
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// operandSeed derives a distinct, reproducible seed per (size, kind, operand).
func operandSeed(seed int64, n int, kind matrix.Kind, operand int64) int64 {
	return seed ^ int64(n)<<16 ^ int64(kind)<<4 ^ operand
}
