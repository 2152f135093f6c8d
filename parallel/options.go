// SPDX-License-Identifier: MIT

// Package parallel: functional configuration for Multiply and Sequential.
// This file defines:
//   - Option (functional options over unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values (programmer error),
//   - gatherOptions, which applies options over the defaults.
//
// Design goals:
//   - No global state: the log destination is always passed in explicitly.
//   - Each switch changes observable behaviour and is covered by tests.
package parallel

import (
	"log/slog"

	"github.com/IngvarV8/matrix-mul/logsink"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCopyInputs gives every worker its own clone of both operands.
	// false ⇒ workers share the caller's matrices as read-only views.
	DefaultCopyInputs = true

	// DefaultStrictLogging keeps sink failures non-fatal.
	DefaultStrictLogging = false
)

// ---------- Internal panic messages ----------

const (
	panicNilSink     = "parallel: WithSink: sink must be non-nil"
	panicNilLogger   = "parallel: WithLogger: logger must be non-nil"
	panicNilReporter = "parallel: WithReporter: reporter must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	sink       logsink.Sink
	logger     *slog.Logger
	strict     bool
	copyInputs bool
	hook       func(TimingRecord)
	reporter   *Reporter
}

func defaultOptions() options {
	return options{
		sink:       logsink.Discard,
		logger:     slog.Default(),
		strict:     DefaultStrictLogging,
		copyInputs: DefaultCopyInputs,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// newReporter returns the explicitly supplied Reporter, or builds one from o.
func (o options) newReporter() *Reporter {
	if o.reporter != nil {
		return o.reporter
	}

	return &Reporter{sink: o.sink, logger: o.logger, strict: o.strict, hook: o.hook}
}

// WithSink directs timing lines to s. Panics if s is nil.
func WithSink(s logsink.Sink) Option {
	if s == nil {
		panic(panicNilSink)
	}

	return func(o *options) { o.sink = s }
}

// WithLogger sets the structured logger used for diagnostics. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithStrictLogging makes any sink failure abort the operation with ErrLogSink.
func WithStrictLogging() Option {
	return func(o *options) { o.strict = true }
}

// WithSharedInputs lets workers read the caller's matrices directly instead of
// private clones. Safe because the kernel never writes to its inputs; the
// caller must not mutate a or b until Multiply returns.
func WithSharedInputs() Option {
	return func(o *options) { o.copyInputs = false }
}

// WithTimingHook registers fn to receive every TimingRecord. fn runs on the
// joining goroutine; it must be safe for concurrent use if the Reporter is shared.
func WithTimingHook(fn func(TimingRecord)) Option {
	return func(o *options) { o.hook = fn }
}

// WithReporter routes all reporting through r, overriding WithSink,
// WithLogger, WithStrictLogging and WithTimingHook. Use it to accumulate
// Dropped/Err across many calls. Panics if r is nil.
func WithReporter(r *Reporter) Option {
	if r == nil {
		panic(panicNilReporter)
	}

	return func(o *options) { o.reporter = r }
}
