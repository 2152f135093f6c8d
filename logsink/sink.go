// SPDX-License-Identifier: MIT

// Package logsink provides append-only, line-oriented destinations for
// benchmark results.
//
// The only capability the multiplication engine needs is Append(line). Each
// implementation here serializes its own appends, so a single Sink may be
// shared by any number of goroutines and every line lands whole.
//
// Implementations:
//
//	File    : opens, appends and closes the file on every call.
//	Writer  : wraps any io.Writer (stdout, a buffer, a network conn).
//	Memory  : keeps lines in memory; handy in tests.
//	Multi   : fans a line out to several sinks.
//	Discard : drops everything.
package logsink

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Sink is an append-only line destination.
// Implementations MUST be safe for concurrent use and MUST write each line atomically.
type Sink interface {
	Append(line string) error
}

// terminate returns line with exactly one trailing newline.
func terminate(line string) string {
	return strings.TrimSuffix(line, "\n") + "\n"
}

// ---------- Writer ----------

// Writer serializes line appends onto an io.Writer.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Sink writing to w.
// Errors: ErrNilWriter.
func NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Writer{w: w}, nil
}

// Append writes line followed by a newline in a single Write call.
func (s *Writer) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, terminate(line)); err != nil {
		return fmt.Errorf("Writer.Append: %w", err)
	}

	return nil
}

// ---------- Memory ----------

// Memory records lines in memory. The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

// Append stores line without its trailing newline. It never fails.
func (s *Memory) Append(line string) error {
	s.mu.Lock()
	s.lines = append(s.lines, strings.TrimSuffix(line, "\n"))
	s.mu.Unlock()

	return nil
}

// Lines returns a snapshot copy of the recorded lines in append order.
func (s *Memory) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.lines...)
}

// Len returns the number of recorded lines.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// Reset drops every recorded line.
func (s *Memory) Reset() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// ---------- Multi ----------

type multi []Sink

// Multi returns a Sink that appends to every sink in order. All sinks are
// attempted even when one fails; the failures are joined.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

func (m multi) Append(line string) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(line); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ---------- Discard ----------

type discard struct{}

// Discard is a Sink that drops every line.
var Discard Sink = discard{}

func (discard) Append(string) error { return nil }
