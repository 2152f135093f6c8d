// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep traversal deterministic (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Hot kernels should read Row(i) once per row and index the returned slice directly.
//   - Clone is the only way to obtain an independent copy; Row slices alias the base buffer.
//
// Complexity quicksheet:
//   - NewDense/NewSquare: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEllipsis = "..."

	// PreviewLimit bounds the number of rows and columns rendered by String.
	PreviewLimit = 10
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts (>=0; zero allowed only through NewSquare(0))
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[int32])(nil)
	_ fmt.Stringer = (*Dense[float32])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use NewSquare when a degenerate 0×0 result is a legal outcome.
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix. Unlike NewDense it accepts n == 0,
// which yields an empty matrix used as the degenerate result of an invalid
// multiplication request.
// Errors: ErrInvalidDimensions when n < 0.
// Complexity: O(n²).
func NewSquare[T Element](n int) (*Dense[T], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: n, c: n, data: make([]T, n*n)}, nil
}

// FromRows builds a Dense from a rectangular 2-D slice (values are copied).
//
// Implementation:
//   - Stage 1: validate len(rows)>0, len(rows[0])>0 and equal row lengths.
//   - Stage 2: copy each row into its offset in the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when rows or the first row is empty.
//   - ErrRaggedRows when a row length differs from the first row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports the element kind of m.
func (m *Dense[T]) Kind() Kind { return KindOf[T]() }

// indexOf computes the flat index for (row, col) or returns a wrapped ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice aliasing the backing buffer.
// The slice is capped at the row length so appends never spill into row i+1.
// Callers MUST treat it as read-only unless they own m exclusively.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// Data exposes the flat row-major buffer (len == Rows*Cols).
// Same aliasing rules as Row apply.
func (m *Dense[T]) Data() []T { return m.data }

// Clone returns a deep copy of m. The copy shares no storage with m.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have identical shapes and bit-identical values.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// IsZero reports whether every element of m equals the zero value.
// Complexity: O(r*c).
func (m *Dense[T]) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders at most the top-left PreviewLimit×PreviewLimit block of m,
// one bracketed row per line; truncated rows and columns are marked with "...".
// Intended for logs and debugging, not for hot paths.
// Complexity: O(min(r,10)*min(c,10)).
func (m *Dense[T]) String() string {
	var (
		b          strings.Builder
		i, j, base int
	)
	rows, cols := min(m.r, PreviewLimit), min(m.c, PreviewLimit)
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		if cols < m.c {
			b.WriteString(_fmtSep + _fmtEllipsis)
		}
		b.WriteString(_fmtRowClose)
	}
	if rows < m.r {
		b.WriteString(_fmtEllipsis + "\n")
	}

	return b.String()
}
