// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors return these sentinels (possibly wrapped
// with call-site context) and tests match them via errors.Is. No exported
// function panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Call sites wrap with fmt.Errorf("ctx: %w", ErrX); callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are out of domain
	// (non-positive for NewDense, negative for NewSquare).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRaggedRows is returned by FromRows when rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrUnknownKind is returned when a Kind label cannot be parsed.
	ErrUnknownKind = errors.New("matrix: unknown element kind")

	// ErrNilRand is returned by Random when no random source is supplied.
	ErrNilRand = errors.New("matrix: nil random source")
)
