// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and fatal-on-error constructors.

package matrix_test

import (
	"strings"
	"testing"

	"github.com/IngvarV8/matrix-mul/matrix"
)

// mustSquare ALLOCATES an n×n zero matrix or fails the test.
func mustSquare[T matrix.Element](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewSquare[T](n)
	if err != nil {
		t.Fatalf("NewSquare(%d): %v", n, err)
	}

	return m
}

// mustFromRows builds a Dense from a literal fixture or fails the test.
func mustFromRows[T matrix.Element](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// splitLines splits s on '\n' dropping the trailing empty element.
func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
