// SPDX-License-Identifier: MIT
// Package parallel_test contains shared fixtures.
//
// Purpose:
//   - Seeded random operands, an independent gonum reference product and a
//     sink that fails on demand.

package parallel_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/IngvarV8/matrix-mul/matrix"
)

// errSinkDown is returned by brokenSink.
var errSinkDown = errors.New("sink down")

// brokenSink fails every append and counts the attempts.
type brokenSink struct{ calls atomic.Int32 }

func (s *brokenSink) Append(string) error {
	s.calls.Add(1)
	return errSinkDown
}

// mustRandom builds a seeded n×n operand or fails the test.
func mustRandom[T matrix.Element](tb testing.TB, n int, seed int64) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Random[T](n, matrix.NewRand(seed))
	if err != nil {
		tb.Fatalf("Random(%d): %v", n, err)
	}

	return m
}

// mustFromRows builds a Dense from a fixture or fails the test.
func mustFromRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// toGonum widens m into a float64 gonum matrix.
func toGonum[T matrix.Element](m *matrix.Dense[T]) *mat.Dense {
	data := make([]float64, len(m.Data()))
	for i, v := range m.Data() {
		data[i] = float64(v)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// gonumProduct returns a×b computed by gonum in float64.
func gonumProduct[T matrix.Element](a, b *matrix.Dense[T]) *mat.Dense {
	var c mat.Dense
	c.Mul(toGonum(a), toGonum(b))

	return &c
}

// naiveFloat32 is a plain single-threaded float32 reference with the same
// summation order as the engine (k ascending, rounding after each op).
func naiveFloat32(a, b *matrix.Dense[float32]) []float32 {
	n := a.Rows()
	ad, bd := a.Data(), b.Data()
	out := make([]float32, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc float32
			for k := 0; k < n; k++ {
				acc += float32(ad[i*n+k] * bd[k*n+j])
			}
			out[i*n+j] = acc
		}
	}

	return out
}
