// SPDX-License-Identifier: MIT
// Package: matrix
//
// random.go - reproducible random square matrices for benchmarking.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidDimensions).
//   - rng must be non-nil (else ErrNilRand); callers own seeding.
//   - Values are uniform in [0, RandomUpperBound): integers via Int31n,
//     floats via Float32 scaled by the bound.
//
// Determinism:
//   - Stable fill order: i asc, j asc; identical seeds yield identical matrices.

package matrix

import (
	"fmt"
	"math/rand"
)

// RandomUpperBound is the exclusive upper bound of generated values.
const RandomUpperBound = 100

const methodRandom = "Random"

// Random returns an n×n matrix filled with pseudorandom values in [0,100).
// Complexity: O(n²).
func Random[T Element](n int, rng *rand.Rand) (*Dense[T], error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNilRand)
	}
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandom, n, err)
	}
	isInt := KindOf[T]() == KindInt32
	for idx := range m.data {
		if isInt {
			m.data[idx] = T(rng.Int31n(RandomUpperBound))
		} else {
			m.data[idx] = T(rng.Float32() * RandomUpperBound)
		}
	}

	return m, nil
}

// NewRand returns a *rand.Rand seeded with seed; a thin helper so callers
// don't need to import math/rand only to seed the generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
