// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/IngvarV8/matrix-mul/matrix"
)

// Defaults mirror the reference benchmark run.
var (
	DefaultSizes   = []int{250, 500, 1000, 2000}
	DefaultWorkers = []int{4, 6}
	DefaultKinds   = []matrix.Kind{matrix.KindInt32, matrix.KindFloat32}
)

// Config describes one benchmark sweep.
// Sizes and worker counts are passed to the engine as-is: an invalid pair
// (e.g. workers > size) is logged and skipped, not rejected up front.
type Config struct {
	Sizes   []int
	Workers []int
	Kinds   []matrix.Kind

	// Seed drives operand generation; equal seeds give equal operands.
	Seed int64

	// Sequential also runs the single-threaded baseline for every size and kind.
	Sequential bool

	// SharedInputs lets workers read the operands without cloning them.
	SharedInputs bool

	// StrictLogging aborts on the first sink failure.
	StrictLogging bool

	// Preview logs the top-left 10×10 block of operands and results at Debug level.
	Preview bool
}

// DefaultConfig returns the reference sweep with the given seed.
func DefaultConfig(seed int64) Config {
	return Config{
		Sizes:   append([]int(nil), DefaultSizes...),
		Workers: append([]int(nil), DefaultWorkers...),
		Kinds:   append([]matrix.Kind(nil), DefaultKinds...),
		Seed:    seed,
	}
}

// Validate checks that every axis of the sweep is non-empty and every kind is known.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	if len(c.Workers) == 0 {
		return ErrNoWorkers
	}
	if len(c.Kinds) == 0 {
		return ErrNoKinds
	}
	for _, k := range c.Kinds {
		if _, err := k.MarshalText(); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
	}

	return nil
}
