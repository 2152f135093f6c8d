// SPDX-License-Identifier: MIT
// Package sweep: sentinel error set.

package sweep

import "errors"

var (
	// ErrNoSizes is returned when the sweep has no matrix sizes.
	ErrNoSizes = errors.New("sweep: no matrix sizes configured")

	// ErrNoWorkers is returned when the sweep has no worker counts.
	ErrNoWorkers = errors.New("sweep: no worker counts configured")

	// ErrNoKinds is returned when the sweep has no element kinds.
	ErrNoKinds = errors.New("sweep: no element kinds configured")

	// ErrResultMismatch is returned when two worker counts disagree on a product.
	ErrResultMismatch = errors.New("sweep: results differ between worker counts")
)
