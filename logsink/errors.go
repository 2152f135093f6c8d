// SPDX-License-Identifier: MIT
// Package logsink: sentinel error set.

package logsink

import "errors"

var (
	// ErrClosed is returned by Append on a sink that has been closed.
	ErrClosed = errors.New("logsink: sink is closed")

	// ErrEmptyPath is returned when a file sink is configured without a path.
	ErrEmptyPath = errors.New("logsink: empty path")

	// ErrNilWriter is returned when a writer sink is built around a nil io.Writer.
	ErrNilWriter = errors.New("logsink: nil writer")
)
