// SPDX-License-Identifier: MIT
// Package: logsink
//
// file.go - per-call open/append/close file sink.
//
// Contract:
//   - Every Append opens the file with O_APPEND, writes one line, closes it.
//     No handle is held between calls, so other processes may rotate or
//     inspect the file freely.
//   - Appends from one *File are mutually exclusive (mutex); each line is a
//     single write(2) under O_APPEND.
//   - Close marks the sink unusable; later Appends return ErrClosed.

package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const (
	// FilePrefix and FileExt compose timestamped log names: matrix_log_<unix>.txt.
	FilePrefix = "matrix_log_"
	FileExt    = ".txt"

	filePerm = 0o644
	dirPerm  = 0o755
)

// File is an append-only Sink bound to a path.
type File struct {
	mu     sync.Mutex
	path   string
	closed bool
}

// OpenFile returns a File sink for path. The file is created if missing;
// existing content is preserved.
// Errors: ErrEmptyPath, or the os error from the initial create.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, fmt.Errorf("OpenFile(%s): %w", path, err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("OpenFile(%s): %w", path, err)
	}

	return &File{path: path}, nil
}

// Create makes dir (and parents) if needed and creates an empty
// matrix_log_<unix seconds>.txt inside it, truncating a same-second leftover.
func Create(dir string, now time.Time) (*File, error) {
	if dir == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("Create(%s): %w", dir, err)
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("Create(%s): %w", path, err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("Create(%s): %w", path, err)
	}

	return &File{path: path}, nil
}

// FileName returns the timestamped log file name for now.
func FileName(now time.Time) string {
	return FilePrefix + strconv.FormatInt(now.Unix(), 10) + FileExt
}

// Path returns the file path the sink appends to.
func (s *File) Path() string { return s.path }

// Append opens the file, appends line and a newline, and closes it.
func (s *File) Append(line string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return fmt.Errorf("File.Append(%s): %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("File.Append(%s): %w", s.path, cerr)
		}
	}()
	if _, err = f.WriteString(terminate(line)); err != nil {
		return fmt.Errorf("File.Append(%s): %w", s.path, err)
	}

	return nil
}

// Close marks the sink closed. It is safe to call more than once.
func (s *File) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	return nil
}
