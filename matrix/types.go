// SPDX-License-Identifier: MIT

// Package matrix: element constraint and kind labels.
// Only the two numeric representations benchmarked by this module are
// admitted: 32-bit signed integers and single-precision floats. Arithmetic
// on either kind is performed in the element type itself, so int32 wraps on
// overflow and float32 accumulates in single precision.
package matrix

import (
	"fmt"
	"strings"
)

// Element is the set of numeric types a Dense matrix may hold.
type Element interface {
	~int32 | ~float32
}

// Kind names the numeric representation of a matrix.
// It implements encoding.TextMarshaler/TextUnmarshaler so it can be read
// from configuration (e.g. "int32,float32").
type Kind uint8

// Supported kinds.
const (
	KindInt32 Kind = iota + 1
	KindFloat32
)

// kind labels (no magic strings at call sites).
const (
	labelInt32   = "int32"
	labelFloat32 = "float32"
	labelUnknown = "unknown"
)

// KindOf reports the Kind of the element type T.
// Complexity: O(1).
func KindOf[T Element]() Kind {
	// Integer division truncates, float division doesn't; this also
	// classifies named types defined over the base kinds.
	var one, two T = 1, 2
	if one/two == 0 {
		return KindInt32
	}

	return KindFloat32
}

// String returns the canonical label of k.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return labelInt32
	case KindFloat32:
		return labelFloat32
	default:
		return labelUnknown
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindInt32 && k != KindFloat32 {
		return nil, fmt.Errorf("Kind(%d): %w", uint8(k), ErrUnknownKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Labels are case-insensitive;
// "int" and "float" are accepted as short aliases.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case labelInt32, "int", "i32":
		*k = KindInt32
	case labelFloat32, "float", "f32":
		*k = KindFloat32
	default:
		return fmt.Errorf("Kind(%q): %w", string(text), ErrUnknownKind)
	}

	return nil
}

// ParseKind is a convenience wrapper over UnmarshalText.
func ParseKind(s string) (Kind, error) {
	var k Kind
	err := k.UnmarshalText([]byte(s))

	return k, err
}
