// Package matrix_test contains unit tests for the generic Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/IngvarV8/matrix-mul/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int32](0, 5)               // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[float32](5, 0)              // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewSquareAllowsEmpty verifies the 0×0 degenerate shape and rejects negatives.
func TestNewSquareAllowsEmpty(t *testing.T) {
	m, err := matrix.NewSquare[int32](0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Empty(t, m.Data())
	require.True(t, m.IsZero())

	_, err = matrix.NewSquare[int32](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense[int32](3, 4)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Len(t, m.Data(), 12)
}

// TestAtSetOutOfBounds ensures At(), Set() and Row() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustSquare[int32](t, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4), matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float32](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(7.5), val)
	require.Equal(t, float32(7.5), m.Data()[1*3+2]) // row-major offset i*c + j
}

// TestFromRows covers copy semantics and ragged/empty rejection.
func TestFromRows(t *testing.T) {
	src := [][]int32{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3, 4}, m.Data())

	src[0][0] = 99 // mutating the source must not leak into m
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	_, err = matrix.FromRows([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.FromRows[int32](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowCapped ensures Row aliases storage but cannot grow into the next row.
func TestRowCapped(t *testing.T) {
	m := mustFromRows(t, [][]int32{{1, 2}, {3, 4}})

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2}, row)
	require.Equal(t, 2, cap(row))

	_ = append(row, 42) // reallocates; must not overwrite row 1
	next, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int32{3, 4}, next)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFromRows(t, [][]float32{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), orig)
	require.False(t, m.Equal(clone))
}

// TestEqual covers nil handling and shape mismatch.
func TestEqual(t *testing.T) {
	var nilM *matrix.Dense[int32]
	require.True(t, nilM.Equal(nil))

	a := mustSquare[int32](t, 2)
	require.False(t, a.Equal(nil))

	b, err := matrix.NewDense[int32](2, 3)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

// TestStringOutput checks that String() formats small matrices fully.
func TestStringOutput(t *testing.T) {
	m := mustFromRows(t, [][]int32{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestStringPreviewTruncates checks the 10×10 preview bound.
func TestStringPreviewTruncates(t *testing.T) {
	m := mustSquare[int32](t, 12)

	out := m.String()
	lines := splitLines(out)
	require.Len(t, lines, matrix.PreviewLimit+1) // 10 rows + ellipsis line
	require.Equal(t, "...", lines[matrix.PreviewLimit])
	require.Equal(t, "[0, 0, 0, 0, 0, 0, 0, 0, 0, 0, ...]", lines[0])
}
