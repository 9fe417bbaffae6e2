// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/boolnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{0, 0, 0}, m.ColSums())

	empty, err := matrix.NewDense(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, empty.Rows())
	assert.Zero(t, empty.Cols())
	assert.Equal(t, "[]\n[]\n[]\n[]\n", empty.String())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 0.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Dense
	_, err = nilM.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.ErrorIs(t, nilM.Set(0, 0, 1), matrix.ErrNilMatrix)
}

func TestDense_RowAndColSums(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, []float64{5, 7, 9}, m.ColSums())

	empty, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.ColSums())
}

func TestDense_Transpose(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	v, _ := tr.At(2, 1)
	assert.Equal(t, 6.0, v)

	require.NoError(t, tr.Set(0, 0, 9))
	orig, _ := m.At(0, 0)
	assert.Equal(t, 1.0, orig)

	assert.Equal(t, "[9, 4]\n[2, 5]\n[3, 6]\n", tr.String())
}
