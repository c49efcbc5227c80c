package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numprimer/internal/backend/cpu"
	"github.com/born-ml/numprimer/internal/tensor"
)

func TestArray_FlattenCopiesRavelShares(t *testing.T) {
	m := matrix(t)

	flat := m.Flatten()
	assert.Equal(t, tensor.Shape{9}, flat.Shape())
	assert.False(t, flat.Raw().SharesBuffer(m.Raw()))

	ravel := m.Ravel()
	assert.Equal(t, tensor.Shape{9}, ravel.Shape())
	require.NoError(t, ravel.Set(-1, 4))

	v, err := m.Int(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)

	v, err = flat.Int(4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestArray_Reshape(t *testing.T) {
	a, err := tensor.ArangeInt(0, 12, 1, cpu.New())
	require.NoError(t, err)

	m, err := a.Reshape(3, 4)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 4}, m.Shape())
	assert.Equal(t, tensor.Shape{12}, a.Shape())

	cell, err := m.Int(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cell)

	_, err = a.Reshape(5, 5)
	require.ErrorIs(t, err, tensor.ErrShape)

	_, err = a.Reshape(-12)
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestArray_SetShape(t *testing.T) {
	a, err := tensor.ArangeInt(0, 12, 1, cpu.New())
	require.NoError(t, err)
	view := a.Ravel()

	require.NoError(t, a.SetShape(2, 6))
	assert.Equal(t, tensor.Shape{2, 6}, a.Shape())
	assert.Equal(t, tensor.Shape{12}, view.Shape())

	// Data is still shared after the in-place reshape.
	require.NoError(t, a.Set(100, 1, 5))
	v, err := view.Int(11)
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)

	err = a.SetShape(7)
	require.ErrorIs(t, err, tensor.ErrShape)
	assert.Equal(t, tensor.Shape{2, 6}, a.Shape())
}

func TestArray_Transpose(t *testing.T) {
	m := matrix(t)

	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 7, 2, 5, 8, 3, 6, 9}, tr.Int64s())

	_, err = m.Transpose(0, 2)
	require.ErrorIs(t, err, tensor.ErrIndex)
}

func TestAppend(t *testing.T) {
	backend := cpu.New()
	head, err := tensor.FromSequence([]int{1, 2, 3}, backend)
	require.NoError(t, err)
	rest, err := tensor.FromSequence([][]int{{4, 5, 6}, {7, 8, 9}}, backend)
	require.NoError(t, err)

	flat, err := tensor.Append(head, rest)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{9}, flat.Shape())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, flat.Int64s())

	_, err = tensor.Append(head, nil)
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestAppendAxis(t *testing.T) {
	backend := cpu.New()
	top, err := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}}, backend)
	require.NoError(t, err)
	tail, err := tensor.FromSequence([][]float64{{7.5, 8, 9}}, backend)
	require.NoError(t, err)

	m, err := tensor.AppendAxis(top, tail, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 3}, m.Shape())
	assert.Equal(t, tensor.Float64, m.DType())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7.5, 8, 9}, m.Float64s())

	_, err = tensor.AppendAxis(top, tail, 1)
	require.ErrorIs(t, err, tensor.ErrShape)

	_, err = tensor.AppendAxis(top, tail, 2)
	require.ErrorIs(t, err, tensor.ErrIndex)

	flat, err := tensor.FromSequence([]int{1, 2, 3}, backend)
	require.NoError(t, err)
	_, err = tensor.AppendAxis(top, flat, 0)
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestConcatenate(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromSequence([][]int{{1}, {2}}, backend)
	require.NoError(t, err)

	m, err := tensor.Concatenate([]*tensor.Array{a, a, a}, -1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, m.Shape())
	assert.Equal(t, []int64{1, 1, 1, 2, 2, 2}, m.Int64s())

	_, err = tensor.Concatenate(nil, 0)
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestArray_Delete(t *testing.T) {
	m := matrix(t)

	flat, err := m.Delete(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 7, 8, 9}, flat.Int64s())

	rows, err := m.DeleteAxis(1, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, rows.Shape())
	assert.Equal(t, []int64{1, 2, 3, 7, 8, 9}, rows.Int64s())

	cols, err := m.DeleteAxis(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4, 5, 7, 8}, cols.Int64s())

	_, err = m.Delete(9)
	require.ErrorIs(t, err, tensor.ErrIndex)

	_, err = m.DeleteAxis(0, 2)
	require.ErrorIs(t, err, tensor.ErrIndex)

	// The source array is untouched.
	assert.Equal(t, 9, m.NumElements())
}
