package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numprimer/internal/backend/cpu"
	"github.com/born-ml/numprimer/internal/tensor"
)

func matrix(t *testing.T) *tensor.Array {
	t.Helper()
	m, err := tensor.FromSequence([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, cpu.New())
	require.NoError(t, err)
	return m
}

func TestArray_Metadata(t *testing.T) {
	m := matrix(t)
	assert.Equal(t, 2, m.NumDims())
	assert.Equal(t, 9, m.NumElements())
	assert.Equal(t, tensor.Int64, m.DType())
	assert.Equal(t, "Array[int64][3 3]", m.String())
	assert.Equal(t, "CPU", m.Backend().Name())

	// Shape returns a copy.
	s := m.Shape()
	s[0] = 100
	assert.Equal(t, tensor.Shape{3, 3}, m.Shape())
}

func TestArray_Get(t *testing.T) {
	m := matrix(t)

	row, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, row.Shape())
	assert.Equal(t, []int64{4, 5, 6}, row.Int64s())

	cell, err := m.Get(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cell.NumDims())
	v, err := cell.Item()
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = m.Get(3)
	require.ErrorIs(t, err, tensor.ErrIndex)
	assert.Contains(t, err.Error(), "index 3 is out of bounds for axis 0 with size 3")

	_, err = m.Get(-1)
	require.ErrorIs(t, err, tensor.ErrIndex)

	_, err = m.Get(0, 0, 0)
	require.ErrorIs(t, err, tensor.ErrIndex)
}

func TestArray_GetIsAView(t *testing.T) {
	m := matrix(t)

	row, err := m.Get(1)
	require.NoError(t, err)
	require.NoError(t, row.Set(50, 1))

	v, err := m.Value(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), v)
	assert.True(t, row.Raw().SharesBuffer(m.Raw()))
}

func TestArray_ScalarAccess(t *testing.T) {
	m := matrix(t)

	f, err := m.Float(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	i, err := m.Int(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), i)

	_, err = m.Value(1)
	require.ErrorIs(t, err, tensor.ErrIndex)

	require.NoError(t, m.Set(2.7, 0, 0))
	i, err = m.Int(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), i)

	require.ErrorIs(t, m.Set("x", 0, 0), tensor.ErrDType)
	require.ErrorIs(t, m.Set(1, 3, 0), tensor.ErrIndex)

	_, err = m.Item()
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestArray_Values(t *testing.T) {
	a, err := tensor.FromSequence([]any{true, false}, cpu.New())
	require.NoError(t, err)
	assert.Equal(t, []any{true, false}, a.Values())
	assert.Equal(t, []bool{true, false}, a.Bools())
	assert.Equal(t, []int64{1, 0}, a.Int64s())
}

func TestArray_CloneAndAsType(t *testing.T) {
	m := matrix(t)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 0))
	v, err := m.Int(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	f := m.AsType(tensor.Float64)
	assert.Equal(t, tensor.Float64, f.DType())
	assert.True(t, f.Equal(m))

	same := m.AsType(tensor.Int64)
	assert.False(t, same.Raw().SharesBuffer(m.Raw()))
}
