package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numprimer/internal/tensor"
)

func TestCPUBackend_Cat(t *testing.T) {
	backend := New()

	t.Run("Rows", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{1, 2}, 1, 2)
		b := intsRaw(t, tensor.Shape{2, 2}, 3, 4, 5, 6)
		result, err := backend.Cat([]*tensor.RawTensor{a, b}, 0)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3, 2}, result.Shape())
		assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, result.AsInt64())
	})

	t.Run("Columns", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{2, 1}, 1, 2)
		b := intsRaw(t, tensor.Shape{2, 2}, 3, 4, 5, 6)
		result, err := backend.Cat([]*tensor.RawTensor{a, b}, -1)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 3}, result.Shape())
		assert.Equal(t, []int64{1, 3, 4, 2, 5, 6}, result.AsInt64())
	})

	t.Run("Promotes", func(t *testing.T) {
		a := boolsRaw(t, tensor.Shape{1}, true)
		b := intsRaw(t, tensor.Shape{1}, 7)
		c := floatsRaw(t, tensor.Shape{1}, 0.5)
		result, err := backend.Cat([]*tensor.RawTensor{a, b, c}, 0)
		require.NoError(t, err)
		assert.Equal(t, tensor.Float64, result.DType())
		assert.Equal(t, []float64{1, 7, 0.5}, result.AsFloat64())
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := intsRaw(t, tensor.Shape{1, 3}, 1, 2, 3)
		_, err := backend.Cat([]*tensor.RawTensor{a, b}, 0)
		require.ErrorIs(t, err, tensor.ErrShape)
	})

	t.Run("RankMismatch", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := intsRaw(t, tensor.Shape{2}, 1, 2)
		_, err := backend.Cat([]*tensor.RawTensor{a, b}, 0)
		require.ErrorIs(t, err, tensor.ErrShape)
	})

	t.Run("BadAxis", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{2}, 1, 2)
		_, err := backend.Cat([]*tensor.RawTensor{a, a}, 1)
		require.ErrorIs(t, err, tensor.ErrIndex)
	})

	t.Run("ZeroDimensional", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{}, 1)
		_, err := backend.Cat([]*tensor.RawTensor{a, a}, 0)
		require.ErrorIs(t, err, tensor.ErrShape)
	})
}

func TestCPUBackend_Delete(t *testing.T) {
	backend := New()
	m := intsRaw(t, tensor.Shape{3, 3}, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	tests := []struct {
		name         string
		index, axis  int
		wantShape    tensor.Shape
		wantElements []int64
	}{
		{"Row", 1, 0, tensor.Shape{2, 3}, []int64{1, 2, 3, 7, 8, 9}},
		{"Column", 0, 1, tensor.Shape{3, 2}, []int64{2, 3, 5, 6, 8, 9}},
		{"LastRowNegative", -1, 0, tensor.Shape{2, 3}, []int64{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := backend.Delete(m, tt.index, tt.axis)
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, result.Shape())
			assert.Equal(t, tt.wantElements, result.AsInt64())
		})
	}

	t.Run("IndexOutOfBounds", func(t *testing.T) {
		_, err := backend.Delete(m, 3, 0)
		require.ErrorIs(t, err, tensor.ErrIndex)
	})

	t.Run("AxisOutOfBounds", func(t *testing.T) {
		_, err := backend.Delete(m, 0, 2)
		require.ErrorIs(t, err, tensor.ErrIndex)
	})
}

func TestCPUBackend_Transpose(t *testing.T) {
	backend := New()

	t.Run("Reverse", func(t *testing.T) {
		m := floatsRaw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		result, err := backend.Transpose(m)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3, 2}, result.Shape())
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, result.AsFloat64())
	})

	t.Run("Permutation", func(t *testing.T) {
		x := intsRaw(t, tensor.Shape{2, 1, 3}, 1, 2, 3, 4, 5, 6)
		result, err := backend.Transpose(x, 1, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{1, 3, 2}, result.Shape())
		assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, result.AsInt64())
	})

	t.Run("Bools", func(t *testing.T) {
		x := boolsRaw(t, tensor.Shape{2, 2}, true, false, false, false)
		result, err := backend.Transpose(x)
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false, false, false}, result.AsBool())
	})

	t.Run("RepeatedAxis", func(t *testing.T) {
		x := intsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		_, err := backend.Transpose(x, 0, 0)
		require.ErrorIs(t, err, tensor.ErrIndex)
	})

	t.Run("WrongAxisCount", func(t *testing.T) {
		x := intsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		_, err := backend.Transpose(x, 0)
		require.ErrorIs(t, err, tensor.ErrShape)
	})
}
