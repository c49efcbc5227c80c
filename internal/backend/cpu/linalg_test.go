package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numprimer/internal/tensor"
)

func TestCPUBackend_Dot(t *testing.T) {
	backend := New()

	t.Run("VectorVector", func(t *testing.T) {
		result, err := backend.Dot(floatsRaw(t, tensor.Shape{3}, 1, 2, 3), floatsRaw(t, tensor.Shape{3}, 4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, 0, len(result.Shape()))
		assert.Equal(t, []float64{32}, result.AsFloat64())
	})

	t.Run("IntVectorsStayInt", func(t *testing.T) {
		result, err := backend.Dot(intsRaw(t, tensor.Shape{3}, 1, 2, 3), intsRaw(t, tensor.Shape{3}, 4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, tensor.Int64, result.DType())
		assert.Equal(t, []int64{32}, result.AsInt64())
	})

	t.Run("MatrixMatrix", func(t *testing.T) {
		a := floatsRaw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := floatsRaw(t, tensor.Shape{3, 2}, 7, 8, 9, 10, 11, 12)
		result, err := backend.Dot(a, b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
		assert.Equal(t, []float64{58, 64, 139, 154}, result.AsFloat64())
	})

	t.Run("MatrixVector", func(t *testing.T) {
		a := intsRaw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		result, err := backend.Dot(a, intsRaw(t, tensor.Shape{3}, 1, 0, -1))
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2}, result.Shape())
		assert.Equal(t, []int64{-2, -2}, result.AsInt64())
	})

	t.Run("VectorMatrix", func(t *testing.T) {
		b := intsRaw(t, tensor.Shape{3, 2}, 1, 2, 3, 4, 5, 6)
		result, err := backend.Dot(intsRaw(t, tensor.Shape{3}, 1, 1, 1), b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2}, result.Shape())
		assert.Equal(t, []int64{9, 12}, result.AsInt64())
	})

	t.Run("StackTimesMatrix", func(t *testing.T) {
		// dot(a, b)[i,j,k] = sum(a[i,j,:] * b[:,k])
		a := intsRaw(t, tensor.Shape{2, 1, 2}, 1, 2, 3, 4)
		b := intsRaw(t, tensor.Shape{2, 2}, 1, 0, 0, 1)
		result, err := backend.Dot(a, b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 1, 2}, result.Shape())
		assert.Equal(t, []int64{1, 2, 3, 4}, result.AsInt64())
	})

	t.Run("ScalarMultiplies", func(t *testing.T) {
		result, err := backend.Dot(intsRaw(t, tensor.Shape{}, 2), intsRaw(t, tensor.Shape{2}, 3, 4))
		require.NoError(t, err)
		assert.Equal(t, []int64{6, 8}, result.AsInt64())
	})

	t.Run("Misaligned", func(t *testing.T) {
		_, err := backend.Dot(floatsRaw(t, tensor.Shape{3}, 1, 2, 3), floatsRaw(t, tensor.Shape{2}, 1, 2))
		require.ErrorIs(t, err, tensor.ErrShape)

		_, err = backend.Dot(floatsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4), floatsRaw(t, tensor.Shape{3, 1}, 1, 2, 3))
		require.ErrorIs(t, err, tensor.ErrShape)
	})
}

func TestCPUBackend_Inner(t *testing.T) {
	backend := New()

	t.Run("MatrixVector", func(t *testing.T) {
		m := intsRaw(t, tensor.Shape{3, 3}, 0, 3, 4, 4, 1, 9, 1, 5, 12)
		v := intsRaw(t, tensor.Shape{3}, 4, -5, 6)
		result, err := backend.Inner(m, v)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3}, result.Shape())
		assert.Equal(t, []int64{9, 65, 51}, result.AsInt64())
	})

	t.Run("MatrixMatrix", func(t *testing.T) {
		a := floatsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		result, err := backend.Inner(a, a)
		require.NoError(t, err)
		// a @ a.T
		assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
		assert.Equal(t, []float64{5, 11, 11, 25}, result.AsFloat64())
	})

	t.Run("Misaligned", func(t *testing.T) {
		_, err := backend.Inner(floatsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4), floatsRaw(t, tensor.Shape{3}, 1, 2, 3))
		require.ErrorIs(t, err, tensor.ErrShape)
	})
}

func TestCPUBackend_MatMul(t *testing.T) {
	backend := New()

	t.Run("Float", func(t *testing.T) {
		a := floatsRaw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := floatsRaw(t, tensor.Shape{2, 1}, 5, 6)
		result, err := backend.MatMul(a, b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 1}, result.Shape())
		assert.InDeltaSlice(t, []float64{17, 39}, result.AsFloat64(), 1e-12)
	})

	t.Run("ZeroInnerDimension", func(t *testing.T) {
		a := floatsRaw(t, tensor.Shape{2, 0})
		b := floatsRaw(t, tensor.Shape{0, 3})
		result, err := backend.MatMul(a, b)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 3}, result.Shape())
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, result.AsFloat64())
	})

	t.Run("RequiresMatrices", func(t *testing.T) {
		_, err := backend.MatMul(floatsRaw(t, tensor.Shape{2}, 1, 2), floatsRaw(t, tensor.Shape{2, 1}, 1, 2))
		require.ErrorIs(t, err, tensor.ErrShape)
	})
}

func TestCPUBackend_Det(t *testing.T) {
	backend := New()

	t.Run("Stack", func(t *testing.T) {
		x := intsRaw(t, tensor.Shape{3, 2, 2},
			1, 2, 3, 4,
			1, 2, 2, 1,
			1, 3, 3, 1,
		)
		result, err := backend.Det(x)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3}, result.Shape())
		assert.InDeltaSlice(t, []float64{-2, -3, -8}, result.AsFloat64(), 1e-9)
	})

	t.Run("SingleMatrixIsScalar", func(t *testing.T) {
		result, err := backend.Det(floatsRaw(t, tensor.Shape{3, 3}, 2, 0, 0, 0, 3, 0, 0, 0, 4))
		require.NoError(t, err)
		assert.Equal(t, 0, len(result.Shape()))
		assert.InDelta(t, 24, result.AsFloat64()[0], 1e-9)
	})

	t.Run("EmptyMatrix", func(t *testing.T) {
		result, err := backend.Det(floatsRaw(t, tensor.Shape{0, 0}))
		require.NoError(t, err)
		assert.Equal(t, []float64{1}, result.AsFloat64())
	})

	t.Run("NotSquare", func(t *testing.T) {
		_, err := backend.Det(floatsRaw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6))
		require.ErrorIs(t, err, tensor.ErrShape)
	})

	t.Run("Vector", func(t *testing.T) {
		_, err := backend.Det(floatsRaw(t, tensor.Shape{4}, 1, 2, 3, 4))
		require.ErrorIs(t, err, tensor.ErrShape)
	})
}
