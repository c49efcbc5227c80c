package cpu

import (
	"github.com/born-ml/numprimer/internal/tensor"
)

// computeBroadcastStridesForShape computes strides for broadcasting a shape to outShape.
// Returns strides where dimensions of size 1 have stride 0 (for broadcasting).
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	// Pad input shape with 1s on the left
	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// computeFlatIndex computes the flat index in the source array for a given output index.
// outStrides: strides of the output shape.
// inStrides: broadcast-adjusted strides of the input shape.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// broadcastPair maps each flat output index to the flat indices of both
// operands. Same-shape operands take the identity fast path.
type broadcastPair struct {
	n          int
	same       bool
	outStrides []int
	aStrides   []int
	bStrides   []int
}

func newBroadcastPair(aShape, bShape, outShape tensor.Shape) broadcastPair {
	if aShape.Equal(bShape) {
		return broadcastPair{n: outShape.NumElements(), same: true}
	}
	return broadcastPair{
		n:          outShape.NumElements(),
		outStrides: outShape.ComputeStrides(),
		aStrides:   computeBroadcastStridesForShape(aShape, outShape),
		bStrides:   computeBroadcastStridesForShape(bShape, outShape),
	}
}

func (p broadcastPair) indices(i int) (ai, bi int) {
	if p.same {
		return i, i
	}
	return computeFlatIndex(i, p.outStrides, p.aStrides), computeFlatIndex(i, p.outStrides, p.bStrides)
}
