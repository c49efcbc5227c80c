// Package cpu implements the CPU backend in pure Go, with gonum for linear
// algebra and statistics.
package cpu

import (
	"github.com/born-ml/numprimer/internal/tensor"
)

// CPUBackend implements array operations on the CPU.
type CPUBackend struct{}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// newRaw allocates a result tensor for a shape that is already known to be valid.
func newRaw(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		panic(err) // Shapes come from validated inputs.
	}
	return result
}
