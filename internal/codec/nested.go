// Package codec reads and writes arrays in interchange formats: nested JSON
// and YAML sequences for literals, and a msgpack envelope for binary
// round trips.
package codec

import (
	"github.com/born-ml/numprimer/internal/tensor"
)

// Nested converts an array into nested []any slices mirroring its shape.
// Leaves are float64, int64 or bool. A 0-D array gives its single value.
func Nested(a *tensor.Array) any {
	values := a.Values()
	shape := a.Shape()
	if len(shape) == 0 {
		return values[0]
	}
	nested, _ := nest(values, shape)
	return nested
}

// nest consumes the leading block of values that fills shape and returns
// it with the remaining values.
func nest(values []any, shape tensor.Shape) (any, []any) {
	if len(shape) == 1 {
		out := make([]any, shape[0])
		copy(out, values[:shape[0]])
		return out, values[shape[0]:]
	}
	out := make([]any, shape[0])
	for i := range out {
		out[i], values = nest(values, shape[1:])
	}
	return out, values
}
