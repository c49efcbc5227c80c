// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package codec reads and writes arrays: JSON and YAML literals, and a
// msgpack envelope {dtype, shape, data} for binary round trips.
//
// Example:
//
//	backend := cpu.New()
//	m, _ := codec.FromJSON([]byte(`[[1, 2], [3, 4]]`), backend)
//	data, _ := codec.Marshal(m)
//	back, _ := codec.Unmarshal(data, backend)
package codec

import (
	"io"

	"github.com/born-ml/numprimer/internal/codec"
	"github.com/born-ml/numprimer/tensor"
)

// FromJSON builds an array from nested JSON arrays of numbers or booleans.
func FromJSON(data []byte, b tensor.Backend) (*tensor.Array, error) {
	return codec.FromJSON(data, b)
}

// ToJSON encodes an array as nested JSON arrays.
func ToJSON(a *tensor.Array) ([]byte, error) {
	return codec.ToJSON(a)
}

// FromYAML builds an array from a YAML scalar or nested sequences.
func FromYAML(data []byte, b tensor.Backend) (*tensor.Array, error) {
	return codec.FromYAML(data, b)
}

// Marshal encodes an array into msgpack.
func Marshal(a *tensor.Array) ([]byte, error) {
	return codec.Marshal(a)
}

// Unmarshal decodes an array encoded by Marshal.
func Unmarshal(data []byte, b tensor.Backend) (*tensor.Array, error) {
	return codec.Unmarshal(data, b)
}

// Write encodes an array onto w in msgpack.
func Write(w io.Writer, a *tensor.Array) error {
	return codec.Write(w, a)
}

// Read decodes one msgpack-encoded array from r.
func Read(r io.Reader, b tensor.Backend) (*tensor.Array, error) {
	return codec.Read(r, b)
}

// Nested converts an array into nested []any slices.
func Nested(a *tensor.Array) any {
	return codec.Nested(a)
}
