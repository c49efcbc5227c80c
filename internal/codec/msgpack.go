package codec

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack"

	"github.com/born-ml/numprimer/internal/tensor"
)

// envelope is the msgpack wire form of an array.
type envelope struct {
	DType string        `msgpack:"dtype"`
	Shape []int         `msgpack:"shape"`
	Data  []interface{} `msgpack:"data"`
}

// Write encodes a onto w as a msgpack envelope {dtype, shape, data} with
// data in row-major order.
func Write(w io.Writer, a *tensor.Array) error {
	env := envelope{
		DType: a.DType().String(),
		Shape: a.Shape(),
		Data:  a.Values(),
	}
	if err := msgpack.NewEncoder(w).Encode(&env); err != nil {
		return errors.Wrap(err, "msgpack encode")
	}
	log.Debugf("Encoded %s as msgpack", a)
	return nil
}

// Read decodes one msgpack envelope from r.
func Read(r io.Reader, b tensor.Backend) (*tensor.Array, error) {
	var env envelope
	if err := msgpack.NewDecoder(r).Decode(&env); err != nil {
		return nil, errors.Wrap(err, "msgpack decode")
	}

	dtype, ok := tensor.ParseDataType(env.DType)
	if !ok {
		return nil, errors.Wrapf(tensor.ErrDType, "msgpack decode: unknown dtype %q", env.DType)
	}
	shape := tensor.Shape(env.Shape)
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "msgpack decode")
	}
	if len(env.Data) != shape.NumElements() {
		return nil, errors.Wrapf(tensor.ErrShape, "msgpack decode: %d values for shape %v", len(env.Data), shape)
	}
	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, errors.Wrap(err, "msgpack decode")
	}
	for i, v := range env.Data {
		if err := raw.SetValueAt(i, v); err != nil {
			return nil, errors.Wrapf(err, "msgpack decode: element %d", i)
		}
	}

	a := tensor.New(raw, b)
	log.Debugf("Decoded %s from msgpack", a)
	return a, nil
}

// Marshal encodes a into a msgpack byte slice.
func Marshal(a *tensor.Array) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a msgpack envelope produced by Marshal.
func Unmarshal(data []byte, b tensor.Backend) (*tensor.Array, error) {
	return Read(bytes.NewReader(data), b)
}
