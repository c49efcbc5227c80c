package codec

import (
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/born-ml/numprimer/internal/tensor"
)

// FromJSON builds an array from a JSON literal: a number, a boolean, or
// nested arrays of them. Numbers without fraction or exponent are int64,
// everything else numeric is float64. Nesting and promotion follow
// tensor.FromSequence.
//
// Example:
//
//	m, err := codec.FromJSON([]byte(`[[1, 2], [3, 4.5]]`), backend) // float64 (2, 2)
func FromJSON(data []byte, b tensor.Backend) (*tensor.Array, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrapf(tensor.ErrDType, "fromJSON: %v", err)
	}

	seq, err := decodeJSONValue(value, dataType)
	if err != nil {
		return nil, errors.Wrap(err, "fromJSON")
	}

	a, err := tensor.FromSequence(seq, b)
	if err != nil {
		return nil, errors.Wrap(err, "fromJSON")
	}
	log.Debugf("Decoded JSON literal into %s", a)
	return a, nil
}

func decodeJSONValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(value); err == nil {
			return i, nil
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			return nil, errors.Wrapf(tensor.ErrDType, "bad number %q", value)
		}
		return f, nil
	case jsonparser.Boolean:
		v, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, errors.Wrapf(tensor.ErrDType, "bad boolean %q", value)
		}
		return v, nil
	case jsonparser.Array:
		items := []any{}
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if itemErr != nil {
				return
			}
			decoded, err := decodeJSONValue(item, itemType)
			if err != nil {
				itemErr = err
				return
			}
			items = append(items, decoded)
		})
		if err != nil {
			return nil, errors.Wrapf(tensor.ErrDType, "malformed array: %v", err)
		}
		if itemErr != nil {
			return nil, itemErr
		}
		return items, nil
	default:
		return nil, errors.Wrapf(tensor.ErrDType, "unsupported JSON %s %q", dataType, value)
	}
}

// ToJSON encodes an array as nested JSON arrays. Non-finite floats have no
// JSON representation and fail with ErrDomain.
func ToJSON(a *tensor.Array) ([]byte, error) {
	data, err := json.Marshal(Nested(a))
	if err != nil {
		return nil, errors.Wrapf(tensor.ErrDomain, "toJSON: %v", err)
	}
	return data, nil
}
