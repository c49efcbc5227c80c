package codec

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/numprimer/internal/tensor"
)

// FromYAML builds an array from a YAML document holding a scalar or nested
// sequences. The resolved tag of each scalar picks its type: !!int gives
// int64, !!float float64 and !!bool bool. Other scalars and mappings fail
// with ErrDType.
//
// Example:
//
//	m, err := codec.FromYAML([]byte("- [1, 2]\n- [3, 4]\n"), backend) // int64 (2, 2)
func FromYAML(data []byte, b tensor.Backend) (*tensor.Array, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(tensor.ErrDType, "fromYAML: %v", err)
	}
	if len(doc.Content) == 0 {
		return nil, errors.Wrap(tensor.ErrDType, "fromYAML: empty document")
	}

	seq, err := decodeYAMLNode(doc.Content[0])
	if err != nil {
		return nil, errors.Wrap(err, "fromYAML")
	}

	a, err := tensor.FromSequence(seq, b)
	if err != nil {
		return nil, errors.Wrap(err, "fromYAML")
	}
	log.Debugf("Decoded YAML document into %s", a)
	return a, nil
}

func decodeYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeYAMLNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			item, err := decodeYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(node)
	default:
		return nil, errors.Wrapf(tensor.ErrDType, "line %d: expected a sequence or scalar", node.Line)
	}
}

func decodeYAMLScalar(node *yaml.Node) (any, error) {
	var err error
	switch node.ShortTag() {
	case "!!int":
		var v int64
		if err = node.Decode(&v); err == nil {
			return v, nil
		}
	case "!!float":
		var v float64
		if err = node.Decode(&v); err == nil {
			return v, nil
		}
	case "!!bool":
		var v bool
		if err = node.Decode(&v); err == nil {
			return v, nil
		}
	default:
		return nil, errors.Wrapf(tensor.ErrDType, "line %d: unsupported scalar %q (%s)", node.Line, node.Value, node.ShortTag())
	}
	return nil, errors.Wrapf(tensor.ErrDType, "line %d: %v", node.Line, err)
}
