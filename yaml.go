package docshift

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML encodes a document as YAML. Encoding goes through a yaml.Node tree
// rather than native Go maps so mapping entries keep their document order.
func ToYAML(doc any) (string, error) {
	n, err := yamlNode(doc)
	if err != nil {
		return "", err
	}
	b, err := yaml.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("encode yaml document: %w", err)
	}
	return string(b), nil
}

// FromYAML decodes data into a document: mappings as D (ordered), sequences
// as A, scalars as their Go kinds. This is the YAML-side input adapter
// feeding the projectors.
func FromYAML(data []byte) (any, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode yaml document: %w", err)
	}
	if n.Kind == 0 {
		return nil, nil
	}
	return fromYAMLNode(&n)
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case D:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range t {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
			val, err := yamlNode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", e.Key, err)
			}
			n.Content = append(n.Content, key, val)
		}
		return n, nil
	case A:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, elem := range t {
			val, err := yamlNode(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			n.Content = append(n.Content, val)
		}
		return n, nil
	case []any:
		return yamlNode(A(t))
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, fmt.Errorf("encode yaml scalar %T: %w", v, err)
		}
		return n, nil
	}
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.MappingNode:
		doc := D{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			doc = append(doc, E{Key: n.Content[i].Value, Value: v})
		}
		return doc, nil
	case yaml.SequenceNode:
		arr := A{}
		for _, c := range n.Content {
			v, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode yaml scalar at line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected yaml node kind %d at line %d: %w", n.Kind, n.Line, ErrMalformedDocument)
	}
}
