package command

import (
	"fmt"
	"strconv"

	"github.com/viant/resolver/instance"
	"gopkg.in/yaml.v3"
)

// DecodeArgs decodes YAML mapping or sequence into arguments,
// integer mapping keys are positional, other keys are named
func DecodeArgs(data []byte) (*instance.Args, error) {
	ret := instance.NewArgs()
	document := &yaml.Node{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to decode args: %w", err)
	}
	if len(document.Content) == 0 {
		return ret, nil
	}
	root := resolveAlias(document.Content[0])
	switch root.Kind {
	case yaml.SequenceNode:
		for _, item := range root.Content {
			value, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			ret.Add(value)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, item := resolveAlias(root.Content[i]), root.Content[i+1]
			value, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			if key.Tag == "!!int" {
				index, err := strconv.Atoi(key.Value)
				if err != nil || index < 0 {
					return nil, fmt.Errorf("invalid positional argument key: %v", key.Value)
				}
				ret.SetAt(index, value)
				continue
			}
			ret.Set(key.Value, value)
		}
	default:
		return nil, fmt.Errorf("unsupported args document at line %v: expected mapping or sequence", root.Line)
	}
	return ret, nil
}

func decodeValue(node *yaml.Node) (instance.Value, error) {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode {
		switch node.Tag {
		case "!!null":
			return instance.Null(), nil
		case "!!str":
			return instance.String(node.Value), nil
		case "!!bool":
			var value bool
			if err := node.Decode(&value); err != nil {
				return instance.Null(), fmt.Errorf("invalid bool %v at line %v: %w", node.Value, node.Line, err)
			}
			return instance.Bool(value), nil
		case "!!int":
			var value int64
			if err := node.Decode(&value); err != nil {
				return instance.Null(), fmt.Errorf("invalid integer %v at line %v: %w", node.Value, node.Line, err)
			}
			return instance.Int(value), nil
		case "!!float":
			var value float64
			if err := node.Decode(&value); err != nil {
				return instance.Null(), fmt.Errorf("invalid float %v at line %v: %w", node.Value, node.Line, err)
			}
			return instance.Float(value), nil
		}
	}
	var value interface{}
	if err := node.Decode(&value); err != nil {
		return instance.Null(), fmt.Errorf("failed to decode value at line %v: %w", node.Line, err)
	}
	switch node.Kind {
	case yaml.SequenceNode:
		if value == nil {
			value = []interface{}{}
		}
	case yaml.MappingNode:
		if value == nil {
			value = map[string]interface{}{}
		}
	}
	return instance.ValueOf(value), nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
