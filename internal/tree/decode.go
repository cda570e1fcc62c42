package tree

import (
	"fmt"

	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

// FromJSON parses a serialized tree document into the canonical in-memory
// shape: nodes are map[string]any, sequences []any, numbers float64.
func FromJSON(data []byte) (any, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing tree document: %w", err)
	}
	return convertJSON(v)
}

func convertJSON(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		node := make(map[string]any, obj.Len())
		var visitErr error
		obj.Visit(func(key []byte, val *fastjson.Value) {
			if visitErr != nil {
				return
			}
			converted, err := convertJSON(val)
			if err != nil {
				visitErr = err
				return
			}
			node[string(key)] = converted
		})
		if visitErr != nil {
			return nil, visitErr
		}
		return node, nil
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return nil, err
		}
		seq := make([]any, 0, len(arr))
		for _, el := range arr {
			converted, err := convertJSON(el)
			if err != nil {
				return nil, err
			}
			seq = append(seq, converted)
		}
		return seq, nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case fastjson.TypeNumber:
		return v.Float64()
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeNull:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected JSON value type %s", v.Type())
	}
}

// FromYAML parses a YAML tree document into the same canonical shape
// FromJSON produces.
func FromYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing tree document: %w", err)
	}
	return normalizeYAML(raw)
}

func normalizeYAML(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		node := make(map[string]any, len(v))
		for k, val := range v {
			converted, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			node[k] = converted
		}
		return node, nil
	case map[any]any:
		node := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string field name %v", k)
			}
			converted, err := normalizeYAML(val)
			if err != nil {
				return nil, err
			}
			node[key] = converted
		}
		return node, nil
	case []any:
		seq := make([]any, len(v))
		for i, el := range v {
			converted, err := normalizeYAML(el)
			if err != nil {
				return nil, err
			}
			seq[i] = converted
		}
		return seq, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return v, nil
	}
}
