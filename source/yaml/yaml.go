// Package yaml decodes YAML input into the raw any representation consumed
// by godeco decoders. Mapping keys are normalized to strings so the result
// matches the map[string]any shape produced by the JSON source; non-string
// keys are dropped.
package yaml

import (
	"bytes"
	"errors"
	"io"

	yv3 "gopkg.in/yaml.v3"
)

// DecodeBytes parses the first YAML document in data.
func DecodeBytes(data []byte) (any, error) {
	var node any
	if err := yv3.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return normalizeValue(node), nil
}

// DecodeAll parses every document in a multi-document YAML stream.
func DecodeAll(data []byte) ([]any, error) {
	dec := yv3.NewDecoder(bytes.NewReader(data))
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, normalizeValue(node))
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeValue(vv)
		}
		return out
	default:
		return v
	}
}
