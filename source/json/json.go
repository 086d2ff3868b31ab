// Package json decodes JSON input into the raw any representation consumed
// by godeco decoders: map[string]any objects, []any arrays, string, bool,
// nil, and numbers as float64 or json.Number depending on NumberMode.
package json

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// NumberMode dictates how numbers are materialized.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (with potential precision loss).
	NumberJSONNumber                   // Preserve json.Number.
)

// Option bundles decoding options.
type Option struct {
	Numbers NumberMode
}

// DecodeBytes parses a JSON document from a byte slice.
func DecodeBytes(data []byte, opts ...Option) (any, error) {
	return DecodeReader(bytes.NewReader(data), opts...)
}

// DecodeReader parses a JSON document from a reader. The last option wins
// when several are given.
func DecodeReader(r io.Reader, opts ...Option) (any, error) {
	var opt Option
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	dec := j.NewDecoder(r)
	if opt.Numbers == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
