package dsl

import (
	"encoding/json"
	"math"

	godeco "github.com/reoring/godeco"
	"github.com/reoring/godeco/i18n"
)

// BoolDecoder accepts a raw boolean.
func BoolDecoder() godeco.Decoder[any, bool] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, bool] {
		b, ok := raw.(bool)
		if !ok {
			return godeco.Invalid[godeco.DecodeError, bool](godeco.RootError(i18n.T("expected_boolean", nil)))
		}
		return godeco.Valid[godeco.DecodeError](b)
	})
}

// BoolEncoder passes a boolean through to the raw representation.
func BoolEncoder() godeco.Encoder[any, bool] {
	return godeco.EncoderOf(func(b bool) any { return b })
}

// Bool pairs BoolDecoder with BoolEncoder.
func Bool() godeco.Codec[any, bool] {
	return godeco.CodecOf(BoolDecoder(), BoolEncoder())
}

// rawNumber widens the numeric representations the sources produce:
// float64 (JSON fast mode), json.Number (JSON precise mode) and int/int64
// (YAML integers).
func rawNumber(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NumberDecoder accepts a raw number as float64.
func NumberDecoder() godeco.Decoder[any, float64] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, float64] {
		f, ok := rawNumber(raw)
		if !ok {
			return godeco.Invalid[godeco.DecodeError, float64](godeco.RootError(i18n.T("expected_number", nil)))
		}
		return godeco.Valid[godeco.DecodeError](f)
	})
}

// NumberEncoder passes a float64 through to the raw representation.
func NumberEncoder() godeco.Encoder[any, float64] {
	return godeco.EncoderOf(func(f float64) any { return f })
}

// Number pairs NumberDecoder with NumberEncoder.
func Number() godeco.Codec[any, float64] {
	return godeco.CodecOf(NumberDecoder(), NumberEncoder())
}

// Bounds for float-to-int conversion. -1<<63 is exactly representable as a
// float64; 1<<63 is the first value past the int range, so the upper bound
// is exclusive.
const (
	minIntFloat = -1 << 63
	maxIntFloat = 1 << 63
)

// IntDecoder accepts a raw number with no fractional part. A json.Number is
// parsed exactly, so integers beyond float64 precision survive; floats must
// be integral and within the int range.
func IntDecoder() godeco.Decoder[any, int] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, int] {
		if n, isNum := raw.(json.Number); isNum {
			i, err := n.Int64()
			if err != nil {
				return godeco.Invalid[godeco.DecodeError, int](godeco.RootError(i18n.T("expected_integer", nil)))
			}
			return godeco.Valid[godeco.DecodeError](int(i))
		}
		f, ok := rawNumber(raw)
		if !ok || f != math.Trunc(f) || f < minIntFloat || f >= maxIntFloat {
			return godeco.Invalid[godeco.DecodeError, int](godeco.RootError(i18n.T("expected_integer", nil)))
		}
		return godeco.Valid[godeco.DecodeError](int(f))
	})
}

// IntEncoder passes an int through to the raw representation.
func IntEncoder() godeco.Encoder[any, int] {
	return godeco.EncoderOf(func(i int) any { return i })
}

// Int pairs IntDecoder with IntEncoder.
func Int() godeco.Codec[any, int] {
	return godeco.CodecOf(IntDecoder(), IntEncoder())
}

// StringDecoder accepts a raw string.
func StringDecoder() godeco.Decoder[any, string] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, string] {
		s, ok := raw.(string)
		if !ok {
			return godeco.Invalid[godeco.DecodeError, string](godeco.RootError(i18n.T("expected_string", nil)))
		}
		return godeco.Valid[godeco.DecodeError](s)
	})
}

// StringEncoder passes a string through to the raw representation.
func StringEncoder() godeco.Encoder[any, string] {
	return godeco.EncoderOf(func(s string) any { return s })
}

// String pairs StringDecoder with StringEncoder.
func String() godeco.Codec[any, string] {
	return godeco.CodecOf(StringDecoder(), StringEncoder())
}
