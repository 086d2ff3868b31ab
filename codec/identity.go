package codec

import (
	"fmt"

	godeco "github.com/reoring/godeco"
	"github.com/reoring/godeco/i18n"
)

// Identity returns a Codec[any, T] that asserts the raw value is already a
// T and encodes by passing the value through unchanged. It is the bridge
// for raw positions whose values need no conversion.
func Identity[T any]() godeco.Codec[any, T] {
	dec := godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, T] {
		v, ok := raw.(T)
		if !ok {
			var zero T
			msg := i18n.T("expected_type", map[string]string{"type": fmt.Sprintf("%T", zero)})
			return godeco.Invalid[godeco.DecodeError, T](godeco.RootError(msg))
		}
		return godeco.Valid[godeco.DecodeError](v)
	})
	enc := godeco.EncoderOf(func(v T) any { return v })
	return godeco.CodecOf(dec, enc)
}
