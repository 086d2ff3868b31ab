package codec

import (
	"time"

	godeco "github.com/reoring/godeco"
	"github.com/reoring/godeco/dsl"
	"github.com/reoring/godeco/i18n"
)

// TimeRFC3339 returns a Codec between RFC3339 strings and time.Time.
// Decoding accepts RFC3339 with or without fractional seconds; encoding
// normalizes to UTC and formats with RFC3339Nano, which trims trailing
// zeros. The decode-encode round trip therefore reproduces the canonical
// form of the input, and the encode-decode round trip is exact for
// UTC-normalized values.
func TimeRFC3339() godeco.Codec[any, time.Time] {
	dec := godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, time.Time] {
		s, ok := raw.(string)
		if !ok {
			return godeco.Invalid[godeco.DecodeError, time.Time](godeco.RootError(i18n.T("expected_string", nil)))
		}
		t, err := parseRFC3339(s)
		if err != nil {
			return godeco.Invalid[godeco.DecodeError, time.Time](godeco.RootError(i18n.T("expected_rfc3339", nil)))
		}
		return godeco.Valid[godeco.DecodeError](t)
	})
	enc := godeco.ContramapEncoder(dsl.StringEncoder(), formatRFC3339Canonical)
	return godeco.CodecOf(dec, enc)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
