package godeco_test

import (
	"strconv"
	"testing"

	godeco "github.com/reoring/godeco"
)

// kelvin is a rich wrapper used to exercise the invmap family.
type kelvin struct{ degrees float64 }

func floatCodec() godeco.Codec[any, float64] {
	dec := godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, float64] {
		f, ok := raw.(float64)
		if !ok {
			return godeco.Invalid[godeco.DecodeError, float64](godeco.RootError("Expected a number"))
		}
		return godeco.Valid[godeco.DecodeError](f)
	})
	enc := godeco.EncoderOf(func(f float64) any { return f })
	return godeco.CodecOf(dec, enc)
}

func TestCodec_DelegatesToItsHalves(t *testing.T) {
	c := floatCodec()
	if v, _ := c.Decode(1.5).Get(); v != 1.5 {
		t.Fatalf("Decode: got %v", v)
	}
	if got := c.Encode(2.5); got != any(2.5) {
		t.Fatalf("Encode: got %v", got)
	}
	if v, _ := c.Decoder().Decode(1.5).Get(); v != 1.5 {
		t.Fatalf("Decoder half: got %v", v)
	}
	if got := c.Encoder().Encode(2.5); got != any(2.5) {
		t.Fatalf("Encoder half: got %v", got)
	}
}

func TestInvmap_RoundTrip(t *testing.T) {
	c := godeco.Invmap(floatCodec(),
		func(f float64) kelvin { return kelvin{degrees: f} },
		func(k kelvin) float64 { return k.degrees },
	)
	k := kelvin{degrees: 273.15}
	out := c.Decode(c.Encode(k))
	if v, ok := out.Get(); !ok || v != k {
		t.Fatalf("decode(encode(k)) = (%v, %v), want %v", v, ok, k)
	}
	if c.Decode("nope").IsValid() {
		t.Fatalf("Invmap should preserve decode failures")
	}
}

func TestInvmapRaw_RoundTrip(t *testing.T) {
	// Move the raw side from any to string.
	c := godeco.InvmapRaw(floatCodec(),
		func(raw any) string { return strconv.FormatFloat(raw.(float64), 'g', -1, 64) },
		func(s string) any {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return s
			}
			return f
		},
	)
	if v, ok := c.Decode("1.5").Get(); !ok || v != 1.5 {
		t.Fatalf("InvmapRaw decode: got (%v, %v)", v, ok)
	}
	if got := c.Encode(1.5); got != "1.5" {
		t.Fatalf("InvmapRaw encode: got %q", got)
	}
	if c.Decode("abc").IsValid() {
		t.Fatalf("InvmapRaw should preserve decode failures")
	}
}

func TestInvmapBoth(t *testing.T) {
	c := godeco.InvmapBoth(floatCodec(),
		func(raw any) string { return strconv.FormatFloat(raw.(float64), 'g', -1, 64) },
		func(s string) any {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return s
			}
			return f
		},
		func(f float64) kelvin { return kelvin{degrees: f} },
		func(k kelvin) float64 { return k.degrees },
	)
	k := kelvin{degrees: 2.5}
	if got := c.Encode(k); got != "2.5" {
		t.Fatalf("InvmapBoth encode: got %q", got)
	}
	if v, ok := c.Decode("2.5").Get(); !ok || v != k {
		t.Fatalf("InvmapBoth decode: got (%v, %v)", v, ok)
	}
}
