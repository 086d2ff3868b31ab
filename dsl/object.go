package dsl

import (
	godeco "github.com/reoring/godeco"
	"github.com/reoring/godeco/i18n"
)

// Absent is the raw marker produced when encoding a Nothing optional.
// Property and object encoders drop fields whose encoded value is Absent,
// so an absent optional round-trips to a missing key rather than a null.
var Absent any = absentMarker{}

type absentMarker struct{}

// IsAbsent reports whether a raw value is the absence marker.
func IsAbsent(v any) bool {
	_, ok := v.(absentMarker)
	return ok
}

func expectObject[A any](raw any) (map[string]any, godeco.Validation[godeco.DecodeError, A], bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, godeco.Invalid[godeco.DecodeError, A](godeco.RootError(i18n.T("expected_object", nil))), false
	}
	var zero godeco.Validation[godeco.DecodeError, A]
	return m, zero, true
}

// PropertyDecoder decodes the named field of a raw object through d. A
// missing key decodes the nil value through the child, so optional children
// interpret absence as Nothing while scalar children fail with their own
// "Expected a ..." message. Child failures are prefixed with the field
// name.
func PropertyDecoder[A any](name string, d godeco.Decoder[any, A]) godeco.Decoder[any, A] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, A] {
		m, fail, ok := expectObject[A](raw)
		if !ok {
			return fail
		}
		return d.Decode(m[name]).MapError(func(e godeco.DecodeError) godeco.DecodeError {
			return e.Prefix(name)
		})
	})
}

// PropertyEncoder encodes a value as a single-key raw object. An Absent
// encoded value omits the key entirely.
func PropertyEncoder[A any](name string, e godeco.Encoder[any, A]) godeco.Encoder[any, A] {
	return godeco.EncoderOf(func(a A) any {
		raw := e.Encode(a)
		if IsAbsent(raw) {
			return map[string]any{}
		}
		return map[string]any{name: raw}
	})
}

// Property pairs PropertyDecoder with PropertyEncoder for a single field.
func Property[A any](name string, c godeco.Codec[any, A]) godeco.Codec[any, A] {
	return godeco.CodecOf(
		PropertyDecoder(name, c.Decoder()),
		PropertyEncoder(name, c.Encoder()),
	)
}

// OptionalDecoder succeeds with Nothing on a nil raw value (JSON null or a
// missing object key) and otherwise delegates, wrapping the result in Just.
func OptionalDecoder[A any](d godeco.Decoder[any, A]) godeco.Decoder[any, godeco.Maybe[A]] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, godeco.Maybe[A]] {
		if raw == nil {
			return godeco.Valid[godeco.DecodeError](godeco.Nothing[A]())
		}
		return godeco.MapValidation(d.Decode(raw), godeco.Just[A])
	})
}

// OptionalEncoder encodes Just through the child and Nothing as Absent.
func OptionalEncoder[A any](e godeco.Encoder[any, A]) godeco.Encoder[any, godeco.Maybe[A]] {
	return godeco.EncoderOf(func(m godeco.Maybe[A]) any {
		if a, ok := m.Get(); ok {
			return e.Encode(a)
		}
		return Absent
	})
}

// Optional pairs OptionalDecoder with OptionalEncoder.
func Optional[A any](c godeco.Codec[any, A]) godeco.Codec[any, godeco.Maybe[A]] {
	return godeco.CodecOf(
		OptionalDecoder(c.Decoder()),
		OptionalEncoder(c.Encoder()),
	)
}

// Field pairs a property name with the codec for its value. Build fields
// with F and feed them to the Object builders.
type Field[A any] struct {
	Name  string
	Codec godeco.Codec[any, A]
}

// F builds a Field spec.
func F[A any](name string, c godeco.Codec[any, A]) Field[A] {
	return Field[A]{Name: name, Codec: c}
}

func fieldDecoder[A any](f Field[A]) godeco.Decoder[any, A] {
	return PropertyDecoder(f.Name, f.Codec.Decoder())
}

// mergeObjects shallow-merges single-key raw objects produced by property
// encoders. Later fields do not overwrite earlier ones; builders give every
// field a distinct name.
func mergeObjects(parts ...any) any {
	out := make(map[string]any, len(parts))
	for _, p := range parts {
		m, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for k, v := range m {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
	return out
}

// BuildDecoder2 requires a raw object and applies mk across two decoders
// run against it, aggregating failures from both. The child decoders are
// typically PropertyDecoder values.
func BuildDecoder2[A, B, S any](mk func(A, B) S, da godeco.Decoder[any, A], db godeco.Decoder[any, B]) godeco.Decoder[any, S] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, S] {
		if _, fail, ok := expectObject[S](raw); !ok {
			return fail
		}
		return godeco.Lift2(mk, da.Decode(raw), db.Decode(raw))
	})
}

// BuildDecoder3 is BuildDecoder2 for three fields.
func BuildDecoder3[A, B, C, S any](mk func(A, B, C) S, da godeco.Decoder[any, A], db godeco.Decoder[any, B], dc godeco.Decoder[any, C]) godeco.Decoder[any, S] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, S] {
		if _, fail, ok := expectObject[S](raw); !ok {
			return fail
		}
		return godeco.Lift3(mk, da.Decode(raw), db.Decode(raw), dc.Decode(raw))
	})
}

// BuildDecoder4 is BuildDecoder2 for four fields.
func BuildDecoder4[A, B, C, D, S any](mk func(A, B, C, D) S, da godeco.Decoder[any, A], db godeco.Decoder[any, B], dc godeco.Decoder[any, C], dd godeco.Decoder[any, D]) godeco.Decoder[any, S] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, S] {
		if _, fail, ok := expectObject[S](raw); !ok {
			return fail
		}
		return godeco.Lift4(mk, da.Decode(raw), db.Decode(raw), dc.Decode(raw), dd.Decode(raw))
	})
}

// Object1 builds a single-field record codec.
func Object1[A, S any](fa Field[A], mk func(A) S, split func(S) A) godeco.Codec[any, S] {
	dec := godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, S] {
		if _, fail, ok := expectObject[S](raw); !ok {
			return fail
		}
		return godeco.MapValidation(fieldDecoder(fa).Decode(raw), mk)
	})
	enc := godeco.EncoderOf(func(s S) any {
		return mergeObjects(PropertyEncoder(fa.Name, fa.Codec.Encoder()).Encode(split(s)))
	})
	return godeco.CodecOf(dec, enc)
}

// Object2 builds a two-field record codec. Decoding aggregates every field
// failure, each prefixed by its field name; encoding shallow-merges the
// per-field objects.
func Object2[A, B, S any](fa Field[A], fb Field[B], mk func(A, B) S, split func(S) (A, B)) godeco.Codec[any, S] {
	dec := BuildDecoder2(mk, fieldDecoder(fa), fieldDecoder(fb))
	enc := godeco.EncoderOf(func(s S) any {
		a, b := split(s)
		return mergeObjects(
			PropertyEncoder(fa.Name, fa.Codec.Encoder()).Encode(a),
			PropertyEncoder(fb.Name, fb.Codec.Encoder()).Encode(b),
		)
	})
	return godeco.CodecOf(dec, enc)
}

// Object3 builds a three-field record codec.
func Object3[A, B, C, S any](fa Field[A], fb Field[B], fc Field[C], mk func(A, B, C) S, split func(S) (A, B, C)) godeco.Codec[any, S] {
	dec := BuildDecoder3(mk, fieldDecoder(fa), fieldDecoder(fb), fieldDecoder(fc))
	enc := godeco.EncoderOf(func(s S) any {
		a, b, c := split(s)
		return mergeObjects(
			PropertyEncoder(fa.Name, fa.Codec.Encoder()).Encode(a),
			PropertyEncoder(fb.Name, fb.Codec.Encoder()).Encode(b),
			PropertyEncoder(fc.Name, fc.Codec.Encoder()).Encode(c),
		)
	})
	return godeco.CodecOf(dec, enc)
}

// Object4 builds a four-field record codec.
func Object4[A, B, C, D, S any](fa Field[A], fb Field[B], fc Field[C], fd Field[D], mk func(A, B, C, D) S, split func(S) (A, B, C, D)) godeco.Codec[any, S] {
	dec := BuildDecoder4(mk, fieldDecoder(fa), fieldDecoder(fb), fieldDecoder(fc), fieldDecoder(fd))
	enc := godeco.EncoderOf(func(s S) any {
		a, b, c, d := split(s)
		return mergeObjects(
			PropertyEncoder(fa.Name, fa.Codec.Encoder()).Encode(a),
			PropertyEncoder(fb.Name, fb.Codec.Encoder()).Encode(b),
			PropertyEncoder(fc.Name, fc.Codec.Encoder()).Encode(c),
			PropertyEncoder(fd.Name, fd.Codec.Encoder()).Encode(d),
		)
	})
	return godeco.CodecOf(dec, enc)
}

// Object5 builds a five-field record codec.
func Object5[A, B, C, D, E, S any](fa Field[A], fb Field[B], fc Field[C], fd Field[D], fe Field[E], mk func(A, B, C, D, E) S, split func(S) (A, B, C, D, E)) godeco.Codec[any, S] {
	dec := godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, S] {
		if _, fail, ok := expectObject[S](raw); !ok {
			return fail
		}
		return godeco.Lift5(mk,
			fieldDecoder(fa).Decode(raw),
			fieldDecoder(fb).Decode(raw),
			fieldDecoder(fc).Decode(raw),
			fieldDecoder(fd).Decode(raw),
			fieldDecoder(fe).Decode(raw),
		)
	})
	enc := godeco.EncoderOf(func(s S) any {
		a, b, c, d, e := split(s)
		return mergeObjects(
			PropertyEncoder(fa.Name, fa.Codec.Encoder()).Encode(a),
			PropertyEncoder(fb.Name, fb.Codec.Encoder()).Encode(b),
			PropertyEncoder(fc.Name, fc.Codec.Encoder()).Encode(c),
			PropertyEncoder(fd.Name, fd.Codec.Encoder()).Encode(d),
			PropertyEncoder(fe.Name, fe.Codec.Encoder()).Encode(e),
		)
	})
	return godeco.CodecOf(dec, enc)
}
