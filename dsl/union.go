package dsl

import (
	godeco "github.com/reoring/godeco"
	"github.com/reoring/godeco/i18n"
)

// Case describes one variant of a tagged union codec: the discriminant tag
// selecting it on decode, the codec for the variant's object shape, and the
// predicate selecting it on encode.
type Case[U any] struct {
	tag     string
	codec   godeco.Codec[any, U]
	matches func(U) bool
}

// CaseOf builds a union case. matches must accept exactly the values the
// inner codec produces; the Union encoder picks the first case whose
// predicate matches.
func CaseOf[U any](tag string, c godeco.Codec[any, U], matches func(U) bool) Case[U] {
	return Case[U]{tag: tag, codec: c, matches: matches}
}

// caseDecoder decodes only when the input object's discriminant field
// equals the case tag, then delegates to the inner codec.
func caseDecoder[U any](discriminant string, c Case[U]) godeco.Decoder[any, U] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, U] {
		m, fail, ok := expectObject[U](raw)
		if !ok {
			return fail
		}
		if tag, _ := m[discriminant].(string); tag != c.tag {
			msg := i18n.T("expected_case", map[string]string{"field": discriminant, "tag": c.tag})
			return godeco.Invalid[godeco.DecodeError, U](godeco.RootError(msg))
		}
		return c.codec.Decode(raw)
	})
}

// OneOfDecoder tries the decoders left to right, returning the first
// success. When all fail, the last decoder's failure is reported; an empty
// choice list fails outright.
func OneOfDecoder[A any](ds ...godeco.Decoder[any, A]) godeco.Decoder[any, A] {
	if len(ds) == 0 {
		return godeco.FailDecoder[any, A](godeco.RootError(i18n.T("no_valid_choices", nil)))
	}
	out := ds[0]
	for _, d := range ds[1:] {
		out = out.Or(d)
	}
	return out
}

// Union builds a tagged union codec over the given cases. Decoding tries
// the cases left to right; each case requires the discriminant field to
// equal its tag. Encoding selects the first case whose predicate matches,
// encodes through it and merges the discriminant into the result.
//
// Encoding a value matching no case panics: such a value cannot have been
// produced by any known variant, so this is a broken caller contract, not a
// data error.
func Union[U any](discriminant string, cases ...Case[U]) godeco.Codec[any, U] {
	decs := make([]godeco.Decoder[any, U], len(cases))
	for i, c := range cases {
		decs[i] = caseDecoder(discriminant, c)
	}
	enc := godeco.EncoderOf(func(u U) any {
		for _, c := range cases {
			if !c.matches(u) {
				continue
			}
			inner, ok := c.codec.Encode(u).(map[string]any)
			if !ok {
				panic("dsl: union case encoder produced a non-object value")
			}
			out := make(map[string]any, len(inner)+1)
			for k, v := range inner {
				out[k] = v
			}
			out[discriminant] = c.tag
			return out
		}
		panic("dsl: no union case matches the value being encoded")
	})
	return godeco.CodecOf(OneOfDecoder(decs...), enc)
}
