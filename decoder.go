package godeco

// Decoder wraps a single conversion function from a raw representation T to
// a Validation of A. Raw values are typically the output of a JSON or YAML
// parse (see source/json and source/yaml), with T instantiated as any.
//
// Decoders are immutable: every combinator returns a new Decoder closed
// over its children.
type Decoder[T, A any] struct {
	run func(T) Validation[DecodeError, A]
}

// DecoderOf wraps a decode function.
func DecoderOf[T, A any](run func(T) Validation[DecodeError, A]) Decoder[T, A] {
	return Decoder[T, A]{run: run}
}

// Decode runs the decoder against a raw value.
func (d Decoder[T, A]) Decode(raw T) Validation[DecodeError, A] {
	return d.run(raw)
}

// SucceedDecoder ignores its input and succeeds with a.
func SucceedDecoder[T, A any](a A) Decoder[T, A] {
	return DecoderOf(func(T) Validation[DecodeError, A] {
		return Valid[DecodeError](a)
	})
}

// FailDecoder ignores its input and fails with e.
func FailDecoder[T, A any](e DecodeError) Decoder[T, A] {
	return DecoderOf(func(T) Validation[DecodeError, A] {
		return Invalid[DecodeError, A](e)
	})
}

// MapDecoder post-processes the success value.
func MapDecoder[T, A, B any](d Decoder[T, A], f func(A) B) Decoder[T, B] {
	return DecoderOf(func(raw T) Validation[DecodeError, B] {
		return MapValidation(d.run(raw), f)
	})
}

// ContramapDecoder adapts the raw input before decoding.
func ContramapDecoder[T, U, A any](d Decoder[T, A], f func(U) T) Decoder[U, A] {
	return DecoderOf(func(raw U) Validation[DecodeError, A] {
		return d.run(f(raw))
	})
}

// MapError transforms the failure of an unsuccessful decode.
func (d Decoder[T, A]) MapError(f func(DecodeError) DecodeError) Decoder[T, A] {
	return DecoderOf(func(raw T) Validation[DecodeError, A] {
		return d.run(raw).MapError(f)
	})
}

// Or tries d and, only when it fails, tries alt on the same input. The
// first success wins; when both fail, alt's failure is reported.
// Alternatives describe different shapes of input, so their unrelated error
// vocabularies are not merged.
func (d Decoder[T, A]) Or(alt Decoder[T, A]) Decoder[T, A] {
	return DecoderOf(func(raw T) Validation[DecodeError, A] {
		return d.run(raw).Or(func() Validation[DecodeError, A] {
			return alt.run(raw)
		})
	})
}

// ReplaceDecoder runs d and other on the same input, keeping other's value
// when both succeed. Failures from both sides are merged, which is how
// whole-object decoders report errors from every field rather than the
// first one encountered.
func ReplaceDecoder[T, A, B any](d Decoder[T, A], other Decoder[T, B]) Decoder[T, B] {
	return DecoderOf(func(raw T) Validation[DecodeError, B] {
		return ReplaceValidation(d.run(raw), other.run(raw))
	})
}

// ReplacePure is ReplaceDecoder against a decoder that trivially succeeds
// with b.
func ReplacePure[T, A, B any](d Decoder[T, A], b B) Decoder[T, B] {
	return ReplaceDecoder(d, SucceedDecoder[T](b))
}

// VoidOut discards the success value, keeping only the pass/fail outcome.
// Union-matching primitives use this to probe a shape without consuming it.
func (d Decoder[T, A]) VoidOut() Decoder[T, struct{}] {
	return MapDecoder(d, func(A) struct{} { return struct{}{} })
}

// Lift2Decoder applies f across the results of two decoders run on the same
// input, merging failures from both when either fails.
func Lift2Decoder[T, A, B, C any](f func(A, B) C, da Decoder[T, A], db Decoder[T, B]) Decoder[T, C] {
	return DecoderOf(func(raw T) Validation[DecodeError, C] {
		return Lift2(f, da.run(raw), db.run(raw))
	})
}

// Lift3Decoder is Lift2Decoder for three decoders.
func Lift3Decoder[T, A, B, C, D any](f func(A, B, C) D, da Decoder[T, A], db Decoder[T, B], dc Decoder[T, C]) Decoder[T, D] {
	return DecoderOf(func(raw T) Validation[DecodeError, D] {
		return Lift3(f, da.run(raw), db.run(raw), dc.run(raw))
	})
}

// Lift4Decoder is Lift2Decoder for four decoders.
func Lift4Decoder[T, A, B, C, D, R any](f func(A, B, C, D) R, da Decoder[T, A], db Decoder[T, B], dc Decoder[T, C], dd Decoder[T, D]) Decoder[T, R] {
	return DecoderOf(func(raw T) Validation[DecodeError, R] {
		return Lift4(f, da.run(raw), db.run(raw), dc.run(raw), dd.run(raw))
	})
}
