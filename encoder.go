package godeco

// Encoder wraps a total conversion function from a rich value A back to its
// raw representation T. Encoding a well-typed value cannot fail, so there
// is no failure channel; the single designed exception is the union
// encoder in dsl, which panics when asked to encode a value matching no
// registered case.
type Encoder[T, A any] struct {
	run func(A) T
}

// EncoderOf wraps an encode function.
func EncoderOf[T, A any](run func(A) T) Encoder[T, A] {
	return Encoder[T, A]{run: run}
}

// Encode renders a rich value into its raw representation.
func (e Encoder[T, A]) Encode(a A) T {
	return e.run(a)
}

// ContramapEncoder adapts the input type before encoding.
func ContramapEncoder[T, A, B any](e Encoder[T, A], f func(B) A) Encoder[T, B] {
	return EncoderOf(func(b B) T {
		return e.run(f(b))
	})
}

// MapRaw post-processes the raw output.
func MapRaw[T, U, A any](e Encoder[T, A], f func(T) U) Encoder[U, A] {
	return EncoderOf(func(a A) U {
		return f(e.run(a))
	})
}
