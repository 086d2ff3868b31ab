package godeco

// Pair is the two-element tuple produced by the positional tuple codecs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Triple is the three-element tuple produced by the positional tuple
// codecs.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple builds a Triple.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}
