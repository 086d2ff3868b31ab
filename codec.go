package godeco

// Codec owns a matched Decoder/Encoder pair for the same (T, A) type pair.
// Structural codec builders in dsl construct both sides from the
// corresponding primitives of child codecs, so the pair stays consistent by
// construction; a Codec is never assembled from independently written
// halves by this package's builders.
//
// Round-trip laws: for every value a producible by the codec,
// Decode(Encode(a)) is Valid(a); and whenever Decode(r) is Valid(a),
// Encode(a) reproduces the canonical raw form of r.
type Codec[T, A any] struct {
	dec Decoder[T, A]
	enc Encoder[T, A]
}

// CodecOf pairs a decoder with an encoder.
func CodecOf[T, A any](dec Decoder[T, A], enc Encoder[T, A]) Codec[T, A] {
	return Codec[T, A]{dec: dec, enc: enc}
}

// Decoder returns the decoding half.
func (c Codec[T, A]) Decoder() Decoder[T, A] { return c.dec }

// Encoder returns the encoding half.
func (c Codec[T, A]) Encoder() Encoder[T, A] { return c.enc }

// Decode runs the decoding half against a raw value.
func (c Codec[T, A]) Decode(raw T) Validation[DecodeError, A] {
	return c.dec.Decode(raw)
}

// Encode renders a rich value into its raw representation.
func (c Codec[T, A]) Encode(a A) T {
	return c.enc.Encode(a)
}

// Invmap maps the rich side of a codec through an isomorphism, applying f
// after decode and g before encode. Callers must ensure g(f(a)) == a
// structurally for every reachable a, or the round-trip law breaks.
func Invmap[T, A, B any](c Codec[T, A], f func(A) B, g func(B) A) Codec[T, B] {
	return CodecOf(
		MapDecoder(c.dec, f),
		ContramapEncoder(c.enc, g),
	)
}

// InvmapRaw maps the raw side of a codec through an isomorphism, applying g
// before decode and f after encode. The same inverse obligation as Invmap
// applies.
func InvmapRaw[T, U, A any](c Codec[T, A], f func(T) U, g func(U) T) Codec[U, A] {
	return CodecOf(
		ContramapDecoder(c.dec, g),
		MapRaw(c.enc, f),
	)
}

// InvmapBoth maps both sides at once.
func InvmapBoth[T, U, A, B any](c Codec[T, A], fRaw func(T) U, gRaw func(U) T, fRich func(A) B, gRich func(B) A) Codec[U, B] {
	return Invmap(InvmapRaw(c, fRaw, gRaw), fRich, gRich)
}
