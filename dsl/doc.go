// Package dsl provides the structural decode/encode vocabulary for godeco.
//
// Overview
//   - Primitives: Bool()/Number()/Int()/String() codecs over raw any values,
//     plus the Decoder-only and Encoder-only halves (BoolDecoder() etc.).
//   - Containers: Array(elem), Tuple2/Tuple3 (positional, fixed arity).
//   - Objects: Property(name, c) for a single field, Optional(c) for
//     null-or-absent fields, Object1..Object5 record builders taking
//     F(name, codec) field specs with make/split functions.
//   - Unions: Union(discriminant, CaseOf(tag, codec, matches)...) for tagged
//     sums; OneOfDecoder for decode-only alternatives.
//
// Error semantics
//   - Every failure is a godeco.DecodeError keyed by structural path.
//     Structural primitives prefix child failures ("items[2].name") and
//     aggregate across siblings: decoding a malformed object reports every
//     bad field in one pass.
//   - Encoding is total. The single exception is the Union encoder, which
//     panics when no case predicate matches the value; such a value cannot
//     have been produced by any known variant, so this is a programming
//     error rather than a data error.
//
// File layout (roles)
//   - primitives.go: scalar decoders/encoders/codecs.
//   - array.go: array and tuple structure.
//   - object.go: property access, optionals, record builders, Absent.
//   - union.go: tagged union cases and decoder alternatives.
package dsl
