package dsl

import (
	"strconv"

	godeco "github.com/reoring/godeco"
	"github.com/reoring/godeco/i18n"
)

// ArrayDecoder decodes every element of a raw array through item. Non-array
// input fails at the root; element failures are prefixed with their index
// and aggregated, so [true, "x", 7] against a string item reports both
// "[0]" and "[2]".
func ArrayDecoder[A any](item godeco.Decoder[any, A]) godeco.Decoder[any, []A] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, []A] {
		xs, ok := raw.([]any)
		if !ok {
			return godeco.Invalid[godeco.DecodeError, []A](godeco.RootError(i18n.T("expected_array", nil)))
		}
		vs := make([]godeco.Validation[godeco.DecodeError, A], len(xs))
		for i, x := range xs {
			idx := godeco.IndexPath(i)
			vs[i] = item.Decode(x).MapError(func(e godeco.DecodeError) godeco.DecodeError {
				return e.Prefix(idx)
			})
		}
		return godeco.SequenceValidation(vs)
	})
}

// ArrayEncoder encodes every element through item into a raw []any.
func ArrayEncoder[A any](item godeco.Encoder[any, A]) godeco.Encoder[any, []A] {
	return godeco.EncoderOf(func(as []A) any {
		out := make([]any, len(as))
		for i, a := range as {
			out[i] = item.Encode(a)
		}
		return out
	})
}

// Array pairs ArrayDecoder with ArrayEncoder over the halves of item.
func Array[A any](item godeco.Codec[any, A]) godeco.Codec[any, []A] {
	return godeco.CodecOf(ArrayDecoder(item.Decoder()), ArrayEncoder(item.Encoder()))
}

// tupleElems asserts a raw array of exactly n elements. The length check
// runs before any element decoding, so arity failures are independent of
// element validity.
func tupleElems(raw any, n int) ([]any, godeco.DecodeError) {
	xs, ok := raw.([]any)
	if !ok || len(xs) != n {
		msg := i18n.T("expected_array_length", map[string]string{"length": strconv.Itoa(n)})
		return nil, godeco.RootError(msg)
	}
	return xs, nil
}

func atIndex[A any](d godeco.Decoder[any, A], i int, x any) godeco.Validation[godeco.DecodeError, A] {
	idx := godeco.IndexPath(i)
	return d.Decode(x).MapError(func(e godeco.DecodeError) godeco.DecodeError {
		return e.Prefix(idx)
	})
}

// TupleDecoder2 decodes a two-element raw array positionally, aggregating
// element failures.
func TupleDecoder2[A, B any](da godeco.Decoder[any, A], db godeco.Decoder[any, B]) godeco.Decoder[any, godeco.Pair[A, B]] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, godeco.Pair[A, B]] {
		xs, fail := tupleElems(raw, 2)
		if fail != nil {
			return godeco.Invalid[godeco.DecodeError, godeco.Pair[A, B]](fail)
		}
		return godeco.Lift2(godeco.MakePair[A, B], atIndex(da, 0, xs[0]), atIndex(db, 1, xs[1]))
	})
}

// TupleEncoder2 encodes a Pair positionally into a raw two-element array.
func TupleEncoder2[A, B any](ea godeco.Encoder[any, A], eb godeco.Encoder[any, B]) godeco.Encoder[any, godeco.Pair[A, B]] {
	return godeco.EncoderOf(func(p godeco.Pair[A, B]) any {
		return []any{ea.Encode(p.First), eb.Encode(p.Second)}
	})
}

// Tuple2 pairs TupleDecoder2 with TupleEncoder2 over the halves of the
// child codecs.
func Tuple2[A, B any](ca godeco.Codec[any, A], cb godeco.Codec[any, B]) godeco.Codec[any, godeco.Pair[A, B]] {
	return godeco.CodecOf(
		TupleDecoder2(ca.Decoder(), cb.Decoder()),
		TupleEncoder2(ca.Encoder(), cb.Encoder()),
	)
}

// TupleDecoder3 decodes a three-element raw array positionally.
func TupleDecoder3[A, B, C any](da godeco.Decoder[any, A], db godeco.Decoder[any, B], dc godeco.Decoder[any, C]) godeco.Decoder[any, godeco.Triple[A, B, C]] {
	return godeco.DecoderOf(func(raw any) godeco.Validation[godeco.DecodeError, godeco.Triple[A, B, C]] {
		xs, fail := tupleElems(raw, 3)
		if fail != nil {
			return godeco.Invalid[godeco.DecodeError, godeco.Triple[A, B, C]](fail)
		}
		return godeco.Lift3(godeco.MakeTriple[A, B, C],
			atIndex(da, 0, xs[0]), atIndex(db, 1, xs[1]), atIndex(dc, 2, xs[2]))
	})
}

// TupleEncoder3 encodes a Triple positionally into a raw three-element
// array.
func TupleEncoder3[A, B, C any](ea godeco.Encoder[any, A], eb godeco.Encoder[any, B], ec godeco.Encoder[any, C]) godeco.Encoder[any, godeco.Triple[A, B, C]] {
	return godeco.EncoderOf(func(t godeco.Triple[A, B, C]) any {
		return []any{ea.Encode(t.First), eb.Encode(t.Second), ec.Encode(t.Third)}
	})
}

// Tuple3 pairs TupleDecoder3 with TupleEncoder3 over the halves of the
// child codecs.
func Tuple3[A, B, C any](ca godeco.Codec[any, A], cb godeco.Codec[any, B], cc godeco.Codec[any, C]) godeco.Codec[any, godeco.Triple[A, B, C]] {
	return godeco.CodecOf(
		TupleDecoder3(ca.Decoder(), cb.Decoder(), cc.Decoder()),
		TupleEncoder3(ca.Encoder(), cb.Encoder(), cc.Encoder()),
	)
}
