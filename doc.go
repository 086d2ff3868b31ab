package godeco

// Package godeco provides:
//
// - Algebraic sum types (Maybe, Either, Validation) with monadic and
//   applicative combinators (map, chain, sequence, mapM, zipWithM)
// - A bidirectional Decoder/Encoder/Codec algebra for converting between
//   loosely-typed raw data (the output of a JSON or YAML parse) and
//   strongly-typed rich values
// - A stable error model via DecodeError (dotted/bracketed path -> message)
//   with aggregation semantics: structural decoders report every failing
//   position in one pass, not just the first
//
// Design policy:
// - Keep only the core algebra in the root package; structural vocabulary
//   lives under dsl/, prebuilt codecs under codec/, raw-value input drivers
//   under source/.
// - Everything is an immutable value; combinators allocate, never mutate.
//   The whole library is safe for read-only sharing across goroutines.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object2(
//	    dsl.F("name", dsl.String()),
//	    dsl.F("age", dsl.Int()),
//	    func(name string, age int) User { return User{Name: name, Age: age} },
//	    func(u User) (string, int) { return u.Name, u.Age },
//	)
//
//	raw, _ := jsonsource.DecodeBytes(data)
//	v := user.Decode(raw)          // Validation[DecodeError, User]
//	out := user.Encode(someUser)   // map[string]any
