package godeco

// Sequencing combinators over slices. The Validation family aggregates
// every failure; the Either family short-circuits on the first Left.

// SequenceValidation collects the values of all validations, or merges the
// failures of every Invalid element into a single Invalid.
func SequenceValidation[E Merger[E], A any](vs []Validation[E, A]) Validation[E, []A] {
	out := make([]A, 0, len(vs))
	var acc failureAcc[E]
	for _, v := range vs {
		if v.valid {
			out = append(out, v.value)
			continue
		}
		acc.add(v.failure, true)
	}
	if acc.has {
		return Invalid[E, []A](acc.failure)
	}
	return Valid[E](out)
}

// MapMValidation maps f over xs and sequences the results, reporting every
// failing element.
func MapMValidation[E Merger[E], A, B any](xs []A, f func(A) Validation[E, B]) Validation[E, []B] {
	vs := make([]Validation[E, B], len(xs))
	for i, x := range xs {
		vs[i] = f(x)
	}
	return SequenceValidation(vs)
}

// ZipWithMValidation zips as and bs through f up to the shorter length,
// reporting every failing pair.
func ZipWithMValidation[E Merger[E], A, B, C any](f func(A, B) Validation[E, C], as []A, bs []B) Validation[E, []C] {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	vs := make([]Validation[E, C], n)
	for i := 0; i < n; i++ {
		vs[i] = f(as[i], bs[i])
	}
	return SequenceValidation(vs)
}

// SequenceEither collects the values of all eithers, stopping at the first
// Left.
func SequenceEither[L, R any](es []Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}

// MapMEither maps f over xs, stopping at the first Left.
func MapMEither[L, A, B any](xs []A, f func(A) Either[L, B]) Either[L, []B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		e := f(x)
		if !e.isRight {
			return Left[L, []B](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}

// ZipWithMEither zips as and bs through f up to the shorter length,
// stopping at the first Left.
func ZipWithMEither[L, A, B, C any](f func(A, B) Either[L, C], as []A, bs []B) Either[L, []C] {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	out := make([]C, 0, n)
	for i := 0; i < n; i++ {
		e := f(as[i], bs[i])
		if !e.isRight {
			return Left[L, []C](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}

// SequenceMaybe collects the values of all maybes, or Nothing when any
// element is Nothing.
func SequenceMaybe[A any](ms []Maybe[A]) Maybe[[]A] {
	out := make([]A, 0, len(ms))
	for _, m := range ms {
		if !m.ok {
			return Nothing[[]A]()
		}
		out = append(out, m.value)
	}
	return Just(out)
}
