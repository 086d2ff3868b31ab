package godeco

// Merger constrains Validation failures to container shapes that can be
// merged structurally with another failure of the same shape. DecodeError
// merges by key union; ErrorList merges by concatenation.
type Merger[E any] interface {
	Merge(E) E
}

// Validation is the error-accumulating sibling of Either. When two Invalid
// validations are combined through Lift2..Lift6, ReplaceValidation or
// SequenceValidation, their failures are merged rather than
// short-circuited, so one pass reports every failing position.
//
// Validation deliberately has no Chain: a dependent computation cannot
// aggregate failures from steps it never reached. Only applicative
// composition is provided.
type Validation[E Merger[E], A any] struct {
	failure E
	value   A
	valid   bool
}

// Valid wraps a success value.
func Valid[E Merger[E], A any](v A) Validation[E, A] {
	return Validation[E, A]{value: v, valid: true}
}

// Invalid wraps a failure.
func Invalid[E Merger[E], A any](e E) Validation[E, A] {
	return Validation[E, A]{failure: e}
}

// IsValid reports whether the Valid case holds.
func (v Validation[E, A]) IsValid() bool { return v.valid }

// Get returns the success value and whether the Valid case holds.
func (v Validation[E, A]) Get() (A, bool) { return v.value, v.valid }

// Failure returns the failure and whether the Invalid case holds.
func (v Validation[E, A]) Failure() (E, bool) { return v.failure, !v.valid }

// MapError transforms the failure when Invalid; a Valid value passes
// through untouched.
func (v Validation[E, A]) MapError(f func(E) E) Validation[E, A] {
	if v.valid {
		return v
	}
	return Invalid[E, A](f(v.failure))
}

// Or returns v when it is Valid; otherwise it evaluates alt. The
// alternative is a thunk so it is only computed when needed. Unlike the
// lifting combinators, Or does not merge failures: trying an alternative is
// a choice, not an aggregation.
func (v Validation[E, A]) Or(alt func() Validation[E, A]) Validation[E, A] {
	if v.valid {
		return v
	}
	return alt()
}

// MatchValidation eliminates a Validation by calling exactly one branch.
func MatchValidation[E Merger[E], A, B any](v Validation[E, A], onInvalid func(E) B, onValid func(A) B) B {
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.failure)
}

// MapValidation applies f to the success value.
func MapValidation[E Merger[E], A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	if !v.valid {
		return Invalid[E, B](v.failure)
	}
	return Valid[E](f(v.value))
}

// ReplaceValidation combines a and b keeping b's value. When both sides are
// Invalid their failures are merged; a single Invalid propagates alone.
// This is the behavior separating Validation from Either, whose
// ReplaceEither reports only the first failure.
func ReplaceValidation[E Merger[E], A, B any](a Validation[E, A], b Validation[E, B]) Validation[E, B] {
	return Lift2(func(_ A, bv B) B { return bv }, a, b)
}

// failureAcc folds failures from Invalid arguments in order. Merging does
// not deduplicate; callers that want unique list entries filter on their
// side.
type failureAcc[E Merger[E]] struct {
	failure E
	has     bool
}

func (acc *failureAcc[E]) add(e E, invalid bool) {
	if !invalid {
		return
	}
	if acc.has {
		acc.failure = acc.failure.Merge(e)
		return
	}
	acc.failure = e
	acc.has = true
}

// Lift2 applies f across two validations when both are Valid; otherwise it
// collects every failure from every Invalid argument into one Invalid.
func Lift2[E Merger[E], A, B, C any](f func(A, B) C, va Validation[E, A], vb Validation[E, B]) Validation[E, C] {
	if va.valid && vb.valid {
		return Valid[E](f(va.value, vb.value))
	}
	var acc failureAcc[E]
	acc.add(va.failure, !va.valid)
	acc.add(vb.failure, !vb.valid)
	return Invalid[E, C](acc.failure)
}

// Lift3 is Lift2 for three arguments.
func Lift3[E Merger[E], A, B, C, D any](f func(A, B, C) D, va Validation[E, A], vb Validation[E, B], vc Validation[E, C]) Validation[E, D] {
	if va.valid && vb.valid && vc.valid {
		return Valid[E](f(va.value, vb.value, vc.value))
	}
	var acc failureAcc[E]
	acc.add(va.failure, !va.valid)
	acc.add(vb.failure, !vb.valid)
	acc.add(vc.failure, !vc.valid)
	return Invalid[E, D](acc.failure)
}

// Lift4 is Lift2 for four arguments.
func Lift4[E Merger[E], A, B, C, D, R any](f func(A, B, C, D) R, va Validation[E, A], vb Validation[E, B], vc Validation[E, C], vd Validation[E, D]) Validation[E, R] {
	if va.valid && vb.valid && vc.valid && vd.valid {
		return Valid[E](f(va.value, vb.value, vc.value, vd.value))
	}
	var acc failureAcc[E]
	acc.add(va.failure, !va.valid)
	acc.add(vb.failure, !vb.valid)
	acc.add(vc.failure, !vc.valid)
	acc.add(vd.failure, !vd.valid)
	return Invalid[E, R](acc.failure)
}

// Lift5 is Lift2 for five arguments.
func Lift5[E Merger[E], A, B, C, D, F, R any](f func(A, B, C, D, F) R, va Validation[E, A], vb Validation[E, B], vc Validation[E, C], vd Validation[E, D], vf Validation[E, F]) Validation[E, R] {
	if va.valid && vb.valid && vc.valid && vd.valid && vf.valid {
		return Valid[E](f(va.value, vb.value, vc.value, vd.value, vf.value))
	}
	var acc failureAcc[E]
	acc.add(va.failure, !va.valid)
	acc.add(vb.failure, !vb.valid)
	acc.add(vc.failure, !vc.valid)
	acc.add(vd.failure, !vd.valid)
	acc.add(vf.failure, !vf.valid)
	return Invalid[E, R](acc.failure)
}

// Lift6 is Lift2 for six arguments.
func Lift6[E Merger[E], A, B, C, D, F, G, R any](f func(A, B, C, D, F, G) R, va Validation[E, A], vb Validation[E, B], vc Validation[E, C], vd Validation[E, D], vf Validation[E, F], vg Validation[E, G]) Validation[E, R] {
	if va.valid && vb.valid && vc.valid && vd.valid && vf.valid && vg.valid {
		return Valid[E](f(va.value, vb.value, vc.value, vd.value, vf.value, vg.value))
	}
	var acc failureAcc[E]
	acc.add(va.failure, !va.valid)
	acc.add(vb.failure, !vb.valid)
	acc.add(vc.failure, !vc.valid)
	acc.add(vd.failure, !vd.valid)
	acc.add(vf.failure, !vf.valid)
	acc.add(vg.failure, !vg.valid)
	return Invalid[E, R](acc.failure)
}

// ValidationToEither forgets the ability to aggregate.
func ValidationToEither[E Merger[E], A any](v Validation[E, A]) Either[E, A] {
	if v.valid {
		return Right[E](v.value)
	}
	return Left[E, A](v.failure)
}

// ValidationToMaybe discards the failure.
func ValidationToMaybe[E Merger[E], A any](v Validation[E, A]) Maybe[A] {
	if v.valid {
		return Just(v.value)
	}
	return Nothing[A]()
}

// EitherToValidation lifts an Either into Validation, enabling aggregation
// with other validations.
func EitherToValidation[E Merger[E], A any](e Either[E, A]) Validation[E, A] {
	if r, ok := e.Right(); ok {
		return Valid[E](r)
	}
	l, _ := e.Left()
	return Invalid[E, A](l)
}
