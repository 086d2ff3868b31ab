package godeco

// Either represents one of two cases: Left, conventionally a failure, or
// Right, conventionally a success. Composition through ChainEither
// short-circuits on the first Left; for failure aggregation use Validation
// instead.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a failure value.
func Left[L, R any](l L) Either[L, R] { return Either[L, R]{left: l} }

// Right wraps a success value.
func Right[L, R any](r R) Either[L, R] { return Either[L, R]{right: r, isRight: true} }

// IsLeft reports whether the Left case holds.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether the Right case holds.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the failure value and whether the Left case holds.
func (e Either[L, R]) Left() (L, bool) { return e.left, !e.isRight }

// Right returns the success value and whether the Right case holds.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.isRight }

// OrElse returns the success value, or def when Left.
func (e Either[L, R]) OrElse(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// Or returns e when it is Right; otherwise it evaluates alt.
func (e Either[L, R]) Or(alt func() Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return alt()
}

// MatchEither eliminates an Either by calling exactly one of the branches.
func MatchEither[L, R, B any](e Either[L, R], onLeft func(L) B, onRight func(R) B) B {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies f to the success value.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	return Right[L](f(e.right))
}

// MapLeft applies f to the failure value.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// ChainEither sequences a dependent computation, short-circuiting on Left.
func ChainEither[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	return f(e.right)
}

// ReplaceEither combines two Eithers keeping b's value. Only the first
// failure encountered is reported; contrast with ReplaceValidation, which
// merges failures from both sides.
func ReplaceEither[L, A, B any](a Either[L, A], b Either[L, B]) Either[L, B] {
	if !a.isRight {
		return Left[L, B](a.left)
	}
	return b
}

// EitherToMaybe discards the failure value.
func EitherToMaybe[L, R any](e Either[L, R]) Maybe[R] {
	if e.isRight {
		return Just(e.right)
	}
	return Nothing[R]()
}
