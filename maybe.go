package godeco

// Maybe represents an optional value: Just carries a value, Nothing carries
// none. The zero value is Nothing, so Maybe fields behave sensibly without
// explicit initialization.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Just wraps a present value.
func Just[A any](v A) Maybe[A] { return Maybe[A]{value: v, ok: true} }

// Nothing returns the absent value.
func Nothing[A any]() Maybe[A] { return Maybe[A]{} }

// IsJust reports whether a value is present.
func (m Maybe[A]) IsJust() bool { return m.ok }

// IsNothing reports whether the value is absent.
func (m Maybe[A]) IsNothing() bool { return !m.ok }

// Get returns the contained value and whether it is present.
func (m Maybe[A]) Get() (A, bool) { return m.value, m.ok }

// OrElse returns the contained value, or def when Nothing.
func (m Maybe[A]) OrElse(def A) A {
	if m.ok {
		return m.value
	}
	return def
}

// Or returns m when it is Just; otherwise it evaluates alt. The alternative
// is a thunk so it is only computed when needed.
func (m Maybe[A]) Or(alt func() Maybe[A]) Maybe[A] {
	if m.ok {
		return m
	}
	return alt()
}

// MatchMaybe eliminates a Maybe by calling exactly one of the two branches.
func MatchMaybe[A, B any](m Maybe[A], onJust func(A) B, onNothing func() B) B {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// MapMaybe applies f to the contained value when present.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

// ChainMaybe sequences a dependent optional computation. It short-circuits
// on Nothing.
func ChainMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return f(m.value)
}

// MaybeToEither projects a Maybe into an Either, using l for the Nothing
// case.
func MaybeToEither[L, A any](m Maybe[A], l L) Either[L, A] {
	if m.ok {
		return Right[L](m.value)
	}
	return Left[L, A](l)
}
