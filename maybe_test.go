package godeco_test

import (
	"testing"

	godeco "github.com/reoring/godeco"
)

func TestMaybe_Basics(t *testing.T) {
	j := godeco.Just(42)
	if !j.IsJust() || j.IsNothing() {
		t.Fatalf("Just should report IsJust")
	}
	if v, ok := j.Get(); !ok || v != 42 {
		t.Fatalf("Get on Just: got (%v, %v)", v, ok)
	}
	n := godeco.Nothing[int]()
	if n.IsJust() {
		t.Fatalf("Nothing should not report IsJust")
	}
	if got := n.OrElse(7); got != 7 {
		t.Fatalf("OrElse on Nothing: got %d", got)
	}
	if got := j.OrElse(7); got != 42 {
		t.Fatalf("OrElse on Just: got %d", got)
	}
}

func TestMaybe_ZeroValueIsNothing(t *testing.T) {
	var m godeco.Maybe[string]
	if !m.IsNothing() {
		t.Fatalf("zero Maybe should be Nothing")
	}
}

func TestMaybe_OrIsLazy(t *testing.T) {
	called := false
	out := godeco.Just(1).Or(func() godeco.Maybe[int] {
		called = true
		return godeco.Just(2)
	})
	if called {
		t.Fatalf("alternative must not be evaluated when the value is Just")
	}
	if v, _ := out.Get(); v != 1 {
		t.Fatalf("Or should keep the first Just, got %d", v)
	}
}

func TestMaybe_Map(t *testing.T) {
	double := func(x int) int { return x * 2 }
	if v, _ := godeco.MapMaybe(godeco.Just(3), double).Get(); v != 6 {
		t.Fatalf("MapMaybe on Just: got %d", v)
	}
	if godeco.MapMaybe(godeco.Nothing[int](), double).IsJust() {
		t.Fatalf("MapMaybe on Nothing should stay Nothing")
	}
}

func TestMaybe_MonadLaws(t *testing.T) {
	f := func(x int) godeco.Maybe[int] { return godeco.Just(x * 2) }
	g := func(x int) godeco.Maybe[int] {
		if x > 10 {
			return godeco.Nothing[int]()
		}
		return godeco.Just(x + 1)
	}

	// left identity: chain(Just(a), f) == f(a)
	if got, want := godeco.ChainMaybe(godeco.Just(5), f), f(5); got != want {
		t.Fatalf("left identity: got %v want %v", got, want)
	}

	// right identity: chain(m, Just) == m
	for _, m := range []godeco.Maybe[int]{godeco.Just(5), godeco.Nothing[int]()} {
		if got := godeco.ChainMaybe(m, godeco.Just[int]); got != m {
			t.Fatalf("right identity: got %v want %v", got, m)
		}
	}

	// associativity: chain(chain(m, f), g) == chain(m, x -> chain(f(x), g))
	for _, m := range []godeco.Maybe[int]{godeco.Just(3), godeco.Just(50), godeco.Nothing[int]()} {
		lhs := godeco.ChainMaybe(godeco.ChainMaybe(m, f), g)
		rhs := godeco.ChainMaybe(m, func(x int) godeco.Maybe[int] { return godeco.ChainMaybe(f(x), g) })
		if lhs != rhs {
			t.Fatalf("associativity: %v != %v for %v", lhs, rhs, m)
		}
	}
}

func TestMaybe_Match(t *testing.T) {
	onJust := func(x int) string { return "just" }
	onNothing := func() string { return "nothing" }
	if got := godeco.MatchMaybe(godeco.Just(1), onJust, onNothing); got != "just" {
		t.Fatalf("MatchMaybe on Just: got %q", got)
	}
	if got := godeco.MatchMaybe(godeco.Nothing[int](), onJust, onNothing); got != "nothing" {
		t.Fatalf("MatchMaybe on Nothing: got %q", got)
	}
}

func TestMaybe_ToEither(t *testing.T) {
	e := godeco.MaybeToEither(godeco.Just("x"), "missing")
	if r, ok := e.Right(); !ok || r != "x" {
		t.Fatalf("MaybeToEither on Just: got (%v, %v)", r, ok)
	}
	e = godeco.MaybeToEither(godeco.Nothing[string](), "missing")
	if l, ok := e.Left(); !ok || l != "missing" {
		t.Fatalf("MaybeToEither on Nothing: got (%v, %v)", l, ok)
	}
}

func TestSequenceMaybe(t *testing.T) {
	all := []godeco.Maybe[int]{godeco.Just(1), godeco.Just(2)}
	if v, ok := godeco.SequenceMaybe(all).Get(); !ok || len(v) != 2 || v[0] != 1 || v[1] != 2 {
		t.Fatalf("SequenceMaybe on all-Just: got (%v, %v)", v, ok)
	}
	some := []godeco.Maybe[int]{godeco.Just(1), godeco.Nothing[int]()}
	if godeco.SequenceMaybe(some).IsJust() {
		t.Fatalf("SequenceMaybe with a Nothing should be Nothing")
	}
}
