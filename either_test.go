package godeco_test

import (
	"testing"

	godeco "github.com/reoring/godeco"
)

func TestEither_Basics(t *testing.T) {
	r := godeco.Right[string](10)
	if !r.IsRight() || r.IsLeft() {
		t.Fatalf("Right should report IsRight")
	}
	if v, ok := r.Right(); !ok || v != 10 {
		t.Fatalf("Right accessor: got (%v, %v)", v, ok)
	}
	l := godeco.Left[string, int]("boom")
	if !l.IsLeft() {
		t.Fatalf("Left should report IsLeft")
	}
	if v, ok := l.Left(); !ok || v != "boom" {
		t.Fatalf("Left accessor: got (%v, %v)", v, ok)
	}
	if got := l.OrElse(3); got != 3 {
		t.Fatalf("OrElse on Left: got %d", got)
	}
}

func TestEither_MapAndMapLeft(t *testing.T) {
	r := godeco.MapEither(godeco.Right[string](2), func(x int) int { return x * 3 })
	if v, _ := r.Right(); v != 6 {
		t.Fatalf("MapEither on Right: got %d", v)
	}
	l := godeco.MapLeft(godeco.Left[string, int]("e"), func(s string) string { return s + "!" })
	if v, _ := l.Left(); v != "e!" {
		t.Fatalf("MapLeft on Left: got %q", v)
	}
}

func TestEither_ChainShortCircuits(t *testing.T) {
	called := false
	out := godeco.ChainEither(godeco.Left[string, int]("e"), func(x int) godeco.Either[string, int] {
		called = true
		return godeco.Right[string](x)
	})
	if called {
		t.Fatalf("Chain must not run the continuation on Left")
	}
	if v, _ := out.Left(); v != "e" {
		t.Fatalf("Chain should keep the Left, got %q", v)
	}
}

func TestEither_MonadLaws(t *testing.T) {
	f := func(x int) godeco.Either[string, int] { return godeco.Right[string](x * 2) }
	g := func(x int) godeco.Either[string, int] {
		if x > 10 {
			return godeco.Left[string, int]("too big")
		}
		return godeco.Right[string](x + 1)
	}

	if got, want := godeco.ChainEither(godeco.Right[string](5), f), f(5); got != want {
		t.Fatalf("left identity: got %v want %v", got, want)
	}

	for _, e := range []godeco.Either[string, int]{godeco.Right[string](5), godeco.Left[string, int]("e")} {
		if got := godeco.ChainEither(e, godeco.Right[string, int]); got != e {
			t.Fatalf("right identity: got %v want %v", got, e)
		}
	}

	for _, e := range []godeco.Either[string, int]{godeco.Right[string](3), godeco.Right[string](50), godeco.Left[string, int]("e")} {
		lhs := godeco.ChainEither(godeco.ChainEither(e, f), g)
		rhs := godeco.ChainEither(e, func(x int) godeco.Either[string, int] { return godeco.ChainEither(f(x), g) })
		if lhs != rhs {
			t.Fatalf("associativity: %v != %v for %v", lhs, rhs, e)
		}
	}
}

func TestEither_ReplaceReportsFirstFailureOnly(t *testing.T) {
	a := godeco.Left[string, int]("first")
	b := godeco.Left[string, bool]("second")
	out := godeco.ReplaceEither(a, b)
	if v, _ := out.Left(); v != "first" {
		t.Fatalf("ReplaceEither should report the first failure, got %q", v)
	}

	ok := godeco.ReplaceEither(godeco.Right[string](1), godeco.Right[string](true))
	if v, _ := ok.Right(); v != true {
		t.Fatalf("ReplaceEither should keep the second value, got %v", v)
	}
}

func TestEither_Match(t *testing.T) {
	got := godeco.MatchEither(godeco.Right[string](1),
		func(string) string { return "left" },
		func(int) string { return "right" })
	if got != "right" {
		t.Fatalf("MatchEither on Right: got %q", got)
	}
}

func TestSequenceEither_StopsAtFirstLeft(t *testing.T) {
	es := []godeco.Either[string, int]{
		godeco.Right[string](1),
		godeco.Left[string, int]("e1"),
		godeco.Left[string, int]("e2"),
	}
	out := godeco.SequenceEither(es)
	if v, ok := out.Left(); !ok || v != "e1" {
		t.Fatalf("SequenceEither should stop at the first Left, got (%v, %v)", v, ok)
	}

	all := []godeco.Either[string, int]{godeco.Right[string](1), godeco.Right[string](2)}
	if v, _ := godeco.SequenceEither(all).Right(); len(v) != 2 {
		t.Fatalf("SequenceEither on all-Right: got %v", v)
	}
}
