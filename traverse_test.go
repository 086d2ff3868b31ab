package godeco_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	godeco "github.com/reoring/godeco"
)

func parsePositive(s string) godeco.Validation[godeco.ErrorList, int] {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return godeco.Invalid[godeco.ErrorList, int](godeco.ErrorList{"not a positive number: " + s})
	}
	return godeco.Valid[godeco.ErrorList](n)
}

func TestMapMValidation_ReportsEveryFailure(t *testing.T) {
	out := godeco.MapMValidation([]string{"1", "x", "-2"}, parsePositive)
	f, ok := out.Failure()
	if !ok {
		t.Fatalf("expected Invalid")
	}
	want := godeco.ErrorList{"not a positive number: x", "not a positive number: -2"}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatalf("aggregated failure mismatch (-want +got):\n%s", diff)
	}
}

func TestMapMValidation_AllValid(t *testing.T) {
	out := godeco.MapMValidation([]string{"1", "2"}, parsePositive)
	v, _ := out.Get()
	if diff := cmp.Diff([]int{1, 2}, v); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestMapMEither_StopsAtFirstFailure(t *testing.T) {
	parse := func(s string) godeco.Either[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return godeco.Left[string, int]("bad: " + s)
		}
		return godeco.Right[string](n)
	}
	out := godeco.MapMEither([]string{"1", "x", "y"}, parse)
	l, ok := out.Left()
	if !ok || l != "bad: x" {
		t.Fatalf("expected first failure only, got (%v, %v)", l, ok)
	}
}

func TestSequenceValidation_MergesAllFailures(t *testing.T) {
	vs := []godeco.Validation[godeco.DecodeError, int]{
		godeco.Valid[godeco.DecodeError](1),
		godeco.Invalid[godeco.DecodeError, int](godeco.ErrorAt("[1]", "e1")),
		godeco.Invalid[godeco.DecodeError, int](godeco.ErrorAt("[2]", "e2")),
	}
	out := godeco.SequenceValidation(vs)
	f, _ := out.Failure()
	want := godeco.DecodeError{"[1]": "e1", "[2]": "e2"}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatalf("failure mismatch (-want +got):\n%s", diff)
	}
}

func TestZipWithMValidation(t *testing.T) {
	div := func(a, b int) godeco.Validation[godeco.ErrorList, int] {
		if b == 0 {
			return godeco.Invalid[godeco.ErrorList, int](godeco.ErrorList{"division by zero"})
		}
		return godeco.Valid[godeco.ErrorList](a / b)
	}
	out := godeco.ZipWithMValidation(div, []int{6, 4, 2}, []int{2, 0})
	f, ok := out.Failure()
	if !ok || len(f) != 1 {
		t.Fatalf("expected the single zipped failure, got (%v, %v)", f, ok)
	}

	ok2 := godeco.ZipWithMValidation(div, []int{6, 4}, []int{2, 2})
	v, _ := ok2.Get()
	if diff := cmp.Diff([]int{3, 2}, v); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestZipWithMEither_StopsAtFirstFailure(t *testing.T) {
	div := func(a, b int) godeco.Either[string, int] {
		if b == 0 {
			return godeco.Left[string, int]("division by zero")
		}
		return godeco.Right[string](a / b)
	}
	out := godeco.ZipWithMEither(div, []int{6, 4, 2}, []int{0, 0, 1})
	if l, _ := out.Left(); l != "division by zero" {
		t.Fatalf("expected short-circuit failure, got %q", l)
	}
}
