package common

import "testing"

func TestTake(t *testing.T) {
	opt := Some(3)
	taken := opt.Take()
	if opt.IsSome() {
		t.Errorf("optional still has a value after Take")
	}
	if taken.Unwrap() != 3 {
		t.Errorf("got %d, expected 3", taken.Unwrap())
	}
}

func TestUnwrapEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Unwrap on empty optional did not panic")
		}
	}()
	None[string]().Unwrap()
}

func TestThenAndFallback(t *testing.T) {
	called := false
	None[int]().Then(func(int) { called = true })
	if called {
		t.Errorf("Then called on empty optional")
	}
	Some(1).Then(func(int) { called = true })
	if !called {
		t.Errorf("Then not called on optional with value")
	}
	if got := None[int]().UnwrapOr(7); got != 7 {
		t.Errorf("got %d, expected 7", got)
	}
	if v, ok := Some("x").Get(); !ok || v != "x" {
		t.Errorf("Get returned (%q, %t)", v, ok)
	}
}
