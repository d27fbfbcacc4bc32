package util

import (
	"strconv"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct{ x, lo, hi, want int64 }{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{11, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", c.x, c.lo, c.hi, got, c.want)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	if got := CeilDiv(7, 2); got != 4 {
		t.Errorf("CeilDiv(7, 2) = %d, expected 4", got)
	}
	if got := CeilDiv(8, 2); got != 4 {
		t.Errorf("CeilDiv(8, 2) = %d, expected 4", got)
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2}, strconv.Itoa)
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("unexpected result: %v", got)
	}
}
