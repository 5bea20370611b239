package fp_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/immuset/fp"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := fp.Compose(g, f)
	if h7 := h(7); h7 != "7.500" {
		t.Errorf("expected h(7) to return string 7.500, is %q", h7)
	}
}

func TestConst(t *testing.T) {
	seven := fp.Const[int, string](7)
	if seven("x") != 7 {
		t.Errorf("expected const to be integer 7, is %v", seven("x"))
	}
}

func TestIdentity(t *testing.T) {
	if fp.Identity("a") != "a" {
		t.Error("expected Identity(a) to be a")
	}
}

func TestNot(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	odd := fp.Not(even)
	if odd(2) || !odd(3) {
		t.Error("expected Not(even) to hold for odd numbers only")
	}
}
