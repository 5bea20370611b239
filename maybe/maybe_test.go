package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/immuset/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just("a")
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%q)", v)
	case m.Nothing():
		t.Error("expected Just(\"a\") not to match Nothing")
	}
	if v != "a" {
		t.Errorf("expected v to be \"a\", is %q", v)
	}

	var w string
	matched := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing not to match Just, got %q", w)
	case m.Nothing():
		matched = true
	}
	if !matched {
		t.Error("expected Nothing to match case Nothing")
	}
}

func TestMaybeValue(t *testing.T) {
	if v, ok := Just(7).Value(); !ok || v != 7 {
		t.Errorf("expected Just(7).Value() to be (7, true), is (%d, %v)", v, ok)
	}
	if v, ok := Nothing[int]().Value(); ok || v != 0 {
		t.Errorf("expected Nothing.Value() to be (0, false), is (%d, %v)", v, ok)
	}
	if !Nothing[int]().IsNothing() {
		t.Error("expected Nothing.IsNothing() to be true")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Value(); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}
	s := Map(strconv.Itoa, Just(10))
	if v, _ := s.Value(); v != "10" {
		t.Errorf("expected Map(Itoa, Just 10) to return \"10\", is %q", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeMatchNonComparable(t *testing.T) {
	var b []byte
	switch m := Just([]byte("abc")).Match(); m {
	case m.Nothing():
		t.Error("expected Just to match Just, matched Nothing")
	case m.Just(&b):
		if string(b) != "abc" {
			t.Errorf("expected matched value to be \"abc\", is %q", b)
		}
	default:
		t.Error("expected Just to match")
	}
	switch m := Nothing[[]byte]().Match(); m {
	case m.Just(&b):
		t.Error("expected Nothing not to match Just")
	case m.Nothing():
	default:
		t.Error("expected Nothing to match")
	}
}
