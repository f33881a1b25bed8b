package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/domquery/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just("5")
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%q)", v)
	case m.Nothing():
		t.Error("expected Just, got Nothing")
	}
	if v != "5" {
		t.Errorf("expected v to be \"5\", is %q", v)
	}

	var w string
	matched := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing, got Just(%q)", w)
	case m.Nothing():
		matched = true
	}
	if !matched {
		t.Error("expected Nothing-branch to be taken, wasn't")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("").Get(); !ok || v != "" {
		t.Errorf("expected Just(\"\") to hold the empty string, is %q/%v", v, ok)
	}
	if _, ok := Nothing[string]().Get(); ok {
		t.Error("expected Nothing to hold no value")
	}
	lookup := map[string]string{"checked": ""}
	v, ok := lookup["checked"]
	if !FromOK(v, ok).IsJust() {
		t.Error("expected present empty value to convert to Just")
	}
	v, ok = lookup["value"]
	if FromOK(v, ok).IsJust() {
		t.Error("expected missing value to convert to Nothing")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if x := Just(7).WithDefault(100); x != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", x)
	}
	if y := Nothing[int]().WithDefault(100); y != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", y)
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Get(); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}
	if v, _ := Map(double, Just(10)).Get(); v != 20 {
		t.Errorf("expected Map(…, Just 10) to return 20, is %d", v)
	}
	if Nothing[int]().Map(double).IsJust() {
		t.Error("expected Nothing.Map(…) to be Nothing, isn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	atoi := func(s string) Maybe[int] {
		n, err := strconv.Atoi(s)
		return FromOK(n, err == nil)
	}
	if n, _ := AndThen(atoi, Just("42")).Get(); n != 42 {
		t.Errorf("expected Just(\"42\") |> andThen(atoi) to be 42, is %d", n)
	}
	if AndThen(atoi, Just("x")).IsJust() {
		t.Error("expected Just(\"x\") |> andThen(atoi) to be Nothing, isn't")
	}
	if AndThen(atoi, Nothing[string]()).IsJust() {
		t.Error("expected Nothing |> andThen(atoi) to be Nothing, isn't")
	}
}

func TestMaybeOneOfAndString(t *testing.T) {
	m := OneOf(Nothing[string](), Just("a"), Just("b"))
	if s, ok := m.(interface{ String() string }); !ok || s.String() != `Just(a)` {
		t.Errorf("expected OneOf to select Just(a), got %v", m)
	}
	if OneOf[string]().IsJust() {
		t.Error("expected OneOf() to be Nothing")
	}
}
