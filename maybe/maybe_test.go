package maybe_test

import (
	"strings"
	"testing"

	. "github.com/pohl/crow/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just("main") // infers type
	var y Maybe[string]

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%q)", v)
	case m.Nothing():
		t.Error("expected Just(main) not to match Nothing")
	}
	if v != "main" {
		t.Errorf("expected v to be 'main', is %#v", v)
	}

	var w string
	matched := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected zero value to be Nothing, is Just(%q)", w)
	case m.Nothing():
		matched = true
	}
	if !matched || w != "" {
		t.Errorf("expected zero value to match Nothing, w = %#v", w)
	}
}

func TestMaybeGetAndDefault(t *testing.T) {
	x := Just("nav")
	if s, ok := x.Get(); !ok || s != "nav" {
		t.Errorf("expected Get() = (nav, true), is (%q, %v)", s, ok)
	}
	if x.WithDefault("none") != "nav" {
		t.Error("expected Just(nav) to have value nav, hasn't")
	}
	y := Nothing[string]()
	if _, ok := y.Get(); ok {
		t.Error("expected Nothing.Get() to report absence")
	}
	if y.WithDefault("none") != "none" {
		t.Error("expected Nothing to default to 'none', doesn't")
	}
	if !y.IsNothing() || x.IsNothing() {
		t.Error("IsNothing reports wrong state")
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	up := Just("div").Map(strings.ToUpper)
	if up.WithDefault("") != "DIV" {
		t.Errorf("expected Just(div).Map(upper) to be DIV, is %v", up)
	}
	if !Nothing[string]().Map(strings.ToUpper).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
	nonEmpty := func(s string) Maybe[int] {
		if s == "" {
			return Nothing[int]()
		}
		return Just(len(s))
	}
	if n := AndThen(nonEmpty, Just("abc")); n.WithDefault(0) != 3 {
		t.Errorf("expected AndThen to yield Just(3), is %v", n)
	}
	if n := AndThen(nonEmpty, Just("")); !n.IsNothing() {
		t.Errorf("expected AndThen to yield Nothing, is %v", n)
	}
}

func TestMaybeEqual(t *testing.T) {
	if !Equal(Just("a"), Just("a")) || Equal(Just("a"), Just("b")) {
		t.Error("Equal on Just values is wrong")
	}
	if !Equal(Nothing[string](), Maybe[string]{}) || Equal(Just(""), Nothing[string]()) {
		t.Error("Equal on Nothing is wrong")
	}
	if Just(1).String() != "Just(1)" || Nothing[int]().String() != "Nothing" {
		t.Error("unexpected String() output")
	}
}
