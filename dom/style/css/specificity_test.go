package css

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/pohl/crow/maybe"
	"github.com/stretchr/testify/assert"
)

func TestSpecificityOrder(t *testing.T) {
	cases := []struct {
		lo, hi Specificity
	}{
		{Specificity{0, 0, 1}, Specificity{0, 0, 2}},
		{Specificity{0, 0, 2}, Specificity{0, 1, 2}},
		{Specificity{0, 0, 2}, Specificity{1, 0, 2}},
		{Specificity{0, 9, 1}, Specificity{1, 0, 0}},
		{Specificity{0, 1, 0}, Specificity{0, 1, 1}},
	}
	for _, c := range cases {
		assert.True(t, c.lo.Less(c.hi), "%v < %v", c.lo, c.hi)
		assert.False(t, c.hi.Less(c.lo), "!(%v < %v)", c.hi, c.lo)
		assert.Equal(t, -1, c.lo.Compare(c.hi))
		assert.Equal(t, 1, c.hi.Compare(c.lo))
	}
	for _, sp := range []Specificity{{0, 0, 0}, {1, 2, 1}} {
		assert.False(t, sp.Less(sp), "equal specificities must not be less")
		assert.Equal(t, 0, sp.Compare(sp))
	}
}

func TestSimpleSelectorSpecificity(t *testing.T) {
	s := SimpleSelector{
		TagName: maybe.Just("div"),
		ID:      maybe.Just("main"),
		Classes: []string{"a", "b"},
	}
	assert.Equal(t, Specificity{1, 2, 1}, s.Specificity())
	assert.Equal(t, Specificity{0, 0, 0}, SimpleSelector{}.Specificity())
	assert.Equal(t, "div#main.a.b", s.String())
	assert.Equal(t, "*", SimpleSelector{}.String())
}

func TestSortBySpecificityIsStableAndDescending(t *testing.T) {
	first := SimpleSelector{Classes: []string{"first"}}   // (0,1,0)
	id := SimpleSelector{ID: maybe.Just("x")}             // (1,0,0)
	second := SimpleSelector{Classes: []string{"second"}} // (0,1,0)
	sels := []Selector{first, id, second}
	SortBySpecificity(sels)
	assert.Equal(t, []Specificity{{1, 0, 0}, {0, 1, 0}, {0, 1, 0}}, []Specificity{
		sels[0].Specificity(), sels[1].Specificity(), sels[2].Specificity(),
	})
	assert.Equal(t, ".first", sels[1].String(), "equal specificities keep source order")
	assert.Equal(t, ".second", sels[2].String())
}

func TestNewRuleSortsSelectors(t *testing.T) {
	in := []Selector{
		SimpleSelector{TagName: maybe.Just("p")},
		SimpleSelector{TagName: maybe.Just("p"), Classes: []string{"x"}},
	}
	r := NewRule(in, []Declaration{{"margin", Keyword("auto")}})
	assert.Equal(t, "p.x", r.Selectors[0].String())
	assert.Equal(t, "p", in[0].String(), "input slice is not reordered")
	assert.Equal(t, "p.x, p { margin: auto; }", r.String())
}

func TestValueEquality(t *testing.T) {
	assert.True(t, Value(Length{1.5, Px}) == Value(Length{1.5, Px}))
	assert.False(t, Value(Length{1.5, Px}) == Value(Length{1.25, Px}))
	assert.False(t, Value(Keyword("red")) == Value(Color{255, 0, 0, 255}))
	assert.True(t, Value(Color{1, 2, 3, 255}) == Value(Color{1, 2, 3, 255}))
	assert.Equal(t, "600px", Length{600, Px}.String())
	assert.Equal(t, "0.5px", Length{0.5, Px}.String())
	assert.Equal(t, "#4f5358", Color{79, 83, 88, 255}.String())
	assert.Equal(t, "rgba(1, 2, 3, 4)", Color{1, 2, 3, 4}.String())
}

func TestDimen(t *testing.T) {
	var du dimen.DU
	d := Dimen(Length{96, Px})
	switch m := d.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected 96px to be a fixed dimension, isn't: %#v", d)
	}
	assert.Equal(t, 72*dimen.PT, du, "96px are one inch, i.e. 72pt")

	auto := Dimen(Keyword("auto"))
	switch m := auto.Match(); m {
	case m.IsKind(Auto()):
	default:
		t.Errorf("expected keyword auto to be dimension auto, isn't: %#v", auto)
	}
	assert.NotNil(t, Dimen(Keyword("inherit")).Match().IsKind(Inherit()))
	assert.NotNil(t, Dimen(Keyword("initial")).Match().IsKind(Initial()))
	assert.NotNil(t, Dimen(Keyword("red")).Match().IsKind(NoDimen()))
	assert.NotNil(t, Dimen(Color{}).Match().IsKind(NoDimen()))
}

func TestDimenPattern(t *testing.T) {
	var du dimen.DU
	d := Dimen(Length{8, Px})
	e := DimenPattern[dimen.DU](d).With(&du)
	twice := e.OneOf(DimenPatterns[dimen.DU]{
		Just:    e.Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	assert.Equal(t, 2*PxToDU(8), twice)

	m := DimenPattern[string](Auto())
	assert.Equal(t, "auto", m.OneOf(DimenPatterns[string]{Auto: "auto", Default: "other"}))
}
