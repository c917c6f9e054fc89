package css

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// PxToDU converts CSS pixels to design units. A CSS pixel is 1/96 inch,
// i.e. 3/4 of a point.
func PxToDU(px float32) dimen.DU {
	return dimen.DU(px * 0.75 * float32(dimen.PT))
}

type dimenKind uint8

const (
	dimenNone dimenKind = iota
	dimenAbsolute
	dimenAuto
	dimenInherit
	dimenInitial
)

// DimenT is an option type for CSS dimensions.
/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/
type DimenT struct {
	d    dimen.DU
	kind dimenKind
}

// Dimen interprets a declaration value as a dimension. Lengths become fixed
// dimensions; the keywords auto, inherit and initial become the respective
// variants. Every other value is NoDimen.
func Dimen(v Value) DimenT {
	switch x := v.(type) {
	case Length:
		if x.Unit == Px {
			return JustDimen(PxToDU(x.Value))
		}
	case Keyword:
		switch x {
		case "auto":
			return Auto()
		case "inherit":
			return Inherit()
		case "initial":
			return Initial()
		}
	}
	return NoDimen()
}

// NoDimen is the result for values which are not dimensions.
func NoDimen() DimenT {
	return DimenT{}
}

func Auto() DimenT {
	return DimenT{kind: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{kind: dimenInherit}
}

func Initial() DimenT {
	return DimenT{kind: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, kind: dimenAbsolute}
}

// ---------------------------------------------------------------------------

// Match starts pattern matching on a dimension:
//
//	var du dimen.DU
//	switch m := d.Match(); m {
//	case m.Just(&du):
//	case m.IsKind(css.Auto()):
//	}
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is the switch tag for matching on a DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same variant as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if m.dimen.kind == d.kind {
		return m
	}
	return nil
}

// Just matches a fixed dimension and stores its value in du (if non-nil).
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.kind == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds one result per variant of DimenT, for use with OneOf.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match on d, producing a T.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is an expression match in progress.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern result for the variant of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.kind {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With binds the fixed value of the dimension to du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x; it is used in pattern literals after With.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
