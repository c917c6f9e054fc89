package css

import (
	"fmt"
	"strconv"
)

// Value is the variant type of declaration values: Keyword, Length, or Color.
// All variants are comparable, so == on two Values compares them structurally.
type Value interface {
	String() string
	isValue()
}

// Keyword is an identifier value, e.g. `auto`.
type Keyword string

// Length is a number with a unit, e.g. `600px`.
type Length struct {
	Value float32
	Unit  Unit
}

// Color is an RGBA color; colors parsed from a stylesheet are opaque.
type Color struct {
	R, G, B, A uint8
}

func (Keyword) isValue() {}
func (Length) isValue()  {}
func (Color) isValue()   {}

func (k Keyword) String() string {
	return string(k)
}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Value), 'f', -1, 32) + l.Unit.String()
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Unit is the unit of a Length. Pixels are the only unit.
type Unit uint8

// Px is the CSS pixel unit.
const Px Unit = iota + 1

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ToPx returns the size of a length in px, or zero for non-lengths.
func ToPx(v Value) float32 {
	if l, ok := v.(Length); ok && l.Unit == Px {
		return l.Value
	}
	return 0
}
