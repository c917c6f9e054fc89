package style

import (
	"image/color"

	"github.com/pohl/crow/dom/style/css"
)

// Color interprets a declaration value as a color. Hex colors convert
// directly; a few keywords name colors. Other values yield nil.
func Color(v css.Value) color.Color {
	switch x := v.(type) {
	case css.Color:
		return color.RGBA{x.R, x.G, x.B, x.A}
	case css.Keyword:
		if c, ok := namedColors[string(x)]; ok {
			return c
		}
	}
	return nil
}

// TODO use the full CSS palette
var namedColors = map[string]color.RGBA{
	"black": {0, 0, 0, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"red":   {0xff, 0, 0, 0xff},
	"green": {0, 0x80, 0, 0xff},
	"blue":  {0, 0, 0xff, 0xff},
	"gray":  {0x80, 0x80, 0x80, 0xff},
	"grey":  {0x80, 0x80, 0x80, 0xff},
}

// ColorString returns a rough name for a color, for debugging output.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	r, g, b, a := c.RGBA()
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r >= 0x9000 {
		return "red"
	} else if g >= 0x9000 {
		return "green"
	} else if b >= 0x9000 {
		return "blue"
	}
	return "gray"
}
