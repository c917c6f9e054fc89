package css

import (
	"strconv"
	"strings"

	"github.com/pohl/crow/maybe"
	"github.com/pohl/crow/scan"
)

// Parse parses a whole stylesheet. All errors are fatal; a non-nil error
// comes with a nil stylesheet.
func Parse(text string) (sheet *Stylesheet, err error) {
	defer scan.Recover(&err)
	p := parser{c: scan.New(text, scan.StyleSpace)}
	rules := p.parseRules()
	tracer().Debugf("parsed stylesheet with %d rule(s)", len(rules))
	return &Stylesheet{Rules: rules}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Stylesheet {
	sheet, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sheet
}

type parser struct {
	c *scan.Cursor
}

// parseRules parses rule sets separated by optional whitespace.
func (p *parser) parseRules() []Rule {
	rules := []Rule{}
	for {
		p.c.ConsumeWhitespace()
		if p.c.AtEnd() {
			break
		}
		rules = append(rules, p.parseRule())
	}
	return rules
}

// parseRule parses `<selectors> { <declarations> }`.
func (p *parser) parseRule() Rule {
	selectors := p.parseSelectors()
	declarations := p.parseDeclarations()
	rule := Rule{Selectors: selectors, Declarations: declarations}
	tracer().Debugf("rule %s", rule)
	return rule
}

// parseSelectors parses a comma-separated list of selectors and returns it
// ordered by specificity, most specific first.
func (p *parser) parseSelectors() []Selector {
	var selectors []Selector
	for {
		selectors = append(selectors, p.parseSimpleSelector())
		p.c.ConsumeWhitespace()
		if p.c.AtEnd() {
			p.c.Failf("unexpected end of input in selector list")
		}
		if c := p.c.Peek(); c == ',' {
			p.c.Advance()
			p.c.ConsumeWhitespace()
		} else if c == '{' {
			break
		} else {
			p.c.Failf("unexpected character %q in selector list", c)
		}
	}
	SortBySpecificity(selectors)
	return selectors
}

// parseSimpleSelector parses one simple selector, e.g. `type#id.class1.class2`.
// The selector ends at the first rune which cannot continue it.
func (p *parser) parseSimpleSelector() SimpleSelector {
	var sel SimpleSelector
	for !p.c.AtEnd() {
		switch c := p.c.Peek(); {
		case c == '#':
			p.c.Advance()
			sel.ID = maybe.Just(p.parseIdentifier())
		case c == '.':
			p.c.Advance()
			sel.Classes = append(sel.Classes, p.parseIdentifier())
		case c == '*':
			p.c.Advance() // universal selector
		case isIdentifierRune(c):
			sel.TagName = maybe.Just(p.parseIdentifier())
		default:
			return sel
		}
	}
	return sel
}

// parseDeclarations parses a list of declarations enclosed in `{ … }`.
func (p *parser) parseDeclarations() []Declaration {
	p.c.Expect('{')
	declarations := []Declaration{}
	for {
		p.c.ConsumeWhitespace()
		if p.c.AtEnd() {
			p.c.Failf("unterminated declaration block")
		}
		if p.c.Peek() == '}' {
			p.c.Advance()
			break
		}
		declarations = append(declarations, p.parseDeclaration())
	}
	return declarations
}

// parseDeclaration parses one `<property>: <value>;` declaration.
func (p *parser) parseDeclaration() Declaration {
	name := p.parseIdentifier()
	if name == "" {
		p.c.Failf("expected property name")
	}
	p.c.ConsumeWhitespace()
	p.c.Expect(':')
	p.c.ConsumeWhitespace()
	value := p.parseValue()
	p.c.ConsumeWhitespace()
	p.c.Expect(';')
	return Declaration{Name: name, Value: value}
}

// --- Values ----------------------------------------------------------------

func (p *parser) parseValue() Value {
	if p.c.AtEnd() {
		p.c.Failf("expected value, found end of input")
	}
	switch c := p.c.Peek(); {
	case '0' <= c && c <= '9':
		return p.parseLength()
	case c == '#':
		return p.parseColor()
	}
	return Keyword(p.parseIdentifier())
}

func (p *parser) parseLength() Value {
	f := p.parseFloat()
	return Length{Value: f, Unit: p.parseUnit()}
}

// parseFloat consumes digits and dots. Text which is not a valid number,
// e.g. "1.2.3", yields 0.
func (p *parser) parseFloat() float32 {
	s := p.c.ConsumeWhile(func(r rune) bool {
		return r == '.' || ('0' <= r && r <= '9')
	})
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		tracer().Infof("cannot read number %q, using 0", s)
		return 0
	}
	return float32(f)
}

func (p *parser) parseUnit() Unit {
	start := p.c.Pos()
	unit := p.parseIdentifier()
	switch strings.ToLower(unit) {
	case "px":
		return Px
	}
	p.c.FailAt(start, "unrecognized unit %q", unit)
	return 0
}

func (p *parser) parseColor() Value {
	p.c.Expect('#')
	return Color{R: p.parseHexPair(), G: p.parseHexPair(), B: p.parseHexPair(), A: 255}
}

// parseHexPair parses two hexadecimal digits.
func (p *parser) parseHexPair() uint8 {
	var v uint8
	for i := 0; i < 2; i++ {
		if p.c.AtEnd() {
			p.c.Failf("expected hex digit, found end of input")
		}
		d, ok := hexValue(p.c.Peek())
		if !ok {
			p.c.Failf("expected hex digit, found %q", p.c.Peek())
		}
		p.c.Advance()
		v = v<<4 | d
	}
	return v
}

// parseIdentifier parses a property name or keyword.
func (p *parser) parseIdentifier() string {
	return p.c.ConsumeWhile(isIdentifierRune)
}

// isIdentifierRune is restricted to ASCII.
func isIdentifierRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

func hexValue(r rune) (uint8, bool) {
	switch {
	case '0' <= r && r <= '9':
		return uint8(r - '0'), true
	case 'a' <= r && r <= 'f':
		return uint8(r - 'a' + 10), true
	case 'A' <= r && r <= 'F':
		return uint8(r - 'A' + 10), true
	}
	return 0, false
}
