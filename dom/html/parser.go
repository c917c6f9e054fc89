package html

import (
	"unicode"

	"github.com/pohl/crow/dom"
	"github.com/pohl/crow/scan"
)

// Parse parses an HTML document and returns its root node.
// All errors are fatal; a non-nil error comes with the zero Node.
func Parse(text string) (root dom.Node, err error) {
	defer scan.Recover(&err)
	p := parser{c: scan.New(text, scan.MarkupSpace)}
	nodes := p.parseNodes()
	if !p.c.AtEnd() {
		p.c.Failf("unexpected closing tag at top level")
	}
	// If the document contains a single root node, just return it.
	if len(nodes) == 1 {
		root = nodes[0]
	} else {
		root = dom.NewElement("html", dom.AttrMap{}, nodes)
	}
	tracer().Debugf("parsed document with %d top-level node(s)", len(nodes))
	return root, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) dom.Node {
	root, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return root
}

type parser struct {
	c *scan.Cursor
}

// parseNodes parses a sequence of sibling nodes.
func (p *parser) parseNodes() []dom.Node {
	var nodes []dom.Node
	for {
		p.c.ConsumeWhitespace()
		if p.c.AtEnd() || p.c.StartsWith("</") {
			break
		}
		nodes = append(nodes, p.parseNode())
	}
	return nodes
}

func (p *parser) parseNode() dom.Node {
	if p.c.Peek() == '<' {
		return p.parseElement()
	}
	return p.parseText()
}

// parseText consumes everything up to the next '<'.
func (p *parser) parseText() dom.Node {
	return dom.NewText(p.c.ConsumeWhile(func(r rune) bool { return r != '<' }))
}

// parseElement parses an element including its open tag, contents and
// closing tag.
func (p *parser) parseElement() dom.Node {
	start := p.c.Pos()
	p.c.Expect('<')
	tagName := p.parseName("tag")
	attrs := p.parseAttributes()
	p.c.Expect('>')

	children := p.parseNodes()

	p.c.Expect('<')
	p.c.Expect('/')
	closePos := p.c.Pos()
	if closing := p.parseName("closing tag"); closing != tagName {
		p.c.FailAt(closePos, "closing tag </%s> does not match <%s> opened at offset %d",
			closing, tagName, start)
	}
	p.c.Expect('>')
	tracer().Debugf("element <%s> with %d attribute(s), %d child(ren)", tagName, len(attrs), len(children))
	return dom.NewElement(tagName, attrs, children)
}

// parseName parses a tag or attribute name. Names must not be empty.
func (p *parser) parseName(what string) string {
	name := p.c.ConsumeWhile(isNameRune)
	if name == "" {
		if p.c.AtEnd() {
			p.c.Failf("expected %s name, found end of input", what)
		}
		p.c.Failf("expected %s name, found %q", what, p.c.Peek())
	}
	return name
}

// parseAttributes parses a list of name="value" pairs, separated by whitespace.
func (p *parser) parseAttributes() dom.AttrMap {
	attrs := dom.AttrMap{}
	for {
		p.c.ConsumeWhitespace()
		if p.c.AtEnd() {
			p.c.Failf("unterminated open tag")
		}
		if p.c.Peek() == '>' {
			break
		}
		name, value := p.parseAttribute()
		attrs[name] = value
	}
	return attrs
}

// parseAttribute parses a single name="value" pair.
func (p *parser) parseAttribute() (string, string) {
	name := p.parseName("attribute")
	p.c.Expect('=')
	return name, p.parseAttributeValue()
}

// parseAttributeValue parses a value quoted with either ' or ".
func (p *parser) parseAttributeValue() string {
	if p.c.AtEnd() {
		p.c.Failf("expected quoted attribute value, found end of input")
	}
	open := p.c.Advance()
	if open != '"' && open != '\'' {
		p.c.FailAt(p.c.Pos()-1, "expected quote, found %q", open)
	}
	value := p.c.ConsumeWhile(func(r rune) bool { return r != open })
	if p.c.AtEnd() {
		p.c.Failf("unterminated attribute value")
	}
	p.c.Expect(open)
	return value
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
