package scan

import (
	"fmt"
	"unicode"

	"github.com/pkg/errors"
)

// Cursor scans an immutable rune sequence from left to right.
type Cursor struct {
	input []rune
	pos   int
	space func(rune) bool
}

// New creates a cursor at the start of text. isSpace decides which runes
// ConsumeWhitespace skips; use MarkupSpace or StyleSpace.
func New(text string, isSpace func(rune) bool) *Cursor {
	if isSpace == nil {
		isSpace = MarkupSpace
	}
	return &Cursor{
		input: []rune(text),
		space: isSpace,
	}
}

// MarkupSpace is true for blanks and tabs. Line breaks are content in markup.
func MarkupSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

// StyleSpace is MarkupSpace plus line breaks.
func StyleSpace(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return MarkupSpace(r)
}

// Pos returns the rune offset of the cursor.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEnd is true if all input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Peek returns the current rune without consuming it.
func (c *Cursor) Peek() rune {
	if c.AtEnd() {
		raise(errors.Wrapf(ErrOutOfBounds, "peek at offset %d", c.pos))
	}
	return c.input[c.pos]
}

// Advance returns the current rune and moves past it.
func (c *Cursor) Advance() rune {
	if c.AtEnd() {
		raise(errors.Wrapf(ErrOutOfBounds, "advance at offset %d", c.pos))
	}
	r := c.input[c.pos]
	c.pos++
	return r
}

// StartsWith checks if the remaining input begins with lit. Nothing is consumed.
func (c *Cursor) StartsWith(lit string) bool {
	i := c.pos
	for _, r := range lit {
		if i >= len(c.input) || c.input[i] != r {
			return false
		}
		i++
	}
	return true
}

// ConsumeWhile consumes runes as long as pred holds and returns them.
// The result may be empty.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.pos
	for !c.AtEnd() && pred(c.input[c.pos]) {
		c.pos++
	}
	return string(c.input[start:c.pos])
}

// ConsumeWhitespace skips whitespace as defined by the cursor's predicate.
func (c *Cursor) ConsumeWhitespace() {
	c.ConsumeWhile(c.space)
}

// Expect consumes the current rune, which has to be r.
func (c *Cursor) Expect(r rune) {
	if c.AtEnd() {
		c.Failf("expected %q, found end of input", r)
	}
	if found := c.input[c.pos]; found != r {
		c.Failf("expected %q, found %q", r, found)
	}
	c.pos++
}

// Failf aborts the parse with a *Violation at the current position.
func (c *Cursor) Failf(format string, args ...interface{}) {
	c.FailAt(c.pos, format, args...)
}

// FailAt aborts the parse with a *Violation at rune offset pos.
func (c *Cursor) FailAt(pos int, format string, args ...interface{}) {
	line, col := c.location(pos)
	raise(errors.WithStack(&Violation{
		Pos:  pos,
		Line: line,
		Col:  col,
		Msg:  fmt.Sprintf(format, args...),
	}))
}

func (c *Cursor) location(pos int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < pos && i < len(c.input); i++ {
		if c.input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}
