/*
Package scan provides the text cursor shared by the markup and the
stylesheet parser.

A Cursor is a position into an immutable sequence of runes. Both grammars are
LL(1) (sometimes peeking at a two-rune literal), so the cursor offers no way
to step back. The grammars differ in what they treat as whitespace: markup
skips blanks and tabs only, while stylesheets also skip line breaks. Clients
select the behaviour with the predicate given to New.

Errors

Parsers fail fast. A cursor operation which cannot proceed aborts by
panicking with an Abort value; every public parse function defers Recover,
which turns the abort into an ordinary error result:

	func Parse(text string) (result T, err error) {
		defer scan.Recover(&err)
		c := scan.New(text, scan.StyleSpace)
		…
	}

Two kinds of errors exist: a *Violation reports input which does not follow
the grammar, ErrOutOfBounds reports a read at end of input and thus a bug in
the calling grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'crow.scan'.
func tracer() tracing.Trace {
	return tracing.Select("crow.scan")
}
