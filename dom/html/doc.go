/*
Package html parses a small subset of HTML into a dom.Node tree.

Supported are opening and closing tags, attributes with single- or
double-quoted values, and text. Not supported are comments, doctypes,
processing instructions, self-closing tags, character entities, and markup
which is not well-formed. Input outside of the subset is an error: the parser
never recovers and never returns a partial tree.

A document with a single top-level node yields that node. Otherwise (no
node, or several siblings) the nodes are wrapped into a synthetic <html>
element.

	root, err := html.Parse(`<div class="note">banana hammock</div>`)

Whitespace between nodes is skipped as long as it consists of blanks and
tabs; line breaks are kept as text content.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'crow.html'.
func tracer() tracing.Trace {
	return tracing.Select("crow.html")
}
