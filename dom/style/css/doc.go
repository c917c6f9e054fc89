/*
Package css parses a small subset of CSS into a Stylesheet.

A stylesheet is a sequence of rules. Each rule consists of a comma-separated
list of simple selectors and a block of declarations:

	h1, h2.title, #main { margin: auto; width: 600px; color: #4f5358; }

A simple selector combines an optional tag name, an optional id and any
number of classes; '*' is accepted and contributes nothing. Selectors of a
rule are ordered by specificity, most specific first, so that a matcher may
stop at the first selector that applies. Values are keywords, lengths in
pixels, or RGB colors in six-digit hex notation.

Not supported are comments, combinators, at-rules, and units other than px.
Input outside of the subset is an error: the parser never recovers and never
returns a partial stylesheet.

Status

The grammar is deliberately tiny. Clients in need of full CSS3 should turn to
package cssom/douceuradapter, which offers the cssom interfaces on top of a
complete parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'crow.css'.
func tracer() tracing.Trace {
	return tracing.Select("crow.css")
}
