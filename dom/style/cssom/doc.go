/*
Package cssom provides an object model for stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Consumers of
stylesheets (a styling engine, a debug printer) should not depend on a
concrete parser. CSS handling is therefore de-coupled by introducing the
interfaces StyleSheet and Rule. This package implements them for stylesheets
of package css (see Wrap); sub-package douceuradapter implements them on top
of a complete CSS3 parser.

Stylesheets are often embedded into documents. ExtractStyleElements finds
<style> elements in a document tree and parses their content.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'crow.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("crow.cssom")
}
