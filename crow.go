/*
Package crow is the front end of a minimal layout engine. It reads a subset
of HTML into a document tree and a subset of CSS into a stylesheet.

	doc, err := crow.ParseDocument(`<div id="main"><p>Hello</p></div>`)
	sheet, err := crow.ParseStylesheet(`div#main { margin: auto; }`)

The work is done by the sub-packages:

	scan                  a cursor over runes, shared by both parsers
	dom                   the document tree
	dom/html              the markup parser and renderer
	dom/style/css         the stylesheet parser, values and specificity
	dom/style             property groups and value conversions
	dom/style/cssom       a common interface for stylesheet backends
	dom/domdbg            debugging output for trees and stylesheets

All parse errors are fatal: a parse either returns a complete result or an
error, never a partial tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package crow

import (
	"github.com/pohl/crow/dom"
	"github.com/pohl/crow/dom/html"
	"github.com/pohl/crow/dom/style/css"
	"github.com/pohl/crow/dom/style/cssom"
)

// ParseDocument parses markup into a document tree.
// See html.Parse.
func ParseDocument(text string) (dom.Node, error) {
	return html.Parse(text)
}

// ParseStylesheet parses stylesheet source text.
// See css.Parse.
func ParseStylesheet(text string) (*css.Stylesheet, error) {
	return css.Parse(text)
}

// DocumentStyles collects the stylesheets embedded in <style> elements of a
// document, merged into one stylesheet in document order.
func DocumentStyles(doc dom.Node) (*css.Stylesheet, error) {
	sheets, err := cssom.ExtractStyleElements(doc)
	if err != nil {
		return nil, err
	}
	merged := cssom.Wrap(nil)
	for _, s := range sheets {
		merged.AppendRules(s)
	}
	return merged.Stylesheet(), nil
}
