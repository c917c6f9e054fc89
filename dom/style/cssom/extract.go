package cssom

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pohl/crow/dom"
	"github.com/pohl/crow/dom/style/css"
)

// ExtractStyleElements visits a document tree and searches for embedded
// <style>s. It returns the content of style-elements as style sheets, in
// document order. The first stylesheet which fails to parse aborts the
// extraction.
func ExtractStyleElements(doc dom.Node) ([]*CSSStyles, error) {
	var sheets []*CSSStyles
	var err error
	dom.Walk(doc, func(n dom.Node, _ int) bool {
		if err != nil || n.Match().Tag("style") == nil {
			return err == nil
		}
		var text strings.Builder
		for _, ch := range n.Children() {
			if s, ok := ch.Text(); ok {
				text.WriteString(s)
			}
		}
		var sheet *css.Stylesheet
		if sheet, err = css.Parse(text.String()); err != nil {
			err = errors.Wrapf(err, "<style> element #%d", len(sheets)+1)
			return false
		}
		sheets = append(sheets, Wrap(sheet))
		return false
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("extracted %d stylesheet(s) from document", len(sheets))
	return sheets, nil
}
