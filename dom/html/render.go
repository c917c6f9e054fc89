package html

import (
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pohl/crow/dom"
)

// ErrNotRepresentable is returned by Render for trees which cannot be written
// in the markup subset understood by Parse.
var ErrNotRepresentable = errors.New("tree not representable as markup")

// Render writes the markup for n to w. Attributes are written in
// alphabetical order, quoted with " unless the value contains a ", in which
// case ' is used. Text is written verbatim, as the subset has no entities.
//
// Parsing the output yields a tree equal to n, provided that text nodes are
// non-empty, do not start with a blank or tab, and no two text nodes are
// siblings of each other.
func Render(w io.Writer, n dom.Node) error {
	r := renderer{w: w}
	r.node(n)
	return r.err
}

// RenderString is Render to a string.
func RenderString(n dom.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	w   io.Writer
	err error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) fail(format string, args ...interface{}) {
	if r.err == nil {
		r.err = errors.Wrapf(ErrNotRepresentable, format, args...)
	}
}

func (r *renderer) node(n dom.Node) {
	switch k := n.Kind().(type) {
	case dom.Text:
		if strings.ContainsRune(string(k), '<') {
			r.fail("text %q contains '<'", string(k))
			return
		}
		r.write(string(k))
	case *dom.ElementData:
		r.write("<" + k.TagName())
		attrs := k.Attributes()
		keys := make([]string, 0, len(attrs))
		for name := range attrs {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		for _, name := range keys {
			r.attribute(name, attrs[name])
		}
		r.write(">")
		for _, ch := range n.Children() {
			r.node(ch)
		}
		r.write("</" + k.TagName() + ">")
	default:
		r.fail("node without kind")
	}
}

func (r *renderer) attribute(name, value string) {
	quote := `"`
	if strings.Contains(value, `"`) {
		if strings.Contains(value, `'`) {
			r.fail("value of attribute %s contains both quote characters", name)
			return
		}
		quote = `'`
	}
	r.write(" " + name + "=" + quote + value + quote)
}
