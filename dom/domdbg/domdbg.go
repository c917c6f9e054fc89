/*
Package domdbg implements helpers to debug a document tree and stylesheets.

Sprint and SprintStylesheet create indented console renderings, ToGraphViz
writes a diagram in GraphViz (DOT) format. Inline styles (attribute "style")
are drawn as property groups next to their element.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/pohl/crow/dom"
	"github.com/pohl/crow/dom/style"
	"github.com/pohl/crow/dom/style/css"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'crow.dom'.
func tracer() tracing.Trace {
	return tracing.Select("crow.dom")
}

// --- Console output --------------------------------------------------------

// Sprint renders a document tree as an indented tree, one node per line.
func Sprint(doc dom.Node) string {
	p := tp.New()
	ppt(p, doc)
	return p.String()
}

func ppt(p tp.Tree, n dom.Node) {
	if n.ChildCount() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}

func label(n dom.Node) string {
	var text string
	var e *dom.ElementData
	switch m := n.Match(); m {
	case m.Text(&text):
		return fmt.Sprintf("%q", text)
	case m.Element(&e):
		return e.String()
	}
	return "<nil>"
}

// SprintStylesheet renders a stylesheet as a tree of rules, with selectors
// and declarations as children of each rule.
func SprintStylesheet(sheet *css.Stylesheet) string {
	p := tp.New()
	if sheet == nil {
		return p.String()
	}
	for i, r := range sheet.Rules {
		rule := p.AddBranch(fmt.Sprintf("rule #%d", i+1))
		sels := rule.AddBranch("selectors")
		for _, s := range r.Selectors {
			sels.AddNode(fmt.Sprintf("%s %v", s, s.Specificity()))
		}
		decls := rule.AddBranch("declarations")
		for _, d := range r.Declarations {
			decls.AddNode(d.String())
		}
	}
	return p.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the document and a Writer.
//
// Elements carrying a "style" attribute get their inline declarations
// attached, one box per property group. Inline styles which fail to parse
// are traced and left out.
func ToGraphViz(doc dom.Node, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrap(e, "graphviz")
				return
			}
			panic(r)
		}
	}()
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring":  shortText,
			"elementlabel": elementLabel,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	tmpl := template.Must(template.New("dom").Parse(graphHeadTmpl))
	check(tmpl.Execute(w, gparams))
	counter := 0
	nodes(doc, w, &counter, &gparams)
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a document node and a testing.T, it will
// create a Graphiviz image of the tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(doc, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    dom.Node
	Name string
}

func nodes(n dom.Node, w io.Writer, counter *int, gparams *graphParamsType) string {
	*counter++
	name := fmt.Sprintf("node%05d", *counter)
	check(gparams.NodeTmpl.Execute(w, &node{n, name}))
	domStyles(n, name, w, gparams)
	for _, ch := range n.Children() {
		chname := nodes(ch, w, counter, gparams)
		check(gparams.EdgeTmpl.Execute(w, edge{name, chname}))
	}
	return name
}

func domStyles(n dom.Node, name string, w io.Writer, gparams *graphParamsType) {
	pmap := InlineStyles(n)
	if pmap == nil {
		return
	}
	var prev *style.PropertyGroup
	for _, s := range pmap.GroupNames() {
		pg := pmap.Group(s)
		check(gparams.StylegroupTmpl.Execute(w, pg))
		if prev == nil {
			check(gparams.PgedgeTmpl.Execute(w, pgedge{name, pg}))
		} else {
			check(gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg}))
		}
		prev = pg
	}
}

// InlineStyles parses the "style" attribute of an element node into a
// property map. It returns nil for text nodes, for elements without inline
// styles and for malformed declarations.
func InlineStyles(n dom.Node) *style.PropertyMap {
	e, ok := n.Element()
	if !ok {
		return nil
	}
	decls, ok := e.Attr("style")
	if !ok || strings.TrimSpace(decls) == "" {
		return nil
	}
	sheet, err := css.Parse("* { " + decls + " }")
	if err != nil {
		tracer().Infof("ignoring inline style of <%s>: %v", e.TagName(), err)
		return nil
	}
	return style.PropertiesOf(sheet.Rules[0])
}

type edge struct {
	N1, N2 string
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func shortText(n dom.Node) string {
	t, _ := n.Text()
	s := "\"\\\""
	if r := []rune(t); len(r) > 10 {
		s += string(r[:10]) + "...\\\"\""
	} else {
		s += t + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func elementLabel(n dom.Node) string {
	e, ok := n.Element()
	if !ok {
		return `""`
	}
	s := e.TagName()
	if id, ok := e.ID().Get(); ok {
		s += "#" + id
	}
	classes := e.Classes()
	sort.Strings(classes)
	for _, c := range classes {
		if c != "" {
			s += "." + c
		}
	}
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ elementlabel .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
