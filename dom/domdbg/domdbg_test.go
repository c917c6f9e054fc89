package domdbg

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pohl/crow/dom/html"
	"github.com/pohl/crow/dom/style"
	"github.com/pohl/crow/dom/style/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<html><body><div id="main" class="b a" style="margin: auto; color: #ff0000;">` +
	`<p>Hello World, how are you?</p></div><p style="nonsense">x</p></body></html>`

func TestSprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "crow.dom")
	defer teardown()
	//
	s := Sprint(html.MustParse(doc))
	t.Logf("tree =\n%s", s)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	assert.Len(t, lines, 8, "root line plus one line per node")
	assert.Contains(t, s, `"Hello World, how are you?"`)
	assert.Contains(t, s, "<body map[]>")
}

func TestSprintStylesheet(t *testing.T) {
	sheet := css.MustParse("p, #x { margin: auto; }")
	s := SprintStylesheet(sheet)
	t.Logf("stylesheet =\n%s", s)
	assert.Contains(t, s, "rule #1")
	assert.Contains(t, s, "#x [1 0 0]")
	assert.Contains(t, s, "margin: auto;")
	assert.Less(t, strings.Index(s, "#x"), strings.Index(s, "p [0 0 1]"))
	assert.NotEmpty(t, SprintStylesheet(nil))
}

func TestInlineStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "crow.dom")
	defer teardown()
	//
	root := html.MustParse(doc)
	div := root.Child(0).Child(0)
	pmap := InlineStyles(div)
	require.NotNil(t, pmap)
	assert.Equal(t, []string{style.PGColor, style.PGMargins}, pmap.GroupNames())
	margin, ok := pmap.Property("margin")
	assert.True(t, ok)
	assert.Equal(t, "auto", margin.String())

	bad := root.Child(0).Child(1)
	assert.Nil(t, InlineStyles(bad), "malformed inline style is ignored")
	assert.Nil(t, InlineStyles(div.Child(0).Child(0)), "text nodes have no style")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "crow.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	err := ToGraphViz(html.MustParse(doc), &buf)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="div#main.a.b"`)
	assert.Contains(t, out, "node00001 -> node00002")
	assert.Contains(t, out, `<font color="white">Margins</font>`)
	assert.Equal(t, 6, strings.Count(out, "[weight=1]"), "one edge per parent-child pair")
}

func TestDotty(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz is not installed")
	}
	teardown := gotestingadapter.QuickConfig(t, "crow.dom")
	defer teardown()
	//
	Dotty(html.MustParse("<div><p>hi</p></div>"), t)
}
