package html

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/pohl/crow/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderElement(t *testing.T) {
	n := dom.NewElement("p", dom.AttrMap{"title": `a "b"`, "class": "x y"}, []dom.Node{
		dom.NewText("Hello, "),
		dom.NewElement("em", nil, []dom.Node{dom.NewText("world")}),
	})
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, n))
	assert.Equal(t, `<p class="x y" title='a "b"'>Hello, <em>world</em></p>`, buf.String())
}

func TestRenderRoundTrip(t *testing.T) {
	trees := []dom.Node{
		dom.NewElement("div", dom.AttrMap{"id": "main", "class": "a b", "lang": "en"}, []dom.Node{
			dom.NewText("banana hammock"),
		}),
		dom.NewElement("q", dom.AttrMap{"cite": "it's"}, []dom.Node{dom.NewText("x")}),
		dom.NewElement("html", nil, []dom.Node{
			dom.NewElement("body", dom.AttrMap{"style": "color: red"}, []dom.Node{
				dom.NewText("line one\nline two"),
			}),
		}),
	}
	for _, tree := range trees {
		s, err := RenderString(tree)
		require.NoError(t, err)
		back, err := Parse(s)
		require.NoError(t, err, "re-parsing %q", s)
		assert.True(t, back.Equal(tree), "round trip of %q yielded %v", s, back)
	}
}

func TestRenderRoundTripFromSource(t *testing.T) {
	src := `<div class='note' id="n1">banana hammock</div>`
	first := MustParse(src)
	s, err := RenderString(first)
	require.NoError(t, err)
	second := MustParse(s)
	assert.True(t, first.Equal(second))
	e, _ := second.Element()
	assert.Equal(t, dom.AttrMap{"class": "note", "id": "n1"}, e.Attributes())
}

func TestRenderNotRepresentable(t *testing.T) {
	_, err := RenderString(dom.NewElement("p", nil, []dom.Node{dom.NewText("a < b")}))
	assert.True(t, errors.Is(err, ErrNotRepresentable))

	_, err = RenderString(dom.NewElement("p", dom.AttrMap{"x": `'"`}, nil))
	assert.True(t, errors.Is(err, ErrNotRepresentable))

	_, err = RenderString(dom.Node{})
	assert.True(t, errors.Is(err, ErrNotRepresentable))
}
