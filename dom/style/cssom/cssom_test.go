package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pohl/crow/dom/html"
	"github.com/pohl/crow/dom/style/css"
	"github.com/pohl/crow/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "crow.cssom")
	defer teardown()
	//
	sheet := Wrap(css.MustParse("p, #x { margin: 1px; color: #000000; margin: auto; }"))
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	require.Len(t, rules, 1)
	r := rules[0]
	assert.Equal(t, "#x, p", r.Selector())
	assert.Equal(t, []string{"margin", "color"}, r.Properties())
	assert.Equal(t, "auto", r.Value("margin").String())
	assert.True(t, r.Value("padding").IsEmpty())
	assert.False(t, r.IsImportant("margin"))
	assert.Equal(t, "#x, p { margin: auto; color: #000000; }", RuleText(r))
	assert.True(t, Wrap(nil).Empty())
}

func TestAppendRules(t *testing.T) {
	a := Wrap(css.MustParse("p { margin: auto; }"))
	b := Wrap(css.MustParse("div { width: 2px; } span { width: 1px; }"))
	a.AppendRules(b)
	require.Len(t, a.Rules(), 3)
	assert.Equal(t, "span", a.Rules()[2].Selector())
}

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "crow.cssom")
	defer teardown()
	//
	doc := html.MustParse(`<html><head><style>p { margin: auto; }</style></head>` +
		`<body><div><style>#a { width: 1px; } .b { width: 2px; }</style></div></body></html>`)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Len(t, sheets[0].Rules(), 1)
	assert.Len(t, sheets[1].Rules(), 2)
	assert.Equal(t, "#a", sheets[1].Rules()[0].Selector())

	none, err := ExtractStyleElements(html.MustParse("<p>no style</p>"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExtractMalformedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "crow.cssom")
	defer teardown()
	tracing.Select("crow.scan").SetTraceLevel(tracing.LevelError)
	//
	doc := html.MustParse("<div><style>p { width: 1em; }</style></div>")
	sheets, err := ExtractStyleElements(doc)
	require.Error(t, err)
	assert.Nil(t, sheets)
	assert.True(t, scan.IsViolation(err))
	assert.Contains(t, err.Error(), "<style> element #1")
}
