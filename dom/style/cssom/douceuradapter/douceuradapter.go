/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
backed by the full CSS parser of github.com/aymerick/douceur.

Douceur accepts CSS which the parser of package css rejects, e.g. at-rules,
comments, combinators or "!important". Stylesheets from both backends may be
merged through interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/pohl/crow/dom/style"
	"github.com/pohl/crow/dom/style/cssom"
)

// tracer traces with key 'crow.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("crow.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS source text with douceur and wraps the result.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "douceur")
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	if css == nil {
		return &CSSStyles{}
	}
	return &CSSStyles{*css}
}

// Stylesheet returns the wrapped douceur stylesheet.
func (sheet *CSSStyles) Stylesheet() *css.Stylesheet {
	return &sheet.css
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of foreign
// implementations are converted to douceur rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.css.Rules = append(sheet.css.Rules, convert(r))
	}
}

func convert(r cssom.Rule) *css.Rule {
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = r.Selector()
	for _, sel := range strings.Split(rule.Prelude, ",") {
		rule.Selectors = append(rule.Selectors, strings.TrimSpace(sel))
	}
	for _, key := range r.Properties() {
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property:  key,
			Value:     r.Value(key).String(),
			Important: r.IsImportant(key),
		})
	}
	return rule
}

// Rules returns all the qualified rules of a stylesheet. At-rules
// (@media etc.) are not visible through interface cssom.Rule.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the selectors of the rule, separated by ", ".
func (r Rule) Selector() string {
	if len(r.Selectors) == 0 {
		return r.Prelude
	}
	return strings.Join(r.Selectors, ", ")
}

// Properties returns the property keys of a rule in order of first
// appearance, e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if !seen[d.Property] {
			seen[d.Property] = true
			props = append(props, d.Property)
		}
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// The last declaration of key wins.
func (r Rule) Value(key string) style.Property {
	if d := r.last(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.last(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) last(key string) *css.Declaration {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == key {
			return r.Declarations[i]
		}
	}
	return nil
}

var _ cssom.Rule = Rule{}
