package cssom

import (
	"strings"

	"github.com/pohl/crow/dom/style"
	"github.com/pohl/crow/dom/style/css"
)

// CSSStyles is an adapter for interface StyleSheet, wrapping a stylesheet
// of package css.
type CSSStyles struct {
	sheet *css.Stylesheet
}

// Wrap a css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	if sheet == nil {
		sheet = &css.Stylesheet{}
	}
	return &CSSStyles{sheet: sheet}
}

// Stylesheet returns the wrapped stylesheet.
func (sheet *CSSStyles) Stylesheet() *css.Stylesheet {
	return sheet.sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.sheet.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of foreign
// implementations are converted by re-parsing their text; rules outside of
// the css subset are dropped.
//
// Interface StyleSheet
func (sheet *CSSStyles) AppendRules(other StyleSheet) {
	if o, ok := other.(*CSSStyles); ok {
		sheet.sheet.Rules = append(sheet.sheet.Rules, o.sheet.Rules...)
		return
	}
	for _, r := range other.Rules() {
		text := RuleText(r)
		imported, err := css.Parse(text)
		if err != nil {
			tracer().Errorf("dropping rule %q: %v", text, err)
			continue
		}
		sheet.sheet.Rules = append(sheet.sheet.Rules, imported.Rules...)
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface StyleSheet
func (sheet *CSSStyles) Rules() []Rule {
	rules := make([]Rule, len(sheet.sheet.Rules))
	for i := range sheet.sheet.Rules {
		rules[i] = CSSRule(sheet.sheet.Rules[i])
	}
	return rules
}

var _ StyleSheet = &CSSStyles{}

// CSSRule is an adapter for interface Rule.
type CSSRule css.Rule

// Selector returns the selectors of the rule, most specific first.
func (r CSSRule) Selector() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	return strings.Join(sels, ", ")
}

// Properties returns the property keys of a rule in order of first
// appearance, e.g. "margin-top"
func (r CSSRule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	seen := make(map[string]bool, len(r.Declarations))
	for _, d := range r.Declarations {
		if !seen[d.Name] {
			seen[d.Name] = true
			props = append(props, d.Name)
		}
	}
	return props
}

// Value returns the property value for a given key, e.g. "15px". If a
// property is declared more than once, the last declaration wins.
func (r CSSRule) Value(key string) style.Property {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if d := r.Declarations[i]; d.Name == key {
			return style.PropertyOf(d.Value)
		}
	}
	return style.NullStyle
}

// IsImportant is always false, as the css subset has no "!important".
func (r CSSRule) IsImportant(key string) bool {
	return false
}

var _ Rule = CSSRule{}
