package css

import (
	"fmt"
	"strings"

	"github.com/pohl/crow/maybe"
)

// Stylesheet is a list of rules in source order.
type Stylesheet struct {
	Rules []Rule
}

// Rule is a selector list with a declaration block. Selectors are ordered by
// descending specificity, declarations are in source order.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// NewRule creates a rule, ordering selectors by specificity.
func NewRule(selectors []Selector, declarations []Declaration) Rule {
	sorted := append([]Selector(nil), selectors...)
	SortBySpecificity(sorted)
	return Rule{
		Selectors:    sorted,
		Declarations: append([]Declaration(nil), declarations...),
	}
}

// Declaration is a `name: value` pair.
type Declaration struct {
	Name  string
	Value Value
}

// Selector is the variant type of selectors. SimpleSelector is its only
// implementation; combinators would add more.
type Selector interface {
	Specificity() Specificity
	String() string
	isSelector()
}

// SimpleSelector matches on tag name, id, and classes, e.g. `div#main.note`.
type SimpleSelector struct {
	TagName maybe.Maybe[string]
	ID      maybe.Maybe[string]
	Classes []string
}

func (SimpleSelector) isSelector() {}

// Specificity is (has id, number of classes, has tag name).
func (s SimpleSelector) Specificity() Specificity {
	var sp Specificity
	if !s.ID.IsNothing() {
		sp[0] = 1
	}
	sp[1] = len(s.Classes)
	if !s.TagName.IsNothing() {
		sp[2] = 1
	}
	return sp
}

// Equal compares tag name, id, and the class list including its order.
func (s SimpleSelector) Equal(other SimpleSelector) bool {
	if !maybe.Equal(s.TagName, other.TagName) || !maybe.Equal(s.ID, other.ID) {
		return false
	}
	if len(s.Classes) != len(other.Classes) {
		return false
	}
	for i := range s.Classes {
		if s.Classes[i] != other.Classes[i] {
			return false
		}
	}
	return true
}

// String returns the selector in CSS notation; "*" for an empty selector.
func (s SimpleSelector) String() string {
	var b strings.Builder
	if t, ok := s.TagName.Get(); ok {
		b.WriteString(t)
	}
	if id, ok := s.ID.Get(); ok {
		b.WriteString("#" + id)
	}
	for _, c := range s.Classes {
		b.WriteString("." + c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s: %s;", d.Name, d.Value)
}

func (r Rule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	decls := make([]string, len(r.Declarations))
	for i, d := range r.Declarations {
		decls[i] = d.String()
	}
	return strings.Join(sels, ", ") + " { " + strings.Join(decls, " ") + " }"
}

func (sheet *Stylesheet) String() string {
	rules := make([]string, len(sheet.Rules))
	for i, r := range sheet.Rules {
		rules[i] = r.String()
	}
	return strings.Join(rules, "\n")
}
