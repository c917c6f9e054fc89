package cssom

import "github.com/pohl/crow/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (see Wrap and package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// RuleText renders a rule of any implementation as CSS source text.
// Adapters use it to import rules from foreign stylesheets.
func RuleText(r Rule) string {
	s := r.Selector() + " {"
	for _, key := range r.Properties() {
		s += " " + key + ": " + r.Value(key).String()
		if r.IsImportant(key) {
			s += " !important"
		}
		s += ";"
	}
	return s + " }"
}
