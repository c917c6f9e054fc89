package dom

import (
	"fmt"
	"strings"

	"github.com/pohl/crow/maybe"
)

// AttrMap maps attribute names to values. Keys are unique; order is irrelevant.
type AttrMap map[string]string

// Kind is the variant part of a Node. It is implemented by Text and
// *ElementData only.
type Kind interface {
	isKind()
}

// Text is the content of a text node.
type Text string

func (Text) isKind() {}

// ElementData holds tag name and attributes of an element node.
type ElementData struct {
	tagName    string
	attributes AttrMap
}

func (*ElementData) isKind() {}

// Node is a node of a document tree.
type Node struct {
	children []Node
	kind     Kind
}

// NewText creates a text node. Text nodes never have children.
func NewText(data string) Node {
	return Node{kind: Text(data)}
}

// NewElement creates an element node. attrs and children are copied, so the
// caller may reuse them. The tag name must not be empty.
func NewElement(tagName string, attrs AttrMap, children []Node) Node {
	assertThat(tagName != "", "element must have a tag name")
	data := &ElementData{tagName: tagName, attributes: copyAttrs(attrs)}
	return Node{
		children: append([]Node(nil), children...),
		kind:     data,
	}
}

// Kind returns the variant of n. It is nil for the zero Node only.
func (n Node) Kind() Kind {
	return n.kind
}

// Children returns a copy of the child list.
func (n Node) Children() []Node {
	return append([]Node(nil), n.children...)
}

// ChildCount is len(n.Children()) without copying.
func (n Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child.
func (n Node) Child(i int) Node {
	return n.children[i]
}

// IsText is true for text nodes.
func (n Node) IsText() bool {
	_, ok := n.kind.(Text)
	return ok
}

// IsElement is true for element nodes.
func (n Node) IsElement() bool {
	_, ok := n.kind.(*ElementData)
	return ok
}

// Text returns the content of a text node.
func (n Node) Text() (string, bool) {
	t, ok := n.kind.(Text)
	return string(t), ok
}

// Element returns the element data of an element node.
func (n Node) Element() (*ElementData, bool) {
	e, ok := n.kind.(*ElementData)
	return e, ok
}

// Equal compares two trees structurally.
func (n Node) Equal(other Node) bool {
	switch k := n.kind.(type) {
	case Text:
		t, ok := other.kind.(Text)
		if !ok || t != k {
			return false
		}
	case *ElementData:
		e, ok := other.kind.(*ElementData)
		if !ok || !k.Equal(e) {
			return false
		}
	case nil:
		if other.kind != nil {
			return false
		}
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	switch k := n.kind.(type) {
	case Text:
		return fmt.Sprintf("%q", string(k))
	case *ElementData:
		return k.String()
	}
	return "<nil>"
}

// Walk visits n and its descendants depth-first, pre-order. If f returns
// false, the children of the current node are skipped.
func Walk(n Node, f func(n Node, depth int) bool) {
	walk(n, 0, f)
}

func walk(n Node, depth int, f func(Node, int) bool) {
	if !f(n, depth) {
		return
	}
	for _, ch := range n.children {
		walk(ch, depth+1, f)
	}
}

// --- Element data ----------------------------------------------------------

// TagName returns the element's name.
func (e *ElementData) TagName() string {
	return e.tagName
}

// Attributes returns a copy of the attribute map.
func (e *ElementData) Attributes() AttrMap {
	return copyAttrs(e.attributes)
}

// Attr returns the value of attribute key.
func (e *ElementData) Attr(key string) (string, bool) {
	v, ok := e.attributes[key]
	return v, ok
}

// ID returns the value of the id attribute, if present.
func (e *ElementData) ID() maybe.Maybe[string] {
	if v, ok := e.attributes["id"]; ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[string]()
}

// Classes splits the class attribute at single blanks. Consecutive blanks
// produce empty class names. Without a class attribute the result is empty.
func (e *ElementData) Classes() []string {
	v, ok := e.attributes["class"]
	if !ok {
		return []string{}
	}
	return strings.Split(v, " ")
}

// Equal compares tag names and attribute maps.
func (e *ElementData) Equal(other *ElementData) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.tagName != other.tagName || len(e.attributes) != len(other.attributes) {
		return false
	}
	for k, v := range e.attributes {
		if w, ok := other.attributes[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func (e *ElementData) String() string {
	return fmt.Sprintf("<%s %v>", e.tagName, map[string]string(e.attributes))
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-style matching on the kind of a node:
//
//	var text string
//	var elem *dom.ElementData
//	switch m := n.Match(); m {
//	case m.Text(&text):
//	case m.Element(&elem):
//	}
type Matcher struct {
	n Node
}

// Match starts pattern matching on n.
func (n Node) Match() *Matcher {
	return &Matcher{n: n}
}

// Text matches a text node and stores its content in s (if non-nil).
func (m *Matcher) Text(s *string) *Matcher {
	if t, ok := m.n.kind.(Text); ok {
		if s != nil {
			*s = string(t)
		}
		return m
	}
	return nil
}

// Element matches an element node and stores its data in e (if non-nil).
func (m *Matcher) Element(e **ElementData) *Matcher {
	if data, ok := m.n.kind.(*ElementData); ok {
		if e != nil {
			*e = data
		}
		return m
	}
	return nil
}

// Tag matches an element node with the given tag name.
func (m *Matcher) Tag(name string) *Matcher {
	if data, ok := m.n.kind.(*ElementData); ok && data.tagName == name {
		return m
	}
	return nil
}

// ---------------------------------------------------------------------------

func copyAttrs(attrs AttrMap) AttrMap {
	c := make(AttrMap, len(attrs))
	for k, v := range attrs {
		c[k] = v
	}
	return c
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dom: "+msg, msgargs...)
		panic(msg)
	}
}
