/*
Package dom holds the document tree produced by the markup parser.

Overview

A document is a tree of Nodes. Every node is either a text node or an
element; the variant is expressed by the sealed interface Kind, which has
exactly two implementations, Text and *ElementData. Clients dispatch with a
type switch

	switch k := n.Kind().(type) {
	case dom.Text:
		…
	case *dom.ElementData:
		…
	}

or with the matcher returned by Node.Match.

Nodes are values. Ownership is strictly top-down: a node owns its children,
there are no parent pointers, and no operation mutates a node after
construction. Accessors hand out copies of internal slices and maps.

Nodes are created by the markup parser in sub-package html. The constructors
of this package are exported for tests and for clients synthesizing documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom
