package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domquery/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeKind is the variant of a document node.
type NodeKind uint8

// Node kinds of a document tree.
const (
	DocumentNode NodeKind = iota + 1
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
)

func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "#document"
	case DoctypeNode:
		return "#doctype"
	case ElementNode:
		return "#element"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	}
	return "<unknown>"
}

// Node is the payload of a document tree node.
type Node struct {
	kind NodeKind
	html *html.Node // parse tree node this node has been created from
	elem *Element   // set for kind ElementNode
}

// Kind returns the variant of the node.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsElement is a predicate: is n an element node?
func (n *Node) IsElement() bool {
	return n.kind == ElementNode
}

// AsElement returns the element data of an element node.
func (n *Node) AsElement() (*Element, bool) {
	return n.elem, n.elem != nil
}

// Text returns the content of a text node.
func (n *Node) Text() (string, bool) {
	if n.kind != TextNode {
		return "", false
	}
	return n.html.Data, true
}

// Comment returns the content of a comment node.
func (n *Node) Comment() (string, bool) {
	if n.kind != CommentNode {
		return "", false
	}
	return n.html.Data, true
}

// HTMLNode returns the parse tree node this node has been created from.
// Clients must not modify it.
func (n *Node) HTMLNode() *html.Node {
	return n.html
}

func kindOf(h *html.Node) (NodeKind, bool) {
	switch h.Type {
	case html.DocumentNode:
		return DocumentNode, true
	case html.DoctypeNode:
		return DoctypeNode, true
	case html.ElementNode:
		return ElementNode, true
	case html.TextNode:
		return TextNode, true
	case html.CommentNode:
		return CommentNode, true
	}
	return 0, false
}

func newNode(h *html.Node) (*Node, bool) {
	kind, ok := kindOf(h)
	if !ok {
		return nil, false
	}
	n := &Node{kind: kind, html: h}
	if kind == ElementNode {
		n.elem = newElement(h)
	}
	return n, true
}

// --- Elements --------------------------------------------------------------

// Element holds the tag name and the attributes of an element node.
type Element struct {
	name      string
	namespace string
	atom      atom.Atom
	attrs     []Attribute // in source order, unique by qualified name
}

func newElement(h *html.Node) *Element {
	e := &Element{name: h.Data, namespace: h.Namespace, atom: h.DataAtom}
	if len(h.Attr) == 0 {
		return e
	}
	e.attrs = make([]Attribute, 0, len(h.Attr))
	for _, a := range h.Attr {
		attr := Attribute{namespace: a.Namespace, key: a.Key, value: a.Val}
		if _, dup := e.lookup(attr.Name()); dup {
			continue // first occurrence wins
		}
		e.attrs = append(e.attrs, attr)
	}
	return e
}

// Name returns the tag name of the element, e.g. "input".
func (e *Element) Name() string {
	return e.name
}

// Namespace returns the namespace of foreign elements (e.g. "svg"),
// and "" for HTML elements.
func (e *Element) Namespace() string {
	return e.namespace
}

// Atom returns the atom for known HTML tag names, or 0.
func (e *Element) Atom() atom.Atom {
	return e.atom
}

// Attr returns the value of an attribute. Names are matched exactly,
// namespaced attributes by their qualified name ("xlink:href").
func (e *Element) Attr(name string) (string, bool) {
	if a, ok := e.lookup(name); ok {
		return a.value, true
	}
	return "", false
}

// ID returns the value of the id attribute.
func (e *Element) ID() (string, bool) {
	return e.Attr("id")
}

// Attributes returns the attributes of the element in source order.
func (e *Element) Attributes() w3cdom.NamedNodeMap {
	return attributeMap(e.attrs)
}

func (e *Element) lookup(name string) (Attribute, bool) {
	for _, a := range e.attrs {
		if a.Name() == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Attribute is a single attribute of an element.
type Attribute struct {
	namespace, key, value string
}

// Namespace is part of interface w3cdom.Attr.
func (a Attribute) Namespace() string { return a.namespace }

// Key is part of interface w3cdom.Attr.
func (a Attribute) Key() string { return a.key }

// Value is part of interface w3cdom.Attr.
func (a Attribute) Value() string { return a.value }

// Name returns the qualified name of the attribute.
func (a Attribute) Name() string {
	if a.namespace == "" {
		return a.key
	}
	return a.namespace + ":" + a.key
}

type attributeMap []Attribute

func (m attributeMap) Length() int {
	return len(m)
}

func (m attributeMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

func (m attributeMap) GetNamedItem(name string) w3cdom.Attr {
	for _, a := range m {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

var _ w3cdom.Attr = Attribute{}
var _ w3cdom.NamedNodeMap = attributeMap{}
