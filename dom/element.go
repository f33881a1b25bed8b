package dom

import (
	"strings"

	"github.com/npillmayer/domquery/dom/w3cdom"
	"github.com/npillmayer/domquery/selector"
	"github.com/npillmayer/domquery/tree"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ElementRef is a reference to an element node of a document. ElementRefs
// are small values, intended to be copied. Two ElementRefs are equal if and
// only if they denote the same node, regardless of content.
//
// The zero ElementRef does not denote any element; clients should only use
// ElementRefs created by this package.
type ElementRef struct {
	doc *Document
	id  tree.NodeID
}

// Wrap creates an ElementRef for n, if n is an element node.
func Wrap(n NodeRef) (ElementRef, bool) {
	if n.doc == nil || !n.doc.tree.Valid(n.id) {
		return ElementRef{}, false
	}
	if !n.Value().IsElement() {
		return ElementRef{}, false
	}
	return ElementRef{doc: n.doc, id: n.id}, true
}

func (e ElementRef) payload() *Node {
	return e.doc.tree.Payload(e.id)
}

// IsNil is a predicate: is e the zero ElementRef?
func (e ElementRef) IsNil() bool {
	return e.doc == nil
}

// Node returns e as a general node reference.
func (e ElementRef) Node() NodeRef {
	return NodeRef{doc: e.doc, id: e.id}
}

// Document returns the document e belongs to.
func (e ElementRef) Document() *Document {
	return e.doc
}

// Value returns the tag name and attributes of the element.
func (e ElementRef) Value() *Element {
	return e.payload().elem
}

// Name returns the tag name of the element.
func (e ElementRef) Name() string {
	return e.Value().Name()
}

// Attr returns the value of an attribute, matching name exactly.
func (e ElementRef) Attr(name string) (string, bool) {
	return e.Value().Attr(name)
}

// HTML serializes the element, including its own tags.
func (e ElementRef) HTML() string {
	return serialize(e.payload().html, includeNode)
}

// InnerHTML serializes the content of the element.
func (e ElementRef) InnerHTML() string {
	return serialize(e.payload().html, childrenOnly)
}

// Parent returns the parent element of e. For the document element it
// returns false.
func (e ElementRef) Parent() (ElementRef, bool) {
	p, ok := e.doc.tree.Parent(e.id)
	if !ok {
		return ElementRef{}, false
	}
	return Wrap(NodeRef{doc: e.doc, id: p})
}

// ChildElements returns the child elements of e, in document order.
// Text and comment nodes are skipped.
func (e ElementRef) ChildElements() *Elements {
	return newElements(e.doc, e.doc.tree.Children(e.id))
}

// DescendentElements returns the elements of the subtree rooted at e, in
// pre-order. The sequence starts with e itself.
func (e ElementRef) DescendentElements() *Elements {
	return newElements(e.doc, e.doc.tree.Descendants(e.id))
}

// IsChildOf is a predicate: is other an ancestor of e? Elements of
// different documents are never related.
func (e ElementRef) IsChildOf(other ElementRef) bool {
	if e.doc == nil || e.doc != other.doc {
		return false
	}
	return e.doc.tree.IsAncestor(other.id, e.id)
}

// Select returns a Selection over the descendants of e matching sel,
// with e as the :scope anchor. e itself is never part of the selection.
func (e ElementRef) Select(sel *selector.Selector) *Selection {
	return newSelection(e.doc, e.id, e.payload().html, sel)
}

// Text returns an iterator over the text nodes of e's subtree.
func (e ElementRef) Text() *TextIter {
	return newTextIter(e.doc, e.id)
}

// String returns a short description of e, e.g. `<input#name>`.
func (e ElementRef) String() string {
	if e.doc == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Name())
	if id, ok := e.Value().ID(); ok {
		b.WriteByte('#')
		b.WriteString(id)
	}
	b.WriteByte('>')
	return b.String()
}

// --- W3C interface ---------------------------------------------------------

var _ w3cdom.Node = ElementRef{}

// NodeType is part of interface w3cdom.Node.
func (e ElementRef) NodeType() html.NodeType {
	return html.ElementNode
}

// NodeName is part of interface w3cdom.Node.
func (e ElementRef) NodeName() string {
	return e.Name()
}

// NodeValue is part of interface w3cdom.Node. It is always empty for elements.
func (e ElementRef) NodeValue() string {
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (e ElementRef) HasAttributes() bool {
	return len(e.Value().attrs) > 0
}

// HasChildNodes is part of interface w3cdom.Node.
func (e ElementRef) HasChildNodes() bool {
	return e.doc.tree.HasChildren(e.id)
}

// Attributes is part of interface w3cdom.Node.
func (e ElementRef) Attributes() w3cdom.NamedNodeMap {
	return e.Value().Attributes()
}

// TextContent is part of interface w3cdom.Node.
func (e ElementRef) TextContent() (string, error) {
	if e.doc == nil {
		return "", errors.New("text content of nil element")
	}
	var b strings.Builder
	it := e.Text()
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		b.WriteString(s)
	}
	return b.String(), nil
}
