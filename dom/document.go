package dom

import (
	"io"
	"strings"

	"github.com/npillmayer/domquery/selector"
	"github.com/npillmayer/domquery/tree"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an immutable document tree, created from HTML input.
//
// All methods of Document are safe for concurrent use.
type Document struct {
	tree *tree.Tree[*Node]
	root *html.Node // parse tree root, of type html.DocumentNode
}

// Parse reads a complete HTML document from r.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	o := collectOptions(opts)
	root, err := html.ParseWithOptions(r, o.parserOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML document")
	}
	return newDocument(root)
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFragment reads an HTML fragment from r, in the context of an element
// set by WithFragmentContext. The nodes of the fragment become children of
// a synthetic <html> root element.
func ParseFragment(r io.Reader, opts ...Option) (*Document, error) {
	o := collectOptions(opts)
	nodes, err := html.ParseFragmentWithOptions(r, o.contextNode(), o.parserOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML fragment")
	}
	root := &html.Node{Type: html.DocumentNode}
	top := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	root.AppendChild(top)
	for _, n := range nodes {
		top.AppendChild(n)
	}
	tracer().Debugf("parsed fragment of %d top-level nodes in context <%s>", len(nodes), o.context)
	return newDocument(root)
}

// FromHTML creates a document from a parse tree of package
// golang.org/x/net/html. root has to be of type html.DocumentNode.
// Clients must not modify the parse tree afterwards.
func FromHTML(root *html.Node) (*Document, error) {
	if root == nil || root.Type != html.DocumentNode {
		return nil, errors.New("cannot create document: root is not a document node")
	}
	return newDocument(root)
}

func newDocument(root *html.Node) (*Document, error) {
	payload, _ := newNode(root)
	b := tree.NewBuilder(payload)
	type pending struct {
		h      *html.Node
		parent tree.NodeID
	}
	// children are pushed in reverse, keeping document order of the arena
	var stack []pending
	pushChildren := func(h *html.Node, parent tree.NodeID) {
		for c := h.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, pending{h: c, parent: parent})
		}
	}
	pushChildren(root, 0)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := newNode(top.h)
		if !ok {
			tracer().Debugf("skipping parse tree node of type %d", top.h.Type)
			continue
		}
		id, err := b.AddChild(top.parent, n)
		if err != nil {
			return nil, errors.Wrap(err, "building document tree")
		}
		pushChildren(top.h, id)
	}
	doc := &Document{tree: b.Tree(), root: root}
	tracer().Infof("created document with %d nodes", doc.Len())
	return doc, nil
}

// Len returns the number of nodes of the document.
func (doc *Document) Len() int {
	return doc.tree.Len()
}

// Tree returns the underlying document tree.
func (doc *Document) Tree() *tree.Tree[*Node] {
	return doc.tree
}

// Root returns the document node.
func (doc *Document) Root() NodeRef {
	return NodeRef{doc: doc, id: doc.tree.Root()}
}

// RootElement returns the document element, usually <html>.
func (doc *Document) RootElement() (ElementRef, bool) {
	it := doc.tree.Children(doc.tree.Root())
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if e, ok := Wrap(NodeRef{doc: doc, id: id}); ok {
			return e, true
		}
	}
	return ElementRef{}, false
}

// Select returns a Selection over all elements of the document matching
// sel. :scope denotes the document element.
func (doc *Document) Select(sel *selector.Selector) *Selection {
	return newSelection(doc, doc.tree.Root(), nil, sel)
}

// HTML serializes the complete document.
func (doc *Document) HTML() string {
	return serialize(doc.root, includeNode)
}

// Node returns a reference to the node with the given id.
func (doc *Document) Node(id tree.NodeID) (NodeRef, bool) {
	if !doc.tree.Valid(id) {
		return NodeRef{}, false
	}
	return NodeRef{doc: doc, id: id}, true
}

// --- Node references -------------------------------------------------------

// NodeRef is a reference to an arbitrary node of a document.
// NodeRefs are comparable and equal if they denote the same node.
type NodeRef struct {
	doc *Document
	id  tree.NodeID
}

// IsNil is a predicate: is r the zero NodeRef?
func (r NodeRef) IsNil() bool {
	return r.doc == nil
}

// Document returns the document r belongs to.
func (r NodeRef) Document() *Document {
	return r.doc
}

// ID returns the position of the node within its document tree.
func (r NodeRef) ID() tree.NodeID {
	return r.id
}

// Value returns the payload of the node.
func (r NodeRef) Value() *Node {
	return r.doc.tree.Payload(r.id)
}

// Parent returns the parent node of r, if any.
func (r NodeRef) Parent() (NodeRef, bool) {
	p, ok := r.doc.tree.Parent(r.id)
	if !ok {
		return NodeRef{}, false
	}
	return NodeRef{doc: r.doc, id: p}, true
}
