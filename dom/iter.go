package dom

import (
	"github.com/npillmayer/domquery/selector"
	"github.com/npillmayer/domquery/tree"
	"golang.org/x/net/html"
)

// Selection is a cursor over the elements of a subtree which match a
// selector. It is created by ElementRef.Select or Document.Select.
//
// A Selection is forward-only and not safe for concurrent use. Use Clone
// to branch off an independent cursor.
type Selection struct {
	doc   *Document
	scope *html.Node // :scope anchor; nil denotes the document element
	sel   *selector.Selector
	walk  *tree.Traversal[*Node]
	cache *selector.MatchCache
}

func newSelection(doc *Document, id tree.NodeID, scope *html.Node, sel *selector.Selector) *Selection {
	walk := doc.tree.Traverse(id)
	walk.Next() // never yield the scope itself
	return &Selection{
		doc:   doc,
		scope: scope,
		sel:   sel,
		walk:  walk,
		cache: &selector.MatchCache{},
	}
}

// Next returns the next matching element in document order. If the
// selector is nil, every element matches.
func (s *Selection) Next() (ElementRef, bool) {
	for edge, ok := s.walk.Next(); ok; edge, ok = s.walk.Next() {
		if edge.Kind != tree.Open {
			continue
		}
		n := s.doc.tree.Payload(edge.Node)
		if !n.IsElement() {
			continue
		}
		if s.sel == nil || s.sel.Matches(n.html, s.scope, s.cache) {
			return ElementRef{doc: s.doc, id: edge.Node}, true
		}
	}
	return ElementRef{}, false
}

// Clone returns a cursor continuing from the current position of s. The
// clone starts with an empty match cache.
func (s *Selection) Clone() *Selection {
	return &Selection{
		doc:   s.doc,
		scope: s.scope,
		sel:   s.sel,
		walk:  s.walk.Clone(),
		cache: &selector.MatchCache{},
	}
}

// Collect drains the selection.
func (s *Selection) Collect() []ElementRef {
	var elems []ElementRef
	for e, ok := s.Next(); ok; e, ok = s.Next() {
		elems = append(elems, e)
	}
	return elems
}

// --- Text ------------------------------------------------------------------

// TextIter is a cursor over the contents of the text nodes of a subtree,
// in document order.
type TextIter struct {
	doc  *Document
	walk *tree.Traversal[*Node]
}

func newTextIter(doc *Document, id tree.NodeID) *TextIter {
	return &TextIter{doc: doc, walk: doc.tree.Traverse(id)}
}

// Next returns the content of the next text node.
func (it *TextIter) Next() (string, bool) {
	for edge, ok := it.walk.Next(); ok; edge, ok = it.walk.Next() {
		if edge.Kind != tree.Open {
			continue
		}
		if s, ok := it.doc.tree.Payload(edge.Node).Text(); ok {
			return s, true
		}
	}
	return "", false
}

// Clone returns a cursor continuing from the current position of it.
func (it *TextIter) Clone() *TextIter {
	return &TextIter{doc: it.doc, walk: it.walk.Clone()}
}

// --- Elements --------------------------------------------------------------

// Elements is a sequence of element references.
type Elements struct {
	doc   *Document
	inner *tree.Filtered[*Node]
}

func newElements(doc *Document, it tree.Iterator) *Elements {
	return &Elements{doc: doc, inner: tree.Filter(doc.tree, it, NodeIsElement)}
}

// Next returns the next element.
func (es *Elements) Next() (ElementRef, bool) {
	id, ok := es.inner.Next()
	if !ok {
		return ElementRef{}, false
	}
	return ElementRef{doc: es.doc, id: id}, true
}

// Collect drains the sequence.
func (es *Elements) Collect() []ElementRef {
	var elems []ElementRef
	for e, ok := es.Next(); ok; e, ok = es.Next() {
		elems = append(elems, e)
	}
	return elems
}
