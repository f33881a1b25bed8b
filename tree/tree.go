package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// EdgeKind tells if a traversal enters or leaves a node.
type EdgeKind uint8

// A traversal reports an Open edge when entering a node and a Close edge
// when leaving it.
const (
	Open EdgeKind = iota + 1
	Close
)

func (k EdgeKind) String() string {
	switch k {
	case Open:
		return "Open"
	case Close:
		return "Close"
	}
	return "<no edge>"
}

// Edge is the unit a Traversal produces.
type Edge struct {
	Kind EdgeKind
	Node NodeID
}

// Traversal is a depth-first walk over a (sub-)tree, reporting an Open
// and a Close edge for every node. It is a cursor: every call to Next
// performs a constant amount of work.
type Traversal[T any] struct {
	t    *Tree[T]
	root NodeID
	next Edge // upcoming edge; Kind==0 marks exhaustion
}

// Traverse starts a depth-first walk of the subtree rooted at id.
// The first edge will be Open(id), the last one Close(id).
func (t *Tree[T]) Traverse(id NodeID) *Traversal[T] {
	t.at(id) // check validity
	return &Traversal[T]{t: t, root: id, next: Edge{Kind: Open, Node: id}}
}

// Next returns the next edge of the traversal. It returns false as soon as
// the traversal is exhausted; subsequent calls continue to return false.
func (tr *Traversal[T]) Next() (Edge, bool) {
	if tr.next.Kind == 0 {
		return Edge{}, false
	}
	edge := tr.next
	tr.next = tr.successor(edge)
	return edge, true
}

func (tr *Traversal[T]) successor(edge Edge) Edge {
	n := tr.t.at(edge.Node)
	if edge.Kind == Open {
		if n.first != None {
			return Edge{Kind: Open, Node: n.first}
		}
		return Edge{Kind: Close, Node: edge.Node}
	}
	if edge.Node == tr.root {
		return Edge{}
	}
	if n.next != None {
		return Edge{Kind: Open, Node: n.next}
	}
	if n.parent != None {
		return Edge{Kind: Close, Node: n.parent}
	}
	return Edge{}
}

// Clone returns a traversal continuing from the current position of tr.
// Both traversals advance independently.
func (tr *Traversal[T]) Clone() *Traversal[T] {
	c := *tr
	return &c
}

// --- Iterators -------------------------------------------------------------

// Iterator is implemented by node sequences of a tree.
type Iterator interface {
	Next() (NodeID, bool)
}

// Siblings iterates over a run of siblings, in document order.
type Siblings[T any] struct {
	t    *Tree[T]
	next NodeID
}

// Children returns an iterator over the children of node id.
func (t *Tree[T]) Children(id NodeID) *Siblings[T] {
	return &Siblings[T]{t: t, next: t.at(id).first}
}

// Next returns the next sibling.
func (s *Siblings[T]) Next() (NodeID, bool) {
	if s.next == None {
		return None, false
	}
	id := s.next
	s.next = s.t.at(id).next
	return id, true
}

// Descendants iterates over the nodes of a subtree in pre-order.
type Descendants[T any] struct {
	tr *Traversal[T]
}

// Descendants returns an iterator over the subtree rooted at id, in
// pre-order. The sequence starts with id itself.
func (t *Tree[T]) Descendants(id NodeID) *Descendants[T] {
	return &Descendants[T]{tr: t.Traverse(id)}
}

// Next returns the next node in pre-order.
func (d *Descendants[T]) Next() (NodeID, bool) {
	for edge, ok := d.tr.Next(); ok; edge, ok = d.tr.Next() {
		if edge.Kind == Open {
			return edge.Node, true
		}
	}
	return None, false
}

// Ancestors iterates upwards from a node to the root.
type Ancestors[T any] struct {
	t    *Tree[T]
	next NodeID
}

// Ancestors returns an iterator over the proper ancestors of id, starting
// with its parent and ending with the root.
func (t *Tree[T]) Ancestors(id NodeID) *Ancestors[T] {
	return &Ancestors[T]{t: t, next: t.at(id).parent}
}

// Next returns the next ancestor.
func (a *Ancestors[T]) Next() (NodeID, bool) {
	if a.next == None {
		return None, false
	}
	id := a.next
	a.next = a.t.at(id).parent
	return id, true
}

// --- Predicates ------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
type Predicate[T any] func(t *Tree[T], id NodeID) bool

// Whatever is a predicate to match anything.
func Whatever[T any]() Predicate[T] {
	return func(*Tree[T], NodeID) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T any]() Predicate[T] {
	return func(t *Tree[T], id NodeID) bool {
		return !t.HasChildren(id)
	}
}

// Filtered is an iterator which skips nodes not matching a predicate.
type Filtered[T any] struct {
	t     *Tree[T]
	inner Iterator
	pred  Predicate[T]
}

// Filter wraps an iterator over nodes of t, yielding only nodes for which
// pred holds.
func Filter[T any](t *Tree[T], it Iterator, pred Predicate[T]) *Filtered[T] {
	if pred == nil {
		pred = Whatever[T]()
	}
	return &Filtered[T]{t: t, inner: it, pred: pred}
}

// Next returns the next matching node.
func (f *Filtered[T]) Next() (NodeID, bool) {
	for id, ok := f.inner.Next(); ok; id, ok = f.inner.Next() {
		if f.pred(f.t, id) {
			return id, true
		}
	}
	return None, false
}

// Collect drains an iterator into a slice.
func Collect(it Iterator) []NodeID {
	var ids []NodeID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		ids = append(ids, id)
	}
	return ids
}
