package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrNoSuchNode is returned if a NodeID does not address a node of a tree.
var ErrNoSuchNode = errors.New("no such node in tree")

// ErrSealed is returned if a builder is asked to add nodes to a tree
// which has already been handed out.
var ErrSealed = errors.New("tree is sealed; cannot add nodes")

// NodeID is a handle for a node within a tree. It is valid for the lifetime
// of the tree it has been issued by.
type NodeID int

// None is the NodeID of no node at all.
const None NodeID = -1

// node is the arena slot of a tree node. Links to relatives are NodeIDs.
type node[T any] struct {
	parent      NodeID
	first, last NodeID // first and last child
	prev, next  NodeID // siblings
	payload     T
}

// Tree is an immutable tree of nodes carrying payloads of type T.
// The zero value is an empty tree.
type Tree[T any] struct {
	nodes []node[T]
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns the root node of the tree or None for an empty tree.
func (t *Tree[T]) Root() NodeID {
	if t.Len() == 0 {
		return None
	}
	return 0
}

// Valid is a predicate: does id address a node of t?
func (t *Tree[T]) Valid(id NodeID) bool {
	return id >= 0 && int(id) < t.Len()
}

// Payload returns the payload of node id. It panics if id is not valid
// for t, as this indicates that a NodeID has been used with the wrong tree.
func (t *Tree[T]) Payload(id NodeID) T {
	return t.at(id).payload
}

// Parent returns the parent of a node. The root node has no parent.
func (t *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	return found(t.at(id).parent)
}

// FirstChild returns the first child of a node, if any.
func (t *Tree[T]) FirstChild(id NodeID) (NodeID, bool) {
	return found(t.at(id).first)
}

// LastChild returns the last child of a node, if any.
func (t *Tree[T]) LastChild(id NodeID) (NodeID, bool) {
	return found(t.at(id).last)
}

// NextSibling returns the following sibling of a node, if any.
func (t *Tree[T]) NextSibling(id NodeID) (NodeID, bool) {
	return found(t.at(id).next)
}

// PrevSibling returns the preceding sibling of a node, if any.
func (t *Tree[T]) PrevSibling(id NodeID) (NodeID, bool) {
	return found(t.at(id).prev)
}

// HasChildren is a predicate: does node id have children?
func (t *Tree[T]) HasChildren(id NodeID) bool {
	return t.at(id).first != None
}

// IsAncestor is a predicate: is anc a proper ancestor of id?
// Walking upwards stops at the root, which has no parent.
func (t *Tree[T]) IsAncestor(anc NodeID, id NodeID) bool {
	p, ok := t.Parent(id)
	for ok {
		if p == anc {
			return true
		}
		p, ok = t.Parent(p)
	}
	return false
}

func (t *Tree[T]) at(id NodeID) *node[T] {
	if !t.Valid(id) {
		err := fmt.Errorf("%w: id=%d, len=%d", ErrNoSuchNode, id, t.Len())
		tracer().Errorf(err.Error())
		panic(err)
	}
	return &t.nodes[id]
}

func found(id NodeID) (NodeID, bool) {
	return id, id != None
}

// --- Builder ---------------------------------------------------------------

// Builder creates a tree. Nodes are appended as children of already existing
// nodes. When the client calls Tree(), the tree is sealed and the builder
// refuses further additions.
type Builder[T any] struct {
	t      *Tree[T]
	sealed bool
}

// NewBuilder creates a builder for a tree with a root node carrying payload.
func NewBuilder[T any](payload T) *Builder[T] {
	t := &Tree[T]{}
	t.nodes = append(t.nodes, node[T]{
		parent: None, first: None, last: None, prev: None, next: None,
		payload: payload,
	})
	return &Builder[T]{t: t}
}

// AddChild appends a new node as the last child of parent.
// It returns the NodeID of the new node.
func (b *Builder[T]) AddChild(parent NodeID, payload T) (NodeID, error) {
	if b.sealed {
		return None, ErrSealed
	}
	if !b.t.Valid(parent) {
		return None, fmt.Errorf("%w: parent id=%d", ErrNoSuchNode, parent)
	}
	id := NodeID(len(b.t.nodes))
	p := &b.t.nodes[parent]
	b.t.nodes = append(b.t.nodes, node[T]{
		parent: parent, first: None, last: None, prev: p.last, next: None,
		payload: payload,
	})
	p = &b.t.nodes[parent] // append may have moved the arena
	if p.last != None {
		b.t.nodes[p.last].next = id
	} else {
		p.first = id
	}
	p.last = id
	return id, nil
}

// Tree seals the tree and returns it. Subsequent calls return the same tree.
func (b *Builder[T]) Tree() *Tree[T] {
	if !b.sealed {
		tracer().Debugf("sealing tree with %d nodes", b.t.Len())
		b.sealed = true
	}
	return b.t
}
