package dom

import (
	"github.com/npillmayer/domquery/tree"
)

// NodeIsText is a predicate to match text-nodes of a document.
// It is intended to be used with tree.Filter.
var NodeIsText tree.Predicate[*Node] = func(t *tree.Tree[*Node], id tree.NodeID) bool {
	return t.Payload(id).Kind() == TextNode
}

// NodeIsElement is a predicate to match element-nodes of a document.
// It is intended to be used with tree.Filter.
var NodeIsElement tree.Predicate[*Node] = func(t *tree.Tree[*Node], id tree.NodeID) bool {
	return t.Payload(id).IsElement()
}

// NodeHasTag returns a predicate to match elements with a given tag name.
func NodeHasTag(name string) tree.Predicate[*Node] {
	return func(t *tree.Tree[*Node], id tree.NodeID) bool {
		e, ok := t.Payload(id).AsElement()
		return ok && e.Name() == name
	}
}
