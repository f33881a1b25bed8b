/*
Package tree implements an arena-backed, read-only tree type.

Overview

Nodes of a tree are stored in a single slice and addressed by a NodeID,
which is nothing more than an index into this slice. Nodes carry a payload
of type parameter T and know their parent, their first and last child and
their siblings, all expressed as NodeIDs.

Trees are created with a Builder. As soon as the builder hands out the
finished tree, the tree is sealed and no longer changes. This makes trees
safe for concurrent readers without any locking, and it makes a NodeID a
stable handle for the lifetime of the tree.

Traversal

The central primitive is a depth-first walk which reports two edges for
every node: an Open edge when the walk enters the node and a Close edge
when it leaves it.

   tr := t.Traverse(t.Root())
   for edge, ok := tr.Next(); ok; edge, ok = tr.Next() {
       if edge.Kind == tree.Open {
           ...
       }
   }

Traversals are cursors. They may be cloned at any point; the clone continues
independently from the same position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domquery.tree'.
func tracer() tracing.Trace {
	return tracing.Select("domquery.tree")
}
