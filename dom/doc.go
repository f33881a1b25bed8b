/*
Package dom provides read-only, scope-aware queries over parsed HTML documents.

Status

Early draft, API may change frequently. Please stay patient.

Overview

A Document is created once from HTML input, using the parser of package
golang.org/x/net/html, and never changes afterwards. Its nodes are kept in
an arena tree (package tree) and addressed by index. Clients navigate a
document with ElementRef values: small, comparable handles for element
nodes. Two ElementRefs are equal if and only if they refer to the same node,
which makes them suitable as map keys.

Queries are lazy. ElementRef.Select returns a Selection, a cursor which
walks the element's subtree and yields elements matching a CSS selector,
evaluated with the element as the :scope anchor:

   sel, _ := selector.Parse(":scope > b")
   s := elem.Select(sel)
   for e, ok := s.Next(); ok; e, ok = s.Next() {
       fmt.Println(e.InnerHTML())
   }

Tree Implementation

Documents are immutable, therefore every read operation is safe for concurrent
use. Cursors (Selection, TextIter, Elements) hold traversal state and must
not be shared between goroutines; clone them instead.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domquery.dom'
func tracer() tracing.Trace {
	return tracing.Select("domquery.dom")
}
