/*
Package selector compiles CSS selectors and matches them against nodes of an
HTML parse tree, relative to a scope element.

Overview

Parsing and low-level matching is done by package cascadia. This package adds
what cascadia is missing for scoped queries: the :scope pseudo-class. A
selector using :scope is matched on a mirror of the parse tree in which the
scope element is marked, so that combinators and positional pseudo-classes
keep their usual meaning while :scope pins down the anchor.

Mirrors are built lazily and kept in a MatchCache. A cache belongs to a
single traversal; clients must not share caches between independent
traversals.

Status

Selectors are immutable and may be shared between goroutines. Caches may not.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domquery.selector'.
func tracer() tracing.Trace {
	return tracing.Select("domquery.selector")
}
