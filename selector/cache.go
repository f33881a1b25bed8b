package selector

import (
	"golang.org/x/net/html"
)

// MatchCache memoizes data needed to match scoped selectors: a partial mirror
// of the parse tree with the scope element marked, and the mapping from source
// nodes to their mirrored counterparts. Positional pseudo-classes
// (:nth-child and friends) as well as :scope are evaluated on the mirror.
//
// The mirror holds the complete subtree of the scope and the chain of its
// ancestors up to the top of the document. Element siblings along that chain
// are mirrored as childless shells, carrying their attributes. Its size is
// thus bounded by the size of the scope's subtree plus depth times fan-out,
// independent of the size of the document. Selectors testing the content of
// ancestors or their siblings (e.g., :empty or :has on them) see the shells.
//
// A cache is bound to a single traversal. The zero value is ready to use.
type MatchCache struct {
	anchor *html.Node               // scope the mirror was built for
	mirror map[*html.Node]*html.Node // node of scope's subtree -> mirrored node
	size   int                       // mirrored nodes including chain and shells
}

// Reset drops all memoized data.
func (c *MatchCache) Reset() {
	c.anchor = nil
	c.mirror = nil
	c.size = 0
}

// Len returns the number of mirrored nodes held by the cache.
func (c *MatchCache) Len() int {
	return c.size
}

// mirrorOf returns the mirrored counterpart of n, building the mirror for
// scope if necessary. It returns nil if n is not part of the subtree of scope.
func (c *MatchCache) mirrorOf(n *html.Node, scope *html.Node) *html.Node {
	if c.anchor != scope || c.mirror == nil {
		c.build(scope)
	}
	return c.mirror[n]
}

func (c *MatchCache) build(scope *html.Node) {
	c.anchor = scope
	c.mirror = make(map[*html.Node]*html.Node, 64)
	c.size = 0
	var chain []*html.Node // ancestors of scope, top first
	for p := scope.Parent; p != nil; p = p.Parent {
		chain = append(chain, nil)
		copy(chain[1:], chain)
		chain[0] = p
	}
	if len(chain) == 0 {
		c.clone(scope, nil, scope)
	} else {
		c.spine(chain, 0, nil, scope)
	}
	tracer().Debugf("built mirror of %d nodes for scope <%s>", c.size, scope.Data)
}

// spine mirrors chain[i] below parent. Of its children, the next node on the
// path to scope is followed, scope is cloned, and other elements become shells.
func (c *MatchCache) spine(chain []*html.Node, i int, parent, scope *html.Node) {
	m := c.shallow(chain[i], scope)
	if parent != nil {
		parent.AppendChild(m)
	}
	for ch := chain[i].FirstChild; ch != nil; ch = ch.NextSibling {
		switch {
		case i+1 < len(chain) && ch == chain[i+1]:
			c.spine(chain, i+1, m, scope)
		case ch == scope:
			c.clone(scope, m, scope)
		case ch.Type == html.ElementNode:
			m.AppendChild(c.shallow(ch, scope))
		}
	}
}

// clone copies n and its subtree below parent and records the mapping.
func (c *MatchCache) clone(n, parent, scope *html.Node) {
	m := c.shallow(n, scope)
	if parent != nil {
		parent.AppendChild(m)
	}
	c.mirror[n] = m
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.clone(ch, m, scope)
	}
}

// shallow copies n without its children. Anchor attributes present in the
// source are dropped; the copy of scope receives one.
func (c *MatchCache) shallow(n, scope *html.Node) *html.Node {
	m := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 || n == scope {
		m.Attr = make([]html.Attribute, 0, len(n.Attr)+1)
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == anchorAttr {
				continue
			}
			m.Attr = append(m.Attr, a)
		}
		if n == scope {
			m.Attr = append(m.Attr, html.Attribute{Key: anchorAttr})
		}
	}
	c.size++
	return m
}
