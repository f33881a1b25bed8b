package selector

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// anchorAttr is the attribute which marks the scope element within a mirror.
// :scope is rewritten to a presence test for it.
const anchorAttr = "data-domquery-scope"

// SyntaxError is returned by Parse for selectors which cannot be compiled.
type SyntaxError struct {
	Selector string // selector text as given by the client
	Err      error  // error reported by the selector engine
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Selector is a compiled group of CSS selectors.
type Selector struct {
	text   string
	group  cascadia.SelectorGroup
	scoped bool // does the selector use :scope?
}

// Parse compiles a selector group, e.g. "div > span, :scope > b".
// Syntax errors are reported as *SyntaxError.
func Parse(text string) (*Selector, error) {
	rewritten, scoped := rewriteScope(text)
	group, err := cascadia.ParseGroup(rewritten)
	if err != nil {
		tracer().Debugf("cannot compile selector %q: %v", text, err)
		return nil, errors.WithStack(&SyntaxError{Selector: text, Err: err})
	}
	tracer().P("scoped", scoped).Debugf("compiled selector %q", text)
	return &Selector{text: text, group: group, scoped: scoped}, nil
}

// MustParse is like Parse, but panics if the selector cannot be compiled.
// It is intended for selectors fixed at compile time.
func MustParse(text string) *Selector {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the selector text as given to Parse.
func (s *Selector) String() string {
	return s.text
}

// Scoped is a predicate: does the selector refer to :scope?
func (s *Selector) Scoped() bool {
	return s.scoped
}

// Matches reports whether element n matches s, with scope as the :scope
// anchor. If scope is nil, :scope denotes the root element of n's tree.
// Matching may store data in cache; cache may be nil.
// A scoped selector never matches elements outside the subtree of scope.
func (s *Selector) Matches(n *html.Node, scope *html.Node, cache *MatchCache) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if !s.scoped {
		return s.group.Match(n)
	}
	if scope == nil {
		if scope = RootElement(n); scope == nil {
			return false
		}
	}
	if cache == nil {
		cache = &MatchCache{}
	}
	m := cache.mirrorOf(n, scope)
	if m == nil {
		return false
	}
	return s.group.Match(m)
}

// RootElement returns the root element of the tree n belongs to, i.e. the
// document element for a document, or the topmost element otherwise.
func RootElement(n *html.Node) *html.Node {
	top := topOf(n)
	if top == nil || top.Type == html.ElementNode {
		return top
	}
	for c := top.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func topOf(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// --- Rewriting :scope ------------------------------------------------------

// rewriteScope replaces every occurrence of the :scope pseudo-class by a test
// for the anchor attribute. Quoted strings and escapes are left untouched.
func rewriteScope(text string) (string, bool) {
	const pseudo = "scope"
	var b strings.Builder
	scoped := false
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\\' && i+1 < len(text):
			b.WriteByte(c)
			b.WriteByte(text[i+1])
			i++
			continue
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ':' && (i == 0 || text[i-1] != ':'):
			end := i + 1 + len(pseudo)
			if end <= len(text) && strings.EqualFold(text[i+1:end], pseudo) &&
				(end == len(text) || !isNameChar(text[end])) {
				b.WriteString("[" + anchorAttr + "]")
				scoped = true
				i = end - 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String(), scoped
}

func isNameChar(c byte) bool {
	return c == '-' || c == '_' || c == '(' || c >= 0x80 ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
