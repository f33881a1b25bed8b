package dom

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

type traversalMode uint8

const (
	includeNode traversalMode = iota
	childrenOnly
)

// serialize renders markup for n. It panics if rendering fails.
func serialize(n *html.Node, mode traversalMode) string {
	var buf bytes.Buffer
	var err error
	switch mode {
	case includeNode:
		err = html.Render(&buf, n)
	case childrenOnly:
		for c := n.FirstChild; c != nil && err == nil; c = c.NextSibling {
			err = html.Render(&buf, c)
		}
	}
	if err != nil {
		err = errors.Wrapf(err, "serializing <%s>", n.Data)
		tracer().Errorf(err.Error())
		panic(err)
	}
	return buf.String()
}
