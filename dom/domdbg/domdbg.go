/*
Package domdbg implements helpers to debug a document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/domquery/selector"
	"github.com/npillmayer/domquery/tree"
	tp "github.com/xlab/treeprint"
)

// Sprint returns an indented print of the document tree, one line per node.
// Comments are omitted.
func Sprint(doc *dom.Document) string {
	printer := tp.New()
	printer.SetValue("#document")
	t := doc.Tree()
	var add func(branch tp.Tree, id tree.NodeID)
	add = func(branch tp.Tree, id tree.NodeID) {
		children := t.Children(id)
		for ch, ok := children.Next(); ok; ch, ok = children.Next() {
			n := t.Payload(ch)
			switch n.Kind() {
			case dom.ElementNode:
				e, _ := n.AsElement()
				add(branch.AddBranch(elementLabel(e)), ch)
			case dom.TextNode:
				s, _ := n.Text()
				if strings.TrimSpace(s) != "" {
					branch.AddNode(fmt.Sprintf("%q", s))
				}
			case dom.DoctypeNode:
				branch.AddNode("<!DOCTYPE " + n.HTMLNode().Data + ">")
			}
		}
	}
	add(printer, t.Root())
	return printer.String()
}

func elementLabel(e *dom.Element) string {
	var b strings.Builder
	b.WriteString(e.Name())
	attrs := e.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		a := attrs.Item(i)
		fmt.Fprintf(&b, " %s=%q", a.Key(), a.Value())
	}
	return b.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	N       *dom.Node
	Name    string
	Matched bool
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. If a selector is given, elements matching it are
// highlighted; this is useful for inspecting queries.
func ToGraphViz(doc *dom.Document, w io.Writer, sel *selector.Selector) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       nodeLabel,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	matched := make(map[tree.NodeID]bool)
	if sel != nil {
		s := doc.Select(sel)
		for e, ok := s.Next(); ok; e, ok = s.Next() {
			matched[e.Node().ID()] = true
		}
	}
	t := doc.Tree()
	walk := t.Traverse(t.Root())
	for e, ok := walk.Next(); ok; e, ok = walk.Next() {
		if e.Kind != tree.Open {
			continue
		}
		n := t.Payload(e.Node)
		if n.Kind() == dom.CommentNode || n.Kind() == dom.DoctypeNode {
			continue
		}
		if err = gparams.NodeTmpl.Execute(w, &node{n, nodeName(e.Node), matched[e.Node]}); err != nil {
			return err
		}
		if p, ok := t.Parent(e.Node); ok {
			if err = gparams.EdgeTmpl.Execute(w, edge{nodeName(p), nodeName(e.Node)}); err != nil {
				return err
			}
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(id tree.NodeID) string {
	return fmt.Sprintf("node%05d", id)
}

func nodeLabel(n *dom.Node) string {
	switch n.Kind() {
	case dom.ElementNode:
		e, _ := n.AsElement()
		return fmt.Sprintf("%q", elementLabel(e))
	case dom.DocumentNode:
		return `"#document"`
	}
	return `""`
}

// shortText returns a quoted DOT label for a text node. Text longer than
// ten characters is cut.
func shortText(n *dom.Node) string {
	text, _ := n.Text()
	if r := []rune(text); len(r) > 10 {
		text = string(r[:10]) + "..."
	}
	text = strings.Replace(text, `\`, `\\`, -1)
	text = strings.Replace(text, `"`, `\"`, -1)
	text = strings.Replace(text, "\n", `\\n`, -1)
	text = strings.Replace(text, "\t", `\\t`, -1)
	text = strings.Replace(text, " ", "␣", -1)
	return `"\"` + text + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.Kind.String "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if .Matched }}
{{ .Name }}	[ label={{ label .N }} shape=ellipse style=filled fillcolor=orange ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
